package quiz

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatdt622989/japanese-word-display/internal/vocabulary"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("empty store returns nil", func(t *testing.T) {
		builder := NewBuilder(vocabulary.NewStore(), nil, 3)
		assert.Nil(t, builder.Build())
	})

	t.Run("exactly one option is correct and matches the answer text", func(t *testing.T) {
		builder := NewBuilder(newFallbackStore(t), nil, 3)
		for i := 0; i < 100; i++ {
			question := builder.Build()
			require.NotNil(t, question)

			correctCount := 0
			for _, option := range question.Options {
				if option.Correct {
					correctCount++
					assert.Equal(t, question.CorrectAnswerText, option.Text)
				}
			}
			assert.Equal(t, 1, correctCount)
		}
	})

	t.Run("prompt and answer follow the question type", func(t *testing.T) {
		store := newTestStore(t, newWord("a", "水", "みず", "water"))
		builder := NewBuilder(store, nil, 3)

		for i := 0; i < 50; i++ {
			question := builder.Build()
			require.NotNil(t, question)
			assert.Equal(t, "a", question.TargetWordID)
			// The only word has no distractor candidates.
			require.Len(t, question.Options, 1)
			assert.True(t, question.Options[0].Correct)

			switch question.Type {
			case QuestionTypeMeaning:
				assert.Equal(t, "Which is the correct meaning of «水»?", question.Prompt)
				assert.Equal(t, "water", question.CorrectAnswerText)
			case QuestionTypeReading:
				assert.Equal(t, "Which is the correct reading of «水»?", question.Prompt)
				assert.Equal(t, "みず", question.CorrectAnswerText)
			case QuestionTypeWrittenForm:
				assert.Equal(t, "Which written form means «water»?", question.Prompt)
				assert.Equal(t, "水", question.CorrectAnswerText)
			default:
				t.Fatalf("unexpected question type %q", question.Type)
			}
		}
	})

	t.Run("options are a permutation of correct plus distractors", func(t *testing.T) {
		store := newTestStore(t,
			newWord("a", "水", "みず", "water"),
			newWord("b", "犬", "いぬ", "dog"),
			newWord("c", "猫", "ねこ", "cat"),
			newWord("d", "山", "やま", "mountain"),
		)
		builder := NewBuilder(store, nil, 3)

		for i := 0; i < 100; i++ {
			question := builder.Build()
			require.NotNil(t, question)
			require.Len(t, question.Options, 4)

			texts := make([]string, 0, len(question.Options))
			for _, option := range question.Options {
				texts = append(texts, option.Text)
			}
			sort.Strings(texts)
			unique := make(map[string]struct{})
			for _, text := range texts {
				unique[text] = struct{}{}
			}
			assert.Len(t, unique, 4)
			assert.Contains(t, texts, question.CorrectAnswerText)
		}
	})

	t.Run("correct answer lands in every position", func(t *testing.T) {
		store := newTestStore(t,
			newWord("a", "水", "みず", "water"),
			newWord("b", "犬", "いぬ", "dog"),
			newWord("c", "猫", "ねこ", "cat"),
			newWord("d", "山", "やま", "mountain"),
		)
		builder := NewBuilder(store, nil, 3)

		positions := make(map[int]int)
		for i := 0; i < 400; i++ {
			question := builder.Build()
			require.NotNil(t, question)
			for position, option := range question.Options {
				if option.Correct {
					positions[position]++
				}
			}
		}
		// Statistically every position occurs; 400 trials over 4 slots make
		// a miss astronomically unlikely.
		for position := 0; position < 4; position++ {
			assert.Greater(t, positions[position], 0, "position %d never held the correct answer", position)
		}
	})
}

func TestBuilder_BuildExampleQuestion(t *testing.T) {
	t.Run("no word with examples returns nil", func(t *testing.T) {
		store := newTestStore(t, newWord("a", "水", "みず", "water"))
		builder := NewBuilder(store, nil, 3)
		assert.Nil(t, builder.BuildExampleQuestion())
	})

	t.Run("empty store returns nil", func(t *testing.T) {
		builder := NewBuilder(vocabulary.NewStore(), nil, 3)
		assert.Nil(t, builder.BuildExampleQuestion())
	})

	t.Run("prompt embeds the example pair and asks the meaning", func(t *testing.T) {
		target := newWord("a", "水", "みず", "water")
		target.Examples = []vocabulary.Example{
			{Sentence: "水を飲みます。", Translation: "I drink water."},
		}
		store := newTestStore(t, target, newWord("b", "犬", "いぬ", "dog"))
		builder := NewBuilder(store, nil, 3)

		question := builder.BuildExampleQuestion()
		require.NotNil(t, question)
		assert.Equal(t, "a", question.TargetWordID)
		assert.Equal(t, QuestionTypeMeaning, question.Type)
		assert.Equal(t, "water", question.CorrectAnswerText)
		assert.Contains(t, question.Prompt, "水を飲みます。")
		assert.Contains(t, question.Prompt, "I drink water.")
		assert.Contains(t, question.Prompt, "«水»")

		require.Len(t, question.Options, 2)
		texts := []string{question.Options[0].Text, question.Options[1].Text}
		assert.ElementsMatch(t, []string{"water", "dog"}, texts)
	})
}

func TestQuestionType_Project(t *testing.T) {
	word := newWord("a", "水", "みず", "water")

	tests := []struct {
		questionType QuestionType
		want         string
	}{
		{QuestionTypeMeaning, "water"},
		{QuestionTypeReading, "みず"},
		{QuestionTypeWrittenForm, "水"},
	}
	for _, tt := range tests {
		t.Run(string(tt.questionType), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.questionType.Project(&word))
		})
	}
}
