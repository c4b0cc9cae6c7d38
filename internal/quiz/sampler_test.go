package quiz

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatdt622989/japanese-word-display/internal/vocabulary"
)

type stubSource map[string][]vocabulary.Word

func (s stubSource) Fetch(_ context.Context) (map[string][]vocabulary.Word, error) {
	return s, nil
}

func newTestStore(t *testing.T, words ...vocabulary.Word) *vocabulary.Store {
	t.Helper()
	store := vocabulary.NewStore()
	require.NoError(t, store.Load(t.Context(), stubSource{"N5": words}))
	return store
}

func newWord(id, written, reading, meaning string) vocabulary.Word {
	return vocabulary.Word{
		ID:           id,
		WrittenForms: vocabulary.StringList{written},
		Readings:     vocabulary.StringList{reading},
		Meanings:     vocabulary.StringList{meaning},
	}
}

func newFallbackStore(t *testing.T) *vocabulary.Store {
	t.Helper()
	store := vocabulary.NewStore()
	require.NoError(t, store.Load(t.Context(), stubSource{"N5": vocabulary.FallbackWords()}))
	return store
}

func TestDistractorSampler_Sample(t *testing.T) {
	t.Run("short pool yields fewer values than requested", func(t *testing.T) {
		// The fallback set has 3 words; excluding one leaves a 2-word pool.
		store := newFallbackStore(t)
		sampler := NewDistractorSampler(store, rand.New(rand.NewSource(1)))

		got := sampler.Sample(QuestionTypeMeaning, "1", 3)
		assert.ElementsMatch(t, []string{"teacher", "school"}, got)
	})

	t.Run("excluded word never contributes", func(t *testing.T) {
		store := newTestStore(t,
			newWord("a", "水", "みず", "water"),
			newWord("b", "犬", "いぬ", "dog"),
			newWord("c", "猫", "ねこ", "cat"),
			newWord("d", "山", "やま", "mountain"),
		)
		sampler := NewDistractorSampler(store, nil)

		for i := 0; i < 100; i++ {
			got := sampler.Sample(QuestionTypeReading, "a", 2)
			assert.Len(t, got, 2)
			assert.NotContains(t, got, "みず")
		}
	})

	t.Run("duplicate projected values collapse to one slot", func(t *testing.T) {
		store := newTestStore(t,
			newWord("a", "先生", "せんせい", "teacher"),
			newWord("b", "教師", "きょうし", "teacher"),
			newWord("c", "教員", "きょういん", "teacher"),
			newWord("d", "犬", "いぬ", "dog"),
		)
		sampler := NewDistractorSampler(store, nil)

		for i := 0; i < 100; i++ {
			got := sampler.Sample(QuestionTypeMeaning, "d", 3)
			assert.Len(t, got, 1)
			assert.Equal(t, "teacher", got[0])
		}
	})

	t.Run("no duplicate values and at most count", func(t *testing.T) {
		store := newTestStore(t,
			newWord("a", "水", "みず", "water"),
			newWord("b", "犬", "いぬ", "dog"),
			newWord("c", "猫", "ねこ", "cat"),
			newWord("d", "山", "やま", "mountain"),
			newWord("e", "川", "かわ", "river"),
		)
		sampler := NewDistractorSampler(store, nil)

		for i := 0; i < 100; i++ {
			got := sampler.Sample(QuestionTypeWrittenForm, "a", 3)
			assert.LessOrEqual(t, len(got), 3)

			seen := make(map[string]struct{})
			for _, value := range got {
				_, duplicate := seen[value]
				assert.False(t, duplicate, "duplicate value %q", value)
				seen[value] = struct{}{}
			}
		}
	})

	t.Run("zero count returns an empty result", func(t *testing.T) {
		store := newFallbackStore(t)
		sampler := NewDistractorSampler(store, nil)
		assert.Empty(t, sampler.Sample(QuestionTypeMeaning, "1", 0))
	})

	t.Run("empty store returns an empty result", func(t *testing.T) {
		sampler := NewDistractorSampler(vocabulary.NewStore(), nil)
		assert.Empty(t, sampler.Sample(QuestionTypeMeaning, "1", 3))
	})

	t.Run("store is untouched by sampling", func(t *testing.T) {
		store := newFallbackStore(t)
		sampler := NewDistractorSampler(store, nil)
		for i := 0; i < 10; i++ {
			sampler.Sample(QuestionTypeMeaning, "1", 3)
		}
		assert.Equal(t, 3, store.Count())
	})
}
