package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/tatdt622989/japanese-word-display/internal/vocabulary"
)

// DefaultDistractorCount is how many wrong answers a question asks for.
const DefaultDistractorCount = 3

// Builder assembles quiz questions from the vocabulary store.
type Builder struct {
	store           *vocabulary.Store
	sampler         *DistractorSampler
	rng             *rand.Rand
	distractorCount int
}

// NewBuilder creates a builder over the given store. A nil rng gets a
// time-seeded one; it is shared with the sampler.
func NewBuilder(store *vocabulary.Store, rng *rand.Rand, distractorCount int) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if distractorCount <= 0 {
		distractorCount = DefaultDistractorCount
	}
	return &Builder{
		store:           store,
		sampler:         NewDistractorSampler(store, rng),
		rng:             rng,
		distractorCount: distractorCount,
	}
}

// Build assembles one question: a random target word, a random question
// type, the correct answer plus distractors in shuffled order. It returns
// nil when the store is empty.
func (b *Builder) Build() *Question {
	target := b.store.PickRandom()
	if target == nil {
		return nil
	}

	questionType := questionTypes[b.rng.Intn(len(questionTypes))]
	correct := questionType.Project(target)
	distractors := b.sampler.Sample(questionType, target.ID, b.distractorCount)

	var prompt string
	switch questionType {
	case QuestionTypeReading:
		prompt = fmt.Sprintf("Which is the correct reading of «%s»?", target.FirstWrittenForm())
	case QuestionTypeWrittenForm:
		prompt = fmt.Sprintf("Which written form means «%s»?", target.FirstMeaning())
	default:
		prompt = fmt.Sprintf("Which is the correct meaning of «%s»?", target.FirstWrittenForm())
	}

	return &Question{
		Prompt:            prompt,
		Options:           b.shuffleOptions(correct, distractors),
		CorrectAnswerText: correct,
		Type:              questionType,
		TargetWordID:      target.ID,
	}
}

// BuildExampleQuestion assembles a comprehension question: the target is
// restricted to words carrying examples, one example pair is embedded in the
// prompt, and the options are meaning distractors. It returns nil when no
// word in the store has examples.
func (b *Builder) BuildExampleQuestion() *Question {
	target := b.store.PickRandomWithExamples()
	if target == nil {
		return nil
	}

	example := target.Examples[b.rng.Intn(len(target.Examples))]
	correct := target.FirstMeaning()
	distractors := b.sampler.Sample(QuestionTypeMeaning, target.ID, b.distractorCount)

	prompt := fmt.Sprintf(
		"Read the example:\n  %s\n  %s\nWhich is the correct meaning of «%s»?",
		example.Sentence,
		example.Translation,
		target.FirstWrittenForm(),
	)

	return &Question{
		Prompt:            prompt,
		Options:           b.shuffleOptions(correct, distractors),
		CorrectAnswerText: correct,
		Type:              QuestionTypeMeaning,
		TargetWordID:      target.ID,
	}
}

// shuffleOptions tags the correct answer and the distractors, then applies
// an in-place Fisher-Yates permutation.
func (b *Builder) shuffleOptions(correct string, distractors []string) []Option {
	options := make([]Option, 0, len(distractors)+1)
	options = append(options, Option{Text: correct, Correct: true})
	for _, distractor := range distractors {
		options = append(options, Option{Text: distractor})
	}

	for i := len(options) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		options[i], options[j] = options[j], options[i]
	}
	return options
}
