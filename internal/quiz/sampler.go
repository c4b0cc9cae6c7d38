package quiz

import (
	"math/rand"
	"time"

	"github.com/tatdt622989/japanese-word-display/internal/vocabulary"
)

// DistractorSampler draws unique wrong-answer values from the store.
type DistractorSampler struct {
	store *vocabulary.Store
	rng   *rand.Rand
}

// NewDistractorSampler creates a sampler over the given store. A nil rng
// gets a time-seeded one.
func NewDistractorSampler(store *vocabulary.Store, rng *rand.Rand) *DistractorSampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &DistractorSampler{
		store: store,
		rng:   rng,
	}
}

// Sample returns up to count unique projected values drawn uniformly from the
// store, excluding the word with excludeID entirely. Uniqueness is at the
// string level: two words sharing a projected value fill one slot. A drawn
// word is consumed whether or not its value was kept, so the loop terminates
// after at most pool-size draws; the result may therefore be shorter than
// count, which callers tolerate.
func (s *DistractorSampler) Sample(projection QuestionType, excludeID string, count int) []string {
	words := s.store.Words()
	pool := make([]*vocabulary.Word, 0, len(words))
	for i := range words {
		if words[i].ID == excludeID {
			continue
		}
		pool = append(pool, &words[i])
	}

	values := make([]string, 0, count)
	seen := make(map[string]struct{}, count)
	for len(values) < count && len(pool) > 0 {
		i := s.rng.Intn(len(pool))
		drawn := pool[i]
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]

		value := projection.Project(drawn)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		values = append(values, value)
	}
	return values
}
