package vocabulary

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync/atomic"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// collection is an immutable snapshot of the loaded words. The store swaps
// whole snapshots; nothing ever mutates one in place, so reads need no lock.
type collection struct {
	words []Word
	byID  map[string]int
}

// Store owns the vocabulary collection for a session. Selection operations
// read whatever snapshot is current, so they are safe to call while a load is
// still in flight.
type Store struct {
	current atomic.Pointer[collection]
}

// NewStore creates an empty store.
func NewStore() *Store {
	store := &Store{}
	store.replace(nil)
	return store
}

// Load replaces the collection wholesale from the given source. It fails
// soft: on any fetch or shape error the builtin fallback set is installed and
// the error is returned for the caller to report as a warning. The store is
// never left empty by a failed load.
func (s *Store) Load(ctx context.Context, source Source) error {
	leveled, err := source.Fetch(ctx)
	if err != nil {
		s.replace(FallbackWords())
		return fmt.Errorf("source.Fetch() > %w", err)
	}

	words, err := shapeWords(leveled)
	if err != nil {
		s.replace(FallbackWords())
		return fmt.Errorf("shapeWords > %w", err)
	}

	s.replace(words)
	return nil
}

// shapeWords flattens the level-grouped payload into a validated word list.
// The level grouping key is attached to each word; any structurally invalid
// record rejects the whole payload.
func shapeWords(leveled map[string][]Word) ([]Word, error) {
	levels := make([]string, 0, len(leveled))
	for level := range leveled {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	var words []Word
	seen := make(map[string]struct{})
	for _, level := range levels {
		for _, word := range leveled[level] {
			word.Level = level
			if err := validate.Struct(word); err != nil {
				return nil, fmt.Errorf("invalid word record %q in level %q > %w", word.ID, level, err)
			}
			if _, ok := seen[word.ID]; ok {
				return nil, fmt.Errorf("duplicate word id %q in level %q", word.ID, level)
			}
			seen[word.ID] = struct{}{}
			words = append(words, word)
		}
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("vocabulary payload contains no words")
	}
	return words, nil
}

func (s *Store) replace(words []Word) {
	byID := make(map[string]int, len(words))
	for i, word := range words {
		byID[word.ID] = i
	}
	s.current.Store(&collection{words: words, byID: byID})
}

// Count returns the current collection size.
func (s *Store) Count() int {
	return len(s.current.Load().words)
}

// Words returns a copy of the current collection.
func (s *Store) Words() []Word {
	current := s.current.Load()
	words := make([]Word, len(current.words))
	copy(words, current.words)
	return words
}

// PickRandom returns a uniformly random word, or nil when the store is empty.
func (s *Store) PickRandom() *Word {
	current := s.current.Load()
	if len(current.words) == 0 {
		return nil
	}
	word := current.words[rand.Intn(len(current.words))]
	return &word
}

// PickRandomWithExamples returns a uniformly random word among those carrying
// at least one example sentence, or nil when none qualify.
func (s *Store) PickRandomWithExamples() *Word {
	current := s.current.Load()
	candidates := make([]int, 0, len(current.words))
	for i, word := range current.words {
		if word.HasExamples() {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	word := current.words[candidates[rand.Intn(len(candidates))]]
	return &word
}

// GetByID returns the word with the given id, or nil when it is not loaded.
func (s *Store) GetByID(id string) *Word {
	current := s.current.Load()
	index, ok := current.byID[id]
	if !ok {
		return nil
	}
	word := current.words[index]
	return &word
}
