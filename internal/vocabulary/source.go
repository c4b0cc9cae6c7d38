package vocabulary

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=source.go -destination=../mocks/vocabulary/mock_source.go -package=mock_vocabulary Source

// Source delivers a full vocabulary set, grouped by proficiency level.
// Implementations shape their raw payloads into well-formed Words; the store
// never sees loosely-typed values.
type Source interface {
	Fetch(ctx context.Context) (map[string][]Word, error)
}

// FileSource reads a level-to-words vocabulary file in YAML. It serves
// offline use and test fixtures with the same layout the remote service
// delivers.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by the YAML file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch implements the Source interface.
func (s *FileSource) Fetch(_ context.Context) (map[string][]Word, error) {
	contents, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", s.path, err)
	}

	var leveled map[string][]Word
	if err := yaml.Unmarshal(contents, &leveled); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", s.path, err)
	}
	return leveled, nil
}
