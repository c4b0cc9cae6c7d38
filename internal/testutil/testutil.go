// Package testutil provides shared test helpers for creating config files and
// vocabulary fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file pointing at a vocabulary
// fixture inside tmpDir. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	vocabularyFile := WriteVocabularyFile(t, tmpDir)

	configContent := fmt.Sprintf(`vocabulary:
  endpoint: http://localhost:9
  file: %s
  cache_path: %s
display:
  refresh_interval: 1s
quiz:
  distractor_count: 3
server:
  port: 18765
`,
		vocabularyFile,
		filepath.Join(tmpDir, "cache.db"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteVocabularyFile writes a small level-grouped vocabulary fixture in YAML
// and returns its path.
func WriteVocabularyFile(t *testing.T, tmpDir string) string {
	t.Helper()

	content := `N5:
  - id: n5-1
    written_forms: 水
    readings: みず
    kana_forms: みず
    meanings: water
    category: noun
    examples:
      - sentence: 水を飲みます。
        translation: I drink water.
  - id: n5-2
    written_forms: 犬
    readings: いぬ
    kana_forms: いぬ
    meanings: dog
    category: noun
N4:
  - id: n4-1
    written_forms:
      - 会議
    readings:
      - かいぎ
    kana_forms:
      - かいぎ
    meanings:
      - meeting
      - conference
    category: noun
`
	path := filepath.Join(tmpDir, "vocabulary.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
