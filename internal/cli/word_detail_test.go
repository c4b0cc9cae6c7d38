package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatdt622989/japanese-word-display/internal/vocabulary"
)

func TestWordDetailCLI_Show(t *testing.T) {
	word := vocabulary.Word{
		ID:            "a",
		WrittenForms:  vocabulary.StringList{"勉強"},
		Readings:      vocabulary.StringList{"べんきょう"},
		KanaForms:     vocabulary.StringList{"べんきょう"},
		Meanings:      vocabulary.StringList{"study", "diligence"},
		Category:      "noun",
		PartsOfSpeech: vocabulary.StringList{"noun", "suru verb"},
		Examples: []vocabulary.Example{
			{Sentence: "毎日勉強します。", Translation: "I study every day."},
		},
	}

	t.Run("renders the requested word", func(t *testing.T) {
		store := loadedStore(t, word)

		var stdout bytes.Buffer
		require.NoError(t, NewWordDetailCLI(store, "", &stdout).Show("a"))

		output := stdout.String()
		assert.Contains(t, output, "勉強【べんきょう】")
		assert.Contains(t, output, "study, diligence")
		assert.Contains(t, output, "毎日勉強します。")
		assert.Contains(t, output, "I study every day.")
		assert.Contains(t, output, "N5")
	})

	t.Run("random word when no id is given", func(t *testing.T) {
		store := loadedStore(t, word)

		var stdout bytes.Buffer
		require.NoError(t, NewWordDetailCLI(store, "", &stdout).Show(""))
		assert.Contains(t, stdout.String(), "勉強")
	})

	t.Run("unknown id is an error", func(t *testing.T) {
		store := loadedStore(t, word)

		var stdout bytes.Buffer
		err := NewWordDetailCLI(store, "", &stdout).Show("missing")
		assert.ErrorContains(t, err, "missing")
	})

	t.Run("empty store prints guidance for a random word", func(t *testing.T) {
		var stdout bytes.Buffer
		require.NoError(t, NewWordDetailCLI(vocabulary.NewStore(), "", &stdout).Show(""))
		assert.Contains(t, stdout.String(), "No vocabulary is loaded.")
	})
}
