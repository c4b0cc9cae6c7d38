package vocabulary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tatdt622989/japanese-word-display/internal/testutil"
	"github.com/tatdt622989/japanese-word-display/internal/vocabulary"
)

func TestFileSource_Fetch(t *testing.T) {
	t.Run("reads a level-grouped YAML file with scalar and sequence fields", func(t *testing.T) {
		path := testutil.WriteVocabularyFile(t, t.TempDir())

		leveled, err := vocabulary.NewFileSource(path).Fetch(t.Context())
		require.NoError(t, err)

		require.Len(t, leveled["N5"], 2)
		water := leveled["N5"][0]
		assert.Equal(t, "n5-1", water.ID)
		assert.Equal(t, vocabulary.StringList{"水"}, water.WrittenForms)
		assert.Equal(t, vocabulary.StringList{"water"}, water.Meanings)
		require.Len(t, water.Examples, 1)
		assert.Equal(t, "水を飲みます。", water.Examples[0].Sentence)

		require.Len(t, leveled["N4"], 1)
		assert.Equal(t, vocabulary.StringList{"meeting", "conference"}, leveled["N4"][0].Meanings)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := vocabulary.NewFileSource("does-not-exist.yml").Fetch(t.Context())
		assert.Error(t, err)
	})

	t.Run("store load attaches levels from the file", func(t *testing.T) {
		path := testutil.WriteVocabularyFile(t, t.TempDir())

		store := vocabulary.NewStore()
		require.NoError(t, store.Load(t.Context(), vocabulary.NewFileSource(path)))
		assert.Equal(t, 3, store.Count())

		meeting := store.GetByID("n4-1")
		require.NotNil(t, meeting)
		assert.Equal(t, "N4", meeting.Level)
	})
}
