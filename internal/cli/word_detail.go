package cli

import (
	"fmt"
	"io"

	"github.com/tatdt622989/japanese-word-display/internal/assets"
	"github.com/tatdt622989/japanese-word-display/internal/vocabulary"
)

// WordDetailCLI renders the expanded detail view for one word.
type WordDetailCLI struct {
	store        *vocabulary.Store
	templatePath string
	stdoutWriter io.Writer
}

// NewWordDetailCLI creates the detail view renderer. templatePath overrides
// the embedded template when it points at a parseable file.
func NewWordDetailCLI(store *vocabulary.Store, templatePath string, stdout io.Writer) *WordDetailCLI {
	return &WordDetailCLI{
		store:        store,
		templatePath: templatePath,
		stdoutWriter: stdout,
	}
}

// Show renders the word with the given id, or a random word when id is
// empty.
func (r *WordDetailCLI) Show(id string) error {
	var word *vocabulary.Word
	if id == "" {
		word = r.store.PickRandom()
		if word == nil {
			fmt.Fprintln(r.stdoutWriter, "No vocabulary is loaded.")
			return nil
		}
	} else {
		word = r.store.GetByID(id)
		if word == nil {
			return fmt.Errorf("no word with id %q is loaded", id)
		}
	}

	tmpl, err := assets.ParseWordDetailTemplate(r.templatePath)
	if err != nil {
		return fmt.Errorf("assets.ParseWordDetailTemplate() > %w", err)
	}
	if err := tmpl.Execute(r.stdoutWriter, word); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}
