package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tatdt622989/japanese-word-display/internal/vocabulary"
)

// DisplayCLI prints a compact status line with a randomly selected word and
// refreshes it on an interval.
type DisplayCLI struct {
	store        *vocabulary.Store
	interval     time.Duration
	stdoutWriter io.Writer
}

// NewDisplayCLI creates the status-line display over the given store.
func NewDisplayCLI(store *vocabulary.Store, interval time.Duration, stdout io.Writer) *DisplayCLI {
	if stdout == nil {
		stdout = os.Stdout
	}
	return &DisplayCLI{
		store:        store,
		interval:     interval,
		stdoutWriter: stdout,
	}
}

// ShowOnce prints a single status line for a random word.
func (r *DisplayCLI) ShowOnce() {
	r.show()
}

// Run prints a status line immediately and then refreshes it on the
// configured interval until the context is cancelled.
func (r *DisplayCLI) Run(ctx context.Context) error {
	r.show()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.show()
		}
	}
}

func (r *DisplayCLI) show() {
	word := r.store.PickRandom()
	if word == nil {
		fmt.Fprintln(r.stdoutWriter, "No vocabulary is loaded.")
		return
	}
	fmt.Fprintln(r.stdoutWriter, StatusLine(word))
}

// StatusLine formats the compact form shown in the status indicator.
func StatusLine(word *vocabulary.Word) string {
	reading := word.FirstReading()
	if reading == "" {
		return fmt.Sprintf("📖 %s  %s", word.FirstWrittenForm(), word.FirstMeaning())
	}
	return fmt.Sprintf("📖 %s【%s】 %s", word.FirstWrittenForm(), reading, word.FirstMeaning())
}
