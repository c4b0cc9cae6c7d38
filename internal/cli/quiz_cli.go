package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/tatdt622989/japanese-word-display/internal/quiz"
)

// QuestionBuilder is the part of the quiz builder the session needs.
type QuestionBuilder interface {
	Build() *quiz.Question
	BuildExampleQuestion() *quiz.Question
}

// QuizCLI runs an interactive multiple-choice session until the user quits
// or the store cannot produce a question.
type QuizCLI struct {
	*InteractiveQuizCLI
	builder      QuestionBuilder
	exampleMode  bool
	askedCount   int
	correctCount int
}

// NewQuizCLI creates a quiz session. With exampleMode the questions are
// example-sentence comprehension instead of plain recall.
func NewQuizCLI(builder QuestionBuilder, exampleMode bool, stdin io.Reader, stdout io.Writer) *QuizCLI {
	return &QuizCLI{
		InteractiveQuizCLI: newInteractiveQuizCLI(stdin, stdout),
		builder:            builder,
		exampleMode:        exampleMode,
	}
}

func (r *QuizCLI) Session(ctx context.Context) error {
	question := r.buildQuestion()
	if question == nil {
		if r.exampleMode {
			fmt.Fprintln(r.stdoutWriter, "No word with examples is available. Load vocabulary with examples first.")
		} else {
			fmt.Fprintln(r.stdoutWriter, "No vocabulary is loaded. Check the vocabulary source and try again.")
		}
		return errEnd
	}

	fmt.Fprintln(r.stdoutWriter, r.bold.Sprint(question.Prompt))
	for i, option := range question.Options {
		fmt.Fprintf(r.stdoutWriter, "  %d. %s\n", i+1, option.Text)
	}
	fmt.Fprintf(r.stdoutWriter, "Your answer (1-%d, or q to quit): ", len(question.Options))

	input, err := r.stdinReader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			r.printScore()
			return errEnd
		}
		return fmt.Errorf("error reading input: %w", err)
	}
	answer := strings.TrimSpace(input)

	if answer == "q" || answer == "quit" || answer == "exit" {
		r.printScore()
		return errEnd
	}

	choice, err := strconv.Atoi(answer)
	if err != nil || choice < 1 || choice > len(question.Options) {
		fmt.Fprintf(r.stdoutWriter, "Please answer with a number between 1 and %d.\n\n", len(question.Options))
		return nil
	}

	r.askedCount++
	if question.Options[choice-1].Correct {
		r.correctCount++
		fmt.Fprint(r.stdoutWriter, "✅ ")
		color.New(color.FgGreen).Fprintln(r.stdoutWriter, "Correct!")
	} else {
		fmt.Fprint(r.stdoutWriter, "❌ ")
		color.New(color.FgRed).Fprintf(r.stdoutWriter, "Wrong. The correct answer is \"%s\"\n",
			r.italic.Sprint(question.CorrectAnswerText),
		)
	}
	fmt.Fprintln(r.stdoutWriter)
	return nil
}

func (r *QuizCLI) buildQuestion() *quiz.Question {
	if r.exampleMode {
		return r.builder.BuildExampleQuestion()
	}
	return r.builder.Build()
}

func (r *QuizCLI) printScore() {
	if r.askedCount == 0 {
		fmt.Fprintln(r.stdoutWriter, "Quiz ended.")
		return
	}
	fmt.Fprintf(r.stdoutWriter, "Quiz ended. Score: %d/%d\n", r.correctCount, r.askedCount)
}
