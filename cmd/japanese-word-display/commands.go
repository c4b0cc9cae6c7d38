package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/tatdt622989/japanese-word-display/internal/cli"
	"github.com/tatdt622989/japanese-word-display/internal/quiz"
)

func newDisplayCommand() *cobra.Command {
	var once bool
	var interval time.Duration
	command := &cobra.Command{
		Use:   "display",
		Short: "Show a random word in a status line, refreshed periodically",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if interval == 0 {
				interval = cfg.Display.RefreshInterval
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			store, closeStore, err := newLoadedStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			display := cli.NewDisplayCLI(store, interval, os.Stdout)
			if once {
				display.ShowOnce()
				return nil
			}
			return display.Run(ctx)
		},
	}
	command.Flags().BoolVar(&once, "once", false, "print a single word and exit")
	command.Flags().DurationVar(&interval, "interval", 0, "refresh interval (defaults to the configured one)")
	return command
}

func newWordCommand() *cobra.Command {
	var templatePath string
	command := &cobra.Command{
		Use:   "word [id]",
		Short: "Show the expanded detail view of a word (random when no id is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			store, closeStore, err := newLoadedStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			return cli.NewWordDetailCLI(store, templatePath, os.Stdout).Show(id)
		},
	}
	command.Flags().StringVar(&templatePath, "template", "", "path of a detail view template overriding the embedded one")
	return command
}

func newQuizCommand() *cobra.Command {
	var exampleMode bool
	command := &cobra.Command{
		Use:   "quiz",
		Short: "Run an interactive multiple-choice quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := context.Background()
			store, closeStore, err := newLoadedStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			builder := quiz.NewBuilder(store, nil, cfg.Quiz.DistractorCount)
			quizCLI := cli.NewQuizCLI(builder, exampleMode, os.Stdin, os.Stdout)
			return quizCLI.Run(ctx, quizCLI)
		},
	}
	command.Flags().BoolVar(&exampleMode, "example", false, "ask example-sentence comprehension questions")
	return command
}
