package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sublearn/sublearn/internal/cli"
	"github.com/sublearn/sublearn/internal/dictionary"
	"github.com/sublearn/sublearn/internal/quiz"
	"github.com/sublearn/sublearn/internal/srs"
	"github.com/sublearn/sublearn/internal/user"
)

func newQuizCommand() *cobra.Command {
	var (
		userID    int64
		language  string
		questions int
	)

	command := &cobra.Command{
		Use:   "quiz",
		Short: "Interactive quiz over your due vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := context.Background()
			db, err := openDatabase(ctx, cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			// Without dictionary credentials synonym questions fall back to
			// vocabulary-pool distractors.
			var distractors quiz.DistractorSource
			if cfg.Dictionary.Host != "" && cfg.Dictionary.Key != "" {
				distractors = dictionary.NewClient(cfg.Dictionary.CacheDirectory, dictionary.Config{
					Host: cfg.Dictionary.Host,
					Key:  cfg.Dictionary.Key,
				})
			}

			generator := quiz.NewGenerator(
				srs.NewDBRepository(db),
				quiz.NewMemoryStore(cfg.Quiz.SessionTTL),
				distractors,
			)

			if questions <= 0 {
				questions = cfg.Quiz.QuestionCount
			}
			if language == "" {
				users := user.NewService(db, []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
				prefs, err := users.LoadPreferences(ctx, userID)
				if err != nil {
					return fmt.Errorf("load preferences > %w", err)
				}
				language = prefs.TargetLanguage
			}

			quizCLI, err := cli.NewVocabularyQuizCLI(ctx, generator, userID, language, questions, nil)
			if err != nil {
				return err
			}

			fmt.Printf("Starting quiz with %d questions\n", questions)
			start := time.Now()
			if err := quizCLI.Run(ctx, quizCLI); err != nil {
				return err
			}
			fmt.Printf("Session took %s\n", time.Since(start).Round(time.Second))
			return nil
		},
	}

	command.Flags().Int64Var(&userID, "user", 1, "user id to quiz")
	command.Flags().StringVar(&language, "language", "", "language to quiz (defaults to the user's target language)")
	command.Flags().IntVar(&questions, "questions", 0, "number of questions (defaults to config)")
	return command
}
