package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sublearn/sublearn/internal/pipeline"
	"github.com/sublearn/sublearn/internal/transcribe"
	"github.com/sublearn/sublearn/internal/translate"
	"github.com/sublearn/sublearn/internal/user"
)

func newProcessCommand() *cobra.Command {
	var userID int64

	command := &cobra.Command{
		Use:   "process <video> <start-seconds> <end-seconds>",
		Short: "Process one video chunk: extract audio, transcribe, filter vocabulary and translate",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			startTime, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid start time %q: %w", args[1], err)
			}
			endTime, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("invalid end time %q: %w", args[2], err)
			}

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

			users := user.NewService(db, []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
			filter, err := newVocabularyEngine(cfg, users)
			if err != nil {
				return err
			}

			transcribers, translators := newEngineRegistries(cfg)
			defer func() {
				_ = transcribers.CleanupAll()
				_ = translators.CleanupAll()
			}()

			tracker := pipeline.NewTracker()
			orchestrator := newOrchestrator(cfg, users, transcribers, translators, filter, tracker)

			taskID := uuid.New().String()
			err = orchestrator.ProcessChunk(ctx, taskID, pipeline.Request{
				Chunk: pipeline.Chunk{
					VideoPath: args[0],
					StartTime: startTime,
					EndTime:   endTime,
				},
				UserID:              userID,
				TranscriptionEngine: transcribe.Name(cfg.Transcription.Engine),
				TranslationEngine:   translate.Name(cfg.Translation.Engine),
			})
			if err != nil {
				return fmt.Errorf("process chunk > %w", err)
			}

			progress, ok := orchestrator.Progress(taskID)
			if !ok {
				return fmt.Errorf("no progress record for task %s", taskID)
			}

			fmt.Printf("Subtitles: %s\n", progress.SubtitlePath)
			fmt.Printf("Vocabulary to learn (%d words):\n", len(progress.Vocabulary))
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(progress.Vocabulary)
		},
	}

	command.Flags().Int64Var(&userID, "user", 1, "user id to process the chunk for")
	return command
}
