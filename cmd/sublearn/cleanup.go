package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sublearn/sublearn/internal/pipeline"
)

func newCleanupCommand() *cobra.Command {
	var maxAge time.Duration

	command := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove stale temporary files from the chunk work directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			removed, err := pipeline.NewCleaner(cfg.Media.WorkDirectory).Sweep(maxAge)
			if err != nil {
				return fmt.Errorf("sweep work directory > %w", err)
			}
			fmt.Printf("Removed %d stale files from %s\n", removed, cfg.Media.WorkDirectory)
			return nil
		},
	}

	command.Flags().DurationVar(&maxAge, "max-age", 24*time.Hour, "delete temporary files older than this")
	return command
}
