package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configFile string

func main() {
	// Optional .env for local development; missing files are fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "sublearn",
		Short:        "Language learning from video subtitles",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to config file")

	rootCmd.AddCommand(newProcessCommand())
	rootCmd.AddCommand(newQuizCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newCleanupCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
