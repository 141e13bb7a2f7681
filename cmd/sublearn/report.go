package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sublearn/sublearn/internal/report"
	"github.com/sublearn/sublearn/internal/srs"
	"github.com/sublearn/sublearn/internal/user"
)

func newReportCommand() *cobra.Command {
	var (
		userID       int64
		language     string
		year         int
		month        int
		toPDF        bool
		pdfPath      string
		templatePath string
	)

	command := &cobra.Command{
		Use:   "report",
		Short: "Generate a vocabulary progress report",
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

			users := user.NewService(db, []byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)
			usr, err := users.GetUser(ctx, userID, "")
			if err != nil {
				return fmt.Errorf("resolve user > %w", err)
			}
			if language == "" {
				prefs, err := users.LoadPreferences(ctx, userID)
				if err != nil {
					return fmt.Errorf("load preferences > %w", err)
				}
				language = prefs.TargetLanguage
			}

			items, err := srs.NewDBRepository(db).FindByUser(ctx, userID, language)
			if err != nil {
				return fmt.Errorf("load review items > %w", err)
			}

			now := time.Now()
			result := report.CalculateStatistics(items, year, month, now)
			path, err := report.WriteMarkdown(cfg.Reports.OutputDirectory, templatePath, usr.Name, result, now)
			if err != nil {
				return fmt.Errorf("write report > %w", err)
			}
			fmt.Printf("Report written to %s\n", path)

			if toPDF || pdfPath != "" {
				converted, err := report.ConvertMarkdownToPDF(path, pdfPath)
				if err != nil {
					return fmt.Errorf("convert report to PDF > %w", err)
				}
				fmt.Printf("PDF written to %s\n", converted)
			}
			return nil
		},
	}

	command.Flags().Int64Var(&userID, "user", 1, "user id to report on")
	command.Flags().StringVar(&language, "language", "", "language to report on (defaults to the user's target language)")
	command.Flags().IntVar(&year, "year", 0, "filter by year")
	command.Flags().IntVar(&month, "month", 0, "filter by month (requires --year)")
	command.Flags().BoolVar(&toPDF, "pdf", false, "also convert the report to PDF")
	command.Flags().StringVar(&pdfPath, "pdf-output", "", "where to write the PDF (defaults to next to the markdown report)")
	command.Flags().StringVar(&templatePath, "template", "", "custom report template (defaults to the built-in one)")
	return command
}
