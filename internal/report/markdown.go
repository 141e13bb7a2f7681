package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// progressReportData is the top-level data structure for progress report
// templates.
type progressReportData struct {
	UserName    string
	GeneratedAt string
	Aggregate   AggregateStatistics
	Periods     []PeriodStatistics
}

// WriteMarkdown renders a progress report into outputDir and returns the
// path of the markdown file. templatePath may be empty to use the built-in
// template.
func WriteMarkdown(outputDir, templatePath, userName string, result StatisticsResult, now time.Time) (string, error) {
	tmpl, err := parseTemplateWithFallback(templatePath, fallbackProgressReportTemplate)
	if err != nil {
		return "", fmt.Errorf("parseTemplateWithFallback() > %w", err)
	}

	var rendered bytes.Buffer
	err = tmpl.Execute(&rendered, progressReportData{
		UserName:    userName,
		GeneratedAt: now.Format("2006-01-02"),
		Aggregate:   result.Aggregate,
		Periods:     result.Periods,
	})
	if err != nil {
		return "", fmt.Errorf("tmpl.Execute() > %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", outputDir, err)
	}
	path := filepath.Join(outputDir, fmt.Sprintf("progress_%s.md", now.Format("2006-01-02")))
	if err := os.WriteFile(path, rendered.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}
