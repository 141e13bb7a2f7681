package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublearn/sublearn/internal/srs"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestCalculateStatistics(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	july := time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC)
	august := time.Date(2026, 8, 5, 9, 0, 0, 0, time.UTC)

	items := []srs.ReviewItem{
		{
			Word:           "verstehen",
			Repetitions:    3,
			IntervalDays:   15,
			NextReview:     now.AddDate(0, 0, 10),
			LastReviewed:   timePtr(august),
			TotalReviews:   4,
			CorrectReviews: 3,
			CreatedAt:      july,
		},
		{
			Word:           "begreifen",
			Repetitions:    1,
			IntervalDays:   1,
			NextReview:     now.AddDate(0, 0, -1),
			LastReviewed:   timePtr(july),
			TotalReviews:   2,
			CorrectReviews: 1,
			CreatedAt:      july,
		},
		{
			Word:       "erfassen",
			NextReview: now,
			CreatedAt:  august,
		},
	}

	t.Run("aggregates across all periods", func(t *testing.T) {
		got := CalculateStatistics(items, 0, 0, now)

		assert.Equal(t, 3, got.Aggregate.TotalWords)
		assert.Equal(t, 1, got.Aggregate.KnownWords)
		assert.Equal(t, 2, got.Aggregate.DueWords)
		assert.Equal(t, 6, got.Aggregate.TotalReviews)
		assert.Equal(t, 4, got.Aggregate.CorrectReviews)
		assert.InDelta(t, 4.0/6.0, got.Aggregate.Accuracy, 1e-9)

		require.Len(t, got.Periods, 2)
		assert.Equal(t, "2026-08", got.Periods[0].Period)
		assert.Equal(t, "2026-07", got.Periods[1].Period)
		assert.Equal(t, 1, got.Periods[0].NewWords)
		assert.Equal(t, 1, got.Periods[0].MatureWords)
		assert.Equal(t, 2, got.Periods[1].NewWords)
	})

	t.Run("filters by year and month", func(t *testing.T) {
		got := CalculateStatistics(items, 2026, 7, now)

		require.Len(t, got.Periods, 1)
		assert.Equal(t, "2026-07", got.Periods[0].Period)
		assert.Equal(t, 2, got.Periods[0].NewWords)
		assert.Equal(t, 2, got.Periods[0].TotalReviews)
		// Aggregate stays global regardless of the filter.
		assert.Equal(t, 3, got.Aggregate.TotalWords)
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		got := CalculateStatistics(nil, 0, 0, now)

		assert.Empty(t, got.Periods)
		assert.Zero(t, got.Aggregate.TotalWords)
		assert.Zero(t, got.Aggregate.Accuracy)
	})
}

func TestWriteMarkdown(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	result := StatisticsResult{
		Periods: []PeriodStatistics{
			{Period: "2026-08", NewWords: 3, TotalReviews: 10, CorrectReviews: 8, Accuracy: 0.8},
		},
		Aggregate: AggregateStatistics{
			TotalWords:     3,
			KnownWords:     1,
			TotalReviews:   10,
			CorrectReviews: 8,
			Accuracy:       0.8,
		},
	}

	t.Run("built-in template", func(t *testing.T) {
		path, err := WriteMarkdown(t.TempDir(), "", "anna", result, now)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)

		assert.Contains(t, string(content), "# Vocabulary Progress Report")
		assert.Contains(t, string(content), "anna")
		assert.Contains(t, string(content), "| 2026-08 | 3 |")
		assert.Contains(t, string(content), "| Accuracy | 80% |")
	})

	t.Run("template override from disk", func(t *testing.T) {
		dir := t.TempDir()
		custom := filepath.Join(dir, "custom.md.go.tmpl")
		require.NoError(t, os.WriteFile(custom, []byte("Report for {{ .UserName }}: {{ percent .Aggregate.Accuracy }}\n"), 0644))

		path, err := WriteMarkdown(dir, custom, "anna", result, now)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Report for anna: 80%\n", string(content))
	})

	t.Run("broken override falls back to built-in", func(t *testing.T) {
		dir := t.TempDir()
		broken := filepath.Join(dir, "broken.md.go.tmpl")
		require.NoError(t, os.WriteFile(broken, []byte("{{ .UserName "), 0644))

		path, err := WriteMarkdown(dir, broken, "anna", result, now)
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "# Vocabulary Progress Report")
	})
}
