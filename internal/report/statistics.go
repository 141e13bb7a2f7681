// Package report aggregates review progress into per-period statistics and
// renders them as markdown or PDF reports.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/sublearn/sublearn/internal/srs"
)

// PeriodStatistics holds review statistics for one month.
type PeriodStatistics struct {
	Period         string  // "2026-08"
	NewWords       int     // items first created in this period
	MatureWords    int     // items that reached an interval of a week or more
	TotalReviews   int
	CorrectReviews int
	Accuracy       float64 // CorrectReviews / TotalReviews, 0 when no reviews
}

// AggregateStatistics holds totals across all periods.
type AggregateStatistics struct {
	TotalWords     int
	KnownWords     int // items past the learning phase (repetitions >= 2)
	DueWords       int
	TotalReviews   int
	CorrectReviews int
	Accuracy       float64
}

// StatisticsResult holds both per-period and aggregate statistics.
type StatisticsResult struct {
	Periods   []PeriodStatistics
	Aggregate AggregateStatistics
}

const matureIntervalDays = 7

// CalculateStatistics aggregates review items into monthly statistics. It
// accepts optional year and month filters (0 means no filter). Items are
// bucketed by creation month; review counts attribute to the month of the
// last review.
func CalculateStatistics(items []srs.ReviewItem, year, month int, now time.Time) StatisticsResult {
	type periodData struct {
		newWords       int
		matureWords    int
		totalReviews   int
		correctReviews int
	}
	stats := make(map[string]*periodData)
	ensure := func(period string) *periodData {
		if stats[period] == nil {
			stats[period] = &periodData{}
		}
		return stats[period]
	}

	var aggregate AggregateStatistics
	for _, item := range items {
		aggregate.TotalWords++
		if item.Repetitions >= 2 {
			aggregate.KnownWords++
		}
		if !item.NextReview.After(now) {
			aggregate.DueWords++
		}
		aggregate.TotalReviews += item.TotalReviews
		aggregate.CorrectReviews += item.CorrectReviews

		if !item.CreatedAt.IsZero() && matchesFilter(item.CreatedAt.Year(), int(item.CreatedAt.Month()), year, month) {
			data := ensure(fmt.Sprintf("%d-%02d", item.CreatedAt.Year(), item.CreatedAt.Month()))
			data.newWords++
		}
		if item.LastReviewed == nil {
			continue
		}
		reviewed := *item.LastReviewed
		if !matchesFilter(reviewed.Year(), int(reviewed.Month()), year, month) {
			continue
		}
		data := ensure(fmt.Sprintf("%d-%02d", reviewed.Year(), reviewed.Month()))
		data.totalReviews += item.TotalReviews
		data.correctReviews += item.CorrectReviews
		if item.IntervalDays >= matureIntervalDays {
			data.matureWords++
		}
	}
	if aggregate.TotalReviews > 0 {
		aggregate.Accuracy = float64(aggregate.CorrectReviews) / float64(aggregate.TotalReviews)
	}

	periods := make([]PeriodStatistics, 0, len(stats))
	for period, data := range stats {
		accuracy := 0.0
		if data.totalReviews > 0 {
			accuracy = float64(data.correctReviews) / float64(data.totalReviews)
		}
		periods = append(periods, PeriodStatistics{
			Period:         period,
			NewWords:       data.newWords,
			MatureWords:    data.matureWords,
			TotalReviews:   data.totalReviews,
			CorrectReviews: data.correctReviews,
			Accuracy:       accuracy,
		})
	}

	// Newest period first.
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period > periods[j].Period
	})

	return StatisticsResult{
		Periods:   periods,
		Aggregate: aggregate,
	}
}

func matchesFilter(itemYear, itemMonth, filterYear, filterMonth int) bool {
	if filterYear == 0 {
		return true
	}
	if itemYear != filterYear {
		return false
	}
	if filterMonth == 0 {
		return true
	}
	return itemMonth == filterMonth
}
