package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreReview(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("successful reviews follow the interval schedule", func(t *testing.T) {
		item := NewReviewItem(1, "verstehen", "to understand", "de", now)

		first, err := ScoreReview(item, 4, now)
		require.NoError(t, err)
		assert.Equal(t, 1, first.Repetitions)
		assert.Equal(t, 1, first.IntervalDays)
		assert.Equal(t, now.AddDate(0, 0, 1), first.NextReview)

		second, err := ScoreReview(first, 4, now.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, 2, second.Repetitions)
		assert.Equal(t, 6, second.IntervalDays)

		third, err := ScoreReview(second, 4, now.AddDate(0, 0, 7))
		require.NoError(t, err)
		assert.Equal(t, 3, third.Repetitions)
		// 6 days times the current easiness factor, rounded.
		assert.Equal(t, 15, third.IntervalDays)
		assert.Equal(t, 3, third.TotalReviews)
		assert.Equal(t, 3, third.CorrectReviews)
	})

	t.Run("perfect recalls use the easiness factor from before the review", func(t *testing.T) {
		item := NewReviewItem(1, "verstehen", "to understand", "de", now)

		first, err := ScoreReview(item, 5, now)
		require.NoError(t, err)
		assert.Equal(t, 1, first.IntervalDays)
		assert.InDelta(t, 2.6, first.EasinessFactor, 1e-9)

		second, err := ScoreReview(first, 5, now.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, 6, second.IntervalDays)
		assert.InDelta(t, 2.7, second.EasinessFactor, 1e-9)

		// round(6 × 2.7) = 16; the factor raised by this review (2.8) only
		// applies from the following one.
		third, err := ScoreReview(second, 5, now.AddDate(0, 0, 7))
		require.NoError(t, err)
		assert.Equal(t, 16, third.IntervalDays)
		assert.InDelta(t, 2.8, third.EasinessFactor, 1e-9)
	})

	t.Run("failure resets repetitions and interval", func(t *testing.T) {
		item := NewReviewItem(1, "verstehen", "to understand", "de", now)
		item.Repetitions = 4
		item.IntervalDays = 30
		item.TotalReviews = 4
		item.CorrectReviews = 4

		failed, err := ScoreReview(item, 2, now)
		require.NoError(t, err)
		assert.Equal(t, 0, failed.Repetitions)
		assert.Equal(t, 1, failed.IntervalDays)
		assert.Equal(t, 5, failed.TotalReviews)
		assert.Equal(t, 4, failed.CorrectReviews)
		assert.Equal(t, now.AddDate(0, 0, 1), failed.NextReview)
		require.NotNil(t, failed.LastReviewed)
		assert.Equal(t, now, *failed.LastReviewed)
	})

	t.Run("easiness factor never drops below the floor", func(t *testing.T) {
		item := NewReviewItem(1, "gelassenheit", "serenity", "de", now)
		current := item
		for i := 0; i < 10; i++ {
			next, err := ScoreReview(current, 0, now)
			require.NoError(t, err)
			current = next
		}
		assert.Equal(t, MinEasinessFactor, current.EasinessFactor)
	})

	t.Run("input item is not mutated", func(t *testing.T) {
		item := NewReviewItem(1, "verstehen", "to understand", "de", now)
		before := item

		_, err := ScoreReview(item, 5, now)
		require.NoError(t, err)
		assert.Equal(t, before, item)
	})

	t.Run("quality out of range", func(t *testing.T) {
		item := NewReviewItem(1, "verstehen", "to understand", "de", now)

		_, err := ScoreReview(item, -1, now)
		assert.ErrorContains(t, err, "out of range")

		_, err = ScoreReview(item, 6, now)
		assert.ErrorContains(t, err, "out of range")
	})
}

func TestUpdateEasinessFactor(t *testing.T) {
	tests := []struct {
		name    string
		ef      float64
		quality int
		want    float64
	}{
		{name: "perfect recall raises", ef: 2.5, quality: 5, want: 2.6},
		{name: "quality four holds steady", ef: 2.5, quality: 4, want: 2.5},
		{name: "failure lowers", ef: 2.5, quality: 0, want: 1.7},
		{name: "clamped at floor", ef: 1.3, quality: 0, want: 1.3},
		{name: "zero treated as default", ef: 0, quality: 4, want: 2.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, UpdateEasinessFactor(tt.ef, tt.quality), 1e-9)
		})
	}
}

func TestDueItems(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	overdue := NewReviewItem(1, "alt", "old", "de", now)
	overdue.NextReview = now.AddDate(0, 0, -3)
	overdue.EasinessFactor = 2.5

	hardTie := NewReviewItem(1, "schwer", "hard", "de", now)
	hardTie.NextReview = now.AddDate(0, 0, -1)
	hardTie.EasinessFactor = 1.3

	easyTie := NewReviewItem(1, "leicht", "easy", "de", now)
	easyTie.NextReview = now.AddDate(0, 0, -1)
	easyTie.EasinessFactor = 2.5

	future := NewReviewItem(1, "später", "later", "de", now)
	future.NextReview = now.AddDate(0, 0, 2)

	due := DueItems([]ReviewItem{future, easyTie, overdue, hardTie}, now)

	require.Len(t, due, 3)
	assert.Equal(t, "alt", due[0].Word)
	assert.Equal(t, "schwer", due[1].Word)
	assert.Equal(t, "leicht", due[2].Word)
}
