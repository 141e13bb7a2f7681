package srs

import (
	"fmt"
	"math"
	"time"
)

const (
	DefaultEasinessFactor = 2.5
	MinEasinessFactor     = 1.3

	// MinQuality and MaxQuality bound the self-reported recall grade.
	MinQuality = 0
	MaxQuality = 5

	passThreshold = 3
)

// UpdateEasinessFactor applies the standard SM-2 easiness delta for a quality
// grade and clamps the result to the 1.3 floor. There is no ceiling.
func UpdateEasinessFactor(ef float64, quality int) float64 {
	if ef == 0 {
		ef = DefaultEasinessFactor
	}

	q := float64(quality)
	newEF := ef + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	return math.Max(newEF, MinEasinessFactor)
}

// ScoreReview computes the next review state for an item after a recall of
// the given quality. It is a pure transition: the input item is not mutated.
//
// quality < 3 resets repetitions to 0 and the interval to 1 day. A success
// schedules 1 day, then 6 days, then previous interval times the easiness
// factor as it stood before this review, rounded to the nearest day with a
// 1-day minimum. The easiness factor is recomputed on every review, success
// or failure, and takes effect from the following review.
func ScoreReview(item ReviewItem, quality int, now time.Time) (ReviewItem, error) {
	if quality < MinQuality || quality > MaxQuality {
		return ReviewItem{}, fmt.Errorf("quality %d out of range [%d, %d]", quality, MinQuality, MaxQuality)
	}

	next := item
	next.EasinessFactor = UpdateEasinessFactor(item.EasinessFactor, quality)

	if quality < passThreshold {
		next.Repetitions = 0
		next.IntervalDays = 1
	} else {
		next.Repetitions = item.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = 1
		case 2:
			next.IntervalDays = 6
		default:
			ef := item.EasinessFactor
			if ef == 0 {
				ef = DefaultEasinessFactor
			}
			interval := int(math.Round(float64(item.IntervalDays) * ef))
			if interval < 1 {
				interval = 1
			}
			next.IntervalDays = interval
		}
		next.CorrectReviews = item.CorrectReviews + 1
	}

	next.TotalReviews = item.TotalReviews + 1
	next.NextReview = now.AddDate(0, 0, next.IntervalDays)
	reviewedAt := now
	next.LastReviewed = &reviewedAt
	next.UpdatedAt = now

	return next, nil
}
