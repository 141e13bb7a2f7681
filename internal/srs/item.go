// Package srs implements SM-2 spaced-repetition scheduling for vocabulary
// review items.
package srs

import "time"

// ReviewItem is the spaced-repetition state of one vocabulary item for one
// user. Items are created with defaults on first review and superseded, never
// deleted.
type ReviewItem struct {
	ID             int64      `db:"id" json:"id"`
	UserID         int64      `db:"user_id" json:"user_id"`
	Word           string     `db:"word" json:"word"`
	Translation    string     `db:"translation" json:"translation"`
	Language       string     `db:"language" json:"language"`
	Context        string     `db:"context" json:"context,omitempty"`
	EasinessFactor float64    `db:"easiness_factor" json:"easiness_factor"`
	Repetitions    int        `db:"repetitions" json:"repetitions"`
	IntervalDays   int        `db:"interval_days" json:"interval_days"`
	NextReview     time.Time  `db:"next_review" json:"next_review"`
	LastReviewed   *time.Time `db:"last_reviewed" json:"last_reviewed,omitempty"`
	TotalReviews   int        `db:"total_reviews" json:"total_reviews"`
	CorrectReviews int        `db:"correct_reviews" json:"correct_reviews"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// NewReviewItem creates a fresh item with SM-2 defaults, due immediately.
func NewReviewItem(userID int64, word, translation, language string, now time.Time) ReviewItem {
	return ReviewItem{
		UserID:         userID,
		Word:           word,
		Translation:    translation,
		Language:       language,
		EasinessFactor: DefaultEasinessFactor,
		Repetitions:    0,
		IntervalDays:   1,
		NextReview:     now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
