// Package user resolves users and sessions, and persists per-user vocabulary
// knowledge and language preferences.
package user

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a user, session or preference row is absent.
// It is surfaced to the caller immediately, never retried.
var ErrNotFound = errors.New("user not found")

// User is an account row.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Preferences is a user's language setup: what they learn, what they speak,
// and their current CEFR band.
type Preferences struct {
	UserID         int64  `db:"user_id" json:"user_id"`
	TargetLanguage string `db:"target_language" json:"target_language"`
	NativeLanguage string `db:"native_language" json:"native_language"`
	Level          string `db:"level" json:"level"`
}

// VocabularyProgress tracks one user's history with one lemma. Rows are
// created on first encounter, mutated on every review or mark-known event,
// and never hard-deleted: unknown-word tracking relies on historical counts.
type VocabularyProgress struct {
	ID              int64      `db:"id" json:"id"`
	UserID          int64      `db:"user_id" json:"user_id"`
	Lemma           string     `db:"lemma" json:"lemma"`
	Language        string     `db:"language" json:"language"`
	IsKnown         bool       `db:"is_known" json:"is_known"`
	ConfidenceLevel int        `db:"confidence_level" json:"confidence_level"`
	ReviewCount     int        `db:"review_count" json:"review_count"`
	FirstSeenAt     time.Time  `db:"first_seen_at" json:"first_seen_at"`
	LastReviewedAt  *time.Time `db:"last_reviewed_at" json:"last_reviewed_at,omitempty"`
}
