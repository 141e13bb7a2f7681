package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const maxConfidenceLevel = 5

// IsWordKnown implements vocabulary.KnownWordStore. A lemma the user has
// never encountered is simply not known.
func (s *Service) IsWordKnown(ctx context.Context, userID int64, lemma, language string) (bool, error) {
	var isKnown bool
	err := s.db.GetContext(ctx, &isKnown,
		"SELECT is_known FROM user_vocabulary WHERE user_id = ? AND lemma = ? AND language = ?",
		userID, lemma, language)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("db.GetContext(user_vocabulary) > %w", err)
	}
	return isKnown, nil
}

// RecordProgress creates the progress row on first encounter and mutates it
// on every later event. review_count only ever grows; rows are never deleted.
func (s *Service) RecordProgress(ctx context.Context, userID int64, lemma, language string, isKnown bool, reviewDelta int) error {
	if reviewDelta < 0 {
		return fmt.Errorf("reviewDelta must not be negative, got %d", reviewDelta)
	}
	now := time.Now()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var progress VocabularyProgress
	err = tx.GetContext(ctx, &progress,
		"SELECT * FROM user_vocabulary WHERE user_id = ? AND lemma = ? AND language = ?",
		userID, lemma, language)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		confidence := 0
		if isKnown {
			confidence = maxConfidenceLevel
		}
		var lastReviewed *time.Time
		if reviewDelta > 0 {
			lastReviewed = &now
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO user_vocabulary
			(user_id, lemma, language, is_known, confidence_level, review_count, first_seen_at, last_reviewed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			userID, lemma, language, isKnown, confidence, reviewDelta, now, lastReviewed); err != nil {
			return fmt.Errorf("tx.ExecContext(insert user_vocabulary) > %w", err)
		}
	case err != nil:
		return fmt.Errorf("tx.GetContext(user_vocabulary) > %w", err)
	default:
		confidence := progress.ConfidenceLevel
		if isKnown {
			confidence = maxConfidenceLevel
		} else if reviewDelta > 0 && confidence < maxConfidenceLevel {
			confidence++
		}
		lastReviewed := progress.LastReviewedAt
		if reviewDelta > 0 {
			lastReviewed = &now
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE user_vocabulary SET
			is_known = ?, confidence_level = ?, review_count = review_count + ?, last_reviewed_at = ?
			WHERE id = ?`,
			isKnown, confidence, reviewDelta, lastReviewed, progress.ID); err != nil {
			return fmt.Errorf("tx.ExecContext(update user_vocabulary) > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit > %w", err)
	}
	return nil
}
