package srs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/srs/mock_repository.go -package=mock_srs

// Repository persists review items. Items are upserted on every review and
// never hard-deleted: historical counts feed the unknown-words tracking.
type Repository interface {
	FindByUser(ctx context.Context, userID int64, language string) ([]ReviewItem, error)
	FindByUserAndWord(ctx context.Context, userID int64, word, language string) (*ReviewItem, error)
	FindDueByUser(ctx context.Context, userID int64, language string, now time.Time) ([]ReviewItem, error)
	Save(ctx context.Context, item *ReviewItem) error
}

// DBRepository implements Repository on sqlx. The SQL sticks to placeholders
// both supported drivers understand, with upserts done as select-then-write
// inside a transaction.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a review item repository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindByUser returns all review items of a user in a language.
func (r *DBRepository) FindByUser(ctx context.Context, userID int64, language string) ([]ReviewItem, error) {
	var items []ReviewItem
	if err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM vocabulary_reviews WHERE user_id = ? AND language = ? ORDER BY next_review",
		userID, language); err != nil {
		return nil, fmt.Errorf("db.SelectContext(vocabulary_reviews) > %w", err)
	}
	return items, nil
}

// FindByUserAndWord returns one review item, or nil when none exists yet.
func (r *DBRepository) FindByUserAndWord(ctx context.Context, userID int64, word, language string) (*ReviewItem, error) {
	var item ReviewItem
	err := r.db.GetContext(ctx, &item,
		"SELECT * FROM vocabulary_reviews WHERE user_id = ? AND word = ? AND language = ?",
		userID, word, language)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(vocabulary_review) > %w", err)
	}
	return &item, nil
}

// FindDueByUser returns items due at now, most overdue first, ties broken by
// lowest easiness factor.
func (r *DBRepository) FindDueByUser(ctx context.Context, userID int64, language string, now time.Time) ([]ReviewItem, error) {
	var items []ReviewItem
	if err := r.db.SelectContext(ctx, &items,
		`SELECT * FROM vocabulary_reviews
		WHERE user_id = ? AND language = ? AND next_review <= ?
		ORDER BY next_review, easiness_factor`,
		userID, language, now); err != nil {
		return nil, fmt.Errorf("db.SelectContext(due vocabulary_reviews) > %w", err)
	}
	return items, nil
}

// Save inserts a new review item or updates the existing row for the same
// (user, word, language).
func (r *DBRepository) Save(ctx context.Context, item *ReviewItem) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var existingID int64
	err = tx.GetContext(ctx, &existingID,
		"SELECT id FROM vocabulary_reviews WHERE user_id = ? AND word = ? AND language = ?",
		item.UserID, item.Word, item.Language)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		result, err := tx.ExecContext(ctx,
			`INSERT INTO vocabulary_reviews
			(user_id, word, translation, language, context, easiness_factor, repetitions,
			interval_days, next_review, last_reviewed, total_reviews, correct_reviews, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			item.UserID, item.Word, item.Translation, item.Language, item.Context,
			item.EasinessFactor, item.Repetitions, item.IntervalDays, item.NextReview,
			item.LastReviewed, item.TotalReviews, item.CorrectReviews, item.CreatedAt, item.UpdatedAt)
		if err != nil {
			return fmt.Errorf("tx.ExecContext(insert vocabulary_review) > %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("result.LastInsertId() > %w", err)
		}
		item.ID = id
	case err != nil:
		return fmt.Errorf("tx.GetContext(vocabulary_review id) > %w", err)
	default:
		if _, err := tx.ExecContext(ctx,
			`UPDATE vocabulary_reviews SET
			translation = ?, context = ?, easiness_factor = ?, repetitions = ?,
			interval_days = ?, next_review = ?, last_reviewed = ?,
			total_reviews = ?, correct_reviews = ?, updated_at = ?
			WHERE id = ?`,
			item.Translation, item.Context, item.EasinessFactor, item.Repetitions,
			item.IntervalDays, item.NextReview, item.LastReviewed,
			item.TotalReviews, item.CorrectReviews, item.UpdatedAt, existingID); err != nil {
			return fmt.Errorf("tx.ExecContext(update vocabulary_review) > %w", err)
		}
		item.ID = existingID
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit > %w", err)
	}
	return nil
}
