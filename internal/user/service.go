package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=../mocks/user/mock_service.go -package=mock_user

// Directory is the narrow collaborator interface the pipeline consumes.
type Directory interface {
	GetUser(ctx context.Context, userID int64, sessionToken string) (*User, error)
	LoadPreferences(ctx context.Context, userID int64) (Preferences, error)
}

// Service implements user resolution, authentication, preferences and the
// vocabulary knowledge store on sqlx.
type Service struct {
	db        *sqlx.DB
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewService creates a user service.
func NewService(db *sqlx.DB, jwtSecret []byte, tokenTTL time.Duration) *Service {
	return &Service{db: db, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// GetUser resolves a user by id. When a session token is supplied it must be
// valid and belong to that user.
func (s *Service) GetUser(ctx context.Context, userID int64, sessionToken string) (*User, error) {
	if sessionToken != "" {
		if err := VerifySessionToken(s.jwtSecret, sessionToken, userID); err != nil {
			return nil, fmt.Errorf("VerifySessionToken > %w", err)
		}
	}

	var usr User
	err := s.db.GetContext(ctx, &usr, "SELECT * FROM users WHERE id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(users) > %w", err)
	}
	return &usr, nil
}

// Authenticate checks credentials and issues a session token.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, string, error) {
	var usr User
	err := s.db.GetContext(ctx, &usr, "SELECT * FROM users WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("db.GetContext(users by email) > %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, "", fmt.Errorf("invalid credentials")
	}

	token, err := IssueSessionToken(s.jwtSecret, usr.ID, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("IssueSessionToken > %w", err)
	}
	return &usr, token, nil
}

// ParseToken returns the user id carried in a session token.
func (s *Service) ParseToken(tokenText string) (int64, error) {
	return ParseSessionToken(s.jwtSecret, tokenText)
}

// LoadPreferences returns the user's language preferences.
func (s *Service) LoadPreferences(ctx context.Context, userID int64) (Preferences, error) {
	var prefs Preferences
	err := s.db.GetContext(ctx, &prefs, "SELECT * FROM user_preferences WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return Preferences{}, fmt.Errorf("preferences for user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("db.GetContext(user_preferences) > %w", err)
	}
	return prefs, nil
}
