package user

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueSessionToken signs an HS256 session token whose subject is the user
// id.
func IssueSessionToken(secret []byte, userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign session token > %w", err)
	}
	return token, nil
}

// ParseSessionToken validates signature and expiry and returns the user id
// from the token's subject.
func ParseSessionToken(secret []byte, tokenText string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenText, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("parse session token > %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid session token")
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("session token subject %q is not a user id", claims.Subject)
	}
	return userID, nil
}

// VerifySessionToken validates signature and expiry, and checks that the
// token's subject matches the expected user.
func VerifySessionToken(secret []byte, tokenText string, userID int64) error {
	token, err := jwt.ParseWithClaims(tokenText, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return fmt.Errorf("parse session token > %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return fmt.Errorf("invalid session token")
	}
	if claims.Subject != strconv.FormatInt(userID, 10) {
		return fmt.Errorf("session token subject %q does not match user %d", claims.Subject, userID)
	}
	return nil
}
