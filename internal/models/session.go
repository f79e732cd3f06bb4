package models

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is an issued credential.
//
// The token is an opaque random value, all session state lives on the
// server. Clients send it back in the x-auth-token header.
type Session struct {
	DefaultModel
	User      User      `json:"-"`
	UserID    uuid.UUID `gorm:"index"`
	Token     string    `json:"-" gorm:"uniqueIndex"`
	ExpiresAt time.Time
}

// CreateSession issues a new session for the user.
func CreateSession(db *gorm.DB, userID uuid.UUID, lifetime time.Duration) (Session, error) {
	token, err := newToken()
	if err != nil {
		return Session{}, err
	}

	session := Session{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().In(time.UTC).Add(lifetime),
	}

	err = db.Create(&session).Error
	if err != nil {
		return Session{}, err
	}

	return session, nil
}

// ResolveSession resolves a token to the user it was issued for.
//
// Any failure resolves to ErrSessionInvalid so that callers cannot
// distinguish unknown from expired tokens.
func ResolveSession(db *gorm.DB, token string) (User, error) {
	if token == "" {
		return User{}, ErrSessionInvalid
	}

	var session Session
	err := db.First(&session, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return User{}, ErrSessionInvalid
		}
		return User{}, err
	}

	if time.Now().After(session.ExpiresAt) {
		return User{}, ErrSessionInvalid
	}

	var user User
	err = db.First(&user, session.UserID).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return User{}, ErrSessionInvalid
		}
		return User{}, err
	}

	return user, nil
}

// DeleteExpiredSessions removes all sessions that have expired. It is safe
// to call at any time.
func DeleteExpiredSessions(db *gorm.DB) error {
	err := db.Unscoped().
		Where("datetime(expires_at) < datetime(?)", time.Now().In(time.UTC)).
		Delete(&Session{}).Error
	if err != nil {
		return fmt.Errorf("deleting expired sessions failed: %w", err)
	}

	return nil
}

// newToken returns 32 bytes of randomness, hex encoded.
func newToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("could not generate session token: %w", err)
	}

	return hex.EncodeToString(raw), nil
}
