package repository

import (
	"time"

	"indiekaum-bot/internal/domain"
)

// SessionRepository defines intake session storage operations
type SessionRepository interface {
	// Get returns the session for a chat, or nil if none exists
	Get(chatID int64) (*domain.Session, error)
	// Save creates or replaces the session for its chat
	Save(session *domain.Session) error
	// Delete removes the session for a chat, if any
	Delete(chatID int64) error
	// DeleteStale removes sessions untouched for longer than maxAge and
	// returns how many were removed
	DeleteStale(maxAge time.Duration) (int, error)
}
