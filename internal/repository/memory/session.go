package memory

import (
	"sync"
	"time"

	"indiekaum-bot/internal/domain"
)

// SessionRepo implements repository.SessionRepository with a process-local map.
// Sessions are volatile and do not survive a restart.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[int64]domain.Session
}

// NewSessionRepo creates an empty in-memory session repository
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{
		sessions: make(map[int64]domain.Session),
	}
}

// Get returns a copy of the chat's session, or nil if none exists
func (r *SessionRepo) Get(chatID int64) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[chatID]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

// Save stores a copy of the session, stamping UpdatedAt
func (r *SessionRepo) Save(session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *session
	stored.UpdatedAt = time.Now()
	r.sessions[session.ChatID] = stored
	return nil
}

// Delete removes the chat's session, if any
func (r *SessionRepo) Delete(chatID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, chatID)
	return nil
}

// DeleteStale evicts sessions untouched for longer than maxAge
func (r *SessionRepo) DeleteStale(maxAge time.Duration) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for chatID, session := range r.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(r.sessions, chatID)
			removed++
		}
	}
	return removed, nil
}
