package postgres

import (
	"database/sql"
	"time"

	"indiekaum-bot/internal/domain"
)

// SessionRepo implements repository.SessionRepository on PostgreSQL,
// so intake progress survives a process restart
type SessionRepo struct {
	db *sql.DB
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(db *sql.DB) *SessionRepo {
	return &SessionRepo{db: db}
}

// Get returns the session for a chat, or nil if none exists
func (r *SessionRepo) Get(chatID int64) (*domain.Session, error) {
	query := `
		SELECT chat_id, step, name, role, city, phone, email, updated_at
		FROM sessions WHERE chat_id = $1
	`

	var s domain.Session
	err := r.db.QueryRow(query, chatID).Scan(
		&s.ChatID, &s.Step, &s.Name, &s.Role, &s.City, &s.Phone, &s.Email, &s.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// Save creates or replaces the session for its chat
func (r *SessionRepo) Save(session *domain.Session) error {
	query := `
		INSERT INTO sessions (chat_id, step, name, role, city, phone, email, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (chat_id)
		DO UPDATE SET
			step = EXCLUDED.step,
			name = EXCLUDED.name,
			role = EXCLUDED.role,
			city = EXCLUDED.city,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			updated_at = NOW()
	`
	_, err := r.db.Exec(query,
		session.ChatID, session.Step,
		session.Name, session.Role, session.City, session.Phone, session.Email,
	)
	return err
}

// Delete removes the session for a chat
func (r *SessionRepo) Delete(chatID int64) error {
	query := `DELETE FROM sessions WHERE chat_id = $1`
	_, err := r.db.Exec(query, chatID)
	return err
}

// DeleteStale removes sessions untouched for longer than maxAge
func (r *SessionRepo) DeleteStale(maxAge time.Duration) (int, error) {
	query := `DELETE FROM sessions WHERE updated_at < NOW() - ($1 * INTERVAL '1 second')`

	result, err := r.db.Exec(query, int64(maxAge.Seconds()))
	if err != nil {
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(affected), nil
}
