package memory

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pets-paws/pets-paws-backend/internal/domain"
)

// SessionRepository is an in-memory ports.SessionRepository. FindValid treats
// unknown and expired tokens identically, like the SQL predicate it stands in
// for.
type SessionRepository struct {
	mu      sync.RWMutex
	byToken map[string]domain.Session
	nextID  int64
}

func NewSessionRepo() *SessionRepository {
	return &SessionRepository{byToken: make(map[string]domain.Session)}
}

func (r *SessionRepository) Create(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byToken[token]; exists {
		return nil, &pgconn.PgError{Code: "23505", ConstraintName: "sessions_token_key"}
	}

	r.nextID++
	session := domain.Session{
		ID:        r.nextID,
		UserID:    userID,
		Token:     token,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: expiresAt,
	}
	r.byToken[token] = session
	clone := session
	return &clone, nil
}

func (r *SessionRepository) FindValid(ctx context.Context, token string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.byToken[token]
	if !ok || !session.ExpiresAt.After(time.Now()) {
		return nil, sql.ErrNoRows
	}
	return &session, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byToken, token)
	return nil
}

// Len reports the number of stored session rows, valid or expired.
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byToken)
}
