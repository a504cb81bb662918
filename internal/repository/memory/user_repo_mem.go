package memory

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pets-paws/pets-paws-backend/internal/domain"
)

// UserRepository is an in-memory ports.UserRepository used by tests. It
// mirrors the Postgres contract: missing rows are sql.ErrNoRows and duplicate
// emails surface as a SQLSTATE 23505 pgconn error.
type UserRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]domain.User
	byEmail map[string]uuid.UUID
}

func NewUserRepo() *UserRepository {
	return &UserRepository{
		byID:    make(map[uuid.UUID]domain.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *UserRepository) Create(ctx context.Context, email string, passwordHash, passwordSalt []byte, name string, role domain.Role) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(email)
	if _, exists := r.byEmail[key]; exists {
		return nil, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	}

	user := domain.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Role:         role,
		PasswordHash: append([]byte(nil), passwordHash...),
		PasswordSalt: append([]byte(nil), passwordSalt...),
		CreatedAt:    time.Now().UTC(),
	}
	r.byID[user.ID] = user
	r.byEmail[key] = user.ID
	clone := user
	return &clone, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, sql.ErrNoRows
	}
	user := r.byID[id]
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &user, nil
}

// Remove deletes a user directly, bypassing the public contract. Tests use it
// to manufacture orphaned sessions.
func (r *UserRepository) Remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, ok := r.byID[id]; ok {
		delete(r.byEmail, strings.ToLower(user.Email))
		delete(r.byID, id)
	}
}
