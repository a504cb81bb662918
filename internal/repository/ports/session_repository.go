package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pets-paws/pets-paws-backend/internal/domain"
)

// SessionRepository maps opaque bearer tokens to user identities. FindValid
// reports both unknown and expired tokens as sql.ErrNoRows; callers cannot
// tell the two apart. Delete is idempotent.
type SessionRepository interface {
	Create(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) (*domain.Session, error)
	FindValid(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}
