package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/pets-paws/pets-paws-backend/internal/domain"
)

// UserRepository persists identity records. Missing rows are reported as
// sql.ErrNoRows; a duplicate email surfaces the store's unique-violation
// error unchanged.
type UserRepository interface {
	Create(ctx context.Context, email string, passwordHash, passwordSalt []byte, name string, role domain.Role) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
