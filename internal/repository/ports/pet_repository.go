package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/pets-paws/pets-paws-backend/internal/domain"
)

type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error)
	List(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, error)
	Count(ctx context.Context, filter domain.PetFilter) (int64, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.Pet, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
