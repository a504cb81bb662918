package memory

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pets-paws/pets-paws-backend/internal/domain"
)

// PetRepository is an in-memory ports.PetRepository with the same filter and
// ordering semantics as the Postgres implementation.
type PetRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]domain.Pet
}

func NewPetRepo() *PetRepository {
	return &PetRepository{byID: make(map[uuid.UUID]domain.Pet)}
}

func (r *PetRepository) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *pet
	stored.ID = uuid.New()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.byID[stored.ID] = stored
	clone := stored
	return &clone, nil
}

func (r *PetRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pet, ok := r.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &pet, nil
}

func (r *PetRepository) List(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.matchLocked(filter)
	if filter.Offset >= len(matched) {
		return []domain.Pet{}, nil
	}
	matched = matched[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *PetRepository) Count(ctx context.Context, filter domain.PetFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.matchLocked(filter))), nil
}

func (r *PetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Pet, 0)
	for _, pet := range r.byID {
		if pet.NGOUserID == ownerID {
			out = append(out, pet)
		}
	}
	sortNewestFirst(out)
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *PetRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total int64
	for _, pet := range r.byID {
		if pet.NGOUserID == ownerID {
			total++
		}
	}
	return total, nil
}

func (r *PetRepository) matchLocked(filter domain.PetFilter) []domain.Pet {
	out := make([]domain.Pet, 0, len(r.byID))
	for _, pet := range r.byID {
		if filter.Species != nil && pet.Species != *filter.Species {
			continue
		}
		if filter.Location != nil && !strings.Contains(strings.ToLower(pet.Location), strings.ToLower(*filter.Location)) {
			continue
		}
		out = append(out, pet)
	}
	sortNewestFirst(out)
	return out
}

func sortNewestFirst(pets []domain.Pet) {
	sort.Slice(pets, func(i, j int) bool {
		if !pets[i].CreatedAt.Equal(pets[j].CreatedAt) {
			return pets[i].CreatedAt.After(pets[j].CreatedAt)
		}
		return pets[i].ID.String() < pets[j].ID.String()
	})
}
