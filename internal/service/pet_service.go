package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pets-paws/pets-paws-backend/internal/domain"
	"github.com/pets-paws/pets-paws-backend/internal/repository/ports"
)

var (
	ErrNotNGO        = errors.New("only NGO accounts can manage pet listings")
	ErrPetNotFound   = errors.New("pet not found")
	ErrPetValidation = errors.New("pet validation failed")
)

const dashboardRecentPets = 10

type PetService struct {
	pets  ports.PetRepository
	users ports.UserRepository
}

type CreatePetInput struct {
	Name         string
	Species      domain.Species
	Age          int
	Location     string
	ImageURL     string
	Vaccinated   bool
	Neutered     bool
	MedicalNotes *string
}

type PetListResult struct {
	Pets  []domain.Pet
	Total int64
	Page  int
	Limit int
}

// PetDetails is a listing enriched with its owning NGO's contact details.
// The NGO fields stay nil when the owner lookup fails.
type PetDetails struct {
	Pet      domain.Pet
	NGOName  *string
	NGOEmail *string
}

type DashboardResult struct {
	TotalPets  int64
	ActivePets int64
	RecentPets []domain.Pet
}

func NewPetService(pets ports.PetRepository, users ports.UserRepository) *PetService {
	return &PetService{pets: pets, users: users}
}

func (s *PetService) Create(ctx context.Context, owner *domain.User, input CreatePetInput) (*domain.Pet, error) {
	if owner == nil || !owner.IsNGO() {
		return nil, ErrNotNGO
	}
	if err := validatePetInput(input); err != nil {
		return nil, err
	}

	pet := &domain.Pet{
		NGOUserID:    owner.ID,
		Name:         strings.TrimSpace(input.Name),
		Species:      input.Species,
		Age:          input.Age,
		Location:     strings.TrimSpace(input.Location),
		ImageURL:     strings.TrimSpace(input.ImageURL),
		Vaccinated:   input.Vaccinated,
		Neutered:     input.Neutered,
		MedicalNotes: normalizeNotes(input.MedicalNotes),
	}
	return s.pets.Create(ctx, pet)
}

// List is the public browse endpoint. Page numbers are 1-based and derived
// from offset/limit.
func (s *PetService) List(ctx context.Context, filter domain.PetFilter) (*PetListResult, error) {
	normalized := normalizePetFilter(filter)

	pets, err := s.pets.List(ctx, normalized)
	if err != nil {
		return nil, err
	}
	total, err := s.pets.Count(ctx, normalized)
	if err != nil {
		return nil, err
	}

	return &PetListResult{
		Pets:  pets,
		Total: total,
		Page:  normalized.Offset/normalized.Limit + 1,
		Limit: normalized.Limit,
	}, nil
}

func (s *PetService) Get(ctx context.Context, id uuid.UUID) (*PetDetails, error) {
	pet, err := s.pets.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}

	details := &PetDetails{Pet: *pet}

	// Best-effort enrichment; a missing or unreadable owner simply leaves
	// the NGO fields out of the response.
	if owner, ownerErr := s.users.FindByID(ctx, pet.NGOUserID); ownerErr == nil {
		details.NGOName = &owner.Name
		details.NGOEmail = &owner.Email
	}
	return details, nil
}

func (s *PetService) Dashboard(ctx context.Context, owner *domain.User) (*DashboardResult, error) {
	if owner == nil || !owner.IsNGO() {
		return nil, ErrNotNGO
	}

	total, err := s.pets.CountByOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	recent, err := s.pets.ListByOwner(ctx, owner.ID, dashboardRecentPets)
	if err != nil {
		return nil, err
	}

	return &DashboardResult{
		TotalPets:  total,
		ActivePets: total,
		RecentPets: recent,
	}, nil
}

func validatePetInput(input CreatePetInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrPetValidation)
	}
	if !input.Species.Valid() {
		return fmt.Errorf("%w: type must be Dog or Cat", ErrPetValidation)
	}
	if input.Age < 0 {
		return fmt.Errorf("%w: age cannot be negative", ErrPetValidation)
	}
	if strings.TrimSpace(input.Location) == "" {
		return fmt.Errorf("%w: location is required", ErrPetValidation)
	}
	return nil
}

func normalizePetFilter(filter domain.PetFilter) domain.PetFilter {
	const defaultLimit = 20

	result := filter
	if result.Limit <= 0 {
		result.Limit = defaultLimit
	}
	if result.Offset < 0 {
		result.Offset = 0
	}
	if result.Location != nil && strings.TrimSpace(*result.Location) == "" {
		result.Location = nil
	}
	return result
}

func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
