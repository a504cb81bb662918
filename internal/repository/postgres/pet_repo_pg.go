package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pets-paws/pets-paws-backend/internal/domain"
)

const petColumns = `id, ngo_user_id, name, species, age, location, image_url, vaccinated, neutered, medical_notes, created_at`

type PetRepository struct {
	db *sqlx.DB
}

func NewPetRepo(db *sqlx.DB) *PetRepository {
	return &PetRepository{db: db}
}

func (r *PetRepository) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	const query = `
        INSERT INTO pets (ngo_user_id, name, species, age, location, image_url, vaccinated, neutered, medical_notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + petColumns
	row := r.db.QueryRowxContext(ctx, query,
		pet.NGOUserID, pet.Name, pet.Species, pet.Age, pet.Location,
		pet.ImageURL, pet.Vaccinated, pet.Neutered, pet.MedicalNotes)
	var inserted domain.Pet
	if err := row.StructScan(&inserted); err != nil {
		return nil, err
	}
	return &inserted, nil
}

func (r *PetRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	const query = `SELECT ` + petColumns + ` FROM pets WHERE id = $1`
	var pet domain.Pet
	if err := r.db.GetContext(ctx, &pet, query, id); err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *PetRepository) List(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, error) {
	var builder strings.Builder
	builder.WriteString(`SELECT ` + petColumns + ` FROM pets WHERE TRUE`)
	params := appendPetFilter(&builder, filter, nil)

	builder.WriteString("\n\tORDER BY created_at DESC, id")
	builder.WriteString(fmt.Sprintf("\n\tLIMIT $%d OFFSET $%d", len(params)+1, len(params)+2))
	params = append(params, filter.Limit, filter.Offset)

	pets := make([]domain.Pet, 0)
	if err := r.db.SelectContext(ctx, &pets, builder.String(), params...); err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PetRepository) Count(ctx context.Context, filter domain.PetFilter) (int64, error) {
	var builder strings.Builder
	builder.WriteString(`SELECT COUNT(*) FROM pets WHERE TRUE`)
	params := appendPetFilter(&builder, filter, nil)

	var total int64
	if err := r.db.GetContext(ctx, &total, builder.String(), params...); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PetRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]domain.Pet, error) {
	const query = `
        SELECT ` + petColumns + `
        FROM pets
        WHERE ngo_user_id = $1
        ORDER BY created_at DESC, id
        LIMIT $2
    `
	pets := make([]domain.Pet, 0)
	if err := r.db.SelectContext(ctx, &pets, query, ownerID, limit); err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PetRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM pets WHERE ngo_user_id = $1`
	var total int64
	if err := r.db.GetContext(ctx, &total, query, ownerID); err != nil {
		return 0, err
	}
	return total, nil
}

func appendPetFilter(builder *strings.Builder, filter domain.PetFilter, params []any) []any {
	if filter.Species != nil {
		builder.WriteString(fmt.Sprintf("\n\tAND species = $%d", len(params)+1))
		params = append(params, *filter.Species)
	}
	if filter.Location != nil {
		builder.WriteString(fmt.Sprintf("\n\tAND location ILIKE '%%' || $%d || '%%'", len(params)+1))
		params = append(params, *filter.Location)
	}
	return params
}
