package domain

import (
	"time"

	"github.com/google/uuid"
)

// Species is the kind of animal offered for adoption. The JSON field is named
// "type" to stay wire-compatible with the public API.
type Species string

const (
	SpeciesDog Species = "Dog"
	SpeciesCat Species = "Cat"
)

func (s Species) Valid() bool {
	return s == SpeciesDog || s == SpeciesCat
}

type Pet struct {
	ID           uuid.UUID `db:"id" json:"id"`
	NGOUserID    uuid.UUID `db:"ngo_user_id" json:"ngo_user_id"`
	Name         string    `db:"name" json:"name"`
	Species      Species   `db:"species" json:"type"`
	Age          int       `db:"age" json:"age"`
	Location     string    `db:"location" json:"location"`
	ImageURL     string    `db:"image_url" json:"image_url"`
	Vaccinated   bool      `db:"vaccinated" json:"vaccinated"`
	Neutered     bool      `db:"neutered" json:"neutered"`
	MedicalNotes *string   `db:"medical_notes" json:"medical_notes,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// PetFilter narrows public listings. Species is an exact match, Location a
// case-insensitive substring match.
type PetFilter struct {
	Species  *Species
	Location *string
	Limit    int
	Offset   int
}
