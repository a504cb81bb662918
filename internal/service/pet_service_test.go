package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pets-paws/pets-paws-backend/internal/domain"
	"github.com/pets-paws/pets-paws-backend/internal/repository/memory"
)

func seedNGO(t *testing.T, users *memory.UserRepository, email string) *domain.User {
	t.Helper()
	user, err := users.Create(context.Background(), email, []byte("hash"), []byte("salt"), "Shelter "+email, domain.RoleNGO)
	if err != nil {
		t.Fatalf("seed ngo: %v", err)
	}
	return user
}

func seedAdopter(t *testing.T, users *memory.UserRepository, email string) *domain.User {
	t.Helper()
	user, err := users.Create(context.Background(), email, []byte("hash"), []byte("salt"), "Adopter "+email, domain.RoleAdopter)
	if err != nil {
		t.Fatalf("seed adopter: %v", err)
	}
	return user
}

func validPetInput() CreatePetInput {
	return CreatePetInput{
		Name:     "Rex",
		Species:  domain.SpeciesDog,
		Age:      3,
		Location: "Lisbon",
		ImageURL: "https://storage/pets_paws/rex.jpg",
	}
}

func TestCreatePet(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepo()
	pets := memory.NewPetRepo()
	svc := NewPetService(pets, users)
	ngo := seedNGO(t, users, "ngo@example.com")

	input := validPetInput()
	input.Name = "  Rex  "
	notes := "  needs dental check  "
	input.MedicalNotes = &notes

	pet, err := svc.Create(ctx, ngo, input)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pet.ID == uuid.Nil {
		t.Fatal("expected an assigned pet ID")
	}
	if pet.NGOUserID != ngo.ID {
		t.Fatal("pet should belong to the creating NGO")
	}
	if pet.Name != "Rex" {
		t.Fatalf("name should be trimmed, got %q", pet.Name)
	}
	if pet.MedicalNotes == nil || *pet.MedicalNotes != "needs dental check" {
		t.Fatalf("notes should be trimmed, got %v", pet.MedicalNotes)
	}

	stored, err := pets.FindByID(ctx, pet.ID)
	if err != nil {
		t.Fatalf("created pet should be readable: %v", err)
	}
	if stored.Species != domain.SpeciesDog {
		t.Fatalf("unexpected species %q", stored.Species)
	}
}

func TestCreatePetAdopterForbidden(t *testing.T) {
	users := memory.NewUserRepo()
	pets := memory.NewPetRepo()
	svc := NewPetService(pets, users)
	adopter := seedAdopter(t, users, "adopter@example.com")

	_, err := svc.Create(context.Background(), adopter, validPetInput())
	if !errors.Is(err, ErrNotNGO) {
		t.Fatalf("expected ErrNotNGO, got %v", err)
	}
	if total, _ := pets.Count(context.Background(), domain.PetFilter{}); total != 0 {
		t.Fatal("expected nothing to be stored")
	}
}

func TestCreatePetValidation(t *testing.T) {
	users := memory.NewUserRepo()
	svc := NewPetService(memory.NewPetRepo(), users)
	ngo := seedNGO(t, users, "ngo@example.com")

	cases := []struct {
		name   string
		mutate func(*CreatePetInput)
	}{
		{"empty name", func(in *CreatePetInput) { in.Name = "   " }},
		{"unknown species", func(in *CreatePetInput) { in.Species = domain.Species("Hamster") }},
		{"negative age", func(in *CreatePetInput) { in.Age = -1 }},
		{"empty location", func(in *CreatePetInput) { in.Location = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validPetInput()
			tc.mutate(&input)
			_, err := svc.Create(context.Background(), ngo, input)
			if !errors.Is(err, ErrPetValidation) {
				t.Fatalf("expected ErrPetValidation, got %v", err)
			}
		})
	}
}

func TestListPagination(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepo()
	pets := memory.NewPetRepo()
	svc := NewPetService(pets, users)
	ngo := seedNGO(t, users, "ngo@example.com")

	for i := 0; i < 25; i++ {
		input := validPetInput()
		input.Name = fmt.Sprintf("Pet %02d", i)
		if _, err := svc.Create(ctx, ngo, input); err != nil {
			t.Fatalf("seed pet %d: %v", i, err)
		}
	}

	t.Run("defaults", func(t *testing.T) {
		result, err := svc.List(ctx, domain.PetFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Pets) != 20 {
			t.Fatalf("expected default page of 20, got %d", len(result.Pets))
		}
		if result.Total != 25 {
			t.Fatalf("expected total 25, got %d", result.Total)
		}
		if result.Page != 1 || result.Limit != 20 {
			t.Fatalf("expected page 1 limit 20, got page %d limit %d", result.Page, result.Limit)
		}
	})

	t.Run("second page", func(t *testing.T) {
		result, err := svc.List(ctx, domain.PetFilter{Limit: 20, Offset: 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Pets) != 5 {
			t.Fatalf("expected remaining 5, got %d", len(result.Pets))
		}
		if result.Page != 2 {
			t.Fatalf("expected page 2, got %d", result.Page)
		}
	})

	t.Run("offset past the end", func(t *testing.T) {
		result, err := svc.List(ctx, domain.PetFilter{Limit: 10, Offset: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Pets) != 0 {
			t.Fatalf("expected empty page, got %d", len(result.Pets))
		}
		if result.Total != 25 {
			t.Fatalf("total should be unaffected by offset, got %d", result.Total)
		}
		if result.Page != 11 {
			t.Fatalf("expected page 11, got %d", result.Page)
		}
	})

	t.Run("negative offset normalized", func(t *testing.T) {
		result, err := svc.List(ctx, domain.PetFilter{Limit: 5, Offset: -3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Page != 1 {
			t.Fatalf("expected page 1, got %d", result.Page)
		}
	})
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepo()
	pets := memory.NewPetRepo()
	svc := NewPetService(pets, users)
	ngo := seedNGO(t, users, "ngo@example.com")

	seed := []struct {
		name     string
		species  domain.Species
		location string
	}{
		{"Rex", domain.SpeciesDog, "Lisbon"},
		{"Whiskers", domain.SpeciesCat, "Lisbon"},
		{"Luna", domain.SpeciesCat, "Porto"},
	}
	for _, p := range seed {
		input := validPetInput()
		input.Name = p.name
		input.Species = p.species
		input.Location = p.location
		if _, err := svc.Create(ctx, ngo, input); err != nil {
			t.Fatalf("seed %s: %v", p.name, err)
		}
	}

	t.Run("by species", func(t *testing.T) {
		cat := domain.SpeciesCat
		result, err := svc.List(ctx, domain.PetFilter{Species: &cat})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 2 {
			t.Fatalf("expected 2 cats, got %d", result.Total)
		}
		for _, pet := range result.Pets {
			if pet.Species != domain.SpeciesCat {
				t.Fatalf("unexpected species %q", pet.Species)
			}
		}
	})

	t.Run("by location substring", func(t *testing.T) {
		loc := "lisb"
		result, err := svc.List(ctx, domain.PetFilter{Location: &loc})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 2 {
			t.Fatalf("expected 2 pets in Lisbon, got %d", result.Total)
		}
	})

	t.Run("species and location combined", func(t *testing.T) {
		cat := domain.SpeciesCat
		loc := "Porto"
		result, err := svc.List(ctx, domain.PetFilter{Species: &cat, Location: &loc})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 1 || result.Pets[0].Name != "Luna" {
			t.Fatalf("expected only Luna, got %+v", result.Pets)
		}
	})

	t.Run("blank location ignored", func(t *testing.T) {
		loc := "   "
		result, err := svc.List(ctx, domain.PetFilter{Location: &loc})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Total != 3 {
			t.Fatalf("expected all pets, got %d", result.Total)
		}
	})
}

func TestGetPet(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepo()
	pets := memory.NewPetRepo()
	svc := NewPetService(pets, users)
	ngo := seedNGO(t, users, "ngo@example.com")

	created, err := svc.Create(ctx, ngo, validPetInput())
	if err != nil {
		t.Fatalf("seed pet: %v", err)
	}

	t.Run("enriched with owner contact", func(t *testing.T) {
		details, err := svc.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if details.Pet.ID != created.ID {
			t.Fatal("unexpected pet returned")
		}
		if details.NGOName == nil || *details.NGOName != ngo.Name {
			t.Fatalf("expected NGO name %q, got %v", ngo.Name, details.NGOName)
		}
		if details.NGOEmail == nil || *details.NGOEmail != ngo.Email {
			t.Fatalf("expected NGO email %q, got %v", ngo.Email, details.NGOEmail)
		}
	})

	t.Run("owner gone", func(t *testing.T) {
		users.Remove(ngo.ID)
		details, err := svc.Get(ctx, created.ID)
		if err != nil {
			t.Fatalf("missing owner must not fail the lookup: %v", err)
		}
		if details.NGOName != nil || details.NGOEmail != nil {
			t.Fatal("expected no contact details for a deleted owner")
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Get(ctx, uuid.New())
		if !errors.Is(err, ErrPetNotFound) {
			t.Fatalf("expected ErrPetNotFound, got %v", err)
		}
	})
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepo()
	pets := memory.NewPetRepo()
	svc := NewPetService(pets, users)
	ngo := seedNGO(t, users, "ngo@example.com")
	other := seedNGO(t, users, "other@example.com")

	for i := 0; i < 12; i++ {
		input := validPetInput()
		input.Name = fmt.Sprintf("Mine %02d", i)
		pet := &domain.Pet{
			NGOUserID: ngo.ID,
			Name:      input.Name,
			Species:   input.Species,
			Age:       input.Age,
			Location:  input.Location,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}
		if _, err := pets.Create(ctx, pet); err != nil {
			t.Fatalf("seed pet %d: %v", i, err)
		}
	}
	if _, err := svc.Create(ctx, other, validPetInput()); err != nil {
		t.Fatalf("seed other pet: %v", err)
	}

	result, err := svc.Dashboard(ctx, ngo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalPets != 12 {
		t.Fatalf("expected 12 pets, got %d", result.TotalPets)
	}
	if result.ActivePets != result.TotalPets {
		t.Fatal("every listed pet counts as active")
	}
	if len(result.RecentPets) != 10 {
		t.Fatalf("expected recent list capped at 10, got %d", len(result.RecentPets))
	}
	if result.RecentPets[0].Name != "Mine 11" {
		t.Fatalf("expected newest pet first, got %q", result.RecentPets[0].Name)
	}
	for _, pet := range result.RecentPets {
		if pet.NGOUserID != ngo.ID {
			t.Fatal("dashboard must only show the owner's pets")
		}
	}
}

func TestDashboardAdopterForbidden(t *testing.T) {
	users := memory.NewUserRepo()
	svc := NewPetService(memory.NewPetRepo(), users)
	adopter := seedAdopter(t, users, "adopter@example.com")

	_, err := svc.Dashboard(context.Background(), adopter)
	if !errors.Is(err, ErrNotNGO) {
		t.Fatalf("expected ErrNotNGO, got %v", err)
	}
}
