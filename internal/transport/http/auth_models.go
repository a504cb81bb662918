package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/pets-paws/pets-paws-backend/internal/domain"
)

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	UserType string `json:"user_type"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	UserType string    `json:"user_type"`
}

type authResponse struct {
	Token       string       `json:"token"`
	User        userResponse `json:"user"`
	RedirectURL string       `json:"redirect_url"`
}

type petResponse struct {
	ID           uuid.UUID `json:"id"`
	NGOUserID    uuid.UUID `json:"ngo_user_id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Age          int       `json:"age"`
	Location     string    `json:"location"`
	ImageURL     string    `json:"image_url"`
	Vaccinated   bool      `json:"vaccinated"`
	Neutered     bool      `json:"neutered"`
	MedicalNotes *string   `json:"medical_notes"`
	CreatedAt    string    `json:"created_at"`
	NGOName      *string   `json:"ngo_name,omitempty"`
	NGOEmail     *string   `json:"ngo_email,omitempty"`
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		UserType: string(user.Role),
	}
}

func toPetResponse(pet domain.Pet) petResponse {
	return petResponse{
		ID:           pet.ID,
		NGOUserID:    pet.NGOUserID,
		Name:         pet.Name,
		Type:         string(pet.Species),
		Age:          pet.Age,
		Location:     pet.Location,
		ImageURL:     pet.ImageURL,
		Vaccinated:   pet.Vaccinated,
		Neutered:     pet.Neutered,
		MedicalNotes: pet.MedicalNotes,
		CreatedAt:    pet.CreatedAt.UTC().Format(time.RFC3339),
	}
}
