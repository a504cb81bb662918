package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pets-paws/pets-paws-backend/internal/domain"
	"github.com/pets-paws/pets-paws-backend/internal/service"
	"github.com/pets-paws/pets-paws-backend/internal/util"
)

type PetHandler struct {
	pets *service.PetService
}

type createPetRequest struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Age          int     `json:"age"`
	Location     string  `json:"location"`
	ImageURL     string  `json:"image_url"`
	Vaccinated   bool    `json:"vaccinated"`
	Neutered     bool    `json:"neutered"`
	MedicalNotes *string `json:"medical_notes"`
}

func RegisterPets(e *echo.Echo, auth *service.AuthService, pets *service.PetService) {
	handler := &PetHandler{pets: pets}

	e.POST("/api/pets", handler.createPet, RequireAuth(auth))
	e.GET("/api/pets", handler.listPets)
	e.GET("/api/pets/:id", handler.getPet)
}

func (h *PetHandler) createPet(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("not authenticated"))
	}
	if !user.IsNGO() {
		return c.JSON(http.StatusForbidden, util.Error("Only NGOs can add pets"))
	}

	var req createPetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	pet, err := h.pets.Create(c.Request().Context(), user, service.CreatePetInput{
		Name:         req.Name,
		Species:      domain.Species(req.Type),
		Age:          req.Age,
		Location:     req.Location,
		ImageURL:     req.ImageURL,
		Vaccinated:   req.Vaccinated,
		Neutered:     req.Neutered,
		MedicalNotes: req.MedicalNotes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotNGO):
			return c.JSON(http.StatusForbidden, util.Error("Only NGOs can add pets"))
		case errors.Is(err, service.ErrPetValidation):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not create pet"))
		}
	}

	return c.JSON(http.StatusOK, toPetResponse(*pet))
}

func (h *PetHandler) listPets(c echo.Context) error {
	filter := parsePetFilter(c)

	result, err := h.pets.List(c.Request().Context(), filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load pets"))
	}

	pets := make([]petResponse, 0, len(result.Pets))
	for _, pet := range result.Pets {
		pets = append(pets, toPetResponse(pet))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"pets":  pets,
		"total": result.Total,
		"page":  result.Page,
		"limit": result.Limit,
	})
}

func (h *PetHandler) getPet(c echo.Context) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("Invalid pet ID"))
	}

	details, err := h.pets.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPetNotFound) {
			return c.JSON(http.StatusNotFound, util.Error("Pet not found"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load pet"))
	}

	response := toPetResponse(details.Pet)
	response.NGOName = details.NGOName
	response.NGOEmail = details.NGOEmail
	return c.JSON(http.StatusOK, response)
}

// parsePetFilter reads the public listing query: `type` (exact species),
// `location` (substring), `limit` and `skip`.
func parsePetFilter(c echo.Context) domain.PetFilter {
	filter := domain.PetFilter{Limit: 20}

	if raw := strings.TrimSpace(c.QueryParam("type")); raw != "" {
		species := domain.Species(raw)
		filter.Species = &species
	}
	if raw := strings.TrimSpace(c.QueryParam("location")); raw != "" {
		filter.Location = &raw
	}
	if raw := strings.TrimSpace(c.QueryParam("limit")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			filter.Limit = parsed
		}
	}
	if raw := strings.TrimSpace(c.QueryParam("skip")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			filter.Offset = parsed
		}
	}
	return filter
}
