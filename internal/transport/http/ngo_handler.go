package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pets-paws/pets-paws-backend/internal/service"
	"github.com/pets-paws/pets-paws-backend/internal/util"
)

type NGOHandler struct {
	pets *service.PetService
}

func RegisterNGO(e *echo.Echo, auth *service.AuthService, pets *service.PetService) {
	handler := &NGOHandler{pets: pets}

	e.GET("/api/ngo/dashboard", handler.dashboard, RequireAuth(auth))
}

func (h *NGOHandler) dashboard(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("not authenticated"))
	}
	if !user.IsNGO() {
		return c.JSON(http.StatusForbidden, util.Error("Access denied. NGO users only."))
	}

	result, err := h.pets.Dashboard(c.Request().Context(), user)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("unable to load dashboard"))
	}

	recent := make([]petResponse, 0, len(result.RecentPets))
	for _, pet := range result.RecentPets {
		recent = append(recent, toPetResponse(pet))
	}

	return c.JSON(http.StatusOK, util.Envelope{
		"user": toUserResponse(user),
		"stats": util.Envelope{
			"total_pets":  result.TotalPets,
			"active_pets": result.ActivePets,
		},
		"recent_pets": recent,
		"message":     "Welcome to your NGO dashboard!",
	})
}
