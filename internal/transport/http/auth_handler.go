package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pets-paws/pets-paws-backend/internal/domain"
	"github.com/pets-paws/pets-paws-backend/internal/service"
	"github.com/pets-paws/pets-paws-backend/internal/util"
)

type AuthHandler struct {
	auth *service.AuthService
}

func RegisterAuth(e *echo.Echo, auth *service.AuthService) {
	handler := &AuthHandler{auth: auth}

	e.POST("/api/signup", handler.signup)
	e.POST("/api/login", handler.login)
	e.GET("/api/me", handler.me, RequireAuth(auth))
	e.POST("/api/logout", handler.logout)
}

func (h *AuthHandler) signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, util.Error("email, password and name are required"))
	}

	result, err := h.auth.Signup(c.Request().Context(), req.Email, req.Password, req.Name, domain.Role(req.UserType))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		case errors.Is(err, service.ErrEmailAlreadyUsed):
			return c.JSON(http.StatusBadRequest, util.Error("Email already registered"))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not create account"))
		}
	}

	return c.JSON(http.StatusOK, toAuthResponse(result))
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, util.Error("Invalid credentials"))
		}
		return c.JSON(http.StatusInternalServerError, util.Error("could not log in"))
	}

	return c.JSON(http.StatusOK, toAuthResponse(result))
}

func (h *AuthHandler) me(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("not authenticated"))
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// logout only requires a structurally valid bearer header; the token does not
// have to resolve to a live session. The session row, if any, is removed and
// success is reported either way.
func (h *AuthHandler) logout(c echo.Context) error {
	token, ok := bearerToken(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("not authenticated"))
	}
	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		return c.JSON(http.StatusInternalServerError, util.Error("could not log out"))
	}
	return c.JSON(http.StatusOK, util.Envelope{"message": "Logged out successfully"})
}

func toAuthResponse(result *service.AuthResult) authResponse {
	return authResponse{
		Token:       result.Token,
		User:        toUserResponse(result.User),
		RedirectURL: result.RedirectURL,
	}
}
