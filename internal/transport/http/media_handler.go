package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pets-paws/pets-paws-backend/internal/media"
	"github.com/pets-paws/pets-paws-backend/internal/service"
	"github.com/pets-paws/pets-paws-backend/internal/util"
)

type MediaHandler struct {
	media *service.MediaService
}

func RegisterMedia(e *echo.Echo, auth *service.AuthService, mediaService *service.MediaService) {
	handler := &MediaHandler{media: mediaService}

	e.POST("/api/upload/image", handler.uploadImage, RequireAuth(auth))
}

func (h *MediaHandler) uploadImage(c echo.Context) error {
	user, ok := CurrentUser(c)
	if !ok || user == nil {
		return c.JSON(http.StatusUnauthorized, util.Error("not authenticated"))
	}
	if !user.IsNGO() {
		return c.JSON(http.StatusForbidden, util.Error("Only NGOs can upload pet images"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("could not read uploaded file"))
	}
	defer file.Close()

	url, err := h.media.UploadPetImage(c.Request().Context(), media.Upload{
		Reader:      file,
		Size:        fileHeader.Size,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrImageUnsupportedType), errors.Is(err, service.ErrImageTooLarge):
			return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
		default:
			return c.JSON(http.StatusInternalServerError, util.Error("could not upload image"))
		}
	}

	return c.JSON(http.StatusOK, util.Envelope{"image_url": url})
}
