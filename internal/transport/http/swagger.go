package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/pets-paws/pets-paws-backend/internal/util"
)

const swaggerSpecPath = "docs/swagger.yaml"

// RegisterSwagger serves the API description under /swagger. The YAML spec on
// disk is converted to JSON on every request, so edits show up without a
// restart.
func RegisterSwagger(e *echo.Echo) {
	e.GET("/swagger/doc.json", func(c echo.Context) error {
		jsonSpec, err := loadSwaggerSpec()
		if err != nil {
			c.Logger().Errorf("swagger spec: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to load API spec"))
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, jsonSpec)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

func loadSwaggerSpec() ([]byte, error) {
	data, err := os.ReadFile(filepath.FromSlash(swaggerSpecPath))
	if err != nil {
		return nil, err
	}
	return yaml.YAMLToJSON(data)
}
