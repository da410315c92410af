package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargonova/logistics-api/internal/content"
)

// GetServices handles GET /v1/content/services.  The catalog is static
// so the route sits behind the Redis response cache.
func GetServices(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"services": content.Services()})
}

// GetTeam handles GET /v1/content/team.
func GetTeam(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"team": content.Team()})
}
