package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"negociosHorarios/internal/modules/realtime/infrastructure"
)

func NewHealthHandler(hub *infrastructure.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":       "ok",
			"clients":      hub.ClientCount(),
			"activeTopics": len(hub.ActiveTopics()),
		})
	}
}
