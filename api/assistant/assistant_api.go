package assistant

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	assistantService "github.com/DoTranTuyen/fullstack-dath/service/assistant"
)

// RegisterAssistantRoutes sets up GET /api/assistant/chat. Blank input is
// rejected before anything reaches the completion backend.
func RegisterAssistantRoutes(apiGroup *echo.Group, svc *assistantService.Service) {
	apiGroup.GET("/assistant/chat", func(c echo.Context) error {
		message := c.QueryParam("message")
		reply, err := svc.Ask(c.Request().Context(), message)
		if err != nil {
			switch {
			case errors.Is(err, assistantService.ErrEmptyMessage):
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "Message is required"})
			case errors.Is(err, assistantService.ErrUnavailable):
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
			default:
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"reply": reply})
	})
}
