package recommend

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	recommendService "github.com/DoTranTuyen/fullstack-dath/service/recommend"
)

// RegisterRecommendRoutes sets up GET /api/recommendations. The service
// handle is injected so a missing model keeps the endpoint alive and
// answering 503 instead of crashing startup.
func RegisterRecommendRoutes(apiGroup *echo.Group, svc *recommendService.Service) {
	apiGroup.GET("/recommendations", func(c echo.Context) error {
		userID, err := strconv.ParseUint(c.QueryParam("user_id"), 10, 32)
		if err != nil || userID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id parameter is required"})
		}
		suggestions, err := svc.Suggest(c.Request().Context(), uint(userID), 5)
		if err != nil {
			if errors.Is(err, recommendService.ErrUnavailable) {
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "Hệ thống gợi ý hiện không khả dụng."})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, suggestions)
	})
}
