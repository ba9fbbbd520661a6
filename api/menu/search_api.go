package menu

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	catalogRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/catalog"
	searchService "github.com/DoTranTuyen/fullstack-dath/service/search"
)

// RegisterSearchRoutes sets up GET /api/menu/search.
func RegisterSearchRoutes(apiGroup *echo.Group, db *gorm.DB) {
	products := catalogRepo.NewProductRepository(db)
	svc := searchService.GetService()

	apiGroup.GET("/menu/search", func(c echo.Context) error {
		q := c.QueryParam("q")
		if q == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "q parameter is required"})
		}
		limit := 0
		if v := c.QueryParam("limit"); v != "" {
			limit, _ = strconv.Atoi(v)
		}
		hits, err := svc.Search(c.Request().Context(), q, limit, products)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, hits)
	})
}
