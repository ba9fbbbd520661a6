package inventory

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	catalogEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/catalog"
	inventoryEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/inventory"
	catalogRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/catalog"
	inventoryService "github.com/DoTranTuyen/fullstack-dath/service/inventory"
)

// RegisterInventoryRoutes sets up the ingredient and ledger API. Stock only
// ever moves through the ledger.
func RegisterInventoryRoutes(apiGroup *echo.Group, db *gorm.DB) {
	ingredients := catalogRepo.NewIngredientRepository(db)
	ledger := inventoryService.NewLedger(db)

	apiGroup.GET("/ingredients", func(c echo.Context) error {
		rows, err := ingredients.All()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, rows)
	})

	apiGroup.POST("/ingredients", func(c echo.Context) error {
		var ing catalogEntity.Ingredient
		if err := c.Bind(&ing); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if ing.Name == "" || ing.Unit == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and unit are required"})
		}
		// stock starts at zero; an opening balance is an import entry
		opening := ing.QuantityInStock
		ing.QuantityInStock = 0
		if err := ingredients.Create(&ing); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if opening != 0 {
			if _, err := ledger.Record(c.Request().Context(), nil, ing.ID, opening,
				inventoryEntity.ReasonImport, "Tồn kho ban đầu", nil); err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
			ing.QuantityInStock = opening
		}
		return c.JSON(http.StatusCreated, ing)
	})

	g := apiGroup.Group("/inventory")

	// POST /api/inventory/logs – record a stock movement
	g.POST("/logs", func(c echo.Context) error {
		var body struct {
			IngredientID uint   `json:"ingredient_id"`
			Change       int    `json:"change"`
			Reason       string `json:"reason"`
			Note         string `json:"note"`
			UserID       *uint  `json:"user_id"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		switch body.Reason {
		case inventoryEntity.ReasonImport, inventoryEntity.ReasonExport,
			inventoryEntity.ReasonSell, inventoryEntity.ReasonAdjustment:
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown reason"})
		}
		if body.Change == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "change must be non-zero"})
		}
		entry, err := ledger.Record(c.Request().Context(), nil, body.IngredientID, body.Change, body.Reason, body.Note, body.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, entry)
	})

	// GET /api/inventory/logs?ingredient_id=N – ledger history, newest first
	g.GET("/logs", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.QueryParam("ingredient_id"), 10, 32)
		if err != nil || id == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "ingredient_id parameter is required"})
		}
		limit := 0
		if v := c.QueryParam("limit"); v != "" {
			limit, _ = strconv.Atoi(v)
		}
		rows, err := ledger.History(c.Request().Context(), uint(id), limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, rows)
	})

	// GET /api/inventory/audit/:id – ledger replay vs cached stock
	g.GET("/audit/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid ingredient id"})
		}
		res, err := ledger.Audit(c.Request().Context(), uint(id))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, res)
	})
}
