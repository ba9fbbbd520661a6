package menu

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/DoTranTuyen/fullstack-dath/config"
	"github.com/DoTranTuyen/fullstack-dath/core/cache"
	catalogEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/catalog"
	catalogRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/catalog"
	recipeService "github.com/DoTranTuyen/fullstack-dath/service/recipe"
)

// MenuItem is one product as served to the menu clients, with its derived
// produce-ability.
type MenuItem struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	CategoryID  uint    `json:"category_id"`
	Price       int     `json:"price"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Status      string  `json:"status"`
	Produceable int     `json:"produceable"`
}

const menuCacheKey = "menu:list"

// RegisterMenuRoutes sets up the menu API. Product rows are cached
// (in-process, plus Redis when configured); produce-ability is derived per
// request and never cached.
func RegisterMenuRoutes(apiGroup *echo.Group, db *gorm.DB) {
	products := catalogRepo.NewProductRepository(db)
	recipes := recipeService.NewService(db)

	g := apiGroup.Group("/menu")

	g.GET("", func(c echo.Context) error {
		start := time.Now()
		rows, err := cachedMenu(products)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		items := make([]MenuItem, 0, len(rows))
		for _, p := range rows {
			n, err := recipes.ProduceableCount(c.Request().Context(), p.ID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
			items = append(items, toMenuItem(p, n))
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		return c.JSON(http.StatusOK, items)
	})

	g.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		p, err := products.FindByID(nil, uint(id))
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		n, err := recipes.ProduceableCount(c.Request().Context(), p.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, toMenuItem(*p, n))
	})

	g.POST("", func(c echo.Context) error {
		var p catalogEntity.Product
		if err := c.Bind(&p); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if p.Name == "" || p.Price <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and positive price are required"})
		}
		if p.Status == "" {
			p.Status = catalogEntity.StatusActive
		}
		if err := products.Create(&p); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		invalidateMenuCache()
		return c.JSON(http.StatusCreated, p)
	})

	g.PUT("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		p, err := products.FindByID(nil, uint(id))
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		if err := c.Bind(p); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		p.ID = uint(id)
		if err := products.Update(p); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		invalidateMenuCache()
		return c.JSON(http.StatusOK, p)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}
		if err := products.SoftDelete(uint(id)); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		invalidateMenuCache()
		return c.NoContent(http.StatusNoContent)
	})
}

func toMenuItem(p catalogEntity.Product, produceable int) MenuItem {
	return MenuItem{
		ID:          p.ID,
		Name:        p.Name,
		CategoryID:  p.CategoryID,
		Price:       p.Price,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Status:      p.Status,
		Produceable: produceable,
	}
}

// cachedMenu reads product rows through the in-process cache, then Redis,
// then the database.
func cachedMenu(products *catalogRepo.ProductRepository) ([]catalogEntity.Product, error) {
	if v, ok := cache.GetInstance().Get(menuCacheKey); ok {
		if rows, ok := v.([]catalogEntity.Product); ok {
			return rows, nil
		}
	}
	if config.RedisClient != nil {
		raw, err := config.RedisClient.Get(config.RedisCtx(), menuCacheKey).Bytes()
		if err == nil {
			var rows []catalogEntity.Product
			if json.Unmarshal(raw, &rows) == nil {
				cache.GetInstance().Set(menuCacheKey, rows, 60, []string{"menu"})
				return rows, nil
			}
		}
	}

	rows, err := products.ActiveMenu()
	if err != nil {
		return nil, err
	}
	cache.GetInstance().Set(menuCacheKey, rows, 60, []string{"menu"})
	if config.RedisClient != nil {
		if raw, err := json.Marshal(rows); err == nil {
			config.RedisClient.Set(config.RedisCtx(), menuCacheKey, raw, 60*time.Second)
		}
	}
	return rows, nil
}

func invalidateMenuCache() {
	cache.GetInstance().DeleteByTag("menu")
	if config.RedisClient != nil {
		config.RedisClient.Del(config.RedisCtx(), menuCacheKey)
	}
}
