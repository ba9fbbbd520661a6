package apitest

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	assistantApi "github.com/DoTranTuyen/fullstack-dath/api/assistant"
	inventoryApi "github.com/DoTranTuyen/fullstack-dath/api/inventory"
	menuApi "github.com/DoTranTuyen/fullstack-dath/api/menu"
	orderApi "github.com/DoTranTuyen/fullstack-dath/api/order"
	recommendApi "github.com/DoTranTuyen/fullstack-dath/api/recommend"
	sessionApi "github.com/DoTranTuyen/fullstack-dath/api/session"
	"github.com/DoTranTuyen/fullstack-dath/core/cache"
	catalogEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/catalog"
	chatEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/chat"
	diningEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/dining"
	inventoryEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/inventory"
	reportEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/report"
	salesEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/sales"
	assistantService "github.com/DoTranTuyen/fullstack-dath/service/assistant"
	recommendService "github.com/DoTranTuyen/fullstack-dath/service/recommend"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&catalogEntity.Category{}, &catalogEntity.Product{},
		&catalogEntity.Ingredient{}, &catalogEntity.RecipeItem{},
		&inventoryEntity.InventoryLog{},
		&salesEntity.Customer{}, &salesEntity.Session{}, &salesEntity.Invoice{},
		&salesEntity.Order{}, &salesEntity.OrderDetail{},
		&diningEntity.Table{}, &diningEntity.TableReservation{},
		&chatEntity.ChatHistory{}, &reportEntity.BestSellingProduct{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// newServer wires the API routes against a fresh DB without auth. The
// process-wide menu cache is flushed so tests cannot see each other's rows.
func newServer(t *testing.T, db *gorm.DB, recommender *recommendService.Service, assistant *assistantService.Service) *echo.Echo {
	t.Helper()
	cache.GetInstance().DeleteByTag("menu")

	e := echo.New()
	apiGroup := e.Group("/api")
	menuApi.RegisterMenuRoutes(apiGroup, db)
	menuApi.RegisterSearchRoutes(apiGroup, db)
	orderApi.RegisterOrderRoutes(apiGroup, db)
	sessionApi.RegisterSessionRoutes(apiGroup, db)
	inventoryApi.RegisterInventoryRoutes(apiGroup, db)
	if recommender != nil {
		recommendApi.RegisterRecommendRoutes(apiGroup, recommender)
	}
	if assistant != nil {
		assistantApi.RegisterAssistantRoutes(apiGroup, assistant)
	}
	return e
}

func doJSON(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
}
