package apitest

import (
	"net/http"
	"testing"

	catalogEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/catalog"
)

func TestMenuAPI_ListWithProduceable(t *testing.T) {
	db := testDB(t)
	e := newServer(t, db, nil, nil)

	cat := catalogEntity.Category{Name: "Món chính"}
	db.Create(&cat)
	p := catalogEntity.Product{Name: "Phở bò", CategoryID: cat.ID, Price: 55000, Status: catalogEntity.StatusActive}
	db.Create(&p)
	ing := catalogEntity.Ingredient{Name: "Thịt bò", Unit: catalogEntity.UnitGram, QuantityInStock: 10}
	db.Create(&ing)
	db.Create(&catalogEntity.RecipeItem{ProductID: p.ID, IngredientID: ing.ID, QuantityRequired: 2})

	rec := doJSON(e, http.MethodGet, "/api/menu", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/menu status = %d, body %s", rec.Code, rec.Body.String())
	}
	var items []struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Produceable int    `json:"produceable"`
	}
	decode(t, rec, &items)
	if len(items) != 1 {
		t.Fatalf("menu items = %d, want 1", len(items))
	}
	if items[0].Produceable != 5 {
		t.Errorf("produceable = %d, want 5", items[0].Produceable)
	}

	// Stock moves must be visible on the next read even though product
	// rows are cached.
	db.Model(&catalogEntity.Ingredient{}).Where("id = ?", ing.ID).Update("so_luong_ton", 3)
	rec = doJSON(e, http.MethodGet, "/api/menu", nil)
	decode(t, rec, &items)
	if items[0].Produceable != 1 {
		t.Errorf("produceable after stock change = %d, want 1", items[0].Produceable)
	}
}

func TestMenuAPI_GetByID(t *testing.T) {
	db := testDB(t)
	e := newServer(t, db, nil, nil)

	cat := catalogEntity.Category{Name: "Đồ uống"}
	db.Create(&cat)
	p := catalogEntity.Product{Name: "Trà đào", CategoryID: cat.ID, Price: 30000, Status: catalogEntity.StatusActive}
	db.Create(&p)

	rec := doJSON(e, http.MethodGet, "/api/menu/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/menu/1 status = %d", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/api/menu/999", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /api/menu/999 status = %d, want 404", rec.Code)
	}
	rec = doJSON(e, http.MethodGet, "/api/menu/abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("GET /api/menu/abc status = %d, want 400", rec.Code)
	}
}

func TestMenuAPI_CreateValidation(t *testing.T) {
	db := testDB(t)
	e := newServer(t, db, nil, nil)

	cat := catalogEntity.Category{Name: "Món chính"}
	db.Create(&cat)

	rec := doJSON(e, http.MethodPost, "/api/menu", map[string]interface{}{
		"name": "", "price": 0,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("POST invalid product status = %d, want 400", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/menu", map[string]interface{}{
		"name": "Cơm tấm", "category_id": cat.ID, "price": 40000,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST product status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created catalogEntity.Product
	decode(t, rec, &created)
	if created.Status != catalogEntity.StatusActive {
		t.Errorf("default status = %q, want active", created.Status)
	}
}

func TestMenuAPI_SoftDeleteHidesFromMenu(t *testing.T) {
	db := testDB(t)
	e := newServer(t, db, nil, nil)

	cat := catalogEntity.Category{Name: "Món chính"}
	db.Create(&cat)
	p := catalogEntity.Product{Name: "Bún chả", CategoryID: cat.ID, Price: 45000, Status: catalogEntity.StatusActive}
	db.Create(&p)

	rec := doJSON(e, http.MethodDelete, "/api/menu/1", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("DELETE status = %d, want 204", rec.Code)
	}

	rec = doJSON(e, http.MethodGet, "/api/menu", nil)
	var items []map[string]interface{}
	decode(t, rec, &items)
	if len(items) != 0 {
		t.Errorf("menu after delete = %d items, want 0", len(items))
	}

	// Row still exists, only flagged.
	var got catalogEntity.Product
	if err := db.First(&got, p.ID).Error; err != nil {
		t.Fatalf("soft-deleted row should still exist: %v", err)
	}
	if !got.IsDeleted {
		t.Error("da_xoa not set")
	}
}

func TestSearchAPI_RequiresQuery(t *testing.T) {
	db := testDB(t)
	e := newServer(t, db, nil, nil)

	rec := doJSON(e, http.MethodGet, "/api/menu/search?q=", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty query status = %d, want 400", rec.Code)
	}
}

func TestSearchAPI_SQLFallback(t *testing.T) {
	db := testDB(t)
	e := newServer(t, db, nil, nil)

	cat := catalogEntity.Category{Name: "Món chính"}
	db.Create(&cat)
	db.Create(&catalogEntity.Product{Name: "Phở bò tái", CategoryID: cat.ID, Price: 55000, Status: catalogEntity.StatusActive})
	db.Create(&catalogEntity.Product{Name: "Bún chả", CategoryID: cat.ID, Price: 45000, Status: catalogEntity.StatusActive})

	rec := doJSON(e, http.MethodGet, "/api/menu/search?q=ph%E1%BB%9F", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("search status = %d, body %s", rec.Code, rec.Body.String())
	}
	var hits []struct {
		Name string `json:"name"`
	}
	decode(t, rec, &hits)
	if len(hits) != 1 || hits[0].Name != "Phở bò tái" {
		t.Errorf("hits = %v, want only Phở bò tái", hits)
	}
}
