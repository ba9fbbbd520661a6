package apitest

import (
	"net/http"
	"testing"

	catalogEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/catalog"
	inventoryEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/inventory"
)

func TestInventoryAPI_CreateIngredientWithOpeningBalance(t *testing.T) {
	db := testDB(t)
	e := newServer(t, db, nil, nil)

	rec := doJSON(e, http.MethodPost, "/api/ingredients", map[string]interface{}{
		"name": "Thịt bò", "unit": "g", "quantity_in_stock": 500,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /api/ingredients status = %d, body %s", rec.Code, rec.Body.String())
	}
	var ing catalogEntity.Ingredient
	decode(t, rec, &ing)
	if ing.QuantityInStock != 500 {
		t.Errorf("stock = %d, want 500", ing.QuantityInStock)
	}

	// the opening balance must exist as a ledger entry, not a bare field write
	var logs []inventoryEntity.InventoryLog
	if err := db.Find(&logs).Error; err != nil {
		t.Fatal(err)
	}
	if len(logs) != 1 {
		t.Fatalf("ledger entries = %d, want 1", len(logs))
	}
	if logs[0].Reason != inventoryEntity.ReasonImport || logs[0].Change != 500 {
		t.Errorf("opening entry = %+v", logs[0])
	}
	if logs[0].StockBefore == nil || *logs[0].StockBefore != 0 {
		t.Errorf("stock_before = %v, want 0", logs[0].StockBefore)
	}
	if logs[0].StockAfter == nil || *logs[0].StockAfter != 500 {
		t.Errorf("stock_after = %v, want 500", logs[0].StockAfter)
	}
}

func TestInventoryAPI_CreateIngredientValidation(t *testing.T) {
	db := testDB(t)
	e := newServer(t, db, nil, nil)

	rec := doJSON(e, http.MethodPost, "/api/ingredients", map[string]interface{}{"name": "Muối"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing unit status = %d, want 400", rec.Code)
	}
}

func TestInventoryAPI_LogsAndHistory(t *testing.T) {
	db := testDB(t)
	e := newServer(t, db, nil, nil)

	ing := catalogEntity.Ingredient{Name: "Hành lá", Unit: catalogEntity.UnitGram}
	db.Create(&ing)

	rec := doJSON(e, http.MethodPost, "/api/inventory/logs", map[string]interface{}{
		"ingredient_id": ing.ID, "change": 100, "reason": "import", "note": "Nhập đầu tuần",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("import log status = %d, body %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(e, http.MethodPost, "/api/inventory/logs", map[string]interface{}{
		"ingredient_id": ing.ID, "change": -30, "reason": "export",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("export log status = %d", rec.Code)
	}

	// rejected movements
	rec = doJSON(e, http.MethodPost, "/api/inventory/logs", map[string]interface{}{
		"ingredient_id": ing.ID, "change": 0, "reason": "import",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("zero change status = %d, want 400", rec.Code)
	}
	rec = doJSON(e, http.MethodPost, "/api/inventory/logs", map[string]interface{}{
		"ingredient_id": ing.ID, "change": 5, "reason": "theft",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown reason status = %d, want 400", rec.Code)
	}

	var got catalogEntity.Ingredient
	db.First(&got, ing.ID)
	if got.QuantityInStock != 70 {
		t.Errorf("stock = %d, want 70", got.QuantityInStock)
	}

	rec = doJSON(e, http.MethodGet, "/api/inventory/logs?ingredient_id=1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("history status = %d", rec.Code)
	}
	var rows []inventoryEntity.InventoryLog
	decode(t, rec, &rows)
	if len(rows) != 2 {
		t.Fatalf("history rows = %d, want 2", len(rows))
	}
	if rows[0].Change != -30 {
		t.Errorf("newest first: rows[0].Change = %d, want -30", rows[0].Change)
	}

	rec = doJSON(e, http.MethodGet, "/api/inventory/logs", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing ingredient_id status = %d, want 400", rec.Code)
	}
}

func TestInventoryAPI_Audit(t *testing.T) {
	db := testDB(t)
	e := newServer(t, db, nil, nil)

	ing := catalogEntity.Ingredient{Name: "Tôm", Unit: catalogEntity.UnitKg}
	db.Create(&ing)
	doJSON(e, http.MethodPost, "/api/inventory/logs", map[string]interface{}{
		"ingredient_id": ing.ID, "change": 40, "reason": "import",
	})

	rec := doJSON(e, http.MethodGet, "/api/inventory/audit/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("audit status = %d, body %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Cached     int  `json:"cached"`
		Replayed   int  `json:"replayed"`
		Consistent bool `json:"consistent"`
	}
	decode(t, rec, &res)
	if !res.Consistent || res.Cached != 40 || res.Replayed != 40 {
		t.Errorf("audit = %+v, want consistent at 40", res)
	}

	// a write that bypasses the ledger shows up as drift
	db.Model(&catalogEntity.Ingredient{}).Where("id = ?", ing.ID).Update("so_luong_ton", 99)
	rec = doJSON(e, http.MethodGet, "/api/inventory/audit/1", nil)
	decode(t, rec, &res)
	if res.Consistent || res.Cached != 99 || res.Replayed != 40 {
		t.Errorf("audit after drift = %+v", res)
	}
}
