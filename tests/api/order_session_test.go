package apitest

import (
	"net/http"
	"testing"

	"gorm.io/gorm"

	catalogEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/catalog"
	diningEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/dining"
	salesEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/sales"
)

// seedDining creates a customer, a table, an open session and its invoice.
func seedDining(t *testing.T, db *gorm.DB) (*salesEntity.Session, *salesEntity.Invoice) {
	t.Helper()
	cust := salesEntity.Customer{}
	if err := db.Create(&cust).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	table := diningEntity.Table{TableNumber: 1, Status: diningEntity.TableOccupied}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	sess := salesEntity.Session{CustomerID: cust.ID, TableID: table.ID, Status: salesEntity.SessionActive}
	if err := db.Create(&sess).Error; err != nil {
		t.Fatalf("seed session: %v", err)
	}
	inv := salesEntity.Invoice{SessionID: sess.ID}
	if err := db.Create(&inv).Error; err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	return &sess, &inv
}

// seedDish creates a category, a priced product and optionally a one-line
// recipe against a fresh ingredient.
func seedDish(t *testing.T, db *gorm.DB, name string, price, stock, perUnit int) *catalogEntity.Product {
	t.Helper()
	cat := catalogEntity.Category{Name: "cat-" + name}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	p := catalogEntity.Product{Name: name, CategoryID: cat.ID, Price: price, Status: catalogEntity.StatusActive}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	if perUnit > 0 {
		ing := catalogEntity.Ingredient{Name: "ing-" + name, Unit: catalogEntity.UnitGram, QuantityInStock: stock}
		if err := db.Create(&ing).Error; err != nil {
			t.Fatalf("seed ingredient: %v", err)
		}
		if err := db.Create(&catalogEntity.RecipeItem{ProductID: p.ID, IngredientID: ing.ID, QuantityRequired: perUnit}).Error; err != nil {
			t.Fatalf("seed recipe: %v", err)
		}
	}
	return &p
}

func TestOrderAPI_CreateAndRollup(t *testing.T) {
	db := testDB(t)
	e := newServer(t, db, nil, nil)
	_, inv := seedDining(t, db)
	p := seedDish(t, db, "Phở bò", 55000, 100, 2)

	rec := doJSON(e, http.MethodPost, "/api/orders", map[string]interface{}{
		"invoice_id": inv.ID,
		"items":      []map[string]interface{}{{"product_id": p.ID, "quantity": 2}},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /api/orders status = %d, body %s", rec.Code, rec.Body.String())
	}
	var o salesEntity.Order
	decode(t, rec, &o)
	if o.Total != 110000 {
		t.Errorf("order total = %d, want 110000", o.Total)
	}

	var got salesEntity.Invoice
	if err := db.First(&got, inv.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.TotalAmount != 110000 {
		t.Errorf("invoice total = %d, want 110000", got.TotalAmount)
	}

	rec = doJSON(e, http.MethodGet, "/api/orders/1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/orders/1 status = %d", rec.Code)
	}
	var body struct {
		Items []salesEntity.OrderDetail `json:"items"`
	}
	decode(t, rec, &body)
	if len(body.Items) != 1 || body.Items[0].Price != 55000 {
		t.Errorf("items = %+v, want one line at snapshot price 55000", body.Items)
	}
}

func TestOrderAPI_EmptyOrderRejected(t *testing.T) {
	db := testDB(t)
	e := newServer(t, db, nil, nil)
	_, inv := seedDining(t, db)

	rec := doJSON(e, http.MethodPost, "/api/orders", map[string]interface{}{
		"invoice_id": inv.ID,
		"items":      []map[string]interface{}{},
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty order status = %d, want 400", rec.Code)
	}
}

func TestOrderAPI_LineTransitionStatusCodes(t *testing.T) {
	db := testDB(t)
	e := newServer(t, db, nil, nil)
	_, inv := seedDining(t, db)
	p := seedDish(t, db, "Bún chả", 45000, 10, 1)

	rec := doJSON(e, http.MethodPost, "/api/orders", map[string]interface{}{
		"invoice_id": inv.ID,
		"items":      []map[string]interface{}{{"product_id": p.ID, "quantity": 3}},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create order: %d %s", rec.Code, rec.Body.String())
	}

	// unknown status value
	rec = doJSON(e, http.MethodPut, "/api/orders/details/1/status", map[string]string{"status": "shipped"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown status = %d, want 400", rec.Code)
	}

	// legal completion fires the deduction
	rec = doJSON(e, http.MethodPut, "/api/orders/details/1/status", map[string]string{"status": "completed"})
	if rec.Code != http.StatusOK {
		t.Fatalf("complete line status = %d, body %s", rec.Code, rec.Body.String())
	}
	var ing catalogEntity.Ingredient
	if err := db.First(&ing).Error; err != nil {
		t.Fatal(err)
	}
	if ing.QuantityInStock != 7 {
		t.Errorf("stock after completion = %d, want 7", ing.QuantityInStock)
	}

	// terminal line cannot move again
	rec = doJSON(e, http.MethodPut, "/api/orders/details/1/status", map[string]string{"status": "cancelled"})
	if rec.Code != http.StatusConflict {
		t.Errorf("terminal transition status = %d, want 409", rec.Code)
	}

	// missing line
	rec = doJSON(e, http.MethodPut, "/api/orders/details/99/status", map[string]string{"status": "completed"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing line status = %d, want 404", rec.Code)
	}
}

func TestSessionAPI_OpenCloseAndReclose(t *testing.T) {
	db := testDB(t)
	e := newServer(t, db, nil, nil)

	cust := salesEntity.Customer{}
	db.Create(&cust)
	table := diningEntity.Table{TableNumber: 7, Status: diningEntity.TableAvailable}
	db.Create(&table)

	rec := doJSON(e, http.MethodPost, "/api/sessions", map[string]interface{}{
		"customer_id": cust.ID, "table_id": table.ID,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("open session status = %d, body %s", rec.Code, rec.Body.String())
	}
	var sess salesEntity.Session
	decode(t, rec, &sess)

	var tb diningEntity.Table
	db.First(&tb, table.ID)
	if tb.Status != diningEntity.TableOccupied {
		t.Errorf("table status after open = %q, want occupied", tb.Status)
	}

	// order a dish so the close has something to cascade over
	p := seedDish(t, db, "Cơm gà", 40000, 20, 4)
	var inv salesEntity.Invoice
	if err := db.Where("ma_phien_phuc_vu = ?", sess.ID).First(&inv).Error; err != nil {
		t.Fatalf("invoice for session: %v", err)
	}
	rec = doJSON(e, http.MethodPost, "/api/orders", map[string]interface{}{
		"invoice_id": inv.ID,
		"items":      []map[string]interface{}{{"product_id": p.ID, "quantity": 2}},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create order: %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/sessions/1/close", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("close status = %d, body %s", rec.Code, rec.Body.String())
	}
	var closed salesEntity.Session
	decode(t, rec, &closed)
	if closed.Status != salesEntity.SessionClosed || closed.EndedAt == nil {
		t.Errorf("closed session = %+v", closed)
	}

	var line salesEntity.OrderDetail
	db.First(&line)
	if line.Status != salesEntity.StatusCompleted {
		t.Errorf("line status after close = %q, want completed", line.Status)
	}
	var ing catalogEntity.Ingredient
	db.First(&ing)
	if ing.QuantityInStock != 12 {
		t.Errorf("stock after close = %d, want 12", ing.QuantityInStock)
	}
	db.First(&tb, table.ID)
	if tb.Status != diningEntity.TableAvailable {
		t.Errorf("table status after close = %q, want available", tb.Status)
	}

	rec = doJSON(e, http.MethodPost, "/api/sessions/1/close", nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("re-close status = %d, want 409", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/sessions/99/close", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing session close status = %d, want 404", rec.Code)
	}
}

func TestSessionAPI_Settle(t *testing.T) {
	db := testDB(t)
	e := newServer(t, db, nil, nil)
	_, inv := seedDining(t, db)

	rec := doJSON(e, http.MethodPost, "/api/invoices/1/settle", map[string]interface{}{
		"payment_method": "credit_card",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad payment method status = %d, want 400", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/invoices/1/settle", map[string]interface{}{
		"payment_method": salesEntity.PaymentMomo, "discount": 5000,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("settle status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got salesEntity.Invoice
	db.First(&got, inv.ID)
	if got.PaymentMethod == nil || *got.PaymentMethod != salesEntity.PaymentMomo || got.Discount != 5000 {
		t.Errorf("settled invoice = %+v", got)
	}
}
