package servicetest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	catalogEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/catalog"
	chatEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/chat"
	diningEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/dining"
	inventoryEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/inventory"
	reportEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/report"
	salesEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/sales"
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

// seedProduct creates a category, a product and one ingredient with a
// recipe row requiring perUnit of it per product unit.
func seedProduct(t *testing.T, db *gorm.DB, name string, price int, stock, perUnit int) (catalogEntity.Product, catalogEntity.Ingredient) {
	t.Helper()
	cat := catalogEntity.Category{Name: name + " category"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	p := catalogEntity.Product{Name: name, CategoryID: cat.ID, Price: price, Status: catalogEntity.StatusActive}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	ing := catalogEntity.Ingredient{Name: name + " ingredient", Unit: catalogEntity.UnitGram, QuantityInStock: stock}
	if err := db.Create(&ing).Error; err != nil {
		t.Fatalf("seed ingredient: %v", err)
	}
	if perUnit > 0 {
		r := catalogEntity.RecipeItem{ProductID: p.ID, IngredientID: ing.ID, QuantityRequired: perUnit}
		if err := db.Create(&r).Error; err != nil {
			t.Fatalf("seed recipe: %v", err)
		}
	}
	return p, ing
}

// seedSession creates customer, table, active session and open invoice.
func seedSession(t *testing.T, db *gorm.DB) (salesEntity.Session, salesEntity.Invoice) {
	t.Helper()
	cust := salesEntity.Customer{}
	if err := db.Create(&cust).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	tbl := diningEntity.Table{TableNumber: 1, Status: diningEntity.TableOccupied}
	if err := db.Create(&tbl).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	sess := salesEntity.Session{CustomerID: cust.ID, TableID: tbl.ID, Status: salesEntity.SessionActive}
	if err := db.Create(&sess).Error; err != nil {
		t.Fatalf("seed session: %v", err)
	}
	inv := salesEntity.Invoice{SessionID: sess.ID}
	if err := db.Create(&inv).Error; err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	return sess, inv
}
