package servicetest

import (
	"context"
	"testing"
	"time"

	diningEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/dining"
	reportEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/report"
	salesEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/sales"
	reportService "github.com/DoTranTuyen/fullstack-dath/service/report"
)

func TestSnapshotBestSellers_ReplacesSameDay(t *testing.T) {
	db := testDB(t)
	svc := reportService.NewService(db)
	ctx := context.Background()

	pho, _ := seedProduct(t, db, "Phở bò", 55000, 100, 2)
	cust := salesEntity.Customer{}
	db.Create(&cust)
	tbl := diningEntity.Table{TableNumber: 1}
	db.Create(&tbl)
	sess := salesEntity.Session{CustomerID: cust.ID, TableID: tbl.ID, Status: salesEntity.SessionActive}
	db.Create(&sess)
	inv := salesEntity.Invoice{SessionID: sess.ID}
	db.Create(&inv)
	ord := salesEntity.Order{InvoiceID: inv.ID, Status: salesEntity.StatusCompleted}
	db.Create(&ord)
	db.Create(&salesEntity.OrderDetail{OrderID: ord.ID, ProductID: pho.ID, Quantity: 4, Price: 55000, Total: 220000, Status: salesEntity.StatusCompleted})

	day := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)
	n, err := svc.SnapshotBestSellers(ctx, day, 10)
	if err != nil {
		t.Fatalf("SnapshotBestSellers: %v", err)
	}
	if n != 1 {
		t.Errorf("snapshot wrote %d rows, want 1", n)
	}

	// Re-running for the same date replaces, never duplicates.
	if _, err := svc.SnapshotBestSellers(ctx, day, 10); err != nil {
		t.Fatalf("second SnapshotBestSellers: %v", err)
	}
	var count int64
	db.Model(&reportEntity.BestSellingProduct{}).Count(&count)
	if count != 1 {
		t.Errorf("report rows = %d, want 1", count)
	}

	var row reportEntity.BestSellingProduct
	db.First(&row)
	if row.ProductID != pho.ID || row.SoldQuantity != 4 {
		t.Errorf("row = {product %d, sold %d}, want {product %d, sold 4}", row.ProductID, row.SoldQuantity, pho.ID)
	}
}
