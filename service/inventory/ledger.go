package inventory

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	inventoryEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/inventory"
	catalogRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/catalog"
	inventoryRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/inventory"
)

// Ledger is the only writer of ingredient stock. Every stock movement goes
// through Record, which appends a phieunhap_xuat entry and keeps the cached
// so_luong_ton column in step with it.
type Ledger struct {
	db          *gorm.DB
	ingredients *catalogRepo.IngredientRepository
	logs        *inventoryRepo.InventoryLogRepository
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{
		db:          db,
		ingredients: catalogRepo.NewIngredientRepository(db),
		logs:        inventoryRepo.NewInventoryLogRepository(db),
	}
}

// Record appends a ledger entry for one ingredient and moves its cached
// stock by delta. Runs in tx when given, otherwise in its own transaction.
// The ingredient row is locked FOR UPDATE so two concurrent deductions can
// never read the same stock_before. Negative resulting stock is allowed:
// sales are not blocked on stockouts.
func (l *Ledger) Record(ctx context.Context, tx *gorm.DB, ingredientID uint, delta int, reason, note string, userID *uint) (*inventoryEntity.InventoryLog, error) {
	var entry *inventoryEntity.InventoryLog
	run := func(tx *gorm.DB) error {
		ing, err := l.ingredients.FindByIDForUpdate(tx, ingredientID)
		if err != nil {
			return fmt.Errorf("ledger: load ingredient %d: %w", ingredientID, err)
		}
		before := ing.QuantityInStock
		after := before + delta

		e := &inventoryEntity.InventoryLog{
			IngredientID: ingredientID,
			Change:       delta,
			Reason:       reason,
			StockBefore:  &before,
			UserID:       userID,
		}
		if note != "" {
			e.Note = &note
		}
		if err := l.logs.Create(tx, e); err != nil {
			return fmt.Errorf("ledger: append entry: %w", err)
		}
		if err := tx.Model(ing).Update("so_luong_ton", after).Error; err != nil {
			return fmt.Errorf("ledger: update stock: %w", err)
		}
		if err := l.logs.BackfillStockAfter(tx, e.ID, after); err != nil {
			return fmt.Errorf("ledger: backfill stock_after: %w", err)
		}
		e.StockAfter = &after
		entry = e
		return nil
	}

	var err error
	if tx != nil {
		err = run(tx)
	} else {
		err = l.db.WithContext(ctx).Transaction(run)
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// AuditResult compares the cached stock of an ingredient against a replay
// of its full ledger.
type AuditResult struct {
	IngredientID uint `json:"ingredient_id"`
	Cached       int  `json:"cached"`
	Replayed     int  `json:"replayed"`
	Consistent   bool `json:"consistent"`
}

// Audit replays SUM(change) over the ledger of an ingredient and checks it
// against the cached stock field.
func (l *Ledger) Audit(ctx context.Context, ingredientID uint) (*AuditResult, error) {
	ing, err := l.ingredients.FindByID(ingredientID)
	if err != nil {
		return nil, err
	}
	replayed, err := l.logs.SumChanges(ingredientID)
	if err != nil {
		return nil, err
	}
	return &AuditResult{
		IngredientID: ingredientID,
		Cached:       ing.QuantityInStock,
		Replayed:     replayed,
		Consistent:   ing.QuantityInStock == replayed,
	}, nil
}

// History returns the ledger of an ingredient, newest first.
func (l *Ledger) History(ctx context.Context, ingredientID uint, limit int) ([]inventoryEntity.InventoryLog, error) {
	return l.logs.ListByIngredient(ingredientID, limit)
}
