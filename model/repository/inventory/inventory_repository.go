package inventory

import (
	"gorm.io/gorm"

	inventoryEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/inventory"
)

type InventoryLogRepository struct {
	db *gorm.DB
}

func NewInventoryLogRepository(db *gorm.DB) *InventoryLogRepository {
	return &InventoryLogRepository{db: db}
}

func (r *InventoryLogRepository) Create(tx *gorm.DB, entry *inventoryEntity.InventoryLog) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(entry).Error
}

// BackfillStockAfter sets stock_after on a just-written entry. The only
// permitted mutation of a ledger row.
func (r *InventoryLogRepository) BackfillStockAfter(tx *gorm.DB, id uint, stockAfter int) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&inventoryEntity.InventoryLog{}).
		Where("id = ?", id).
		Update("so_luong_sau", stockAfter).Error
}

// ListByIngredient returns the ledger of one ingredient, newest first.
func (r *InventoryLogRepository) ListByIngredient(ingredientID uint, limit int) ([]inventoryEntity.InventoryLog, error) {
	q := r.db.Where("ma_nguyen_lieu = ?", ingredientID).Order("thoi_gian_cap_nhat DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []inventoryEntity.InventoryLog
	err := q.Find(&rows).Error
	return rows, err
}

// SumChanges replays the full delta history of an ingredient. Used by the
// audit path, not the live stock read.
func (r *InventoryLogRepository) SumChanges(ingredientID uint) (int, error) {
	var total *int
	err := r.db.Model(&inventoryEntity.InventoryLog{}).
		Where("ma_nguyen_lieu = ?", ingredientID).
		Select("SUM(so_luong_thay_doi)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
