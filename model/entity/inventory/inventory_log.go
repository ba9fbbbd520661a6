package inventory

import "time"

// Reason categories for a stock movement (loai_thay_doi).
const (
	ReasonImport     = "import"
	ReasonExport     = "export"
	ReasonSell       = "sell"
	ReasonAdjustment = "adjustment"
)

// InventoryLog represents the phieunhap_xuat table: one immutable entry of
// the append-only stock ledger. StockAfter is backfilled once right after
// the ingredient's cached stock is recomputed; nothing mutates a row after
// that.
type InventoryLog struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IngredientID uint      `gorm:"column:ma_nguyen_lieu;index;not null" json:"ingredient_id"`
	Change       int       `gorm:"column:so_luong_thay_doi;not null" json:"change"`
	Reason       string    `gorm:"column:loai_thay_doi;type:varchar(15);not null" json:"reason"`
	Note         *string   `gorm:"column:ghi_chu" json:"note,omitempty"`
	StockBefore  *int      `gorm:"column:so_luong_truoc" json:"stock_before,omitempty"`
	StockAfter   *int      `gorm:"column:so_luong_sau" json:"stock_after,omitempty"`
	UserID       *uint     `gorm:"column:ma_nguoi_dung" json:"user_id,omitempty"`
	CreatedAt    time.Time `gorm:"column:thoi_gian_cap_nhat;autoCreateTime;index" json:"created_at"`
}

func (InventoryLog) TableName() string {
	return "phieunhap_xuat"
}
