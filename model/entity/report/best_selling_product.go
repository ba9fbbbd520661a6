package report

import "time"

// BestSellingProduct represents the sanpham_banchay table: a materialized
// sales report row written by the bestsellers cron job.
type BestSellingProduct struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID    uint      `gorm:"column:ma_san_pham;index;not null" json:"product_id"`
	SoldQuantity int       `gorm:"column:so_luong_da_ban;not null" json:"sold_quantity"`
	ReportDate   time.Time `gorm:"column:ngay_bao_cao;not null" json:"report_date"`
}

func (BestSellingProduct) TableName() string {
	return "sanpham_banchay"
}
