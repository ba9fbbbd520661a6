package sales

import "time"

// Order represents the donhang table: one kitchen ticket under an invoice.
type Order struct {
	ID        uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	InvoiceID uint       `gorm:"column:ma_hoa_don;index;not null" json:"invoice_id"`
	Status    LineStatus `gorm:"column:trang_thai;type:varchar(15);default:pending" json:"status"`
	Total     int        `gorm:"column:tong_tien;not null;default:0" json:"total"`
	Discount  int        `gorm:"column:giam_gia;not null;default:0" json:"discount"`
	CreatedAt time.Time  `gorm:"column:ngay_tao;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:ngay_cap_nhat;autoUpdateTime" json:"updated_at"`
	IsDeleted bool       `gorm:"column:da_xoa;default:false" json:"is_deleted"`
}

func (Order) TableName() string {
	return "donhang"
}

// OrderDetail represents the donhang_chitiet table: one product line on an
// order. Price is a snapshot of the product price at ordering time; Total
// is quantity*price. Lines are never deleted; cancellation is a status.
type OrderDetail struct {
	ID        uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID   uint       `gorm:"column:ma_don_hang;index;not null" json:"order_id"`
	ProductID uint       `gorm:"column:ma_san_pham;index;not null" json:"product_id"`
	Quantity  int        `gorm:"column:so_luong;not null" json:"quantity"`
	Price     int        `gorm:"column:gia;not null" json:"price"`
	Total     int        `gorm:"column:thanh_tien;not null" json:"total"`
	Status    LineStatus `gorm:"column:trang_thai;type:varchar(15);default:pending" json:"status"`
	CreatedAt time.Time  `gorm:"column:ngay_tao;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:ngay_cap_nhat;autoUpdateTime" json:"updated_at"`
	IsDeleted bool       `gorm:"column:da_xoa;default:false" json:"is_deleted"`
}

func (OrderDetail) TableName() string {
	return "donhang_chitiet"
}
