package catalog

import "time"

// Status values shared by Category and Product.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Category represents the loai_san_pham table
type Category struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"column:ten_loai_san_pham;type:varchar(100);uniqueIndex;not null" json:"name"`
	Description *string `gorm:"column:mo_ta" json:"description,omitempty"`
	ParentID    *uint   `gorm:"column:cha_loai_san_pham" json:"parent_id,omitempty"`
	Status      string  `gorm:"column:trang_thai;type:varchar(10);default:active" json:"status"`
}

func (Category) TableName() string {
	return "loai_san_pham"
}

// Product represents the sanpham table
type Product struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:ten_san_pham;type:varchar(100);not null" json:"name"`
	CategoryID  uint      `gorm:"column:ma_loai_san_pham;index;not null" json:"category_id"`
	Price       int       `gorm:"column:gia;not null" json:"price"`
	Description *string   `gorm:"column:mo_ta" json:"description,omitempty"`
	ImageURL    *string   `gorm:"column:hinh_anh;type:varchar(255)" json:"image_url,omitempty"`
	Status      string    `gorm:"column:trang_thai;type:varchar(10);default:active" json:"status"`
	CreatedAt   time.Time `gorm:"column:ngay_tao;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:ngay_cap_nhat;autoUpdateTime" json:"updated_at"`
	IsDeleted   bool      `gorm:"column:da_xoa;default:false" json:"is_deleted"`
}

func (Product) TableName() string {
	return "sanpham"
}
