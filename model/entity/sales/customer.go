package sales

import "time"

// Customer represents the khachhang table
type Customer struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID        *uint     `gorm:"column:ma_nguoi_dung;uniqueIndex" json:"user_id,omitempty"`
	LoyaltyPoints int       `gorm:"column:diem_tich_luy;not null;default:0" json:"loyalty_points"`
	CreatedAt     time.Time `gorm:"column:ngay_tao;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:ngay_cap_nhat;autoUpdateTime" json:"updated_at"`
	IsDeleted     bool      `gorm:"column:da_xoa;default:false" json:"is_deleted"`
}

func (Customer) TableName() string {
	return "khachhang"
}
