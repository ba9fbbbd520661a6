package sales

import "time"

// Session represents the phienphucvu table: the occupancy of one table by
// one customer party. Closing a session is the consistency boundary that
// finalizes every invoice, order and line underneath it.
type Session struct {
	ID         uint          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CustomerID uint          `gorm:"column:ma_khach_hang;index;not null" json:"customer_id"`
	TableID    uint          `gorm:"column:ma_ban;index;not null" json:"table_id"`
	Status     SessionStatus `gorm:"column:trang_thai;type:varchar(10);default:active" json:"status"`
	StartedAt  time.Time     `gorm:"column:thoi_gian_bat_dau;autoCreateTime" json:"started_at"`
	EndedAt    *time.Time    `gorm:"column:thoi_gian_ket_thuc" json:"ended_at,omitempty"`
}

func (Session) TableName() string {
	return "phienphucvu"
}

// Payment methods for a settled invoice (phuong_thuc_thanh_toan).
const (
	PaymentCash         = "cash"
	PaymentBankTransfer = "bank_transfer"
	PaymentMomo         = "momo"
)

// Invoice represents the hoadon table
type Invoice struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SessionID     uint      `gorm:"column:ma_phien_phuc_vu;index;not null" json:"session_id"`
	PaymentMethod *string   `gorm:"column:phuong_thuc_thanh_toan;type:varchar(15)" json:"payment_method,omitempty"`
	TotalAmount   int       `gorm:"column:tong_tien;not null;default:0" json:"total_amount"`
	Discount      int       `gorm:"column:giam_gia;not null;default:0" json:"discount"`
	CreatedAt     time.Time `gorm:"column:ngay_tao;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:ngay_cap_nhat;autoUpdateTime" json:"updated_at"`
	IsDeleted     bool      `gorm:"column:da_xoa;default:false" json:"is_deleted"`
}

func (Invoice) TableName() string {
	return "hoadon"
}
