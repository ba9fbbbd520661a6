package dining

import "time"

// Reservation statuses (trang_thai).
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
	ReservationCompleted = "completed"
)

// TableReservation represents the datban table
type TableReservation struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:ten_khach_hang;type:varchar(100);not null" json:"name"`
	PhoneNumber string    `gorm:"column:so_dien_thoai;type:varchar(15);not null" json:"phone_number"`
	PartySize   int       `gorm:"column:so_nguoi;not null" json:"party_size"`
	TableID     *uint     `gorm:"column:ma_ban;index" json:"table_id,omitempty"`
	Date        time.Time `gorm:"column:ngay_dat;type:date;not null" json:"date"`
	Hour        string    `gorm:"column:gio_dat;type:varchar(8);not null" json:"hour"`
	Status      string    `gorm:"column:trang_thai;type:varchar(10);default:pending" json:"status"`
	CreatedAt   time.Time `gorm:"column:ngay_tao;autoCreateTime" json:"created_at"`
}

func (TableReservation) TableName() string {
	return "datban"
}
