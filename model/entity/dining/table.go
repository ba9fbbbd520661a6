package dining

// Table statuses (trang_thai).
const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
)

// Table represents the ban_an table. TableNumber is assigned sequentially
// (max+1) when absent; QRImageURL points to the uploaded join-URL QR code.
type Table struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TableNumber int     `gorm:"column:so_ban;uniqueIndex" json:"table_number"`
	Status      string  `gorm:"column:trang_thai;type:varchar(10);default:available" json:"status"`
	QRImageURL  *string `gorm:"column:anh_qr;type:varchar(255)" json:"qr_image_url,omitempty"`
	Capacity    int     `gorm:"column:suc_chua;not null;default:4" json:"capacity"`
	IsDeleted   bool    `gorm:"column:da_xoa;default:false" json:"is_deleted"`
}

func (Table) TableName() string {
	return "ban_an"
}
