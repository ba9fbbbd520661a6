package sales

import (
	"gorm.io/gorm"

	salesEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/sales"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) FindByID(tx *gorm.DB, id uint) (*salesEntity.Order, error) {
	if tx == nil {
		tx = r.db
	}
	var o salesEntity.Order
	if err := tx.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(o *salesEntity.Order) error {
	return r.db.Create(o).Error
}

func (r *OrderRepository) Save(tx *gorm.DB, o *salesEntity.Order) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Save(o).Error
}

// ForInvoice returns orders of an invoice, optionally excluding a status.
func (r *OrderRepository) ForInvoice(tx *gorm.DB, invoiceID uint, exclude salesEntity.LineStatus) ([]salesEntity.Order, error) {
	if tx == nil {
		tx = r.db
	}
	q := tx.Where("ma_hoa_don = ?", invoiceID)
	if exclude != "" {
		q = q.Where("trang_thai <> ?", string(exclude))
	}
	var rows []salesEntity.Order
	err := q.Find(&rows).Error
	return rows, err
}

// RecomputeTotal sets order total to the sum of its non-cancelled lines.
func (r *OrderRepository) RecomputeTotal(tx *gorm.DB, orderID uint) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Exec(
		`UPDATE donhang SET tong_tien = COALESCE((SELECT SUM(thanh_tien) FROM donhang_chitiet WHERE ma_don_hang = ? AND trang_thai <> ?), 0) WHERE id = ?`,
		orderID, string(salesEntity.StatusCancelled), orderID,
	).Error
}

type OrderDetailRepository struct {
	db *gorm.DB
}

func NewOrderDetailRepository(db *gorm.DB) *OrderDetailRepository {
	return &OrderDetailRepository{db: db}
}

func (r *OrderDetailRepository) FindByID(tx *gorm.DB, id uint) (*salesEntity.OrderDetail, error) {
	if tx == nil {
		tx = r.db
	}
	var d salesEntity.OrderDetail
	if err := tx.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *OrderDetailRepository) Create(tx *gorm.DB, d *salesEntity.OrderDetail) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(d).Error
}

// ForOrder returns lines of an order, optionally excluding a status.
func (r *OrderDetailRepository) ForOrder(tx *gorm.DB, orderID uint, exclude salesEntity.LineStatus) ([]salesEntity.OrderDetail, error) {
	if tx == nil {
		tx = r.db
	}
	q := tx.Where("ma_don_hang = ?", orderID)
	if exclude != "" {
		q = q.Where("trang_thai <> ?", string(exclude))
	}
	var rows []salesEntity.OrderDetail
	err := q.Order("id").Find(&rows).Error
	return rows, err
}

// UpdateStatus persists a status change decided by the order state machine.
// Never call directly; service/order.Transition is the one mutation path.
func (r *OrderDetailRepository) UpdateStatus(tx *gorm.DB, id uint, status salesEntity.LineStatus) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&salesEntity.OrderDetail{}).
		Where("id = ?", id).
		Update("trang_thai", string(status)).Error
}

// OrderedProductIDs returns the distinct products a user has ever ordered,
// via the line -> order -> invoice -> session -> customer -> user chain.
func (r *OrderDetailRepository) OrderedProductIDs(userID uint) (map[uint]struct{}, error) {
	var ids []uint
	err := r.db.Model(&salesEntity.OrderDetail{}).
		Distinct("donhang_chitiet.ma_san_pham").
		Joins("JOIN donhang ON donhang.id = donhang_chitiet.ma_don_hang").
		Joins("JOIN hoadon ON hoadon.id = donhang.ma_hoa_don").
		Joins("JOIN phienphucvu ON phienphucvu.id = hoadon.ma_phien_phuc_vu").
		Joins("JOIN khachhang ON khachhang.id = phienphucvu.ma_khach_hang").
		Where("khachhang.ma_nguoi_dung = ?", userID).
		Pluck("donhang_chitiet.ma_san_pham", &ids).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out, nil
}

// BestSellerRow is one aggregated sales row for reporting and the
// assistant's grounding context.
type BestSellerRow struct {
	ProductID uint   `gorm:"column:ma_san_pham"`
	Name      string `gorm:"column:ten_san_pham"`
	Price     int    `gorm:"column:gia"`
	Total     int    `gorm:"column:total"`
}

// BestSellers returns the top-n products by summed line quantity.
func (r *OrderDetailRepository) BestSellers(n int) ([]BestSellerRow, error) {
	if n <= 0 {
		n = 5
	}
	var rows []BestSellerRow
	err := r.db.Model(&salesEntity.OrderDetail{}).
		Select("donhang_chitiet.ma_san_pham, sanpham.ten_san_pham, sanpham.gia, SUM(donhang_chitiet.so_luong) AS total").
		Joins("JOIN sanpham ON sanpham.id = donhang_chitiet.ma_san_pham").
		Group("donhang_chitiet.ma_san_pham, sanpham.ten_san_pham, sanpham.gia").
		Order("total DESC").
		Limit(n).
		Scan(&rows).Error
	return rows, err
}
