package sales

import (
	"gorm.io/gorm"

	salesEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/sales"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) FindByID(tx *gorm.DB, id uint) (*salesEntity.Session, error) {
	if tx == nil {
		tx = r.db
	}
	var s salesEntity.Session
	if err := tx.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) Create(s *salesEntity.Session) error {
	return r.db.Create(s).Error
}

func (r *SessionRepository) Save(tx *gorm.DB, s *salesEntity.Session) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Save(s).Error
}

// InvoicesForSession returns every invoice under a session.
func (r *SessionRepository) InvoicesForSession(tx *gorm.DB, sessionID uint) ([]salesEntity.Invoice, error) {
	if tx == nil {
		tx = r.db
	}
	var rows []salesEntity.Invoice
	err := tx.Where("ma_phien_phuc_vu = ?", sessionID).Find(&rows).Error
	return rows, err
}

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) FindByID(tx *gorm.DB, id uint) (*salesEntity.Invoice, error) {
	if tx == nil {
		tx = r.db
	}
	var inv salesEntity.Invoice
	if err := tx.First(&inv, id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepository) Create(inv *salesEntity.Invoice) error {
	return r.db.Create(inv).Error
}

// RecomputeTotal sets invoice total_amount to the sum of its orders' totals.
// Runs inside the caller's transaction so the rollup can never be observed
// out of sync with the children.
func (r *InvoiceRepository) RecomputeTotal(tx *gorm.DB, invoiceID uint) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Exec(
		`UPDATE hoadon SET tong_tien = COALESCE((SELECT SUM(tong_tien) FROM donhang WHERE ma_hoa_don = ? AND trang_thai <> ?), 0) WHERE id = ?`,
		invoiceID, string(salesEntity.StatusCancelled), invoiceID,
	).Error
}
