package dining

import (
	"gorm.io/gorm"

	diningEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/dining"
)

type TableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db: db}
}

func (r *TableRepository) FindByID(id uint) (*diningEntity.Table, error) {
	var t diningEntity.Table
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) All() ([]diningEntity.Table, error) {
	var rows []diningEntity.Table
	err := r.db.Where("da_xoa = ?", false).Order("so_ban").Find(&rows).Error
	return rows, err
}

func (r *TableRepository) Save(t *diningEntity.Table) error {
	return r.db.Save(t).Error
}

func (r *TableRepository) Create(t *diningEntity.Table) error {
	return r.db.Create(t).Error
}

// NextTableNumber returns max(so_ban)+1, starting at 1.
func (r *TableRepository) NextTableNumber() (int, error) {
	var max *int
	err := r.db.Model(&diningEntity.Table{}).
		Select("MAX(so_ban)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}

// SetStatus updates the occupancy status of a table.
func (r *TableRepository) SetStatus(tx *gorm.DB, id uint, status string) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&diningEntity.Table{}).
		Where("id = ?", id).
		Update("trang_thai", status).Error
}

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(res *diningEntity.TableReservation) error {
	return r.db.Create(res).Error
}

func (r *ReservationRepository) FindByID(id uint) (*diningEntity.TableReservation, error) {
	var res diningEntity.TableReservation
	if err := r.db.First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) SetStatus(id uint, status string) error {
	return r.db.Model(&diningEntity.TableReservation{}).
		Where("id = ?", id).
		Update("trang_thai", status).Error
}
