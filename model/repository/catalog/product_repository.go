package catalog

import (
	"gorm.io/gorm"

	catalogEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/catalog"
	"github.com/DoTranTuyen/fullstack-dath/core/cache"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindByID loads one product, inside tx when given so callers composing a
// transaction never read through a second connection.
func (r *ProductRepository) FindByID(tx *gorm.DB, id uint) (*catalogEntity.Product, error) {
	if tx == nil {
		tx = r.db
	}
	var p catalogEntity.Product
	if err := tx.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByIDs returns products for the given ids, preserving the input order.
func (r *ProductRepository) FindByIDs(ids []uint) ([]catalogEntity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []catalogEntity.Product
	if err := r.db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]catalogEntity.Product, len(rows))
	for _, p := range rows {
		byID[p.ID] = p
	}
	out := make([]catalogEntity.Product, 0, len(rows))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// ActiveMenu returns products visible to customers: active and not soft-deleted.
func (r *ProductRepository) ActiveMenu() ([]catalogEntity.Product, error) {
	var rows []catalogEntity.Product
	err := r.db.
		Where("trang_thai = ? AND da_xoa = ?", catalogEntity.StatusActive, false).
		Order("ngay_tao DESC").
		Find(&rows).Error
	return rows, err
}

// ActiveMenuNames returns the names of all non-deleted products (assistant
// grounding context; inactive items stay listed the way the menu board does).
func (r *ProductRepository) ActiveMenuNames() ([]string, error) {
	var names []string
	err := r.db.Model(&catalogEntity.Product{}).
		Where("da_xoa = ?", false).
		Pluck("ten_san_pham", &names).Error
	return names, err
}

// SearchByName is the SQL fallback for menu search when Elasticsearch is
// not configured.
func (r *ProductRepository) SearchByName(query string, limit int) ([]catalogEntity.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []catalogEntity.Product
	err := r.db.
		Where("ten_san_pham LIKE ? AND da_xoa = ?", "%"+query+"%", false).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *ProductRepository) Create(p *catalogEntity.Product) error {
	if err := r.db.Create(p).Error; err != nil {
		return err
	}
	cache.GetInstance().DeleteByTag("menu")
	return nil
}

func (r *ProductRepository) Update(p *catalogEntity.Product) error {
	if err := r.db.Save(p).Error; err != nil {
		return err
	}
	cache.GetInstance().DeleteByTag("menu")
	return nil
}

// SoftDelete flags a product deleted without removing its order history.
func (r *ProductRepository) SoftDelete(id uint) error {
	err := r.db.Model(&catalogEntity.Product{}).
		Where("id = ?", id).
		Update("da_xoa", true).Error
	if err != nil {
		return err
	}
	cache.GetInstance().DeleteByTag("menu")
	return nil
}
