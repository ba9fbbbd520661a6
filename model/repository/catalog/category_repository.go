package catalog

import (
	"gorm.io/gorm"

	catalogEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/catalog"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) All() ([]catalogEntity.Category, error) {
	var cats []catalogEntity.Category
	err := r.db.Order("id").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id uint) (*catalogEntity.Category, error) {
	var cat catalogEntity.Category
	if err := r.db.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *catalogEntity.Category) error {
	return r.db.Create(cat).Error
}
