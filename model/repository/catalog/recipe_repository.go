package catalog

import (
	"errors"

	"gorm.io/gorm"

	catalogEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/catalog"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// ForProduct returns all recipe rows of a product with ingredients preloaded.
func (r *RecipeRepository) ForProduct(tx *gorm.DB, productID uint) ([]catalogEntity.RecipeItem, error) {
	if tx == nil {
		tx = r.db
	}
	var rows []catalogEntity.RecipeItem
	err := tx.Preload("Ingredient").
		Where("ma_san_pham = ?", productID).
		Order("id").
		Find(&rows).Error
	return rows, err
}

// PrimaryForProduct returns the first recipe row of a product, or (nil, nil)
// when the product has no tracked ingredients.
func (r *RecipeRepository) PrimaryForProduct(tx *gorm.DB, productID uint) (*catalogEntity.RecipeItem, error) {
	if tx == nil {
		tx = r.db
	}
	var row catalogEntity.RecipeItem
	err := tx.Preload("Ingredient").
		Where("ma_san_pham = ?", productID).
		Order("id").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *RecipeRepository) Create(item *catalogEntity.RecipeItem) error {
	return r.db.Create(item).Error
}
