package catalog

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/catalog"
)

type IngredientRepository struct {
	db *gorm.DB
}

func NewIngredientRepository(db *gorm.DB) *IngredientRepository {
	return &IngredientRepository{db: db}
}

func (r *IngredientRepository) FindByID(id uint) (*catalogEntity.Ingredient, error) {
	var ing catalogEntity.Ingredient
	if err := r.db.First(&ing, id).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

// FindByIDForUpdate loads an ingredient row under SELECT ... FOR UPDATE.
// Must run inside a transaction; serializes concurrent ledger writes for
// the same ingredient. SQLite locks the whole database per transaction,
// so the clause is skipped there.
func (r *IngredientRepository) FindByIDForUpdate(tx *gorm.DB, id uint) (*catalogEntity.Ingredient, error) {
	if tx.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var ing catalogEntity.Ingredient
	if err := tx.First(&ing, id).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *IngredientRepository) All() ([]catalogEntity.Ingredient, error) {
	var rows []catalogEntity.Ingredient
	err := r.db.Order("ten_nguyen_lieu").Find(&rows).Error
	return rows, err
}

func (r *IngredientRepository) Create(ing *catalogEntity.Ingredient) error {
	return r.db.Create(ing).Error
}
