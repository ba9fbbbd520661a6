package recipe

import (
	"context"

	"gorm.io/gorm"

	catalogRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/catalog"
)

// Service derives produce-ability from recipes and live stock. Values are
// recomputed per request since a ledger write can invalidate them at any time,
// so they are never cached.
type Service struct {
	db      *gorm.DB
	recipes *catalogRepo.RecipeRepository
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, recipes: catalogRepo.NewRecipeRepository(db)}
}

// ProduceableCount returns how many units of a product the current stock
// can make: min over requirements of stock / quantity_required. Zero when
// the product has no recipe or any required ingredient is exhausted.
func (s *Service) ProduceableCount(ctx context.Context, productID uint) (int, error) {
	rows, err := s.recipes.ForProduct(s.db.WithContext(ctx), productID)
	if err != nil {
		return 0, err
	}
	min := -1
	for _, item := range rows {
		if item.QuantityRequired == 0 {
			// defensive: quantity_required > 0 by invariant
			continue
		}
		if item.Ingredient == nil {
			continue
		}
		n := item.Ingredient.QuantityInStock / item.QuantityRequired
		if n < 0 {
			n = 0
		}
		if min == -1 || n < min {
			min = n
		}
	}
	if min == -1 {
		return 0, nil
	}
	return min, nil
}

// ProduceableCounts computes produce-ability for many products in one call.
func (s *Service) ProduceableCounts(ctx context.Context, productIDs []uint) (map[uint]int, error) {
	out := make(map[uint]int, len(productIDs))
	for _, id := range productIDs {
		n, err := s.ProduceableCount(ctx, id)
		if err != nil {
			return nil, err
		}
		out[id] = n
	}
	return out, nil
}
