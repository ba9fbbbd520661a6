package resolvers

import (
	"context"
	"errors"

	"gorm.io/gorm"

	gqlmodels "github.com/DoTranTuyen/fullstack-dath/graphql/models"
	catalogEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/catalog"
	catalogRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/catalog"
	salesRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/sales"
	recipeService "github.com/DoTranTuyen/fullstack-dath/service/recipe"
	searchService "github.com/DoTranTuyen/fullstack-dath/service/search"
)

// Resolver answers the read-side Query fields. It reuses the same repositories
// and services as the REST layer, so produceable counts here follow the same
// fresh-stock rule as /api/menu.
type Resolver struct {
	db         *gorm.DB
	products   *catalogRepo.ProductRepository
	categories *catalogRepo.CategoryRepository
	details    *salesRepo.OrderDetailRepository
	recipes    *recipeService.Service
}

func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{
		db:         db,
		products:   catalogRepo.NewProductRepository(db),
		categories: catalogRepo.NewCategoryRepository(db),
		details:    salesRepo.NewOrderDetailRepository(db),
		recipes:    recipeService.NewService(db),
	}
}

func (r *Resolver) toMenuItem(p catalogEntity.Product, produceable int) *gqlmodels.MenuItem {
	item := &gqlmodels.MenuItem{
		ID:          int32(p.ID),
		Name:        p.Name,
		Price:       float64(p.Price),
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Produceable: int32(produceable),
	}
	if p.CategoryID != 0 {
		cid := int32(p.CategoryID)
		item.CategoryID = &cid
	}
	return item
}

func (r *Resolver) Menu(ctx context.Context, categoryID *int32) ([]*gqlmodels.MenuItem, error) {
	products, err := r.products.ActiveMenu()
	if err != nil {
		return nil, err
	}
	if categoryID != nil {
		filtered := products[:0]
		for _, p := range products {
			if p.CategoryID == uint(*categoryID) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	counts, err := r.recipes.ProduceableCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	items := make([]*gqlmodels.MenuItem, 0, len(products))
	for _, p := range products {
		items = append(items, r.toMenuItem(p, counts[p.ID]))
	}
	return items, nil
}

func (r *Resolver) MenuItem(ctx context.Context, id int32) (*gqlmodels.MenuItem, error) {
	p, err := r.products.FindByID(nil, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	count, err := r.recipes.ProduceableCount(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return r.toMenuItem(*p, count), nil
}

func (r *Resolver) Categories(ctx context.Context) ([]*gqlmodels.Category, error) {
	cats, err := r.categories.All()
	if err != nil {
		return nil, err
	}
	out := make([]*gqlmodels.Category, 0, len(cats))
	for _, c := range cats {
		out = append(out, &gqlmodels.Category{ID: int32(c.ID), Name: c.Name})
	}
	return out, nil
}

func (r *Resolver) SearchMenu(ctx context.Context, query string, limit int32) ([]*gqlmodels.MenuItem, error) {
	hits, err := searchService.GetService().Search(ctx, query, int(limit), r.products)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.ID)
	}
	counts, err := r.recipes.ProduceableCounts(ctx, ids)
	if err != nil {
		return nil, err
	}
	products, err := r.products.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	items := make([]*gqlmodels.MenuItem, 0, len(products))
	for _, p := range products {
		items = append(items, r.toMenuItem(p, counts[p.ID]))
	}
	return items, nil
}

func (r *Resolver) BestSellers(ctx context.Context, limit int32) ([]*gqlmodels.BestSeller, error) {
	rows, err := r.details.BestSellers(int(limit))
	if err != nil {
		return nil, err
	}
	out := make([]*gqlmodels.BestSeller, 0, len(rows))
	for _, row := range rows {
		out = append(out, &gqlmodels.BestSeller{
			ProductID: int32(row.ProductID),
			Name:      row.Name,
			Price:     float64(row.Price),
			TotalSold: int32(row.Total),
		})
	}
	return out, nil
}
