package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"gorm.io/gorm"

	catalogRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/catalog"
	salesRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/sales"
)

// ErrUnavailable signals that the backing model or id universe is not
// loaded. The API maps it to 503, never a silent empty result.
var ErrUnavailable = errors.New("recommend: service unavailable")

// Scorer predicts a preference score for one (user, product) pair. The
// collaborative-filtering model behind it is opaque to this package.
type Scorer interface {
	Predict(userID, productID uint) (float64, error)
}

// Suggestion is one recommended product as served to the client.
type Suggestion struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    int     `json:"price"`
	ImageURL *string `json:"image_url"`
}

// Service is the injectable model handle: loaded (or not) at startup,
// swappable in tests via UseModel.
type Service struct {
	mu         sync.RWMutex
	scorer     Scorer
	productIDs []uint

	details  *salesRepo.OrderDetailRepository
	products *catalogRepo.ProductRepository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		details:  salesRepo.NewOrderDetailRepository(db),
		products: catalogRepo.NewProductRepository(db),
	}
}

// UseModel installs a scorer and the product id universe.
func (s *Service) UseModel(scorer Scorer, productIDs []uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scorer = scorer
	s.productIDs = productIDs
}

// Available reports whether the model and id universe are loaded.
func (s *Service) Available() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scorer != nil && len(s.productIDs) > 0
}

// Suggest returns up to k products the user has not ordered yet, ranked by
// model score (stable sort, descending). An empty result when everything
// was seen is a valid success; a missing model is ErrUnavailable.
func (s *Service) Suggest(ctx context.Context, userID uint, k int) ([]Suggestion, error) {
	s.mu.RLock()
	scorer, universe := s.scorer, s.productIDs
	s.mu.RUnlock()
	if scorer == nil || len(universe) == 0 {
		return nil, ErrUnavailable
	}
	if k <= 0 {
		k = 5
	}

	seen, err := s.details.OrderedProductIDs(userID)
	if err != nil {
		return nil, err
	}

	type scored struct {
		id    uint
		score float64
	}
	candidates := make([]scored, 0, len(universe))
	for _, id := range universe {
		if _, ok := seen[id]; ok {
			continue
		}
		score, err := scorer.Predict(userID, id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		candidates = append(candidates, scored{id: id, score: score})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}
	if len(candidates) == 0 {
		return []Suggestion{}, nil
	}

	ids := make([]uint, len(candidates))
	for i, c := range candidates {
		ids[i] = c.id
	}
	rows, err := s.products.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	out := make([]Suggestion, 0, len(rows))
	for _, p := range rows {
		out = append(out, Suggestion{ID: p.ID, Name: p.Name, Price: p.Price, ImageURL: p.ImageURL})
	}
	return out, nil
}
