package assistant

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// GroundingContext is the fresh per-call data the assistant is grounded
// on. Never cached: a completed line or menu edit must show up in the next
// question.
type GroundingContext struct {
	BestSellers    []string `json:"best_sellers"`
	MenuItems      []string `json:"menu_items"`
	TodaySuggested []string `json:"today_suggested"`
}

// BuildContext assembles the grounding context from live order and product
// data. The three reads are independent and run in parallel.
func (s *Service) BuildContext(ctx context.Context) (*GroundingContext, error) {
	var gc GroundingContext
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.details.BestSellers(5)
		if err != nil {
			return err
		}
		for _, r := range rows {
			gc.BestSellers = append(gc.BestSellers,
				fmt.Sprintf("%s – bán %d phần – giá %dđ", r.Name, r.Total, r.Price))
		}
		return nil
	})
	g.Go(func() error {
		names, err := s.products.ActiveMenuNames()
		if err != nil {
			return err
		}
		gc.MenuItems = names
		return nil
	})
	g.Go(func() error {
		gc.TodaySuggested = suggestByTime(s.now())
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &gc, nil
}

// suggestByTime is the time-of-day heuristic: breakfast before 11, lunch
// until 17, dinner after.
func suggestByTime(now time.Time) []string {
	switch h := now.Hour(); {
	case h < 11:
		return []string{"Bánh mì trứng", "Bún bò", "Cafe sữa đá"}
	case h < 17:
		return []string{"Cơm gà", "Bún chả", "Trà tắc", "Bún thịt nướng"}
	default:
		return []string{"Lẩu Thái", "Pizza", "Mì Ý", "Trà đào cam sả"}
	}
}
