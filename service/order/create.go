package order

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	salesEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/sales"
)

// ErrEmptyOrder is returned when an order is created without lines.
var ErrEmptyOrder = errors.New("order: at least one line is required")

// LineInput is one requested product line.
type LineInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// Create opens an order under an invoice with its lines. Price is
// snapshotted from the product at creation time; line totals and both
// rollups are written in the same transaction.
func (s *Service) Create(ctx context.Context, invoiceID uint, lines []LineInput) (*salesEntity.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	var created *salesEntity.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.invoices.FindByID(tx, invoiceID); err != nil {
			return fmt.Errorf("order: load invoice %d: %w", invoiceID, err)
		}
		o := &salesEntity.Order{InvoiceID: invoiceID, Status: salesEntity.StatusPending}
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for _, in := range lines {
			if in.Quantity <= 0 {
				return fmt.Errorf("order: product %d: quantity must be positive", in.ProductID)
			}
			p, err := s.products.FindByID(tx, in.ProductID)
			if err != nil {
				return fmt.Errorf("order: load product %d: %w", in.ProductID, err)
			}
			d := &salesEntity.OrderDetail{
				OrderID:   o.ID,
				ProductID: p.ID,
				Quantity:  in.Quantity,
				Price:     p.Price,
				Total:     in.Quantity * p.Price,
				Status:    salesEntity.StatusPending,
			}
			if err := s.details.Create(tx, d); err != nil {
				return err
			}
		}
		if err := s.recomputeTotals(tx, o.ID); err != nil {
			return err
		}
		loaded, err := s.orders.FindByID(tx, o.ID)
		if err != nil {
			return err
		}
		created = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Lines returns the lines of an order.
func (s *Service) Lines(ctx context.Context, orderID uint) ([]salesEntity.OrderDetail, error) {
	return s.details.ForOrder(s.db.WithContext(ctx), orderID, "")
}
