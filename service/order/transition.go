package order

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	inventoryEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/inventory"
	salesEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/sales"
	catalogRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/catalog"
	salesRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/sales"
	inventoryService "github.com/DoTranTuyen/fullstack-dath/service/inventory"
)

var (
	// ErrUnknownStatus is returned for a status value outside the enum.
	ErrUnknownStatus = errors.New("order: unknown status")
	// ErrInvalidTransition is returned for a move the transition table
	// does not allow (e.g. completed -> pending).
	ErrInvalidTransition = errors.New("order: invalid status transition")
)

// Service owns order/line mutations. Line status only ever changes through
// Transition, so the completion-triggered stock deduction cannot be
// bypassed by a direct field write.
type Service struct {
	db       *gorm.DB
	orders   *salesRepo.OrderRepository
	details  *salesRepo.OrderDetailRepository
	invoices *salesRepo.InvoiceRepository
	recipes  *catalogRepo.RecipeRepository
	products *catalogRepo.ProductRepository
	ledger   *inventoryService.Ledger
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		db:       db,
		orders:   salesRepo.NewOrderRepository(db),
		details:  salesRepo.NewOrderDetailRepository(db),
		invoices: salesRepo.NewInvoiceRepository(db),
		recipes:  catalogRepo.NewRecipeRepository(db),
		products: catalogRepo.NewProductRepository(db),
		ledger:   inventoryService.NewLedger(db),
	}
}

// Transition moves one order line to newStatus inside tx. A same-status
// save is a no-op; in particular, re-saving a completed line never
// deducts again. Reaching completed from any other state deducts the
// line's recipe exactly once.
func (s *Service) Transition(ctx context.Context, tx *gorm.DB, detailID uint, newStatus salesEntity.LineStatus, userID *uint) error {
	run := func(tx *gorm.DB) error {
		detail, err := s.details.FindByID(tx, detailID)
		if err != nil {
			return err
		}
		if detail.Status == newStatus {
			return nil
		}
		if !newStatus.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownStatus, newStatus)
		}
		if !salesEntity.CanTransition(detail.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, detail.Status, newStatus)
		}

		prev := detail.Status
		if err := s.details.UpdateStatus(tx, detail.ID, newStatus); err != nil {
			return err
		}
		detail.Status = newStatus

		if newStatus == salesEntity.StatusCompleted && prev != salesEntity.StatusCompleted {
			if err := s.deductIngredients(ctx, tx, detail, userID); err != nil {
				return err
			}
		}
		if newStatus == salesEntity.StatusCancelled {
			// cancelled lines drop out of the rollups
			if err := s.recomputeTotals(tx, detail.OrderID); err != nil {
				return err
			}
		}
		return nil
	}
	if tx != nil {
		return run(tx)
	}
	return s.db.WithContext(ctx).Transaction(run)
}

// deductIngredients writes one export ledger entry for the line's primary
// recipe requirement. A product with no tracked ingredients is valid and
// skips deduction silently.
func (s *Service) deductIngredients(ctx context.Context, tx *gorm.DB, detail *salesEntity.OrderDetail, userID *uint) error {
	item, err := s.recipes.PrimaryForProduct(tx, detail.ProductID)
	if err != nil {
		return err
	}
	if item == nil {
		return nil
	}
	totalUsed := item.QuantityRequired * detail.Quantity
	name := ""
	if p, err := s.products.FindByID(tx, detail.ProductID); err == nil {
		name = p.Name
	}
	note := fmt.Sprintf("Đơn hàng (#00%d) - (%s x %d)", detail.OrderID, name, totalUsed)
	_, err = s.ledger.Record(ctx, tx, item.IngredientID, -totalUsed, inventoryEntity.ReasonExport, note, userID)
	return err
}

// TransitionOrder moves an order header status under the same legal-move
// table as lines.
func (s *Service) TransitionOrder(ctx context.Context, tx *gorm.DB, orderID uint, newStatus salesEntity.LineStatus) error {
	run := func(tx *gorm.DB) error {
		o, err := s.orders.FindByID(tx, orderID)
		if err != nil {
			return err
		}
		if o.Status == newStatus {
			return nil
		}
		if !newStatus.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownStatus, newStatus)
		}
		if !salesEntity.CanTransition(o.Status, newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, newStatus)
		}
		return tx.Model(o).Update("trang_thai", string(newStatus)).Error
	}
	if tx != nil {
		return run(tx)
	}
	return s.db.WithContext(ctx).Transaction(run)
}

// recomputeTotals refreshes the order rollup and its invoice rollup inside
// the caller's transaction.
func (s *Service) recomputeTotals(tx *gorm.DB, orderID uint) error {
	o, err := s.orders.FindByID(tx, orderID)
	if err != nil {
		return err
	}
	if err := s.orders.RecomputeTotal(tx, orderID); err != nil {
		return err
	}
	return s.invoices.RecomputeTotal(tx, o.InvoiceID)
}
