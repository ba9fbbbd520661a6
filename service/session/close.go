package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	diningEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/dining"
	salesEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/sales"
	diningRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/dining"
	salesRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/sales"
	orderService "github.com/DoTranTuyen/fullstack-dath/service/order"
)

// ErrSessionClosed is returned when closing a session that is not active.
// Re-closing is rejected, never silently absorbed, so callers can tell the
// difference.
var ErrSessionClosed = errors.New("session: already closed")

// Service owns the table-session lifecycle. Closing a session is the point
// where "what was ordered is what was consumed" becomes final: it cascades
// completion down to every open order and line, which fires the inventory
// deduction for lines nobody marked complete individually.
type Service struct {
	db       *gorm.DB
	sessions *salesRepo.SessionRepository
	orders   *salesRepo.OrderRepository
	details  *salesRepo.OrderDetailRepository
	invoices *salesRepo.InvoiceRepository
	tables   *diningRepo.TableRepository
	lines    *orderService.Service
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		db:       db,
		sessions: salesRepo.NewSessionRepository(db),
		orders:   salesRepo.NewOrderRepository(db),
		details:  salesRepo.NewOrderDetailRepository(db),
		invoices: salesRepo.NewInvoiceRepository(db),
		tables:   diningRepo.NewTableRepository(db),
		lines:    orderService.NewService(db),
	}
}

// Open starts a session for a customer at a table and marks the table
// occupied. An invoice is opened with it so ordering can begin.
func (s *Service) Open(ctx context.Context, customerID, tableID uint) (*salesEntity.Session, error) {
	var sess *salesEntity.Session
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sess = &salesEntity.Session{
			CustomerID: customerID,
			TableID:    tableID,
			Status:     salesEntity.SessionActive,
		}
		if err := tx.Create(sess).Error; err != nil {
			return err
		}
		inv := &salesEntity.Invoice{SessionID: sess.ID}
		if err := tx.Create(inv).Error; err != nil {
			return err
		}
		return s.tables.SetStatus(tx, tableID, diningEntity.TableOccupied)
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Close finalizes a session: every non-cancelled order under its invoices
// becomes completed, every non-cancelled line is completed through the
// order state machine (so deduction fires), ended_at is stamped and the
// table is released. All of it runs in one transaction, so a failure midway
// leaves no partially-closed session.
func (s *Service) Close(ctx context.Context, sessionID uint, userID *uint) (*salesEntity.Session, error) {
	var closed *salesEntity.Session
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sess, err := s.sessions.FindByID(tx, sessionID)
		if err != nil {
			return err
		}
		if sess.Status != salesEntity.SessionActive {
			return fmt.Errorf("%w: session %d", ErrSessionClosed, sessionID)
		}

		invoices, err := s.sessions.InvoicesForSession(tx, sessionID)
		if err != nil {
			return err
		}
		for _, inv := range invoices {
			orders, err := s.orders.ForInvoice(tx, inv.ID, salesEntity.StatusCancelled)
			if err != nil {
				return err
			}
			for _, o := range orders {
				lines, err := s.details.ForOrder(tx, o.ID, salesEntity.StatusCancelled)
				if err != nil {
					return err
				}
				for _, line := range lines {
					if line.Status == salesEntity.StatusCompleted {
						continue
					}
					if err := s.lines.Transition(ctx, tx, line.ID, salesEntity.StatusCompleted, userID); err != nil {
						return fmt.Errorf("session close: line %d: %w", line.ID, err)
					}
				}
				if o.Status != salesEntity.StatusCompleted {
					if err := s.lines.TransitionOrder(ctx, tx, o.ID, salesEntity.StatusCompleted); err != nil {
						return fmt.Errorf("session close: order %d: %w", o.ID, err)
					}
				}
			}
			if err := s.invoices.RecomputeTotal(tx, inv.ID); err != nil {
				return err
			}
		}

		sess.Status = salesEntity.SessionClosed
		if sess.EndedAt == nil {
			now := time.Now()
			sess.EndedAt = &now
		}
		if err := s.sessions.Save(tx, sess); err != nil {
			return err
		}
		if err := s.tables.SetStatus(tx, sess.TableID, diningEntity.TableAvailable); err != nil {
			return err
		}
		closed = sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

// Settle records the payment method and discount on an invoice of a closed
// or closing session.
func (s *Service) Settle(ctx context.Context, invoiceID uint, paymentMethod string, discount int) error {
	switch paymentMethod {
	case salesEntity.PaymentCash, salesEntity.PaymentBankTransfer, salesEntity.PaymentMomo:
	default:
		return fmt.Errorf("session: unknown payment method %q", paymentMethod)
	}
	return s.db.WithContext(ctx).Model(&salesEntity.Invoice{}).
		Where("id = ?", invoiceID).
		Updates(map[string]interface{}{
			"phuong_thuc_thanh_toan": paymentMethod,
			"giam_gia":               discount,
		}).Error
}
