package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
	"github.com/timeformoney/bookkeeping/internal/core/ports"
)

// PaymentService manages received payments.
type PaymentService struct {
	store  ports.Store
	logger zerolog.Logger
}

func NewPaymentService(store ports.Store, logger zerolog.Logger) *PaymentService {
	return &PaymentService{store: store, logger: logger}
}

func (s *PaymentService) List(ctx context.Context) ([]domain.Payment, error) {
	return s.store.Payments().List(ctx)
}

func (s *PaymentService) Get(ctx context.Context, id int64) (*domain.Payment, error) {
	return s.store.Payments().FindByID(ctx, id)
}

func (s *PaymentService) Create(ctx context.Context, p *domain.Payment) error {
	if p.Amount.Sign() <= 0 {
		return fmt.Errorf("payment: %w", domain.ErrNonPositiveAmount)
	}
	err := s.store.InTx(ctx, func(tx ports.Ledger) error {
		if err := requireClient(ctx, tx, p.ClientID); err != nil {
			return err
		}
		return tx.Payments().Create(ctx, p)
	})
	if err != nil {
		return err
	}
	s.logger.Info().
		Int64("payment_id", p.ID).
		Int64("client_id", p.ClientID).
		Str("amount", p.Amount.StringFixed(2)).
		Str("method", string(p.Method)).
		Msg("payment recorded")
	return nil
}

// Update rewrites a payment row. Shrinking the amount below what is already
// allocated would break the capacity invariant, so that case is rejected.
func (s *PaymentService) Update(ctx context.Context, p *domain.Payment) error {
	if p.Amount.Sign() <= 0 {
		return fmt.Errorf("payment: %w", domain.ErrNonPositiveAmount)
	}
	return s.store.InTx(ctx, func(tx ports.Ledger) error {
		if _, err := tx.Payments().FindByID(ctx, p.ID); err != nil {
			return err
		}
		if err := requireClient(ctx, tx, p.ClientID); err != nil {
			return err
		}
		assigned, err := tx.Allocations().SumAmountByPayment(ctx, p.ID)
		if err != nil {
			return err
		}
		if p.Amount.LessThan(assigned) {
			return &domain.CapacityExceededError{
				PaymentID:       p.ID,
				Requested:       p.Amount,
				PaymentAmount:   p.Amount,
				AlreadyAssigned: assigned,
				Headroom:        p.Amount.Sub(assigned),
			}
		}
		return tx.Payments().Update(ctx, p)
	})
}

func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	err := s.store.InTx(ctx, func(tx ports.Ledger) error {
		if _, err := tx.Payments().FindByID(ctx, id); err != nil {
			return err
		}
		return tx.Payments().Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info().Int64("payment_id", id).Msg("payment deleted")
	return nil
}
