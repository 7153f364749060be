package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
	"github.com/timeformoney/bookkeeping/internal/core/ports"
)

// AllocationService implements the payment-allocation engine. Every mutation
// runs its precondition checks and its writes inside one store transaction so
// the headroom check and the insert observe the same snapshot; two concurrent
// requests against the same payment cannot both pass the check and jointly
// over-allocate it.
type AllocationService struct {
	store  ports.Store
	logger zerolog.Logger
}

func NewAllocationService(store ports.Store, logger zerolog.Logger) *AllocationService {
	return &AllocationService{store: store, logger: logger}
}

// AssignPayment validates and creates a batch of allocations against a single
// payment. Checks run in a fixed order and the first failure wins; on failure
// no row from the batch is persisted.
func (s *AllocationService) AssignPayment(ctx context.Context, in ports.AssignPaymentInput) (*ports.AssignPaymentResult, error) {
	var result *ports.AssignPaymentResult

	err := s.store.InTx(ctx, func(tx ports.Ledger) error {
		payment, err := tx.Payments().FindByID(ctx, in.PaymentID)
		if err != nil {
			return err
		}

		if len(in.Assignments) == 0 {
			return domain.ErrEmptyAssignments
		}
		for _, a := range in.Assignments {
			if a.Amount.Sign() <= 0 {
				return fmt.Errorf("session %d: %w", a.SessionID, domain.ErrNonPositiveAmount)
			}
		}

		sessionIDs := make([]int64, 0, len(in.Assignments))
		for _, a := range in.Assignments {
			sessionIDs = append(sessionIDs, a.SessionID)
		}
		sessions, err := tx.Sessions().FindByIDs(ctx, sessionIDs)
		if err != nil {
			return err
		}
		byID := make(map[int64]*domain.Session, len(sessions))
		for i := range sessions {
			byID[sessions[i].ID] = &sessions[i]
		}

		if missing := missingIDs(sessionIDs, byID); len(missing) > 0 {
			return &domain.SessionsNotFoundError{MissingIDs: missing}
		}

		var mismatched []int64
		for _, id := range dedupe(sessionIDs) {
			if byID[id].ClientID != payment.ClientID {
				mismatched = append(mismatched, id)
			}
		}
		if len(mismatched) > 0 {
			sort.Slice(mismatched, func(i, j int) bool { return mismatched[i] < mismatched[j] })
			return &domain.ClientMismatchError{PaymentID: payment.ID, SessionIDs: mismatched}
		}

		alreadyAssigned, err := tx.Allocations().SumAmountByPayment(ctx, payment.ID)
		if err != nil {
			return err
		}
		requested := decimal.Zero
		for _, a := range in.Assignments {
			requested = requested.Add(a.Amount)
		}
		headroom := payment.Amount.Sub(alreadyAssigned)
		if requested.GreaterThan(headroom) {
			return &domain.CapacityExceededError{
				PaymentID:       payment.ID,
				Requested:       requested,
				PaymentAmount:   payment.Amount,
				AlreadyAssigned: alreadyAssigned,
				Headroom:        headroom,
			}
		}

		allocations := make([]*domain.Allocation, 0, len(in.Assignments))
		for _, a := range in.Assignments {
			allocations = append(allocations, &domain.Allocation{
				SessionID: a.SessionID,
				PaymentID: payment.ID,
				Amount:    a.Amount,
			})
		}
		if err := tx.Allocations().CreateBatch(ctx, allocations); err != nil {
			return err
		}

		result = &ports.AssignPaymentResult{
			TotalAssignedAmount:    requested,
			RemainingPaymentAmount: headroom.Sub(requested),
			AssignedSessionsCount:  len(in.Assignments),
		}
		return nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Int64("payment_id", in.PaymentID).Msg("assign payment rejected")
		return nil, err
	}

	s.logger.Info().
		Int64("payment_id", in.PaymentID).
		Str("assigned", result.TotalAssignedAmount.StringFixed(2)).
		Str("remaining", result.RemainingPaymentAmount.StringFixed(2)).
		Int("sessions", result.AssignedSessionsCount).
		Msg("payment assigned to sessions")
	return result, nil
}

// EditAllocation overwrites an allocation's amount. Headroom is recomputed
// from all other allocations on the same payment, so shrinking an allocation
// immediately frees capacity and growing one is capped by what remains.
func (s *AllocationService) EditAllocation(ctx context.Context, id int64, newAmount decimal.Decimal) (*ports.EditAllocationResult, error) {
	var result *ports.EditAllocationResult

	err := s.store.InTx(ctx, func(tx ports.Ledger) error {
		allocation, err := tx.Allocations().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if newAmount.Sign() <= 0 {
			return fmt.Errorf("allocation %d: %w", id, domain.ErrNonPositiveAmount)
		}

		payment, err := tx.Payments().FindByID(ctx, allocation.PaymentID)
		if err != nil {
			// Referential integrity should make this impossible.
			return err
		}

		otherAssigned, err := tx.Allocations().SumAmountByPaymentExcluding(ctx, payment.ID, allocation.ID)
		if err != nil {
			return err
		}
		headroom := payment.Amount.Sub(otherAssigned)
		if newAmount.GreaterThan(headroom) {
			return &domain.CapacityExceededError{
				PaymentID:       payment.ID,
				Requested:       newAmount,
				PaymentAmount:   payment.Amount,
				AlreadyAssigned: otherAssigned,
				Headroom:        headroom,
			}
		}

		if err := tx.Allocations().UpdateAmount(ctx, allocation.ID, newAmount); err != nil {
			return err
		}

		result = &ports.EditAllocationResult{
			AllocationID:           allocation.ID,
			OldAmount:              allocation.Amount,
			NewAmount:              newAmount,
			RemainingPaymentAmount: headroom.Sub(newAmount),
		}
		return nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Int64("allocation_id", id).Msg("edit allocation rejected")
		return nil, err
	}

	s.logger.Info().
		Int64("allocation_id", id).
		Str("old", result.OldAmount.StringFixed(2)).
		Str("new", result.NewAmount.StringFixed(2)).
		Msg("allocation amount updated")
	return result, nil
}

// DeleteAllocation removes an allocation. A missing id is an expected outcome,
// reported as (false, nil).
func (s *AllocationService) DeleteAllocation(ctx context.Context, id int64) (bool, error) {
	err := s.store.InTx(ctx, func(tx ports.Ledger) error {
		return tx.Allocations().Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, domain.ErrAllocationNotFound) {
			return false, nil
		}
		return false, err
	}

	s.logger.Info().Int64("allocation_id", id).Msg("allocation deleted")
	return true, nil
}

// GetAllocation is the read-only projection of a single allocation.
func (s *AllocationService) GetAllocation(ctx context.Context, id int64) (*ports.AllocationDetail, error) {
	allocation, err := s.store.Allocations().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.AllocationDetail{
		ID:        allocation.ID,
		SessionID: allocation.SessionID,
		PaymentID: allocation.PaymentID,
		Amount:    allocation.Amount,
	}, nil
}

// missingIDs returns, sorted and deduplicated, the requested ids absent from found.
func missingIDs(requested []int64, found map[int64]*domain.Session) []int64 {
	var missing []int64
	for _, id := range dedupe(requested) {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
	return missing
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
