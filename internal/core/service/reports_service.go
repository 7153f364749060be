package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
	"github.com/timeformoney/bookkeeping/internal/core/ports"
)

// ReportsService derives balances and income figures from sessions, payments
// and allocations. It never mutates; every figure is recomputed from the store
// on each call, and each report runs inside one transaction so all of its
// reads see the same snapshot.
type ReportsService struct {
	store  ports.Store
	logger zerolog.Logger
}

func NewReportsService(store ports.Store, logger zerolog.Logger) *ReportsService {
	return &ReportsService{store: store, logger: logger}
}

// SessionBalance reports how much of a session's price has been covered by
// allocations. RemainingAmount goes negative when over-paid; not clamped.
func (s *ReportsService) SessionBalance(ctx context.Context, sessionID int64) (*ports.SessionBalance, error) {
	var balance *ports.SessionBalance

	err := s.store.InTx(ctx, func(tx ports.Ledger) error {
		session, err := tx.Sessions().FindByID(ctx, sessionID)
		if err != nil {
			return err
		}
		paid, err := tx.Allocations().SumAmountBySession(ctx, sessionID)
		if err != nil {
			return err
		}

		price := session.Price()
		remaining := price.Sub(paid)
		balance = &ports.SessionBalance{
			SessionID:       sessionID,
			Price:           price,
			PaidAmount:      paid,
			RemainingAmount: remaining,
			IsPaid:          remaining.Sign() <= 0,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return balance, nil
}

// ClientBalance aggregates a client's position. The headline balance compares
// gross payments against total session prices, while the paid/unpaid session
// split is allocation-based; the two can diverge when money sits unallocated.
func (s *ReportsService) ClientBalance(ctx context.Context, clientID int64) (*ports.ClientBalance, error) {
	var balance *ports.ClientBalance

	err := s.store.InTx(ctx, func(tx ports.Ledger) error {
		client, err := tx.Clients().FindByID(ctx, clientID)
		if err != nil {
			return err
		}
		sessions, err := tx.Sessions().ListByClient(ctx, clientID)
		if err != nil {
			return err
		}
		totalPaid, err := tx.Payments().SumAmountByClient(ctx, clientID)
		if err != nil {
			return err
		}

		totalSessionsPrice := decimal.Zero
		paidCount, unpaidCount := 0, 0
		for i := range sessions {
			price := sessions[i].Price()
			totalSessionsPrice = totalSessionsPrice.Add(price)

			allocated, err := tx.Allocations().SumAmountBySession(ctx, sessions[i].ID)
			if err != nil {
				return err
			}
			if allocated.GreaterThanOrEqual(price) {
				paidCount++
			} else {
				unpaidCount++
			}
		}

		balance = &ports.ClientBalance{
			ClientID:            clientID,
			ClientFullName:      client.FullName(),
			TotalSessionsPrice:  totalSessionsPrice,
			TotalPaidAmount:     totalPaid,
			Balance:             totalPaid.Sub(totalSessionsPrice),
			TotalSessionsCount:  len(sessions),
			PaidSessionsCount:   paidCount,
			UnpaidSessionsCount: unpaidCount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return balance, nil
}

// IncomeBySessions is the accrual-basis report over sessions dated within
// [from, to]. PaidIncome sums allocated amounts uncapped, so an over-allocated
// session can push it above TotalIncome and UnpaidIncome below zero.
func (s *ReportsService) IncomeBySessions(ctx context.Context, from, to domain.Date) (*ports.IncomeBySessions, error) {
	var report *ports.IncomeBySessions

	err := s.store.InTx(ctx, func(tx ports.Ledger) error {
		sessions, err := tx.Sessions().ListByDateRange(ctx, from, to)
		if err != nil {
			return err
		}

		totalIncome := decimal.Zero
		paidIncome := decimal.Zero
		unpaidIncome := decimal.Zero
		for i := range sessions {
			price := sessions[i].Price()
			totalIncome = totalIncome.Add(price)

			allocated, err := tx.Allocations().SumAmountBySession(ctx, sessions[i].ID)
			if err != nil {
				return err
			}
			paidIncome = paidIncome.Add(allocated)
			unpaidIncome = unpaidIncome.Add(price.Sub(allocated))
		}

		report = &ports.IncomeBySessions{
			PeriodFrom:         from,
			PeriodTo:           to,
			TotalSessionsCount: len(sessions),
			TotalIncome:        totalIncome,
			PaidIncome:         paidIncome,
			UnpaidIncome:       unpaidIncome,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// IncomeByPayments is the cash-basis report over payments dated within
// [from, to]. Allocation status is irrelevant here.
func (s *ReportsService) IncomeByPayments(ctx context.Context, from, to domain.Date) (*ports.IncomeByPayments, error) {
	var report *ports.IncomeByPayments

	err := s.store.InTx(ctx, func(tx ports.Ledger) error {
		payments, err := tx.Payments().ListByDateRange(ctx, from, to)
		if err != nil {
			return err
		}

		totalIncome := decimal.Zero
		for i := range payments {
			totalIncome = totalIncome.Add(payments[i].Amount)
		}

		report = &ports.IncomeByPayments{
			PeriodFrom:         from,
			PeriodTo:           to,
			TotalPaymentsCount: len(payments),
			TotalIncome:        totalIncome,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
