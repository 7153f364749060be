package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
)

// SessionBalance is the payment status of one session. RemainingAmount goes
// negative when a session is over-paid; it is deliberately not clamped.
type SessionBalance struct {
	SessionID       int64
	Price           decimal.Decimal
	PaidAmount      decimal.Decimal
	RemainingAmount decimal.Decimal
	IsPaid          bool
}

// ClientBalance is the aggregate financial position of one client.
//
// Balance compares gross payments against session prices, while the
// paid/unpaid session split counts allocated amounts per session. The two
// views diverge when payments sit unallocated; that asymmetry is intentional.
type ClientBalance struct {
	ClientID            int64
	ClientFullName      string
	TotalSessionsPrice  decimal.Decimal
	TotalPaidAmount     decimal.Decimal
	Balance             decimal.Decimal
	TotalSessionsCount  int
	PaidSessionsCount   int
	UnpaidSessionsCount int
}

// IncomeBySessions is the accrual-basis income report: income belongs to the
// period the work happened in, whether or not it has been paid.
type IncomeBySessions struct {
	PeriodFrom         domain.Date
	PeriodTo           domain.Date
	TotalSessionsCount int
	TotalIncome        decimal.Decimal
	PaidIncome         decimal.Decimal
	UnpaidIncome       decimal.Decimal
}

// IncomeByPayments is the cash-basis income report: income belongs to the
// period the money arrived in, regardless of which session it settles.
type IncomeByPayments struct {
	PeriodFrom         domain.Date
	PeriodTo           domain.Date
	TotalPaymentsCount int
	TotalIncome        decimal.Decimal
}

// ReportsService derives balances and income figures. Read-only; every call
// recomputes from the store.
type ReportsService interface {
	// SessionBalance returns domain.ErrSessionNotFound when the session is absent.
	SessionBalance(ctx context.Context, sessionID int64) (*SessionBalance, error)
	// ClientBalance returns domain.ErrClientNotFound when the client is absent.
	ClientBalance(ctx context.Context, clientID int64) (*ClientBalance, error)
	IncomeBySessions(ctx context.Context, from, to domain.Date) (*IncomeBySessions, error)
	IncomeByPayments(ctx context.Context, from, to domain.Date) (*IncomeByPayments, error)
}
