package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
)

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
	// FindByID returns domain.ErrClientNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, c *domain.Client) error
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int64) error
}

// ContactRepository defines persistence operations for contacts.
type ContactRepository interface {
	List(ctx context.Context) ([]domain.Contact, error)
	FindByID(ctx context.Context, id int64) (*domain.Contact, error)
	Create(ctx context.Context, c *domain.Contact) error
	Update(ctx context.Context, c *domain.Contact) error
	Delete(ctx context.Context, id int64) error
}

// SessionRepository defines persistence operations for sessions.
type SessionRepository interface {
	List(ctx context.Context) ([]domain.Session, error)
	FindByID(ctx context.Context, id int64) (*domain.Session, error)
	// FindByIDs returns the sessions that exist among ids; callers diff the
	// result against the request to report missing ids.
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Session, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Session, error)
	// ListByDateRange returns sessions whose date falls in [from, to] inclusive.
	ListByDateRange(ctx context.Context, from, to domain.Date) ([]domain.Session, error)
	Create(ctx context.Context, s *domain.Session) error
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id int64) error
}

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	List(ctx context.Context) ([]domain.Payment, error)
	FindByID(ctx context.Context, id int64) (*domain.Payment, error)
	ListByDateRange(ctx context.Context, from, to domain.Date) ([]domain.Payment, error)
	// SumAmountByClient totals the raw payment amounts a client has made,
	// regardless of allocation status.
	SumAmountByClient(ctx context.Context, clientID int64) (decimal.Decimal, error)
	Create(ctx context.Context, p *domain.Payment) error
	Update(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, id int64) error
}

// AllocationRepository defines persistence operations for allocations.
// Headroom is never cached: every capacity decision re-sums the current rows.
type AllocationRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Allocation, error)
	// CreateBatch inserts all rows or none; it is only called inside InTx.
	CreateBatch(ctx context.Context, allocations []*domain.Allocation) error
	UpdateAmount(ctx context.Context, id int64, amount decimal.Decimal) error
	// Delete returns domain.ErrAllocationNotFound when no row was removed.
	Delete(ctx context.Context, id int64) error
	SumAmountByPayment(ctx context.Context, paymentID int64) (decimal.Decimal, error)
	// SumAmountByPaymentExcluding totals a payment's allocations leaving one
	// out, used when that allocation is about to be overwritten.
	SumAmountByPaymentExcluding(ctx context.Context, paymentID, allocationID int64) (decimal.Decimal, error)
	SumAmountBySession(ctx context.Context, sessionID int64) (decimal.Decimal, error)
}

// Ledger groups the entity repositories behind one consistent view. Inside
// InTx every repository reads the same transaction snapshot.
type Ledger interface {
	Clients() ClientRepository
	Contacts() ContactRepository
	Sessions() SessionRepository
	Payments() PaymentRepository
	Allocations() AllocationRepository
}

// Store is the ledger plus a unit of work. InTx runs fn against a single
// transaction; if fn returns an error nothing fn wrote is kept. The store
// maps concurrent-write aborts to domain.ErrConflict.
type Store interface {
	Ledger
	InTx(ctx context.Context, fn func(tx Ledger) error) error
}
