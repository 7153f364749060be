package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// SessionAssignment is one entry of a batch assignment: credit Amount of the
// payment to the given session.
type SessionAssignment struct {
	SessionID int64
	Amount    decimal.Decimal
}

// AssignPaymentInput carries a full batch assignment request.
type AssignPaymentInput struct {
	PaymentID   int64
	Assignments []SessionAssignment
}

// AssignPaymentResult summarises a successful batch assignment.
type AssignPaymentResult struct {
	TotalAssignedAmount    decimal.Decimal
	RemainingPaymentAmount decimal.Decimal
	AssignedSessionsCount  int
}

// EditAllocationResult summarises a successful amount edit.
type EditAllocationResult struct {
	AllocationID           int64
	OldAmount              decimal.Decimal
	NewAmount              decimal.Decimal
	RemainingPaymentAmount decimal.Decimal
}

// AllocationDetail is the read-only projection of a single allocation.
type AllocationDetail struct {
	ID        int64
	SessionID int64
	PaymentID int64
	Amount    decimal.Decimal
}

// AllocationService is the payment-allocation engine. All mutations run their
// checks and effects in one store transaction, so a batch either lands whole
// or not at all and two concurrent requests cannot jointly over-allocate a
// payment.
type AllocationService interface {
	// AssignPayment validates and creates a batch of allocations. Failure
	// modes, checked in order: domain.ErrPaymentNotFound,
	// domain.ErrEmptyAssignments, domain.ErrNonPositiveAmount,
	// *domain.SessionsNotFoundError, *domain.ClientMismatchError,
	// *domain.CapacityExceededError.
	AssignPayment(ctx context.Context, in AssignPaymentInput) (*AssignPaymentResult, error)

	// EditAllocation overwrites an allocation's amount in place. The linkage
	// to its session and payment never changes.
	EditAllocation(ctx context.Context, id int64, newAmount decimal.Decimal) (*EditAllocationResult, error)

	// DeleteAllocation removes an allocation, freeing its amount as headroom.
	// A missing id is routine, reported as (false, nil) rather than an error.
	DeleteAllocation(ctx context.Context, id int64) (bool, error)

	// GetAllocation returns domain.ErrAllocationNotFound when absent.
	GetAllocation(ctx context.Context, id int64) (*AllocationDetail, error)
}
