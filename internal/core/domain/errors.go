package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrContactNotFound    = errors.New("contact not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrAllocationNotFound = errors.New("allocation not found")

	// ErrUnknownClient marks a create/update referencing a client id that does
	// not exist. Unlike ErrClientNotFound it is a bad request, not a missing
	// resource: the URL was fine, the payload was not.
	ErrUnknownClient = errors.New("referenced client does not exist")

	ErrEmptyAssignments  = errors.New("assignment list is empty")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrClientMismatch    = errors.New("payment and session belong to different clients")
	ErrCapacityExceeded  = errors.New("allocation exceeds remaining payment amount")

	// ErrConflict surfaces a concurrent-modification abort from the store.
	// Callers may retry the whole operation once.
	ErrConflict = errors.New("operation aborted by concurrent modification")
)

// SessionsNotFoundError reports every missing session id from a batch request
// so the caller can fix the whole request in one round trip.
type SessionsNotFoundError struct {
	MissingIDs []int64
}

func (e *SessionsNotFoundError) Error() string {
	return fmt.Sprintf("sessions not found: %s", joinIDs(e.MissingIDs))
}

func (e *SessionsNotFoundError) Unwrap() error { return ErrSessionNotFound }

// ClientMismatchError reports every session in a batch whose client differs
// from the paying client.
type ClientMismatchError struct {
	PaymentID  int64
	SessionIDs []int64
}

func (e *ClientMismatchError) Error() string {
	return fmt.Sprintf("sessions %s do not belong to the client of payment %d",
		joinIDs(e.SessionIDs), e.PaymentID)
}

func (e *ClientMismatchError) Unwrap() error { return ErrClientMismatch }

// CapacityExceededError carries everything needed to correct an over-allocation
// attempt without a follow-up query: what was asked, the payment's total, how
// much is already committed elsewhere, and what actually remains.
type CapacityExceededError struct {
	PaymentID       int64
	Requested       decimal.Decimal
	PaymentAmount   decimal.Decimal
	AlreadyAssigned decimal.Decimal
	Headroom        decimal.Decimal
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf(
		"payment %d: requested %s exceeds remaining amount %s (payment total %s, already assigned %s)",
		e.PaymentID, e.Requested.StringFixed(2), e.Headroom.StringFixed(2),
		e.PaymentAmount.StringFixed(2), e.AlreadyAssigned.StringFixed(2))
}

func (e *CapacityExceededError) Unwrap() error { return ErrCapacityExceeded }

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
