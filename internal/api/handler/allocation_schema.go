package handler

// --- Request types ---

type sessionAssignmentRequest struct {
	SessionID int64  `json:"sessionId" validate:"required,gt=0"`
	Amount    string `json:"amount"    validate:"required"`
}

type assignPaymentRequest struct {
	PaymentID int64 `json:"paymentId" validate:"required,gt=0"`
	// Emptiness is judged by the engine so the payment-exists check runs first.
	Assignments []sessionAssignmentRequest `json:"assignments" validate:"dive"`
}

type editAllocationRequest struct {
	NewAmount string `json:"newAmount" validate:"required"`
}

// --- Response types ---

type assignPaymentResponse struct {
	TotalAssignedAmount    string `json:"totalAssignedAmount"`
	RemainingPaymentAmount string `json:"remainingPaymentAmount"`
	AssignedSessionsCount  int    `json:"assignedSessionsCount"`
}

type editAllocationResponse struct {
	AllocationID           int64  `json:"allocationId"`
	OldAmount              string `json:"oldAmount"`
	NewAmount              string `json:"newAmount"`
	RemainingPaymentAmount string `json:"remainingPaymentAmount"`
}

type allocationResponse struct {
	ID        int64  `json:"id"`
	SessionID int64  `json:"sessionId"`
	PaymentID int64  `json:"paymentId"`
	Amount    string `json:"amount"`
}

type sessionBalanceResponse struct {
	SessionID       int64  `json:"sessionId"`
	SessionPrice    string `json:"sessionPrice"`
	PaidAmount      string `json:"paidAmount"`
	RemainingAmount string `json:"remainingAmount"`
	IsPaid          bool   `json:"isPaid"`
}
