package domain

import "github.com/shopspring/decimal"

// Allocation credits part of a payment's amount to a specific session.
// Rows are created, edited and deleted exclusively through the allocation
// service so that the sum of a payment's allocations never exceeds the
// payment amount and both sides always belong to the same client.
type Allocation struct {
	ID        int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	SessionID int64           `json:"sessionId" gorm:"not null;index"`
	PaymentID int64           `json:"paymentId" gorm:"not null;index"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`

	Session *Session `json:"session,omitempty" gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	Payment *Payment `json:"payment,omitempty" gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE"`
}
