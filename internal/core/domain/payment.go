package domain

import "github.com/shopspring/decimal"

// PaymentMethod identifies how a payment was received.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodBankTransfer PaymentMethod = "bank_transfer"
	MethodRevolut      PaymentMethod = "revolut"
	MethodOther        PaymentMethod = "other"
)

// IsValid reports whether the method is one of the known values.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodRevolut, MethodOther:
		return true
	}
	return false
}

// Payment is money received from a client. How much of it settles which
// session is tracked separately through allocations; the payment row itself
// is immutable with respect to allocation activity.
type Payment struct {
	ID       int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Date     Date            `json:"date" gorm:"type:date;not null;index"`
	ClientID int64           `json:"clientId" gorm:"not null;index"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	Method   PaymentMethod   `json:"method" gorm:"type:varchar(16);not null;default:'cash'"`
	Note     *string         `json:"note,omitempty" gorm:"type:text"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
}
