package domain

import "github.com/shopspring/decimal"

// SessionFormat distinguishes how a session was held.
type SessionFormat string

const (
	FormatOnline   SessionFormat = "online"
	FormatInPerson SessionFormat = "in_person"
)

// IsValid reports whether the format is one of the known values.
func (f SessionFormat) IsValid() bool {
	switch f {
	case FormatOnline, FormatInPerson:
		return true
	}
	return false
}

// Session is a single billable appointment. HourlyRate is the rate charged for
// this session, captured when it was booked; it may differ from the client's
// current rate. The price is never stored, always derived via Price.
type Session struct {
	ID         int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	Date       Date            `json:"date" gorm:"type:date;not null;index"`
	StartTime  string          `json:"startTime" gorm:"type:varchar(5);not null"`
	Duration   decimal.Decimal `json:"duration" gorm:"type:decimal(6,2);not null"`
	ClientID   int64           `json:"clientId" gorm:"not null;index"`
	Format     SessionFormat   `json:"format" gorm:"type:varchar(16);not null;default:'online'"`
	HourlyRate decimal.Decimal `json:"hourlyRate" gorm:"type:decimal(12,2);not null"`
	TravelFee  decimal.Decimal `json:"travelFee" gorm:"type:decimal(12,2);not null;default:0"`
	Adjustment decimal.Decimal `json:"adjustment" gorm:"type:decimal(12,2);not null;default:0"`
	Topic      *string         `json:"topic,omitempty" gorm:"type:varchar(200)"`
	Note       *string         `json:"note,omitempty" gorm:"type:text"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
}

// Price computes the billable amount for the session:
//
//	hourly_rate * duration + travel_fee + adjustment
//
// Adjustment is signed, so discounts subtract and surcharges add.
func (s *Session) Price() decimal.Decimal {
	return s.HourlyRate.Mul(s.Duration).Add(s.TravelFee).Add(s.Adjustment)
}
