package domain

import "github.com/shopspring/decimal"

// ClientStatus represents the lifecycle state of a client relationship.
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
	ClientProspect ClientStatus = "prospect"
	ClientArchived ClientStatus = "archived"
)

// IsValid reports whether the status is one of the known values.
func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientActive, ClientInactive, ClientProspect, ClientArchived:
		return true
	}
	return false
}

// Client is a person or company the practice bills. The hourly rate stored
// here is the current default; every session captures its own rate at booking
// time, so changing this never rewrites history.
type Client struct {
	ID                int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName         string          `json:"firstName" gorm:"type:varchar(100);not null"`
	LastName          string          `json:"lastName" gorm:"type:varchar(100);not null"`
	HourlyRate        decimal.Decimal `json:"hourlyRate" gorm:"type:decimal(12,2);not null"`
	StartDate         *Date           `json:"startDate,omitempty" gorm:"type:date"`
	AcquisitionSource *string         `json:"acquisitionSource,omitempty" gorm:"type:varchar(200)"`
	Status            ClientStatus    `json:"status" gorm:"type:varchar(16);not null;default:'active'"`
	Note              *string         `json:"note,omitempty" gorm:"type:text"`
}

// FullName returns the display name used in reports.
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
