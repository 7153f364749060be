package domain

// ContactType classifies a contact channel.
type ContactType string

const (
	ContactEmail ContactType = "email"
	ContactPhone ContactType = "phone"
	ContactOther ContactType = "other"
)

// IsValid reports whether the contact type is one of the known values.
func (t ContactType) IsValid() bool {
	switch t {
	case ContactEmail, ContactPhone, ContactOther:
		return true
	}
	return false
}

// Contact is a way to reach a client.
type Contact struct {
	ID       int64       `json:"id" gorm:"primaryKey;autoIncrement"`
	ClientID int64       `json:"clientId" gorm:"not null;index"`
	Type     ContactType `json:"type" gorm:"type:varchar(16);not null;default:'email'"`
	Value    string      `json:"value" gorm:"type:varchar(200);not null"`
	Note     *string     `json:"note,omitempty" gorm:"type:text"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
}
