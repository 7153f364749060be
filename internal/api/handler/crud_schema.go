package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
)

// Request and response types for the CRUD resources, with mapping to and from
// the domain entities. Requests carry money and dates as strings; the mappers
// reject what the validator tags cannot express (bad decimals, bad dates).

// --- Clients ---

type clientRequest struct {
	FirstName         string  `json:"firstName"  validate:"required"`
	LastName          string  `json:"lastName"   validate:"required"`
	HourlyRate        string  `json:"hourlyRate" validate:"required"`
	StartDate         *string `json:"startDate,omitempty"`
	AcquisitionSource *string `json:"acquisitionSource,omitempty"`
	Status            string  `json:"status" validate:"omitempty,oneof=active inactive prospect archived"`
	Note              *string `json:"note,omitempty"`
}

func (r *clientRequest) toDomain(id int64) (*domain.Client, error) {
	rate, err := parseMoney("hourlyRate", r.HourlyRate)
	if err != nil {
		return nil, err
	}
	if rate.Sign() < 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "hourlyRate must not be negative")
	}

	var startDate *domain.Date
	if r.StartDate != nil {
		d, err := parseDate("startDate", *r.StartDate)
		if err != nil {
			return nil, err
		}
		startDate = &d
	}

	status := domain.ClientStatus(r.Status)
	if r.Status == "" {
		status = domain.ClientActive
	}

	return &domain.Client{
		ID:                id,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		HourlyRate:        rate,
		StartDate:         startDate,
		AcquisitionSource: r.AcquisitionSource,
		Status:            status,
		Note:              r.Note,
	}, nil
}

type clientResponse struct {
	ID                int64   `json:"id"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	HourlyRate        string  `json:"hourlyRate"`
	StartDate         *string `json:"startDate,omitempty"`
	AcquisitionSource *string `json:"acquisitionSource,omitempty"`
	Status            string  `json:"status"`
	Note              *string `json:"note,omitempty"`
}

func toClientResponse(c *domain.Client) clientResponse {
	var startDate *string
	if c.StartDate != nil {
		s := c.StartDate.String()
		startDate = &s
	}
	return clientResponse{
		ID:                c.ID,
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		HourlyRate:        money(c.HourlyRate),
		StartDate:         startDate,
		AcquisitionSource: c.AcquisitionSource,
		Status:            string(c.Status),
		Note:              c.Note,
	}
}

// --- Contacts ---

type contactRequest struct {
	ClientID int64   `json:"clientId" validate:"required,gt=0"`
	Type     string  `json:"type"     validate:"required,oneof=email phone other"`
	Value    string  `json:"value"    validate:"required"`
	Note     *string `json:"note,omitempty"`
}

func (r *contactRequest) toDomain(id int64) *domain.Contact {
	return &domain.Contact{
		ID:       id,
		ClientID: r.ClientID,
		Type:     domain.ContactType(r.Type),
		Value:    r.Value,
		Note:     r.Note,
	}
}

type contactResponse struct {
	ID       int64   `json:"id"`
	ClientID int64   `json:"clientId"`
	Type     string  `json:"type"`
	Value    string  `json:"value"`
	Note     *string `json:"note,omitempty"`
}

func toContactResponse(c *domain.Contact) contactResponse {
	return contactResponse{
		ID:       c.ID,
		ClientID: c.ClientID,
		Type:     string(c.Type),
		Value:    c.Value,
		Note:     c.Note,
	}
}

// --- Sessions ---

type sessionRequest struct {
	Date       string  `json:"date"       validate:"required"`
	StartTime  string  `json:"startTime"  validate:"required,datetime=15:04"`
	Duration   string  `json:"duration"   validate:"required"`
	ClientID   int64   `json:"clientId"   validate:"required,gt=0"`
	Format     string  `json:"format"     validate:"required,oneof=online in_person"`
	HourlyRate string  `json:"hourlyRate" validate:"required"`
	TravelFee  string  `json:"travelFee"  validate:"omitempty"`
	Adjustment string  `json:"adjustment" validate:"omitempty"`
	Topic      *string `json:"topic,omitempty"`
	Note       *string `json:"note,omitempty"`
}

func (r *sessionRequest) toDomain(id int64) (*domain.Session, error) {
	date, err := parseDate("date", r.Date)
	if err != nil {
		return nil, err
	}
	duration, err := parseMoney("duration", r.Duration)
	if err != nil {
		return nil, err
	}
	if duration.Sign() <= 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "duration must be positive")
	}
	rate, err := parseMoney("hourlyRate", r.HourlyRate)
	if err != nil {
		return nil, err
	}

	travelFee := decimal.Zero
	if r.TravelFee != "" {
		if travelFee, err = parseMoney("travelFee", r.TravelFee); err != nil {
			return nil, err
		}
	}
	// Adjustment is signed: discounts are negative, surcharges positive.
	adjustment := decimal.Zero
	if r.Adjustment != "" {
		if adjustment, err = parseMoney("adjustment", r.Adjustment); err != nil {
			return nil, err
		}
	}

	return &domain.Session{
		ID:         id,
		Date:       date,
		StartTime:  r.StartTime,
		Duration:   duration,
		ClientID:   r.ClientID,
		Format:     domain.SessionFormat(r.Format),
		HourlyRate: rate,
		TravelFee:  travelFee,
		Adjustment: adjustment,
		Topic:      r.Topic,
		Note:       r.Note,
	}, nil
}

type sessionResponse struct {
	ID         int64   `json:"id"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	Duration   string  `json:"duration"`
	ClientID   int64   `json:"clientId"`
	Format     string  `json:"format"`
	HourlyRate string  `json:"hourlyRate"`
	TravelFee  string  `json:"travelFee"`
	Adjustment string  `json:"adjustment"`
	Price      string  `json:"price"`
	Topic      *string `json:"topic,omitempty"`
	Note       *string `json:"note,omitempty"`
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:         s.ID,
		Date:       s.Date.String(),
		StartTime:  s.StartTime,
		Duration:   s.Duration.String(),
		ClientID:   s.ClientID,
		Format:     string(s.Format),
		HourlyRate: money(s.HourlyRate),
		TravelFee:  money(s.TravelFee),
		Adjustment: money(s.Adjustment),
		Price:      money(s.Price()),
		Topic:      s.Topic,
		Note:       s.Note,
	}
}

// --- Payments ---

type paymentRequest struct {
	Date     string  `json:"date"     validate:"required"`
	ClientID int64   `json:"clientId" validate:"required,gt=0"`
	Amount   string  `json:"amount"   validate:"required"`
	Method   string  `json:"method"   validate:"required,oneof=cash bank_transfer revolut other"`
	Note     *string `json:"note,omitempty"`
}

func (r *paymentRequest) toDomain(id int64) (*domain.Payment, error) {
	date, err := parseDate("date", r.Date)
	if err != nil {
		return nil, err
	}
	amount, err := parseMoney("amount", r.Amount)
	if err != nil {
		return nil, err
	}

	return &domain.Payment{
		ID:       id,
		Date:     date,
		ClientID: r.ClientID,
		Amount:   amount,
		Method:   domain.PaymentMethod(r.Method),
		Note:     r.Note,
	}, nil
}

type paymentResponse struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	ClientID int64   `json:"clientId"`
	Amount   string  `json:"amount"`
	Method   string  `json:"method"`
	Note     *string `json:"note,omitempty"`
}

func toPaymentResponse(p *domain.Payment) paymentResponse {
	return paymentResponse{
		ID:       p.ID,
		Date:     p.Date.String(),
		ClientID: p.ClientID,
		Amount:   money(p.Amount),
		Method:   string(p.Method),
		Note:     p.Note,
	}
}
