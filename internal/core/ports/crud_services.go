package ports

import (
	"context"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
)

// ClientService manages the client roster.
type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id int64) (*domain.Client, error)
	Create(ctx context.Context, c *domain.Client) error
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id int64) error
}

// ContactService manages client contact channels. Create and Update fail with
// domain.ErrUnknownClient when the referenced client does not exist.
type ContactService interface {
	List(ctx context.Context) ([]domain.Contact, error)
	Get(ctx context.Context, id int64) (*domain.Contact, error)
	Create(ctx context.Context, c *domain.Contact) error
	Update(ctx context.Context, c *domain.Contact) error
	Delete(ctx context.Context, id int64) error
}

// SessionService manages billable sessions. Create and Update fail with
// domain.ErrUnknownClient when the referenced client does not exist.
type SessionService interface {
	List(ctx context.Context) ([]domain.Session, error)
	Get(ctx context.Context, id int64) (*domain.Session, error)
	Create(ctx context.Context, s *domain.Session) error
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id int64) error
}

// PaymentService manages received payments. Create and Update fail with
// domain.ErrUnknownClient when the referenced client does not exist.
type PaymentService interface {
	List(ctx context.Context) ([]domain.Payment, error)
	Get(ctx context.Context, id int64) (*domain.Payment, error)
	Create(ctx context.Context, p *domain.Payment) error
	Update(ctx context.Context, p *domain.Payment) error
	Delete(ctx context.Context, id int64) error
}
