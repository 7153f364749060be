package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
	"github.com/timeformoney/bookkeeping/internal/core/ports"
)

// ContactService manages client contact channels.
type ContactService struct {
	store  ports.Store
	logger zerolog.Logger
}

func NewContactService(store ports.Store, logger zerolog.Logger) *ContactService {
	return &ContactService{store: store, logger: logger}
}

func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.store.Contacts().List(ctx)
}

func (s *ContactService) Get(ctx context.Context, id int64) (*domain.Contact, error) {
	return s.store.Contacts().FindByID(ctx, id)
}

func (s *ContactService) Create(ctx context.Context, c *domain.Contact) error {
	return s.store.InTx(ctx, func(tx ports.Ledger) error {
		if err := requireClient(ctx, tx, c.ClientID); err != nil {
			return err
		}
		return tx.Contacts().Create(ctx, c)
	})
}

func (s *ContactService) Update(ctx context.Context, c *domain.Contact) error {
	return s.store.InTx(ctx, func(tx ports.Ledger) error {
		if _, err := tx.Contacts().FindByID(ctx, c.ID); err != nil {
			return err
		}
		if err := requireClient(ctx, tx, c.ClientID); err != nil {
			return err
		}
		return tx.Contacts().Update(ctx, c)
	})
}

func (s *ContactService) Delete(ctx context.Context, id int64) error {
	return s.store.InTx(ctx, func(tx ports.Ledger) error {
		if _, err := tx.Contacts().FindByID(ctx, id); err != nil {
			return err
		}
		return tx.Contacts().Delete(ctx, id)
	})
}

// requireClient turns a dangling client reference into ErrUnknownClient, the
// bad-request variant of a missing client.
func requireClient(ctx context.Context, tx ports.Ledger, clientID int64) error {
	ok, err := tx.Clients().Exists(ctx, clientID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUnknownClient
	}
	return nil
}
