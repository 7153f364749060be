package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
	"github.com/timeformoney/bookkeeping/internal/core/ports"
)

// ClientService manages the client roster.
type ClientService struct {
	store  ports.Store
	logger zerolog.Logger
}

func NewClientService(store ports.Store, logger zerolog.Logger) *ClientService {
	return &ClientService{store: store, logger: logger}
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.store.Clients().List(ctx)
}

func (s *ClientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	return s.store.Clients().FindByID(ctx, id)
}

func (s *ClientService) Create(ctx context.Context, c *domain.Client) error {
	if err := s.store.Clients().Create(ctx, c); err != nil {
		return err
	}
	s.logger.Info().Int64("client_id", c.ID).Msg("client created")
	return nil
}

func (s *ClientService) Update(ctx context.Context, c *domain.Client) error {
	return s.store.InTx(ctx, func(tx ports.Ledger) error {
		if _, err := tx.Clients().FindByID(ctx, c.ID); err != nil {
			return err
		}
		return tx.Clients().Update(ctx, c)
	})
}

func (s *ClientService) Delete(ctx context.Context, id int64) error {
	err := s.store.InTx(ctx, func(tx ports.Ledger) error {
		if _, err := tx.Clients().FindByID(ctx, id); err != nil {
			return err
		}
		return tx.Clients().Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info().Int64("client_id", id).Msg("client deleted")
	return nil
}
