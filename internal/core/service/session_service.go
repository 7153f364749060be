package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
	"github.com/timeformoney/bookkeeping/internal/core/ports"
)

// SessionService manages billable sessions. Pricing fields (rate, duration,
// travel fee, adjustment) live on the session row itself, so later changes to
// the client's default rate never affect recorded sessions.
type SessionService struct {
	store  ports.Store
	logger zerolog.Logger
}

func NewSessionService(store ports.Store, logger zerolog.Logger) *SessionService {
	return &SessionService{store: store, logger: logger}
}

func (s *SessionService) List(ctx context.Context) ([]domain.Session, error) {
	return s.store.Sessions().List(ctx)
}

func (s *SessionService) Get(ctx context.Context, id int64) (*domain.Session, error) {
	return s.store.Sessions().FindByID(ctx, id)
}

func (s *SessionService) Create(ctx context.Context, sess *domain.Session) error {
	err := s.store.InTx(ctx, func(tx ports.Ledger) error {
		if err := requireClient(ctx, tx, sess.ClientID); err != nil {
			return err
		}
		return tx.Sessions().Create(ctx, sess)
	})
	if err != nil {
		return err
	}
	s.logger.Info().
		Int64("session_id", sess.ID).
		Int64("client_id", sess.ClientID).
		Str("price", sess.Price().StringFixed(2)).
		Msg("session created")
	return nil
}

func (s *SessionService) Update(ctx context.Context, sess *domain.Session) error {
	return s.store.InTx(ctx, func(tx ports.Ledger) error {
		if _, err := tx.Sessions().FindByID(ctx, sess.ID); err != nil {
			return err
		}
		if err := requireClient(ctx, tx, sess.ClientID); err != nil {
			return err
		}
		return tx.Sessions().Update(ctx, sess)
	})
}

func (s *SessionService) Delete(ctx context.Context, id int64) error {
	err := s.store.InTx(ctx, func(tx ports.Ledger) error {
		if _, err := tx.Sessions().FindByID(ctx, id); err != nil {
			return err
		}
		return tx.Sessions().Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info().Int64("session_id", id).Msg("session deleted")
	return nil
}
