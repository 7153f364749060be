package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
	"github.com/timeformoney/bookkeeping/internal/core/ports"
)

// pgSerializationFailure is the SQLSTATE PostgreSQL raises when a
// SERIALIZABLE transaction must abort because of a concurrent writer.
const pgSerializationFailure = "40001"

// Store implements ports.Store over a *gorm.DB. Repository accessors outside
// InTx run in auto-commit mode; inside InTx they share the transaction handle,
// so every read in an engine operation observes one snapshot.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Clients() ports.ClientRepository         { return &clientRepository{db: s.db} }
func (s *Store) Contacts() ports.ContactRepository       { return &contactRepository{db: s.db} }
func (s *Store) Sessions() ports.SessionRepository       { return &sessionRepository{db: s.db} }
func (s *Store) Payments() ports.PaymentRepository       { return &paymentRepository{db: s.db} }
func (s *Store) Allocations() ports.AllocationRepository { return &allocationRepository{db: s.db} }

// InTx runs fn inside one SERIALIZABLE transaction. GORM rolls back when fn
// returns an error, so a failed batch leaves no partial rows behind. A
// serialization abort surfaces as domain.ErrConflict; the caller may retry
// the whole operation once.
func (s *Store) InTx(ctx context.Context, fn func(tx ports.Ledger) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgSerializationFailure {
		return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.Message)
	}
	return err
}
