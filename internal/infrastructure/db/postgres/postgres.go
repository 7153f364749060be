// Package postgres implements the ledger store on PostgreSQL through GORM.
// Repositories translate GORM errors to domain errors; the unit of work runs
// engine operations in a single SERIALIZABLE transaction.
package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/timeformoney/bookkeeping/internal/core/domain"
)

// Open connects to PostgreSQL and configures the connection pool.
func Open(dsn string, maxIdleConns, maxOpenConns int) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres: pool handle: %w", err)
	}
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate creates or updates the schema for all ledger entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Client{},
		&domain.Contact{},
		&domain.Session{},
		&domain.Payment{},
		&domain.Allocation{},
	)
}
