// Package db provides database connectivity and operations for the fixture backend
package db

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lunchdesk/lunchdesk/internal/db/models"
)

// DefaultDSN keeps the fixture database in memory, shared by every connection of the process
const DefaultDSN = "file::memory:?cache=shared"

// Options represents database connection configuration options
type Options struct {
	DSN      string
	LogLevel logger.LogLevel
}

// New creates a new database connection with the given options and migrates the schema
func New(opts Options) (*gorm.DB, error) {
	opts = setDefaults(opts)

	// Configure custom logger to ignore record not found errors
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			LogLevel:                  opts.LogLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(sqlite.Open(opts.DSN), &gorm.Config{
		Logger:                                   newLogger,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

func setDefaults(opts Options) Options {
	if opts.DSN == "" {
		opts.DSN = DefaultDSN
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Warn
	}
	return opts
}

// Migrate creates or updates every fixture table
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Company{},
		&models.Employer{},
		&models.Order{},
		&models.Menu{},
		&models.Payment{},
		&models.Report{},
		&models.LegalDocument{},
	)
}
