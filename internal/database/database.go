package database

import (
	"errors"
	"fmt"
	"log"
	"strings"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

const DefaultDSN = "file:bikestation?mode=memory&cache=shared"

var ErrPersistentDSN = errors.New("only in-memory sqlite databases are supported")

// IsInMemory reports whether dsn names an in-memory sqlite database.
func IsInMemory(dsn string) bool {
	dsn = strings.TrimSpace(dsn)
	if dsn == ":memory:" || dsn == "file::memory:" {
		return true
	}
	return strings.HasPrefix(dsn, "file:") && strings.Contains(dsn, "mode=memory")
}

// Connect opens an in-memory sqlite database through the pure-Go driver.
// The pool is pinned to one connection so the database lives as long as the handle.
func Connect(dsn string, debug bool) (*gorm.DB, error) {
	if !IsInMemory(dsn) {
		return nil, fmt.Errorf("%w: %q", ErrPersistentDSN, dsn)
	}

	logLevel := logger.Silent
	if debug {
		logLevel = logger.Info
	}

	log.Println("Using in-memory SQLite journal:", dsn)

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{Logger: logger.Default.LogMode(logLevel)},
	)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return db, nil
}

// Close releases the underlying connection, dropping the in-memory data.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
