package repositories

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shopapi/internal/models"
)

// Store wraps an optional GORM connection to the product database. A Store
// whose connection could not be established is "unconfigured"; repository
// calls against it fail with ErrStoreUnavailable instead of dereferencing a
// nil handle.
type Store struct {
	db *gorm.DB
}

// Connect opens the product database and migrates the product table. It never
// returns an error: a missing DSN or a failed connection yields an
// unconfigured Store, because startup must not fail when the database is
// absent.
func Connect(dsn string) *Store {
	if dsn == "" {
		log.Println("DATABASE_URL not set, store is unconfigured")
		return &Store{}
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		return &Store{}
	}

	if err := db.AutoMigrate(&models.Product{}); err != nil {
		log.Printf("Failed to migrate product table: %v", err)
	}

	return &Store{db: db}
}

// NewStore wraps an existing GORM connection. Tests use this to back the
// store with in-memory SQLite.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Configured reports whether the store holds a live database connection.
func (s *Store) Configured() bool {
	return s != nil && s.db != nil
}

// Tables lists the table names in the connected database. Used by the
// diagnostic endpoint.
func (s *Store) Tables() ([]string, error) {
	if !s.Configured() {
		return nil, ErrStoreUnavailable
	}
	tables, err := s.db.Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}
