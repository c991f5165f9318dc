package repositories

import (
	"errors"

	"shopapi/internal/models"
)

// ErrStoreUnavailable is returned when the backing store is not configured.
var ErrStoreUnavailable = errors.New("store not available")

// ProductFilter describes the match criteria for one catalog query. A
// zero-value field means "no constraint on that field". Query matches title
// or description as a case-insensitive substring; Category must equal the
// record's category, compared case-insensitively over the full string.
type ProductFilter struct {
	Query    string
	Category string
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Count() (int64, error)
	Create(product *models.Product) error
	Find(filter ProductFilter, limit int) ([]models.Product, error)
}
