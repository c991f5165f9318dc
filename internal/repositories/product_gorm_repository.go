package repositories

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"shopapi/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	store *Store
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(store *Store) *GORMProductRepository {
	return &GORMProductRepository{
		store: store,
	}
}

// Count returns the number of products in the catalog.
func (r *GORMProductRepository) Count() (int64, error) {
	if !r.store.Configured() {
		return 0, ErrStoreUnavailable
	}
	var count int64
	if err := r.store.db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// Create inserts a new product, assigning a UUID when no ID is set.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if !r.store.Configured() {
		return ErrStoreUnavailable
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.store.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Find retrieves up to limit products matching the filter, ordered by
// insertion time so the response sequence is deterministic.
func (r *GORMProductRepository) Find(filter ProductFilter, limit int) ([]models.Product, error) {
	if !r.store.Configured() {
		return nil, ErrStoreUnavailable
	}

	q := r.store.db.Model(&models.Product{})
	if filter.Query != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Query)) + "%"
		q = q.Where(`LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\'`, pattern, pattern)
	}
	if filter.Category != "" {
		q = q.Where("LOWER(category) = LOWER(?)", filter.Category)
	}

	var products []models.Product
	if err := q.Order("created_at, id").Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	return products, nil
}

// escapeLike escapes LIKE metacharacters so user-supplied text matches as a
// literal substring rather than as a pattern.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
