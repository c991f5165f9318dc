package repositories

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"shopapi/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of
// ProductRepository. It preserves insertion order so that Find yields a
// deterministic sequence, matching the GORM implementation's sort key.
type InMemoryProductRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewInMemoryProductRepository creates a new instance of
// InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{}
}

// Count returns the number of stored products.
func (r *InMemoryProductRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.products)), nil
}

// Create appends a new product, assigning a UUID when no ID is set.
func (r *InMemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products = append(r.products, *product)
	return nil
}

// Find returns up to limit products matching the filter, in insertion order.
func (r *InMemoryProductRepository) Find(filter ProductFilter, limit int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]models.Product, 0, limit)
	for _, p := range r.products {
		if !matchesFilter(p, filter) {
			continue
		}
		matches = append(matches, p)
		if len(matches) == limit {
			break
		}
	}
	return matches, nil
}

func matchesFilter(p models.Product, filter ProductFilter) bool {
	if filter.Query != "" {
		needle := strings.ToLower(filter.Query)
		inTitle := strings.Contains(strings.ToLower(p.Title), needle)
		inDescription := p.Description != nil && strings.Contains(strings.ToLower(*p.Description), needle)
		if !inTitle && !inDescription {
			return false
		}
	}
	if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
		return false
	}
	return true
}
