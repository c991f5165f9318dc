package services

import (
	"shopapi/internal/models"
	"shopapi/internal/repositories"
)

// CatalogService handles catalog queries: it turns the request criteria into
// a filter, fetches matching records and serializes them into the public
// response shape.
type CatalogService struct {
	repo repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListProducts returns up to limit serialized products matching the free-text
// query and category criteria. Both criteria are optional; when both are set
// a record must satisfy both. The order of results follows the repository's
// insertion-time sort.
func (s *CatalogService) ListProducts(query, category string, limit int) ([]models.ProductResponse, error) {
	filter := repositories.ProductFilter{
		Query:    query,
		Category: category,
	}

	products, err := s.repo.Find(filter, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]models.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, p.Serialize())
	}
	return responses, nil
}
