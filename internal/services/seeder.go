package services

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"

	"shopapi/internal/models"
	"shopapi/internal/repositories"
)

// EventPublisher publishes catalog lifecycle events. Implementations are
// best-effort; a publish failure is logged and never propagated.
type EventPublisher interface {
	PublishCatalogSeeded(event map[string]interface{}) error
}

// seedInput carries the subset of product fields covered by the validation
// schema. Image and rating are outside the schema and are merged into the
// stored record after validation.
type seedInput struct {
	Title       string   `validate:"required"`
	Description *string  `validate:"omitempty,max=500"`
	Price       *float64 `validate:"omitempty,gte=0"`
	Category    string
	InStock     *bool
}

// SeedOutcome records the result for one seed item.
type SeedOutcome struct {
	Title    string `json:"title"`
	Inserted bool   `json:"inserted"`
	Reason   string `json:"reason,omitempty"`
}

// SeedReport summarizes one seeding run.
type SeedReport struct {
	Inserted int           `json:"inserted"`
	Skipped  int           `json:"skipped"`
	Items    []SeedOutcome `json:"items,omitempty"`
}

// Seeder populates an empty catalog with the sample products at startup.
type Seeder struct {
	repo      repositories.ProductRepository
	validate  *validator.Validate
	publisher EventPublisher
}

// NewSeeder creates a new Seeder. The publisher may be nil when no message
// broker is configured.
func NewSeeder(repo repositories.ProductRepository, publisher EventPublisher) *Seeder {
	return &Seeder{
		repo:      repo,
		validate:  validator.New(),
		publisher: publisher,
	}
}

// Run seeds the catalog when it is empty and returns a report of per-item
// outcomes. It is idempotent: a non-empty catalog yields an empty report and
// no insertions. An unavailable store is not an error, because seeding must
// never fail startup.
func (s *Seeder) Run() SeedReport {
	var report SeedReport

	count, err := s.repo.Count()
	if err != nil {
		if !errors.Is(err, repositories.ErrStoreUnavailable) {
			log.Printf("Skipping seeding, could not count products: %v", err)
		}
		return report
	}
	if count > 0 {
		return report
	}

	for _, template := range sampleProducts {
		outcome := s.seedOne(template)
		report.Items = append(report.Items, outcome)
		if outcome.Inserted {
			report.Inserted++
		} else {
			report.Skipped++
		}
	}

	if report.Inserted > 0 && s.publisher != nil {
		if err := s.publisher.PublishCatalogSeeded(report.asEvent()); err != nil {
			log.Printf("Failed to publish catalog seeded event: %v", err)
		}
	}

	return report
}

// seedOne validates the schema subset of one template and inserts the
// combined record. A validation or insertion failure skips only this item.
func (s *Seeder) seedOne(template models.Product) SeedOutcome {
	input := seedInput{
		Title:       template.Title,
		Description: template.Description,
		Price:       template.Price,
		Category:    template.Category,
		InStock:     template.InStock,
	}
	if err := s.validate.Struct(input); err != nil {
		log.Printf("Skipping seed product %q: validation failed: %v", template.Title, err)
		return SeedOutcome{Title: template.Title, Reason: "validation failed: " + err.Error()}
	}

	product := models.Product{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		InStock:     input.InStock,
		Image:       template.Image,
		Rating:      template.Rating,
	}
	if err := s.repo.Create(&product); err != nil {
		log.Printf("Skipping seed product %q: insert failed: %v", template.Title, err)
		return SeedOutcome{Title: template.Title, Reason: "insert failed: " + err.Error()}
	}
	return SeedOutcome{Title: template.Title, Inserted: true}
}

func (r SeedReport) asEvent() map[string]interface{} {
	return map[string]interface{}{
		"event":    "catalog.seeded",
		"inserted": r.Inserted,
		"skipped":  r.Skipped,
		"items":    r.Items,
	}
}
