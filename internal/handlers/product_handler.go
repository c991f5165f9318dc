package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"

	"shopapi/internal/repositories"
	"shopapi/internal/services"
)

// ProductHandler handles HTTP requests for the catalog endpoints.
type ProductHandler struct {
	service  *services.CatalogService
	store    *repositories.Store
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.CatalogService, store *repositories.Store) *ProductHandler {
	return &ProductHandler{
		service:  service,
		store:    store,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/", h.HandleRoot)
	router.Get("/api/hello", h.HandleHello)
	router.Get("/test", h.HandleTest)
	router.Get("/api/products", h.HandleListProducts)
}

// HandleRoot reports that the API is up.
func (h *ProductHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Shopping API running",
	})
}

// HandleHello is a trivial liveness endpoint for the frontend.
func (h *ProductHandler) HandleHello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Hello from the backend API!",
	})
}

// HandleTest reports store availability, configuration presence and table
// names. Every sub-check is best-effort; this endpoint never fails.
func (h *ProductHandler) HandleTest(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.store.Configured() {
		response["database"] = "✅ Available"
		response["connection_status"] = "Connected"
		tables, err := h.store.Tables()
		if err != nil {
			response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
		} else {
			if len(tables) > 10 {
				tables = tables[:10]
			}
			response["collections"] = tables
			response["database"] = "✅ Connected & Working"
		}
	}

	response["database_url"] = envStatus("DATABASE_URL")
	response["database_name"] = envStatus("DATABASE_NAME")

	return c.JSON(response)
}

// listProductsQuery carries the query parameters of /api/products.
type listProductsQuery struct {
	Query    string `query:"q"`
	Category string `query:"category"`
	Limit    int    `query:"limit" validate:"min=1,max=100"`
}

// HandleListProducts lists products matching the optional free-text query
// and category, capped at the requested limit.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	req := listProductsQuery{Limit: 24}
	if err := c.QueryParser(&req); err != nil {
		log.Printf("Error parsing product query parameters: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid query parameters",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	products, err := h.service.ListProducts(req.Query, req.Category, req.Limit)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		if errors.Is(err, repositories.ErrStoreUnavailable) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Database not available",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}

	return c.JSON(products)
}

// envStatus reports whether a configuration variable was provided, without
// echoing its value.
func envStatus(key string) string {
	if viper.GetString(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
