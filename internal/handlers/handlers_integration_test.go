package handlers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shopapi/internal/handlers"
	"shopapi/internal/models"
	"shopapi/internal/repositories"
	"shopapi/internal/services"
)

// setupApp builds a Fiber app backed by a private in-memory SQLite store,
// seeded through the startup seeder.
func setupApp(t *testing.T) (*fiber.App, repositories.ProductRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("failed to auto-migrate database: %v", err)
	}

	store := repositories.NewStore(db)
	productRepo := repositories.NewGORMProductRepository(store)

	services.NewSeeder(productRepo, nil).Run()

	app := newApp(services.NewCatalogService(productRepo), store)
	return app, productRepo
}

// setupUnavailableApp builds an app whose store is unconfigured.
func setupUnavailableApp(t *testing.T) *fiber.App {
	t.Helper()
	store := repositories.NewStore(nil)
	productRepo := repositories.NewGORMProductRepository(store)
	return newApp(services.NewCatalogService(productRepo), store)
}

func newApp(service *services.CatalogService, store *repositories.Store) *fiber.App {
	app := fiber.New()
	handlers.NewProductHandler(service, store).RegisterRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s failed: %v", path, err)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp, body
}

func decodeProducts(t *testing.T, body []byte) []models.ProductResponse {
	t.Helper()
	var products []models.ProductResponse
	if err := json.Unmarshal(body, &products); err != nil {
		t.Fatalf("failed to decode product list: %v (body: %s)", err, body)
	}
	return products
}

func TestMain(m *testing.M) {
	// Suppress logging during tests for cleaner output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestRootEndpoint(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doRequest(t, app, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message": "Shopping API running"}`, string(body))
}

func TestHelloEndpoint(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doRequest(t, app, "/api/hello")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message": "Hello from the backend API!"}`, string(body))
}

func TestTestEndpoint(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doRequest(t, app, "/test")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var diag map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &diag))
	assert.Equal(t, "✅ Running", diag["backend"])
	assert.Equal(t, "✅ Connected & Working", diag["database"])
	assert.Equal(t, "Connected", diag["connection_status"])
	assert.Contains(t, diag["collections"], "products")
}

func TestTestEndpoint_UnavailableStore(t *testing.T) {
	app := setupUnavailableApp(t)

	resp, body := doRequest(t, app, "/test")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var diag map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &diag))
	assert.Equal(t, "✅ Running", diag["backend"])
	assert.Equal(t, "❌ Not Available", diag["database"])
	assert.Equal(t, "Not Connected", diag["connection_status"])
}

func TestListProducts_DefaultReturnsSeededCatalog(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doRequest(t, app, "/api/products")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	products := decodeProducts(t, body)
	assert.Len(t, products, 5)
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Title)
	}
}

func TestListProducts_SubstringQuery(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doRequest(t, app, "/api/products?q=lamp")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	products := decodeProducts(t, body)
	assert.Len(t, products, 1)
	assert.Equal(t, "LumaGlow Desk Lamp", products[0].Title)
}

func TestListProducts_CategoryIsExactCaseInsensitive(t *testing.T) {
	app, repo := setupApp(t)

	// A near-miss category must not be swept up by the exact match.
	nearMiss := models.Product{Title: "Extension Cord", Category: "Electronics & More"}
	assert.NoError(t, repo.Create(&nearMiss))

	resp, body := doRequest(t, app, "/api/products?category=electronics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	products := decodeProducts(t, body)
	assert.Len(t, products, 1)
	assert.Equal(t, "EchoWave Smart Speaker", products[0].Title)
	assert.Equal(t, "Electronics", products[0].Category)
}

func TestListProducts_CombinedFilter(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doRequest(t, app, "/api/products?q=Backpack&category=Accessories")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	products := decodeProducts(t, body)
	assert.Len(t, products, 1)
	assert.Equal(t, "Nimbus Pro Backpack", products[0].Title)

	// Matching only the query but not the category yields nothing.
	resp, body = doRequest(t, app, "/api/products?q=Backpack&category=Home")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeProducts(t, body))
}

func TestListProducts_LimitBounds(t *testing.T) {
	app, _ := setupApp(t)

	resp, body := doRequest(t, app, "/api/products?limit=2")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeProducts(t, body), 2)

	resp, _ = doRequest(t, app, "/api/products?limit=0")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, "/api/products?limit=101")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListProducts_DefaultSerialization(t *testing.T) {
	app, repo := setupApp(t)

	bare := models.Product{Title: "Bare Product", Category: "Misc"}
	assert.NoError(t, repo.Create(&bare))

	resp, body := doRequest(t, app, "/api/products?q=Bare")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Decode into raw maps so null vs 0 is observable.
	var raw []map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &raw))
	assert.Len(t, raw, 1)

	assert.Equal(t, 0.0, raw[0]["price"])
	assert.Equal(t, true, raw[0]["in_stock"])
	rating, present := raw[0]["rating"]
	assert.True(t, present, "rating key must be emitted")
	assert.Nil(t, rating)
}

func TestListProducts_UnavailableStore(t *testing.T) {
	app := setupUnavailableApp(t)

	resp, body := doRequest(t, app, "/api/products")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"message": "Database not available"}`, string(body))
}
