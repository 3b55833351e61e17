package product

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func makeApp(seed []Product) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(NewInMemoryRepository(seed))).RegisterPublicRoutes(app)
	return app
}

func TestGetProducts_ReturnsFullCatalog(t *testing.T) {
	app := makeApp(sampleCatalog())

	res, err := app.Test(httptest.NewRequest("GET", "/api/products", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var got []Product
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 products, got %d", len(got))
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	app := makeApp(sampleCatalog())

	res, err := app.Test(httptest.NewRequest("GET", "/api/products/999", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestSearchProducts_MissIsEmptyArrayNot404(t *testing.T) {
	app := makeApp(sampleCatalog())

	res, err := app.Test(httptest.NewRequest("GET", "/api/products/search?q=unobtainium", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 on search miss, got %d", res.StatusCode)
	}

	var got []Product
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result set, got %d", len(got))
	}
}

func TestSearchProducts_QueryAndCategory(t *testing.T) {
	app := makeApp(sampleCatalog())

	res, err := app.Test(httptest.NewRequest("GET", "/api/products/search?q=a&category=Fruit", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var got []Product
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 fruit matches, got %d", len(got))
	}
}
