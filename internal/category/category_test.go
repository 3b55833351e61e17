package category

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
)

type stubRepo struct {
	names []string
	err   error
}

func (s *stubRepo) List() ([]string, error) { return s.names, s.err }

func TestCategoriesEndpoint_PrependsAll(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(&stubRepo{names: []string{"Bakery", "Dairy"}})).RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/categories", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	var got []string
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{"All", "Bakery", "Dairy"}
	if len(got) != len(want) || got[0] != "All" || got[2] != "Dairy" {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCategoriesService_FallsBackToAllOnError(t *testing.T) {
	s := NewService(&stubRepo{err: errors.New("db down")})
	got := s.List()
	if len(got) != 1 || got[0] != "All" {
		t.Fatalf("expected just the wildcard, got %v", got)
	}
}

func TestPostgresList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"category"}).AddRow("Bakery").AddRow("Fruit")
	mock.ExpectQuery("SELECT DISTINCT category").WillReturnRows(rows)

	got, err := NewPostgresRepository(db).List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 || got[1] != "Fruit" {
		t.Fatalf("unexpected categories: %v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
