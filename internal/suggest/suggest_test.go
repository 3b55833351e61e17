package suggest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestHTTPSuggester_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req suggestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if len(req.Items) != 2 {
			t.Errorf("expected 2 items, got %v", req.Items)
		}
		json.NewEncoder(w).Encode(suggestResponse{Suggestions: []string{"Granola"}})
	}))
	defer srv.Close()

	s := NewHTTPSuggester(srv.URL)
	got, err := s.Suggest(context.Background(), []string{"Bananas", "Milk"})
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if len(got) != 1 || got[0] != "Granola" {
		t.Fatalf("unexpected suggestions: %v", got)
	}
}

func TestHTTPSuggester_Non200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := NewHTTPSuggester(srv.URL).Suggest(context.Background(), nil); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestPopularService_SwallowsRepoErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM order_items").WithArgs(8).WillReturnError(errors.New("relation missing"))

	got := NewService(NewPostgresRepository(db)).List(8)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list on failure, got %v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPopularRepository_OrdersByVolume(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"name"}).AddRow("Bananas").AddRow("Whole Milk")
	mock.ExpectQuery("FROM order_items").WithArgs(2).WillReturnRows(rows)

	got, err := NewPostgresRepository(db).List(2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 || got[0] != "Bananas" {
		t.Fatalf("unexpected names: %v", got)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
