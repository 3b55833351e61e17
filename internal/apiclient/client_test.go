package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/freshmart/grocery-backend/internal/cart"
	"github.com/freshmart/grocery-backend/internal/product"
)

func TestProductsAndPlaceOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/products":
			json.NewEncoder(w).Encode([]product.Product{{ID: 1, Name: "Bananas", Price: 33}})
		case "/api/orders":
			var body placeOrderBody
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("bad order body: %v", err)
			}
			if body.Total != 35 || len(body.Items) != 1 {
				t.Errorf("unexpected order payload: %+v", body)
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(placeOrderResponse{Success: true, OrderID: 9})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	products, err := c.Products(context.Background())
	if err != nil {
		t.Fatalf("products failed: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Bananas" {
		t.Fatalf("unexpected products: %+v", products)
	}

	basket := cart.New()
	basket.AddLine(products[0])
	orderID, err := c.PlaceOrder(context.Background(), basket.Snapshot(), nil)
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if orderID != 9 {
		t.Fatalf("expected order id 9, got %d", orderID)
	}
}

func TestLogin_AttachesTokenToLaterCalls(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"user":    map[string]any{"id": 7, "email": "x@example.com", "name": "X"},
				"token":   "tok-123",
			})
		case "/api/orders/user/7":
			if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
				t.Errorf("missing bearer token, got %q", got)
			}
			w.Write([]byte("[]"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	u, err := c.Login(context.Background(), "x@example.com", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if u.ID != 7 || c.UserID() != 7 {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := c.OrdersForUser(context.Background(), 7); err != nil {
		t.Fatalf("orders failed: %v", err)
	}
}

func TestPlaceOrder_RejectionIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(placeOrderResponse{Success: false, Message: "total does not match"})
	}))
	defer srv.Close()

	basket := cart.New()
	basket.AddLine(product.Product{ID: 1, Price: 5})
	if _, err := New(srv.URL).PlaceOrder(context.Background(), basket.Snapshot(), nil); err == nil {
		t.Fatal("expected error for rejected order")
	}
}
