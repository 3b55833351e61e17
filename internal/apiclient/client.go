// Package apiclient is the JSON/HTTP client the storefront uses to talk to
// the catalog and order service.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/freshmart/grocery-backend/internal/cart"
	"github.com/freshmart/grocery-backend/internal/order"
	"github.com/freshmart/grocery-backend/internal/product"
	"github.com/freshmart/grocery-backend/internal/user"
)

type Client struct {
	base   string
	http   *http.Client
	token  string
	userID int
}

func New(base string) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// UserID is the id of the logged-in account, 0 before login.
func (c *Client) UserID() int { return c.userID }

// Products fetches the full catalog. Search happens client-side with
// product.Filter; there is no pagination on this endpoint.
func (c *Client) Products(ctx context.Context) ([]product.Product, error) {
	var out []product.Product
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type registerBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type authResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	User    user.User `json:"user"`
	Token   string    `json:"token"`
}

// Register creates an account. A taken email surfaces as an error carrying
// the server's message.
func (c *Client) Register(ctx context.Context, email, password, name string) (user.User, error) {
	var res authResponse
	err := c.do(ctx, http.MethodPost, "/api/register", registerBody{Email: email, Password: password, Name: name}, &res)
	if err != nil {
		return user.User{}, err
	}
	if !res.Success {
		return user.User{}, fmt.Errorf("register failed: %s", res.Message)
	}
	return res.User, nil
}

// Login authenticates and remembers the bearer token for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (user.User, error) {
	var res authResponse
	err := c.do(ctx, http.MethodPost, "/api/login", registerBody{Email: email, Password: password}, &res)
	if err != nil {
		return user.User{}, err
	}
	if !res.Success {
		return user.User{}, fmt.Errorf("login failed: %s", res.Message)
	}
	c.token = res.Token
	c.userID = res.User.ID
	return res.User, nil
}

type placeOrderBody struct {
	UserID *int                `json:"userId,omitempty"`
	Items  []cart.SnapshotLine `json:"items"`
	Total  int                 `json:"total"`
}

type placeOrderResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID int    `json:"orderId"`
}

// PlaceOrder submits a checkout snapshot. It satisfies cart.OrderPlacer.
func (c *Client) PlaceOrder(ctx context.Context, snap cart.Snapshot, userID *int) (int, error) {
	var res placeOrderResponse
	err := c.do(ctx, http.MethodPost, "/api/orders", placeOrderBody{UserID: userID, Items: snap.Lines, Total: snap.GrandTotal}, &res)
	if err != nil {
		return 0, err
	}
	if !res.Success {
		return 0, fmt.Errorf("order rejected: %s", res.Message)
	}
	return res.OrderID, nil
}

// OrdersForUser fetches the order history, newest first. Requires login.
func (c *Client) OrdersForUser(ctx context.Context, userID int) ([]order.Order, error) {
	var out []order.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/user/"+strconv.Itoa(userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	// 4xx bodies still carry a JSON message worth decoding
	if res.StatusCode >= 500 {
		return fmt.Errorf("%s %s: server returned %d", method, path, res.StatusCode)
	}
	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%s %s: not authorized (%d)", method, path, res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}
