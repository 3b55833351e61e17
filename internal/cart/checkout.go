package cart

import (
	"context"
	"errors"
	"sync/atomic"
)

var (
	ErrEmptyCart        = errors.New("cart is empty")
	ErrSubmitInProgress = errors.New("checkout already in progress")
)

// OrderPlacer submits a snapshot to the order service. Implemented by the
// API client; stubbed in tests.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, snap Snapshot, userID *int) (orderID int, err error)
}

// Checkout drives a cart through order submission. On success the cart is
// cleared; on any failure it is left untouched so the user can retry.
type Checkout struct {
	orders   OrderPlacer
	inFlight atomic.Bool
}

func NewCheckout(orders OrderPlacer) *Checkout {
	return &Checkout{orders: orders}
}

// Submit snapshots the cart and places the order. A second call while one
// is outstanding is refused rather than queued, so the client cannot
// double-submit. userID may be nil for guest checkout.
func (ck *Checkout) Submit(ctx context.Context, c *Cart, userID *int) (int, error) {
	if c.Count() == 0 {
		return 0, ErrEmptyCart
	}
	if !ck.inFlight.CompareAndSwap(false, true) {
		return 0, ErrSubmitInProgress
	}
	defer ck.inFlight.Store(false)

	orderID, err := ck.orders.PlaceOrder(ctx, c.Snapshot(), userID)
	if err != nil {
		return 0, err
	}

	c.Clear()
	return orderID, nil
}
