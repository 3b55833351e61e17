package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyOrder    = errors.New("order has no items")
	ErrBadQuantity   = errors.New("item quantity must be positive")
	ErrTotalMismatch = errors.New("total does not match items plus handling fee")
)

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Create validates the submitted snapshot and persists it as a pending
// order. userID may be nil (guest checkout). The supplied total must equal
// the item sum plus the handling fee.
func (s *Service) Create(userID *int, items []OrderItem, total int) (Order, error) {
	if len(items) == 0 {
		return Order{}, ErrEmptyOrder
	}

	sum := 0
	for _, item := range items {
		if item.Quantity <= 0 {
			return Order{}, ErrBadQuantity
		}
		if item.Price < 0 {
			return Order{}, ErrTotalMismatch
		}
		sum += item.Price * item.Quantity
	}
	if total != sum+HandlingFee {
		return Order{}, ErrTotalMismatch
	}

	ord := Order{
		Reference: uuid.NewString(),
		UserID:    userID,
		Total:     total,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Items:     items,
	}

	return s.repo.Create(ord)
}

// ListByUser returns the user's orders, newest first.
func (s *Service) ListByUser(userID int) ([]Order, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.ListByUser(userID)
}
