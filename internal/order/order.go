package order

// StatusPending is the only status this system produces.
const StatusPending = "pending"

// HandlingFee is the fixed per-order charge in whole currency units.
// Delivery itself is always free.
const HandlingFee = 2

// Order represents a purchase. Items carry the unit price captured at order
// time, so later catalog price changes never alter history. UserID is nil
// for guest checkouts.
type Order struct {
	ID        int         `json:"orderId"`
	Reference string      `json:"reference"`
	UserID    *int        `json:"userId,omitempty"`
	Total     int         `json:"total"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"createdAt"`
	Items     []OrderItem `json:"items"`
}

// OrderItem is one line of an order and maps to the `order_items` table.
type OrderItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
	Price     int `json:"price"`
}
