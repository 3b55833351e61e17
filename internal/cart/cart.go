// Package cart holds the client-resident shopping cart: a product to
// quantity mapping with derived totals. A Cart lives in one browsing
// session, is never persisted server-side, and is mutated from a single
// goroutine in response to user actions, so it carries no lock.
package cart

import (
	"sort"

	"github.com/freshmart/grocery-backend/internal/order"
	"github.com/freshmart/grocery-backend/internal/product"
)

// Line is one product plus a positive quantity. The cart never holds two
// lines for the same product id and never a line with quantity below one.
type Line struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// SnapshotLine is the immutable per-product record that crosses the wire
// at checkout. UnitPrice is captured at snapshot time, not referenced.
type SnapshotLine struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
	UnitPrice int `json:"price"`
}

// Snapshot is the cart frozen at checkout time. GrandTotal adds the fixed
// handling fee on top of the item total; delivery is free.
type Snapshot struct {
	Lines       []SnapshotLine `json:"items"`
	ItemTotal   int            `json:"itemTotal"`
	HandlingFee int            `json:"handlingFee"`
	GrandTotal  int            `json:"total"`
}

type Cart struct {
	lines    map[int]Line
	revision uint64
}

func New() *Cart {
	return &Cart{lines: make(map[int]Line)}
}

// AddLine increments the quantity for p, inserting a fresh line at
// quantity 1 when the product is not in the cart yet. It cannot fail;
// callers validate product existence.
func (c *Cart) AddLine(p product.Product) {
	line, ok := c.lines[p.ID]
	if !ok {
		line = Line{Product: p}
	}
	line.Quantity++
	c.lines[p.ID] = line
	c.revision++
}

// RemoveLine decrements the quantity for productID, deleting the line when
// it reaches zero. Removing an absent product is a no-op.
func (c *Cart) RemoveLine(productID int) {
	line, ok := c.lines[productID]
	if !ok {
		return
	}
	if line.Quantity > 1 {
		line.Quantity--
		c.lines[productID] = line
	} else {
		delete(c.lines, productID)
	}
	c.revision++
}

// Total is the sum of price times quantity over all lines.
func (c *Cart) Total() int {
	total := 0
	for _, line := range c.lines {
		total += line.Product.Price * line.Quantity
	}
	return total
}

// Count is the sum of quantities, used for UI badges.
func (c *Cart) Count() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns the cart contents ordered by product id.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, line)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Product.ID < out[j].Product.ID })
	return out
}

// Clear empties the cart. Called only after the order service confirmed
// the order; a failed checkout leaves the cart as it was.
func (c *Cart) Clear() {
	c.lines = make(map[int]Line)
	c.revision++
}

// Revision increases with every mutation. Async consumers capture it to
// detect that their result is stale.
func (c *Cart) Revision() uint64 {
	return c.revision
}

// ItemNames returns the product names in the cart, ordered by product id.
func (c *Cart) ItemNames() []string {
	lines := c.Lines()
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		names = append(names, line.Product.Name)
	}
	return names
}

// Snapshot freezes the cart for checkout. An empty cart snapshots to a
// zero grand total; the handling fee applies only when something is bought.
func (c *Cart) Snapshot() Snapshot {
	lines := c.Lines()
	snap := Snapshot{Lines: make([]SnapshotLine, 0, len(lines))}
	for _, line := range lines {
		snap.Lines = append(snap.Lines, SnapshotLine{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
		})
		snap.ItemTotal += line.Product.Price * line.Quantity
	}
	if len(snap.Lines) > 0 {
		snap.HandlingFee = order.HandlingFee
		snap.GrandTotal = snap.ItemTotal + order.HandlingFee
	}
	return snap
}
