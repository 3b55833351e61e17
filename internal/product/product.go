package product

import "strings"

// Product represents a catalog item and maps to the `products` table.
// Prices are whole currency units; the cart never mutates a Product.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Stock       int    `json:"stock"`
	Description string `json:"description"`
}

// AllCategories is the wildcard value that bypasses the category filter.
const AllCategories = "All"

// Filter returns the products whose name or category contains the query
// (case-insensitive substring), narrowed to an exact category unless the
// category argument is empty or "All". Pure; always returns a fresh slice.
func Filter(products []Product, query, category string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Product, 0)
	for _, p := range products {
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
