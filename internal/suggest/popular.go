package suggest

import "database/sql"

// Repository provides access to popularity-based suggestions.
type Repository interface {
	List(limit int) ([]string, error)
}

// PostgresRepository derives suggestions from order history: the most
// ordered product names come first.
type PostgresRepository struct {
	db *sql.DB
}

const popularProductsQuery = `
	SELECT p.name
	FROM order_items oi
	JOIN products p ON p.id = oi.product_id
	GROUP BY p.name
	ORDER BY SUM(oi.quantity) DESC, p.name
	LIMIT $1
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(limit int) ([]string, error) {
	rows, err := r.db.Query(popularProductsQuery, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			continue
		}
		out = append(out, name)
	}
	return out, nil
}

// Service serves popular-product suggestions; lookups that fail resolve to
// an empty list so the storefront never shows a suggestion error.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(limit int) []string {
	items, err := s.repo.List(limit)
	if err != nil {
		return []string{}
	}
	return items
}
