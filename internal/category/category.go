package category

import "database/sql"

// Repository provides access to the category labels present in the catalog.
type Repository interface {
	List() ([]string, error)
}

// PostgresRepository derives categories from product rows; there is no
// separate category table to keep in sync.
type PostgresRepository struct {
	db *sql.DB
}

const listCategoriesQuery = `
	SELECT DISTINCT category
	FROM products
	WHERE category IS NOT NULL AND category <> ''
	ORDER BY category
`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]string, error) {
	rows, err := r.db.Query(listCategoriesQuery)
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
