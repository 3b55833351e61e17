package product

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	listProductsQuery = `
		SELECT id, name, category, price, image, stock, description
		FROM products
		ORDER BY id
	`
	getProductByIDQuery = `
		SELECT id, name, category, price, image, stock, description
		FROM products
		WHERE id = $1
	`
	insertProductQuery = `
		INSERT INTO products (name, category, price, image, stock, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() []Product {
	rows, err := r.db.Query(listProductsQuery)
	if err != nil {
		return []Product{}
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			continue
		}
		products = append(products, p)
	}

	return products
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	row := r.db.QueryRow(getProductByIDQuery, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}

	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	var id int
	err := r.db.QueryRow(
		insertProductQuery,
		p.Name,
		p.Category,
		p.Price,
		p.Image,
		p.Stock,
		p.Description,
	).Scan(&id)
	if err != nil {
		return Product{}, err
	}

	p.ID = id
	return p, nil
}

func scanProduct(scanner rowScanner) (Product, error) {
	p := Product{}
	var category sql.NullString
	var image sql.NullString
	var description sql.NullString

	if err := scanner.Scan(
		&p.ID,
		&p.Name,
		&category,
		&p.Price,
		&image,
		&p.Stock,
		&description,
	); err != nil {
		return Product{}, err
	}

	if category.Valid {
		p.Category = category.String
	}
	if image.Valid {
		p.Image = image.String
	}
	if description.Valid {
		p.Description = description.String
	}

	return p, nil
}
