package order

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
		INSERT INTO orders (reference, user_id, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	insertOrderItemQuery = `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
	`
	listOrdersByUserQuery = `
		SELECT id, reference, user_id, total, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`
	listItemsByOrdersQuery = `
		SELECT order_id, product_id, quantity, price
		FROM order_items
		WHERE order_id = ANY($1::int[])
		ORDER BY id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create persists the order header and every item in a single transaction.
// A failing item insert rolls the whole order back; no partial order can
// ever be observed.
func (r *PostgresRepository) Create(ord Order) (Order, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	var userArg interface{}
	if ord.UserID != nil {
		userArg = *ord.UserID
	}

	var id int
	if err := tx.QueryRow(insertOrderQuery, ord.Reference, userArg, ord.Total, ord.Status, ord.CreatedAt).Scan(&id); err != nil {
		return Order{}, err
	}

	for _, item := range ord.Items {
		if _, err := tx.Exec(insertOrderItemQuery, id, item.ProductID, item.Quantity, item.Price); err != nil {
			return Order{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}

	ord.ID = id
	return ord, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Order, error) {
	rows, err := r.db.Query(listOrdersByUserQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]Order, 0)
	ids := make([]int, 0)
	for rows.Next() {
		var ord Order
		var uid sql.NullInt64
		if err := rows.Scan(&ord.ID, &ord.Reference, &uid, &ord.Total, &ord.Status, &ord.CreatedAt); err != nil {
			return nil, err
		}
		if uid.Valid {
			v := int(uid.Int64)
			ord.UserID = &v
		}
		ord.Items = []OrderItem{}
		orders = append(orders, ord)
		ids = append(ids, ord.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return orders, nil
	}

	itemRows, err := r.db.Query(listItemsByOrdersQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	byOrder := make(map[int][]OrderItem, len(ids))
	for itemRows.Next() {
		var orderID int
		var item OrderItem
		if err := itemRows.Scan(&orderID, &item.ProductID, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		byOrder[orderID] = append(byOrder[orderID], item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if items, ok := byOrder[orders[i].ID]; ok {
			orders[i].Items = items
		}
	}

	return orders, nil
}
