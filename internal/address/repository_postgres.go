package address

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	listAddressesQuery = `
		SELECT id, user_id, label, line1, city, phone
		FROM addresses
		WHERE user_id = $1
		ORDER BY id
	`
	insertAddressQuery = `
		INSERT INTO addresses (user_id, label, line1, city, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	deleteAddressQuery = `DELETE FROM addresses WHERE id = $1 AND user_id = $2`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByUser(userID int) ([]Address, error) {
	rows, err := r.db.Query(listAddressesQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Address, 0)
	for rows.Next() {
		var a Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Label, &a.Line1, &a.City, &a.Phone); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Create(addr Address) (Address, error) {
	var id int
	err := r.db.QueryRow(insertAddressQuery, addr.UserID, addr.Label, addr.Line1, addr.City, addr.Phone).Scan(&id)
	if err != nil {
		return Address{}, err
	}
	addr.ID = id
	return addr, nil
}

func (r *PostgresRepository) Delete(userID, addressID int) error {
	result, err := r.db.Exec(deleteAddressQuery, addressID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
