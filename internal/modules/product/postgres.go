package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/georgemunganga/stocktrack-backend/internal/database"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) List(ctx context.Context) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, price, stock FROM products`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	products := []*Product{}
	for rows.Next() {
		p := &Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	p := &Product{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, stock FROM products WHERE id=$1`, id).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p *Product) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, stock)
		VALUES ($1,$2,$3,$4) RETURNING id`,
		p.Name, p.Description, p.Price, p.Stock).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products SET name=$1, description=$2, price=$3, stock=$4 WHERE id=$5`,
		p.Name, p.Description, p.Price, p.Stock, p.ID)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete counts referencing sales and removes the product inside a single
// transaction; any error path rolls back via the deferred Rollback.
func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return database.ErrUnavailable
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sales WHERE product_id=$1`, id).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return &ReferencedError{ProductID: id, SalesCount: count}
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}
