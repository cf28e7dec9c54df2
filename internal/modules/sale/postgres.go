package sale

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/georgemunganga/stocktrack-backend/internal/database"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) List(ctx context.Context) ([]*Sale, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, quantity, total_price, sale_date FROM sales`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sales := []*Sale{}
	for rows.Next() {
		s := &Sale{}
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.TotalPrice, &s.SaleDate); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// Record checks stock, inserts the sale, and decrements the product's stock
// inside a single transaction. Both writes commit together or neither applies.
func (r *postgresRepo) Record(ctx context.Context, productID int64, quantity int) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, database.ErrUnavailable
	}
	defer tx.Rollback()

	var stock int
	var price float64
	err = tx.QueryRowContext(ctx,
		`SELECT stock, price FROM products WHERE id=$1`, productID).Scan(&stock, &price)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrProductNotFound
	}
	if err != nil {
		return 0, err
	}
	if stock < quantity {
		return 0, ErrInsufficientStock
	}

	totalPrice := price * float64(quantity)

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO sales (product_id, quantity, total_price)
		VALUES ($1,$2,$3) RETURNING id`,
		productID, quantity, totalPrice).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert sale: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE products SET stock = stock - $1 WHERE id=$2`, quantity, productID)
	if err != nil {
		return 0, fmt.Errorf("decrement stock: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Remove restores stock and deletes the sale inside a single transaction.
func (r *postgresRepo) Remove(ctx context.Context, saleID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return database.ErrUnavailable
	}
	defer tx.Rollback()

	var productID int64
	var quantity int
	err = tx.QueryRowContext(ctx,
		`SELECT product_id, quantity FROM sales WHERE id=$1`, saleID).Scan(&productID, &quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE products SET stock = stock + $1 WHERE id=$2`, quantity, productID)
	if err != nil {
		return fmt.Errorf("restore stock: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM sales WHERE id=$1`, saleID)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}

	return tx.Commit()
}
