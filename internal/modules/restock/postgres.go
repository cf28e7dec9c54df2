package restock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/georgemunganga/stocktrack-backend/internal/database"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) List(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, quantity, status, order_date FROM restock_orders`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	orders := []*Order{}
	for rows.Next() {
		o := &Order{}
		if err := rows.Scan(&o.ID, &o.ProductID, &o.Quantity, &o.Status, &o.OrderDate); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, productID int64, quantity int) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, database.ErrUnavailable
	}
	defer tx.Rollback()

	var exists int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM products WHERE id=$1`, productID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrProductNotFound
	}
	if err != nil {
		return 0, err
	}

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO restock_orders (product_id, quantity, status)
		VALUES ($1,$2,'pending') RETURNING id`,
		productID, quantity).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert restock order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Complete looks the order up filtered by pending status, applies its quantity
// to the product's stock, and flips the status, all in one transaction. The
// pending filter is what makes the stock application happen at most once per
// order under sequential requests.
func (r *postgresRepo) Complete(ctx context.Context, orderID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return database.ErrUnavailable
	}
	defer tx.Rollback()

	var productID int64
	var quantity int
	err = tx.QueryRowContext(ctx, `
		SELECT product_id, quantity FROM restock_orders
		WHERE id=$1 AND status='pending'`, orderID).Scan(&productID, &quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE products SET stock = stock + $1 WHERE id=$2`, quantity, productID)
	if err != nil {
		return fmt.Errorf("apply stock: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE restock_orders SET status='completed' WHERE id=$1`, orderID)
	if err != nil {
		return fmt.Errorf("complete order: %w", err)
	}

	return tx.Commit()
}

func (r *postgresRepo) Delete(ctx context.Context, orderID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return database.ErrUnavailable
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM restock_orders
		WHERE id=$1 AND status='pending'`, orderID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM restock_orders WHERE id=$1`, orderID)
	if err != nil {
		return fmt.Errorf("delete restock order: %w", err)
	}

	return tx.Commit()
}
