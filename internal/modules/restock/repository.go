package restock

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no order matches the given id with status
	// pending. An absent order and an already-processed one are not
	// distinguished.
	ErrNotFound = errors.New("Order not found")

	// ErrProductNotFound is returned when the referenced product does not exist.
	ErrProductNotFound = errors.New("Product not found")
)

// Repository defines restock order data storage.
type Repository interface {
	List(ctx context.Context) ([]*Order, error)

	// Create inserts a pending order and returns the generated id;
	// ErrProductNotFound when the product does not exist.
	Create(ctx context.Context, productID int64, quantity int) (int64, error)

	// Complete increments the product's stock by the order's quantity and
	// flips the order to completed in one transaction. Only pending orders
	// match; anything else is ErrNotFound.
	Complete(ctx context.Context, orderID int64) error

	// Delete removes a pending order with no stock side effect. Only pending
	// orders match; anything else is ErrNotFound.
	Delete(ctx context.Context, orderID int64) error
}
