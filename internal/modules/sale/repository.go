package sale

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no sale row matches the given id.
	ErrNotFound = errors.New("Sale not found")

	// ErrProductNotFound is returned when the referenced product does not exist.
	ErrProductNotFound = errors.New("Product not found")

	// ErrInsufficientStock is returned when the product's stock is lower than
	// the requested quantity. Nothing is written in that case.
	ErrInsufficientStock = errors.New("Not enough stock available")
)

// Repository defines sale data storage.
type Repository interface {
	List(ctx context.Context) ([]*Sale, error)

	// Record inserts the sale and decrements the product's stock in one
	// transaction, returning the generated sale id. The stored total price is
	// the product's current price times quantity.
	Record(ctx context.Context, productID int64, quantity int) (int64, error)

	// Remove restores the product's stock by the sale's quantity and deletes
	// the sale row in one transaction.
	Remove(ctx context.Context, saleID int64) error
}
