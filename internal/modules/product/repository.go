package product

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no product row matches the given id.
var ErrNotFound = errors.New("Product not found")

// ReferencedError reports a deletion blocked by existing sales rows.
type ReferencedError struct {
	ProductID  int64
	SalesCount int
}

func (e *ReferencedError) Error() string {
	return fmt.Sprintf("This product has %d existing sales and cannot be removed", e.SalesCount)
}

// Repository defines product data storage.
type Repository interface {
	List(ctx context.Context) ([]*Product, error)

	// GetByID returns a single product or ErrNotFound.
	GetByID(ctx context.Context, id int64) (*Product, error)

	// Create inserts the product and returns the generated id.
	Create(ctx context.Context, p *Product) (int64, error)

	// Update replaces all mutable fields; ErrNotFound when no row matched.
	Update(ctx context.Context, p *Product) error

	// Delete removes the product unless sales reference it, in which case a
	// *ReferencedError carrying the sales count is returned and nothing is
	// written. The guard check and the delete run in one transaction.
	Delete(ctx context.Context, id int64) error
}
