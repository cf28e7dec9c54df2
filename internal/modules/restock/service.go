package restock

import "context"

// ValidationError reports a missing or malformed request field.
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

// Service defines the restock workflow business logic.
type Service interface {
	// ListOrders returns every restock order.
	ListOrders(ctx context.Context) ([]*Order, error)

	// PlaceOrder validates the request and creates a pending order,
	// returning the generated id.
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (int64, error)

	// CompleteOrder applies a pending order's quantity to the product's
	// stock and marks it completed.
	CompleteOrder(ctx context.Context, id int64) error

	// DeleteOrder removes a pending order without touching stock.
	DeleteOrder(ctx context.Context, id int64) error
}

type service struct{ repo Repository }

// NewService creates a new restock service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListOrders(ctx context.Context) ([]*Order, error) {
	return s.repo.List(ctx)
}

func (s *service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (int64, error) {
	if req.ProductID <= 0 {
		return 0, &ValidationError{msg: "product_id is required"}
	}
	if req.Quantity <= 0 {
		return 0, &ValidationError{msg: "quantity must be greater than zero"}
	}
	return s.repo.Create(ctx, req.ProductID, req.Quantity)
}

func (s *service) CompleteOrder(ctx context.Context, id int64) error {
	return s.repo.Complete(ctx, id)
}

func (s *service) DeleteOrder(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
