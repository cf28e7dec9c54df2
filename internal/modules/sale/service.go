package sale

import "context"

// ValidationError reports a missing or malformed request field.
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

// Service defines the sale ledger business logic.
type Service interface {
	// ListSales returns every recorded sale.
	ListSales(ctx context.Context) ([]*Sale, error)

	// RecordSale validates the request and records the sale atomically,
	// returning the generated id.
	RecordSale(ctx context.Context, req RecordSaleRequest) (int64, error)

	// RemoveSale deletes a sale and restores the product's stock.
	RemoveSale(ctx context.Context, id int64) error
}

type service struct{ repo Repository }

// NewService creates a new sale service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListSales(ctx context.Context) ([]*Sale, error) {
	return s.repo.List(ctx)
}

func (s *service) RecordSale(ctx context.Context, req RecordSaleRequest) (int64, error) {
	if req.ProductID <= 0 {
		return 0, &ValidationError{msg: "product_id is required"}
	}
	if req.Quantity <= 0 {
		return 0, &ValidationError{msg: "quantity must be greater than zero"}
	}
	return s.repo.Record(ctx, req.ProductID, req.Quantity)
}

func (s *service) RemoveSale(ctx context.Context, id int64) error {
	return s.repo.Remove(ctx, id)
}
