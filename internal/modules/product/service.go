package product

import (
	"context"
	"strings"
)

// ValidationError reports a missing or malformed request field. It is
// detected before any store interaction.
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

// Service defines the product ledger business logic.
type Service interface {
	// ListProducts returns every product.
	ListProducts(ctx context.Context) ([]*Product, error)

	// GetProduct returns a single product by id.
	GetProduct(ctx context.Context, id int64) (*Product, error)

	// CreateProduct validates the request and inserts a product, returning
	// the generated id.
	CreateProduct(ctx context.Context, req SaveProductRequest) (int64, error)

	// UpdateProduct replaces all mutable fields of an existing product.
	UpdateProduct(ctx context.Context, id int64, req SaveProductRequest) error

	// DeleteProduct removes a product unless sales reference it.
	DeleteProduct(ctx context.Context, id int64) error
}

type service struct{ repo Repository }

// NewService creates a new product service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) GetProduct(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) CreateProduct(ctx context.Context, req SaveProductRequest) (int64, error) {
	p, err := fromRequest(req)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, p)
}

func (s *service) UpdateProduct(ctx context.Context, id int64, req SaveProductRequest) error {
	p, err := fromRequest(req)
	if err != nil {
		return err
	}
	p.ID = id
	return s.repo.Update(ctx, p)
}

func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// fromRequest validates the payload and builds a Product, defaulting an
// omitted description to the empty string.
func fromRequest(req SaveProductRequest) (*Product, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, &ValidationError{msg: "name is required"}
	}
	if req.Price == nil {
		return nil, &ValidationError{msg: "price is required"}
	}
	if *req.Price < 0 {
		return nil, &ValidationError{msg: "price must not be negative"}
	}
	if req.Stock == nil {
		return nil, &ValidationError{msg: "stock is required"}
	}
	if *req.Stock < 0 {
		return nil, &ValidationError{msg: "stock must not be negative"}
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}
	return &Product{
		Name:        req.Name,
		Description: description,
		Price:       *req.Price,
		Stock:       *req.Stock,
	}, nil
}
