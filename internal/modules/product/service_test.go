package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]*Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, p *Product) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, p *Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func ptrF(v float64) *float64 { return &v }
func ptrI(v int) *int         { return &v }
func ptrS(v string) *string   { return &v }

func TestCreateProduct_Valid(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, &Product{Name: "Widget", Price: 10.0, Stock: 5}).
		Return(int64(3), nil)

	id, err := svc.CreateProduct(context.Background(), SaveProductRequest{
		Name:  "Widget",
		Price: ptrF(10.0),
		Stock: ptrI(5),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), id)
	repo.AssertExpectations(t)
}

func TestCreateProduct_DescriptionDefaultsToEmpty(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, &Product{Name: "Widget", Description: "blue", Price: 10.0, Stock: 5}).
		Return(int64(1), nil)

	_, err := svc.CreateProduct(context.Background(), SaveProductRequest{
		Name:        "Widget",
		Description: ptrS("blue"),
		Price:       ptrF(10.0),
		Stock:       ptrI(5),
	})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  SaveProductRequest
	}{
		{"missing name", SaveProductRequest{Price: ptrF(10.0), Stock: ptrI(5)}},
		{"blank name", SaveProductRequest{Name: "   ", Price: ptrF(10.0), Stock: ptrI(5)}},
		{"missing price", SaveProductRequest{Name: "Widget", Stock: ptrI(5)}},
		{"negative price", SaveProductRequest{Name: "Widget", Price: ptrF(-1), Stock: ptrI(5)}},
		{"missing stock", SaveProductRequest{Name: "Widget", Price: ptrF(10.0)}},
		{"negative stock", SaveProductRequest{Name: "Widget", Price: ptrF(10.0), Stock: ptrI(-2)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := NewService(repo)

			_, err := svc.CreateProduct(context.Background(), tt.req)

			var valErr *ValidationError
			assert.ErrorAs(t, err, &valErr)
			repo.AssertNotCalled(t, "Create")
		})
	}
}

func TestUpdateProduct_CarriesID(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Update", mock.Anything, &Product{ID: 12, Name: "Widget", Price: 10.0, Stock: 5}).
		Return(ErrNotFound)

	err := svc.UpdateProduct(context.Background(), 12, SaveProductRequest{
		Name:  "Widget",
		Price: ptrF(10.0),
		Stock: ptrI(5),
	})

	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertExpectations(t)
}

func TestDeleteProduct_PassesThroughReferencedError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Delete", mock.Anything, int64(1)).
		Return(&ReferencedError{ProductID: 1, SalesCount: 2})

	err := svc.DeleteProduct(context.Background(), 1)

	var refErr *ReferencedError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, 2, refErr.SalesCount)
	repo.AssertExpectations(t)
}
