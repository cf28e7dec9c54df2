package restock

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListOrders(ctx context.Context) ([]*Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*Order), args.Error(1)
}

func (m *MockService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockService) CompleteOrder(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) DeleteOrder(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestRouter(svc Service) *chi.Mux {
	router := chi.NewRouter()
	NewHandler(svc).RegisterRoutes(router)
	return router
}

func TestPlaceOrderEndpoint(t *testing.T) {
	svc := new(MockService)
	svc.On("PlaceOrder", mock.Anything, PlaceOrderRequest{ProductID: 1, Quantity: 20}).
		Return(int64(8), nil)

	body := strings.NewReader(`{"product_id":1,"quantity":20}`)
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/restock-orders/", body))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Restock order placed", resp["message"])
}

func TestPlaceOrderEndpoint_ProductNotFound(t *testing.T) {
	svc := new(MockService)
	svc.On("PlaceOrder", mock.Anything, mock.Anything).Return(int64(0), ErrProductNotFound)

	body := strings.NewReader(`{"product_id":99,"quantity":20}`)
	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/restock-orders/", body))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())
}

func TestCompleteOrderEndpoint(t *testing.T) {
	svc := new(MockService)
	svc.On("CompleteOrder", mock.Anything, int64(8)).Return(nil)

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/restock-orders/8", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Restock order completed"}`, rec.Body.String())
}

func TestCompleteOrderEndpoint_AlreadyCompleted(t *testing.T) {
	svc := new(MockService)
	svc.On("CompleteOrder", mock.Anything, int64(8)).Return(ErrNotFound)

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/restock-orders/8", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Order not found or already completed"}`, rec.Body.String())
}

func TestDeleteOrderEndpoint_AlreadyProcessed(t *testing.T) {
	svc := new(MockService)
	svc.On("DeleteOrder", mock.Anything, int64(8)).Return(ErrNotFound)

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/restock-orders/8", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Order not found or already processed"}`, rec.Body.String())
}

func TestListOrdersEndpoint(t *testing.T) {
	svc := new(MockService)
	svc.On("ListOrders", mock.Anything).Return([]*Order{
		{ID: 8, ProductID: 1, Quantity: 20, Status: StatusPending},
	}, nil)

	rec := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/restock-orders/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var orders []Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, StatusPending, orders[0].Status)
}
