package restock

import "time"

// OrderStatus is the lifecycle state of a restock order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
)

// Order is a request to add stock to a product. It starts pending; completing
// it applies the quantity to the product's stock exactly once and makes the
// order immutable.
type Order struct {
	ID        int64       `json:"id"`
	ProductID int64       `json:"product_id"`
	Quantity  int         `json:"quantity"`
	Status    OrderStatus `json:"status"`
	OrderDate time.Time   `json:"order_date"`
}

// PlaceOrderRequest is the payload for placing a restock order.
type PlaceOrderRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}
