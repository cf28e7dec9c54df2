package sale

import "time"

// Sale is a recorded transaction that consumed stock.
type Sale struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"product_id"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	SaleDate   time.Time `json:"sale_date"`
}

// RecordSaleRequest is the payload for recording a sale.
type RecordSaleRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}
