package product

// Product is a sellable item tracked in inventory.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// SaveProductRequest is the payload for creating or replacing a product.
// Price and stock are pointers so a missing field can be told apart from zero.
type SaveProductRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
}
