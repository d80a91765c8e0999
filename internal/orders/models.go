package orders

import "time"

// Order is the header row written at checkout and read back for history.
// History responses nest the line items the way the storefront expects.
type Order struct {
	ID            string    `json:"id"`
	Reference     string    `json:"reference"`
	CustomerEmail string    `json:"customer_email"`
	TotalAmount   int       `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`
	Items         []Item    `json:"order_items"`
}

type Item struct {
	ID        int64       `json:"id"`
	OrderID   string      `json:"order_id"`
	ProductID string      `json:"product_id"`
	Quantity  int         `json:"quantity"`
	Price     int         `json:"price"`
	Product   ItemProduct `json:"products"`
}

// ItemProduct carries the joined product fields shown in order history.
type ItemProduct struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// ItemInput is a line to record against an order.
type ItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     int    `json:"price"`
}
