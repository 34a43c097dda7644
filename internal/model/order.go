package model

import "time"

type Order struct {
	BaseModel
	CustomerID    string    `db:"customer_id" json:"customer_id"`
	OrderDate     time.Time `db:"order_date" json:"order_date"`
	PaymentMethod string    `db:"payment_method" json:"payment_method"`
	TotalPrice    float64   `db:"total_price" json:"total_price"`
}

type OrderLine struct {
	ID        string `db:"id" json:"id"`
	OrderID   string `db:"order_id" json:"order_id"`
	ProductID string `db:"product_id" json:"product_id"`
	Quantity  int    `db:"quantity" json:"quantity"`
}

// PurchaseFact is a denormalized (customer, product) pair kept in lockstep
// with order lines. It carries no order id, so facts for the same pair are
// indistinguishable across orders.
type PurchaseFact struct {
	ID         string    `db:"id" json:"id"`
	CustomerID string    `db:"customer_id" json:"customer_id"`
	ProductID  string    `db:"product_id" json:"product_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
