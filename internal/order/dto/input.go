package dto

import "github.com/hooknest/craftstock-service/internal/model"

// DateLayout is the only accepted order-date form.
const DateLayout = "2006-01-02"

type OrderLineInput struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

type CreateOrderInput struct {
	CustomerName  string           `json:"customer_name"`
	OrderDate     string           `json:"order_date"`
	PaymentMethod string           `json:"payment_method"`
	Lines         []OrderLineInput `json:"lines"`
}

// LineResult reports what happened to one requested line. Lines whose
// product name did not resolve are skipped, not fatal; Skipped surfaces
// that to the caller instead of hiding it.
type LineResult struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"line_total"`
	Skipped     bool    `json:"skipped"`
}

type CreateOrderResult struct {
	Order *model.Order `json:"order"`
	Lines []LineResult `json:"lines"`
}
