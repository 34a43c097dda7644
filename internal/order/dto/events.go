package dto

import "time"

// OrderCreatedEvent is the message published after an order commits. The
// stock listener consumes it to decrement finished-product stock.
type OrderCreatedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

const EventTypeOrderCreated = "OrderCreated"

type OrderPayload struct {
	ID         string             `json:"id"`
	CustomerID string             `json:"customer_id"`
	TotalPrice float64            `json:"total_price"`
	Items      []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
