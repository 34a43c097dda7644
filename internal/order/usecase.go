package order

import (
	"context"

	"github.com/hooknest/craftstock-service/internal/model"
	"github.com/hooknest/craftstock-service/internal/order/dto"
)

// Publisher is the slice of the broker the workflow needs. Satisfied by
// broker.KafkaProducer.
type Publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type UseCase interface {
	CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*dto.CreateOrderResult, error)
	DeleteOrderByCustomerAndDate(ctx context.Context, customerName, orderDate string) error
	ListOrdersForCustomer(ctx context.Context, customerName string) ([]model.Order, error)
	ListPurchasesForCustomer(ctx context.Context, customerName string) ([]model.PurchaseFact, error)
}
