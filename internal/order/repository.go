package order

import (
	"context"
	"time"

	"github.com/hooknest/craftstock-service/internal/model"
)

type Repository interface {
	// CreateWithLines persists the order header, its lines, and one
	// purchase fact per line in a single transaction. Nothing is visible
	// until every write lands.
	CreateWithLines(ctx context.Context, o *model.Order, lines []model.OrderLine, facts []model.PurchaseFact) error

	FindByCustomerAndDate(ctx context.Context, customerID string, date time.Time) (*model.Order, error)
	FindAllByCustomer(ctx context.Context, customerID string) ([]model.Order, error)
	FindLines(ctx context.Context, orderID string) ([]model.OrderLine, error)
	FindPurchasesByCustomer(ctx context.Context, customerID string) ([]model.PurchaseFact, error)

	// DeleteCascade undoes the creation fan-out in one transaction: per
	// line it removes a single purchase fact matching (customer, product)
	// - facts carry no order id, so a fact from another order for the
	// same pair may be the one that goes - then the lines, then the
	// header.
	DeleteCascade(ctx context.Context, o *model.Order, lines []model.OrderLine) error
}
