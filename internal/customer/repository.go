package customer

import (
	"context"

	"github.com/hooknest/craftstock-service/internal/model"
)

// Name is the de-facto identity but carries no uniqueness constraint;
// FindByName returns the first match when duplicates exist.
type Repository interface {
	Create(ctx context.Context, c *model.Customer) error
	FindAll(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id string) (*model.Customer, error)
	FindByName(ctx context.Context, name string) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) error
	DeleteByName(ctx context.Context, name string) (*model.Customer, error)
}
