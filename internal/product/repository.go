package product

import (
	"context"
	"time"

	"github.com/hooknest/craftstock-service/internal/model"
	"github.com/hooknest/craftstock-service/internal/product/dto"
)

// Name matching is deliberately asymmetric: FindByName is case-sensitive,
// while ExistsByName and UpdateStockByName lower-case before matching. The
// asymmetry is part of the external contract and is documented in DESIGN.md.
type Repository interface {
	Create(ctx context.Context, p *model.Product) error
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindByName(ctx context.Context, name string) (*model.Product, error)
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Update guards on updated_at; false means the row changed underneath
	// the caller (or is gone).
	Update(ctx context.Context, p *model.Product, expectedUpdatedAt time.Time) (bool, error)
	UpdateStockByName(ctx context.Context, name string, stock int) (bool, error)
	AdjustStock(ctx context.Context, id string, delta int) (bool, error)
	Delete(ctx context.Context, id string) error
}
