package bom

import (
	"context"

	"github.com/hooknest/craftstock-service/internal/model"
)

type Repository interface {
	Insert(ctx context.Context, link *model.MaterialLink) error

	// DeleteOne removes a single matching link row. Duplicate identical
	// links are legal, so at most one goes per call.
	DeleteOne(ctx context.Context, productID string, kind model.MaterialKind, materialID string) (bool, error)
	UpdateQuantity(ctx context.Context, productID string, kind model.MaterialKind, materialID string, quantity float64) (bool, error)

	FindByProduct(ctx context.Context, productID string) ([]model.MaterialLink, error)
	FindProductsUsing(ctx context.Context, kind model.MaterialKind, materialID string) ([]model.Product, error)

	// SumQuantityUsed totals quantity_used over every link referencing the
	// material id, across all products.
	SumQuantityUsed(ctx context.Context, materialID string) (float64, error)
}
