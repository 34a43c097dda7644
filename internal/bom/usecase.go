package bom

import (
	"context"

	bomdto "github.com/hooknest/craftstock-service/internal/bom/dto"
	matdto "github.com/hooknest/craftstock-service/internal/material/dto"
	"github.com/hooknest/craftstock-service/internal/model"
)

type UseCase interface {
	// AddMaterial links a material to a product. Both sides must exist at
	// call time; nothing checks for an existing identical link, so repeat
	// calls stack duplicates.
	AddMaterial(ctx context.Context, productName string, sel matdto.MaterialSelector, quantityUsed float64) (*model.MaterialLink, error)
	RemoveMaterial(ctx context.Context, productName string, sel matdto.MaterialSelector) error
	UpdateMaterialQuantity(ctx context.Context, productName string, sel matdto.MaterialSelector, quantityUsed float64) error

	LinksForProduct(ctx context.Context, productID string) ([]model.MaterialLink, error)
	ProductsUsingMaterial(ctx context.Context, kind model.MaterialKind, materialID string) ([]model.Product, error)
	DetailedLinksForProduct(ctx context.Context, productName string) ([]bomdto.MaterialUsage, error)

	// CanSupply reports whether at least requiredQuantity of the material
	// is already allocated across all links, irrespective of product. It
	// never reads the material's owned stock; see DESIGN.md.
	CanSupply(ctx context.Context, materialID string, requiredQuantity float64) (bool, error)
}
