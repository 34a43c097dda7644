package product

import (
	"context"

	"github.com/hooknest/craftstock-service/internal/model"
	"github.com/hooknest/craftstock-service/internal/product/dto"
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	GetProductByName(ctx context.Context, name string) (*model.Product, error)
	ProductExists(ctx context.Context, name string) (bool, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	UpdateStock(ctx context.Context, name string, stock int) error
	AdjustStock(ctx context.Context, id string, delta int) error
	DeleteProduct(ctx context.Context, id string) error
}
