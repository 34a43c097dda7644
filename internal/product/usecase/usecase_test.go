package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hooknest/craftstock-service/internal/model"
	"github.com/hooknest/craftstock-service/internal/product/dto"
	"github.com/hooknest/craftstock-service/pkg/apperrors"
	"github.com/hooknest/craftstock-service/pkg/logger"
)

type fakeProductRepo struct {
	products []model.Product

	// updateRejects forces that many guarded updates to miss, simulating a
	// concurrent writer touching the row between read and write.
	updateRejects int
}

func (f *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductRepo) FindAll(_ context.Context, _ *dto.ProductFilters) ([]model.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id string) (*model.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindByName(_ context.Context, name string) (*model.Product, error) {
	for i := range f.products {
		if f.products[i].Name == name {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for i := range f.products {
		if strings.EqualFold(f.products[i].Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *model.Product, expectedUpdatedAt time.Time) (bool, error) {
	if f.updateRejects > 0 {
		f.updateRejects--
		return false, nil
	}
	for i := range f.products {
		if f.products[i].ID == p.ID && f.products[i].UpdatedAt.Equal(expectedUpdatedAt) {
			f.products[i] = *p
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) UpdateStockByName(_ context.Context, name string, stock int) (bool, error) {
	for i := range f.products {
		if strings.EqualFold(f.products[i].Name, name) {
			f.products[i].StockCount = stock
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) AdjustStock(_ context.Context, id string, delta int) (bool, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].StockCount += delta
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func newCatalog(repo *fakeProductRepo) *productUseCase {
	return NewProductUseCase(repo, nil, nil, logger.NewNop()).(*productUseCase)
}

func TestCreateAndGetProduct(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newCatalog(repo)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, &dto.CreateProductInput{
		Name: "Bear", HoursToMake: 6, CostToMake: 12.50, SalePrice: 45, StockCount: 2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Bear", got.Name)

	_, err = uc.GetProduct(ctx, uuid.New().String())
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestNameMatchingAsymmetry(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newCatalog(repo)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Bear", SalePrice: 45})
	require.NoError(t, err)

	// Existence check folds case.
	exists, err := uc.ProductExists(ctx, "bear")
	require.NoError(t, err)
	require.True(t, exists)

	// Direct lookup does not.
	_, err = uc.GetProductByName(ctx, "bear")
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	got, err := uc.GetProductByName(ctx, "Bear")
	require.NoError(t, err)
	require.Equal(t, "Bear", got.Name)
}

func TestUpdateStockFoldsCase(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newCatalog(repo)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Bear", StockCount: 2})
	require.NoError(t, err)

	require.NoError(t, uc.UpdateStock(ctx, "BEAR", 9))
	got, err := uc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 9, got.StockCount)

	err = uc.UpdateStock(ctx, "Dragon", 1)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateProduct_RetriesOnceThenSucceeds(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newCatalog(repo)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Bear", SalePrice: 45})
	require.NoError(t, err)

	repo.updateRejects = 1
	updated, err := uc.UpdateProduct(ctx, &dto.UpdateProductInput{
		ID: created.ID, Name: "Bear", SalePrice: 50,
	})
	require.NoError(t, err)
	require.InDelta(t, 50, updated.SalePrice, 1e-9)
}

func TestUpdateProduct_PersistentContentionConflicts(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newCatalog(repo)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Bear", SalePrice: 45})
	require.NoError(t, err)

	repo.updateRejects = 2
	_, err = uc.UpdateProduct(ctx, &dto.UpdateProductInput{ID: created.ID, Name: "Bear", SalePrice: 50})
	require.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestAdjustStock(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newCatalog(repo)
	ctx := context.Background()

	created, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Bear", StockCount: 5})
	require.NoError(t, err)

	require.NoError(t, uc.AdjustStock(ctx, created.ID, -2))
	got, err := uc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.StockCount)

	err = uc.AdjustStock(ctx, uuid.New().String(), -1)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteProduct_MissingIsNoError(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newCatalog(repo)
	ctx := context.Background()

	require.NoError(t, uc.DeleteProduct(ctx, uuid.New().String()))

	created, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Bear"})
	require.NoError(t, err)
	require.NoError(t, uc.DeleteProduct(ctx, created.ID))
	require.Empty(t, repo.products)
}

func TestListProductsFallsBackToRepo(t *testing.T) {
	repo := &fakeProductRepo{}
	uc := newCatalog(repo)
	ctx := context.Background()

	_, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Bear"})
	require.NoError(t, err)
	_, err = uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Scarf"})
	require.NoError(t, err)

	products, err := uc.ListProducts(ctx, &dto.ProductFilters{SortBy: "name"})
	require.NoError(t, err)
	require.Len(t, products, 2)
}
