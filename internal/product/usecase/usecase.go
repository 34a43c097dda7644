package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hooknest/craftstock-service/internal/model"
	"github.com/hooknest/craftstock-service/internal/product"
	"github.com/hooknest/craftstock-service/internal/product/dto"
	"github.com/hooknest/craftstock-service/pkg/apperrors"
	"github.com/hooknest/craftstock-service/pkg/cache"
	"github.com/hooknest/craftstock-service/pkg/logger"
	"github.com/hooknest/craftstock-service/pkg/search"
)

const productIndex = "products"

type productUseCase struct {
	repo   product.Repository
	cache  *cache.RedisClient
	es     *search.Client
	logger logger.ZapLogger
}

// NewProductUseCase builds the catalog use case. cache and es may be nil;
// the catalog then runs straight against the database.
func NewProductUseCase(repo product.Repository, cache *cache.RedisClient, es *search.Client, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:   repo,
		cache:  cache,
		es:     es,
		logger: log,
	}
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	now := time.Now()
	p := &model.Product{
		BaseModel:   model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:        input.Name,
		HoursToMake: input.HoursToMake,
		CostToMake:  input.CostToMake,
		SalePrice:   input.SalePrice,
		StockCount:  input.StockCount,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	go uc.invalidateListCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return p, nil
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}
	mapping := `{
		"mappings": {
			"properties": {
				"name": { "type": "text" },
				"sale_price": { "type": "double" },
				"stock_count": { "type": "integer" },
				"created_at": { "type": "date" }
			}
		}
	}`
	// Lazy create; startup migration would also work, this is more resilient.
	_ = uc.es.CreateIndex(ctx, productIndex, mapping)

	if err := uc.es.Index(ctx, productIndex, p.ID, p); err != nil {
		uc.logger.Error("failed to index product", zap.Error(err))
	}
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("product", id)
	}
	return p, nil
}

func (uc *productUseCase) GetProductByName(ctx context.Context, name string) (*model.Product, error) {
	p, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NotFound("product", name)
	}
	return p, nil
}

func (uc *productUseCase) ProductExists(ctx context.Context, name string) (bool, error) {
	return uc.repo.ExistsByName(ctx, name)
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, error) {
	cacheKey := uc.listCacheKey(filters)

	if uc.cache != nil && cacheKey != "" {
		if val, err := uc.cache.Client.Get(ctx, cacheKey).Result(); err == nil {
			var cached []model.Product
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	// Search goes through ES when available, with DB fallback.
	if filters.SearchQuery != "" && uc.es != nil {
		q := map[string]any{
			"query": map[string]any{
				"query_string": map[string]any{
					"query":  fmt.Sprintf("*%s*", filters.SearchQuery),
					"fields": []string{"name"},
				},
			},
		}
		res, err := uc.es.Search(ctx, productIndex, q)
		if err == nil {
			var hits []model.Product
			for _, hit := range res.Hits.Hits {
				var p model.Product
				if err := json.Unmarshal(hit.Source, &p); err == nil {
					hits = append(hits, p)
				}
			}
			return hits, nil
		}
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}

	products, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil && cacheKey != "" {
		if data, err := json.Marshal(products); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, 5*time.Minute)
		}
	}

	return products, nil
}

func (uc *productUseCase) listCacheKey(filters *dto.ProductFilters) string {
	data, err := json.Marshal(filters)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("products:list:%x", md5.Sum(data))
}

func (uc *productUseCase) invalidateListCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	keys, err := uc.cache.Client.Keys(ctx, "products:list:*").Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}

// UpdateProduct applies a full-record update guarded by updated_at. A
// concurrent change is retried once against the fresh row; a second miss is
// surfaced as a declined conflict.
func (uc *productUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	for attempt := 0; attempt < 2; attempt++ {
		p, err := uc.repo.FindByID(ctx, input.ID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, apperrors.NotFound("product", input.ID)
		}

		expected := p.UpdatedAt
		p.Name = input.Name
		p.HoursToMake = input.HoursToMake
		p.CostToMake = input.CostToMake
		p.SalePrice = input.SalePrice
		p.StockCount = input.StockCount
		p.UpdatedAt = time.Now()

		matched, err := uc.repo.Update(ctx, p, expected)
		if err != nil {
			return nil, err
		}
		if matched {
			go uc.invalidateListCache(context.Background())
			go uc.syncToElastic(context.Background(), p)
			return p, nil
		}

		uc.logger.Warn("product row changed underneath update, retrying",
			zap.String("product_id", input.ID),
			zap.Int("attempt", attempt+1),
		)
	}
	return nil, apperrors.Conflict("product", input.ID)
}

func (uc *productUseCase) UpdateStock(ctx context.Context, name string, stock int) error {
	matched, err := uc.repo.UpdateStockByName(ctx, name, stock)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.NotFound("product", name)
	}
	go uc.invalidateListCache(context.Background())
	return nil
}

func (uc *productUseCase) AdjustStock(ctx context.Context, id string, delta int) error {
	matched, err := uc.repo.AdjustStock(ctx, id, delta)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.NotFound("product", id)
	}
	go uc.invalidateListCache(context.Background())
	return nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return nil // Already deleted
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	go uc.invalidateListCache(context.Background())
	if uc.es != nil {
		go func() {
			if err := uc.es.Delete(context.Background(), productIndex, id); err != nil {
				uc.logger.Error("failed to delete product from ES", zap.Error(err))
			}
		}()
	}

	return nil
}
