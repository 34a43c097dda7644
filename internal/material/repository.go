package material

import (
	"context"

	"github.com/hooknest/craftstock-service/internal/material/dto"
	"github.com/hooknest/craftstock-service/internal/model"
)

// Each material kind has its own table and its own repository; there is no
// shared storage across kinds. Key lookups are exact-equality on every
// attribute except safety-eye size, which is matched within dto.SizeEpsilon.

type YarnRepository interface {
	Create(ctx context.Context, y *model.Yarn) error
	FindAll(ctx context.Context, sortBy string) ([]model.Yarn, error)
	FindByID(ctx context.Context, id string) (*model.Yarn, error)
	FindByKey(ctx context.Context, key dto.YarnKey) (*model.Yarn, error)
	Update(ctx context.Context, y *model.Yarn) error
	UpdateQuantity(ctx context.Context, key dto.YarnKey, skeins float64) (bool, error)
	DeleteByKey(ctx context.Context, key dto.YarnKey) (*model.Yarn, error)
	ListBrands(ctx context.Context) ([]string, error)
}

type SafetyEyesRepository interface {
	Create(ctx context.Context, e *model.SafetyEyes) error
	FindAll(ctx context.Context, sortBy string) ([]model.SafetyEyes, error)
	FindByID(ctx context.Context, id string) (*model.SafetyEyes, error)
	FindByKey(ctx context.Context, key dto.SafetyEyesKey) (*model.SafetyEyes, error)
	Update(ctx context.Context, e *model.SafetyEyes) error
	UpdateQuantity(ctx context.Context, key dto.SafetyEyesKey, pairs float64) (bool, error)
	DeleteByKey(ctx context.Context, key dto.SafetyEyesKey) (*model.SafetyEyes, error)
}

type StuffingRepository interface {
	Create(ctx context.Context, s *model.Stuffing) error
	FindAll(ctx context.Context, sortBy string) ([]model.Stuffing, error)
	FindByID(ctx context.Context, id string) (*model.Stuffing, error)
	FindByKey(ctx context.Context, key dto.StuffingKey) (*model.Stuffing, error)
	Update(ctx context.Context, s *model.Stuffing) error
	UpdateQuantity(ctx context.Context, key dto.StuffingKey, ounces float64) (bool, error)
	DeleteByKey(ctx context.Context, key dto.StuffingKey) (*model.Stuffing, error)
}
