package material

import (
	"context"

	"github.com/hooknest/craftstock-service/internal/material/dto"
	"github.com/hooknest/craftstock-service/internal/model"
)

type UseCase interface {
	CreateYarn(ctx context.Context, input *dto.CreateYarnInput) (*model.Yarn, error)
	YarnExists(ctx context.Context, key dto.YarnKey) (bool, error)
	GetYarn(ctx context.Context, key dto.YarnKey) (*model.Yarn, error)
	UpdateYarnQuantity(ctx context.Context, key dto.YarnKey, skeins float64) error
	DeleteYarn(ctx context.Context, key dto.YarnKey) (*model.Yarn, error)
	ListYarn(ctx context.Context, sortBy string) ([]model.Yarn, error)
	ListYarnBrands(ctx context.Context) ([]string, error)

	CreateSafetyEyes(ctx context.Context, input *dto.CreateSafetyEyesInput) (*model.SafetyEyes, error)
	SafetyEyesExist(ctx context.Context, key dto.SafetyEyesKey) (bool, error)
	GetSafetyEyes(ctx context.Context, key dto.SafetyEyesKey) (*model.SafetyEyes, error)
	UpdateSafetyEyesQuantity(ctx context.Context, key dto.SafetyEyesKey, pairs float64) error
	DeleteSafetyEyes(ctx context.Context, key dto.SafetyEyesKey) (*model.SafetyEyes, error)
	ListSafetyEyes(ctx context.Context, sortBy string) ([]model.SafetyEyes, error)

	CreateStuffing(ctx context.Context, input *dto.CreateStuffingInput) (*model.Stuffing, error)
	StuffingExists(ctx context.Context, key dto.StuffingKey) (bool, error)
	GetStuffing(ctx context.Context, key dto.StuffingKey) (*model.Stuffing, error)
	UpdateStuffingQuantity(ctx context.Context, key dto.StuffingKey, ounces float64) error
	DeleteStuffing(ctx context.Context, key dto.StuffingKey) (*model.Stuffing, error)
	ListStuffing(ctx context.Context, sortBy string) ([]model.Stuffing, error)
}
