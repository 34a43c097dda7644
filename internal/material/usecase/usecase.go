package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hooknest/craftstock-service/internal/material"
	"github.com/hooknest/craftstock-service/internal/material/dto"
	"github.com/hooknest/craftstock-service/internal/model"
	"github.com/hooknest/craftstock-service/pkg/apperrors"
	"github.com/hooknest/craftstock-service/pkg/logger"
)

type materialUseCase struct {
	yarn     material.YarnRepository
	eyes     material.SafetyEyesRepository
	stuffing material.StuffingRepository
	logger   logger.ZapLogger
}

func NewMaterialUseCase(
	yarn material.YarnRepository,
	eyes material.SafetyEyesRepository,
	stuffing material.StuffingRepository,
	log logger.ZapLogger,
) material.UseCase {
	return &materialUseCase{
		yarn:     yarn,
		eyes:     eyes,
		stuffing: stuffing,
		logger:   log,
	}
}

func (uc *materialUseCase) CreateYarn(ctx context.Context, input *dto.CreateYarnInput) (*model.Yarn, error) {
	now := time.Now()
	y := &model.Yarn{
		BaseModel:     model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Brand:         input.Brand,
		FiberType:     input.FiberType,
		Weight:        input.Weight,
		Color:         input.Color,
		SkeinsOwned:   input.SkeinsOwned,
		PricePerSkein: input.PricePerSkein,
	}
	if err := uc.yarn.Create(ctx, y); err != nil {
		return nil, err
	}
	return y, nil
}

func (uc *materialUseCase) YarnExists(ctx context.Context, key dto.YarnKey) (bool, error) {
	y, err := uc.yarn.FindByKey(ctx, key)
	if err != nil {
		return false, err
	}
	return y != nil, nil
}

func (uc *materialUseCase) GetYarn(ctx context.Context, key dto.YarnKey) (*model.Yarn, error) {
	y, err := uc.yarn.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if y == nil {
		return nil, apperrors.NotFound("yarn", key.String())
	}
	return y, nil
}

func (uc *materialUseCase) UpdateYarnQuantity(ctx context.Context, key dto.YarnKey, skeins float64) error {
	matched, err := uc.yarn.UpdateQuantity(ctx, key, skeins)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.NotFound("yarn", key.String())
	}
	return nil
}

func (uc *materialUseCase) DeleteYarn(ctx context.Context, key dto.YarnKey) (*model.Yarn, error) {
	y, err := uc.yarn.DeleteByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if y == nil {
		return nil, apperrors.NotFound("yarn", key.String())
	}
	return y, nil
}

func (uc *materialUseCase) ListYarn(ctx context.Context, sortBy string) ([]model.Yarn, error) {
	return uc.yarn.FindAll(ctx, sortBy)
}

func (uc *materialUseCase) ListYarnBrands(ctx context.Context) ([]string, error) {
	return uc.yarn.ListBrands(ctx)
}

func (uc *materialUseCase) CreateSafetyEyes(ctx context.Context, input *dto.CreateSafetyEyesInput) (*model.SafetyEyes, error) {
	now := time.Now()
	e := &model.SafetyEyes{
		BaseModel:    model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		SizeMM:       input.SizeMM,
		Color:        input.Color,
		Shape:        input.Shape,
		PairsOwned:   input.PairsOwned,
		PricePerPair: input.PricePerPair,
	}
	if err := uc.eyes.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *materialUseCase) SafetyEyesExist(ctx context.Context, key dto.SafetyEyesKey) (bool, error) {
	e, err := uc.eyes.FindByKey(ctx, key)
	if err != nil {
		return false, err
	}
	return e != nil, nil
}

func (uc *materialUseCase) GetSafetyEyes(ctx context.Context, key dto.SafetyEyesKey) (*model.SafetyEyes, error) {
	e, err := uc.eyes.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperrors.NotFound("safety eyes", key.String())
	}
	return e, nil
}

func (uc *materialUseCase) UpdateSafetyEyesQuantity(ctx context.Context, key dto.SafetyEyesKey, pairs float64) error {
	matched, err := uc.eyes.UpdateQuantity(ctx, key, pairs)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.NotFound("safety eyes", key.String())
	}
	return nil
}

func (uc *materialUseCase) DeleteSafetyEyes(ctx context.Context, key dto.SafetyEyesKey) (*model.SafetyEyes, error) {
	e, err := uc.eyes.DeleteByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperrors.NotFound("safety eyes", key.String())
	}
	return e, nil
}

func (uc *materialUseCase) ListSafetyEyes(ctx context.Context, sortBy string) ([]model.SafetyEyes, error) {
	return uc.eyes.FindAll(ctx, sortBy)
}

func (uc *materialUseCase) CreateStuffing(ctx context.Context, input *dto.CreateStuffingInput) (*model.Stuffing, error) {
	now := time.Now()
	s := &model.Stuffing{
		BaseModel:     model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Brand:         input.Brand,
		FillType:      input.FillType,
		OuncesOwned:   input.OuncesOwned,
		PricePerOunce: input.PricePerOunce,
	}
	if err := uc.stuffing.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *materialUseCase) StuffingExists(ctx context.Context, key dto.StuffingKey) (bool, error) {
	s, err := uc.stuffing.FindByKey(ctx, key)
	if err != nil {
		return false, err
	}
	return s != nil, nil
}

func (uc *materialUseCase) GetStuffing(ctx context.Context, key dto.StuffingKey) (*model.Stuffing, error) {
	s, err := uc.stuffing.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperrors.NotFound("stuffing", key.String())
	}
	return s, nil
}

func (uc *materialUseCase) UpdateStuffingQuantity(ctx context.Context, key dto.StuffingKey, ounces float64) error {
	matched, err := uc.stuffing.UpdateQuantity(ctx, key, ounces)
	if err != nil {
		return err
	}
	if !matched {
		return apperrors.NotFound("stuffing", key.String())
	}
	return nil
}

func (uc *materialUseCase) DeleteStuffing(ctx context.Context, key dto.StuffingKey) (*model.Stuffing, error) {
	s, err := uc.stuffing.DeleteByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperrors.NotFound("stuffing", key.String())
	}
	return s, nil
}

func (uc *materialUseCase) ListStuffing(ctx context.Context, sortBy string) ([]model.Stuffing, error) {
	return uc.stuffing.FindAll(ctx, sortBy)
}
