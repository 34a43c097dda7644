package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hooknest/craftstock-service/internal/customer"
	"github.com/hooknest/craftstock-service/internal/customer/dto"
	"github.com/hooknest/craftstock-service/internal/model"
	"github.com/hooknest/craftstock-service/pkg/apperrors"
	"github.com/hooknest/craftstock-service/pkg/logger"
)

type customerUseCase struct {
	repo   customer.Repository
	locker customer.Locker
	logger logger.ZapLogger
}

// NewCustomerUseCase builds the directory. locker may be nil, in which case
// FindOrCreate runs unserialized and the duplicate-name race is open.
func NewCustomerUseCase(repo customer.Repository, locker customer.Locker, log logger.ZapLogger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		locker: locker,
		logger: log,
	}
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	if input.Name == "" {
		return nil, apperrors.Validation("customer name must not be empty")
	}
	now := time.Now()
	c := &model.Customer{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *customerUseCase) GetCustomerByName(ctx context.Context, name string) (*model.Customer, error) {
	c, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NotFound("customer", name)
	}
	return c, nil
}

func (uc *customerUseCase) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *customerUseCase) RenameCustomer(ctx context.Context, name, newName string) (*model.Customer, error) {
	if newName == "" {
		return nil, apperrors.Validation("customer name must not be empty")
	}
	return uc.updateByName(ctx, name, func(c *model.Customer) { c.Name = newName })
}

func (uc *customerUseCase) UpdatePhone(ctx context.Context, name, phone string) (*model.Customer, error) {
	return uc.updateByName(ctx, name, func(c *model.Customer) { c.Phone = phone })
}

func (uc *customerUseCase) UpdateEmail(ctx context.Context, name, email string) (*model.Customer, error) {
	return uc.updateByName(ctx, name, func(c *model.Customer) { c.Email = email })
}

func (uc *customerUseCase) updateByName(ctx context.Context, name string, mutate func(*model.Customer)) (*model.Customer, error) {
	c, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NotFound("customer", name)
	}
	mutate(c)
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *customerUseCase) DeleteCustomerByName(ctx context.Context, name string) (*model.Customer, error) {
	c, err := uc.repo.DeleteByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NotFound("customer", name)
	}
	return c, nil
}

func (uc *customerUseCase) FindOrCreate(ctx context.Context, name string) (*model.Customer, error) {
	if name == "" {
		return nil, apperrors.Validation("customer name must not be empty")
	}

	if uc.locker != nil {
		lockKey := fmt.Sprintf("lock:customer:%s", strings.ToLower(name))
		lockValue := uuid.New().String()

		acquired := false
		for i := 0; i < 3; i++ {
			ok, err := uc.locker.AcquireLock(ctx, lockKey, lockValue, 5*time.Second)
			if err != nil {
				uc.logger.Error("failed to acquire customer lock", zap.Error(err))
			}
			if ok {
				acquired = true
				break
			}
			time.Sleep(100 * time.Millisecond)
		}
		if !acquired {
			return nil, fmt.Errorf("customer %q is being resolved elsewhere: %w", name, apperrors.ErrConflict)
		}
		defer func() {
			if err := uc.locker.ReleaseLock(ctx, lockKey, lockValue); err != nil {
				uc.logger.Warn("failed to release customer lock", zap.Error(err))
			}
		}()
	}

	c, err := uc.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}

	now := time.Now()
	c = &model.Customer{
		BaseModel: model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		Name:      name,
		Phone:     model.PlaceholderContact,
		Email:     model.PlaceholderContact,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	uc.logger.Info("created customer from order flow", zap.String("customer", name))
	return c, nil
}
