package customer

import (
	"context"
	"time"

	"github.com/hooknest/craftstock-service/internal/customer/dto"
	"github.com/hooknest/craftstock-service/internal/model"
)

// Locker serializes the find-or-create critical section. Satisfied by
// cache.RedisClient.
type Locker interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
}

type UseCase interface {
	CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error)
	GetCustomerByName(ctx context.Context, name string) (*model.Customer, error)
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	RenameCustomer(ctx context.Context, name, newName string) (*model.Customer, error)
	UpdatePhone(ctx context.Context, name, phone string) (*model.Customer, error)
	UpdateEmail(ctx context.Context, name, email string) (*model.Customer, error)
	DeleteCustomerByName(ctx context.Context, name string) (*model.Customer, error)

	// FindOrCreate returns the first customer matching name, creating one
	// with placeholder contact details when none exists.
	FindOrCreate(ctx context.Context, name string) (*model.Customer, error)
}
