package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	customerdto "github.com/hooknest/craftstock-service/internal/customer/dto"
	"github.com/hooknest/craftstock-service/internal/model"
	"github.com/hooknest/craftstock-service/internal/order/dto"
	productdto "github.com/hooknest/craftstock-service/internal/product/dto"
	"github.com/hooknest/craftstock-service/pkg/apperrors"
	"github.com/hooknest/craftstock-service/pkg/logger"
)

type fakeOrderRepo struct {
	orders []model.Order
	lines  []model.OrderLine
	facts  []model.PurchaseFact
}

func (f *fakeOrderRepo) CreateWithLines(_ context.Context, o *model.Order, lines []model.OrderLine, facts []model.PurchaseFact) error {
	f.orders = append(f.orders, *o)
	f.lines = append(f.lines, lines...)
	f.facts = append(f.facts, facts...)
	return nil
}

func (f *fakeOrderRepo) FindByCustomerAndDate(_ context.Context, customerID string, date time.Time) (*model.Order, error) {
	for i := range f.orders {
		if f.orders[i].CustomerID == customerID && f.orders[i].OrderDate.Equal(date) {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindAllByCustomer(_ context.Context, customerID string) ([]model.Order, error) {
	var out []model.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindLines(_ context.Context, orderID string) ([]model.OrderLine, error) {
	var out []model.OrderLine
	for _, l := range f.lines {
		if l.OrderID == orderID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindPurchasesByCustomer(_ context.Context, customerID string) ([]model.PurchaseFact, error) {
	var out []model.PurchaseFact
	for _, p := range f.facts {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) DeleteCascade(_ context.Context, o *model.Order, lines []model.OrderLine) error {
	for _, line := range lines {
		for i := range f.facts {
			if f.facts[i].CustomerID == o.CustomerID && f.facts[i].ProductID == line.ProductID {
				f.facts = append(f.facts[:i], f.facts[i+1:]...)
				break
			}
		}
	}
	kept := f.lines[:0]
	for _, l := range f.lines {
		if l.OrderID != o.ID {
			kept = append(kept, l)
		}
	}
	f.lines = kept
	for i := range f.orders {
		if f.orders[i].ID == o.ID {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			break
		}
	}
	return nil
}

type fakeCustomerUC struct {
	customers []model.Customer
}

func (f *fakeCustomerUC) find(name string) *model.Customer {
	for i := range f.customers {
		if f.customers[i].Name == name {
			c := f.customers[i]
			return &c
		}
	}
	return nil
}

func (f *fakeCustomerUC) CreateCustomer(_ context.Context, input *customerdto.CreateCustomerInput) (*model.Customer, error) {
	c := model.Customer{
		BaseModel: model.BaseModel{ID: uuid.New().String()},
		Name:      input.Name, Phone: input.Phone, Email: input.Email,
	}
	f.customers = append(f.customers, c)
	return &c, nil
}

func (f *fakeCustomerUC) GetCustomerByName(_ context.Context, name string) (*model.Customer, error) {
	if c := f.find(name); c != nil {
		return c, nil
	}
	return nil, apperrors.NotFound("customer", name)
}

func (f *fakeCustomerUC) ListCustomers(_ context.Context) ([]model.Customer, error) {
	return f.customers, nil
}

func (f *fakeCustomerUC) RenameCustomer(_ context.Context, name, newName string) (*model.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerUC) UpdatePhone(_ context.Context, name, phone string) (*model.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerUC) UpdateEmail(_ context.Context, name, email string) (*model.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerUC) DeleteCustomerByName(_ context.Context, name string) (*model.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerUC) FindOrCreate(_ context.Context, name string) (*model.Customer, error) {
	if name == "" {
		return nil, apperrors.Validation("customer name must not be empty")
	}
	if c := f.find(name); c != nil {
		return c, nil
	}
	c := model.Customer{
		BaseModel: model.BaseModel{ID: uuid.New().String()},
		Name:      name, Phone: model.PlaceholderContact, Email: model.PlaceholderContact,
	}
	f.customers = append(f.customers, c)
	return &c, nil
}

type fakeProductRepo struct {
	products []model.Product
}

func (f *fakeProductRepo) Create(_ context.Context, p *model.Product) error {
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductRepo) FindAll(_ context.Context, _ *productdto.ProductFilters) ([]model.Product, error) {
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

func (f *fakeProductRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	p, _ := f.FindByName(ctx, name)
	return p != nil, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *model.Product, _ time.Time) (bool, error) {
	for i := range f.products {
		if f.products[i].ID == p.ID {
			f.products[i] = *p
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) UpdateStockByName(_ context.Context, name string, stock int) (bool, error) {
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

func (f *fakeProductRepo) Delete(_ context.Context, id string) error { return nil }

type fakePublisher struct {
	messages chan []byte
}

func (f *fakePublisher) Publish(_ context.Context, _ string, value []byte) error {
	f.messages <- value
	return nil
}

func seedProducts() *fakeProductRepo {
	return &fakeProductRepo{products: []model.Product{
		{BaseModel: model.BaseModel{ID: uuid.New().String()}, Name: "Hat", SalePrice: 20.00, StockCount: 5},
		{BaseModel: model.BaseModel{ID: uuid.New().String()}, Name: "Scarf", SalePrice: 30.00, StockCount: 5},
	}}
}

func TestCreateOrder_TotalAndFanOut(t *testing.T) {
	orders := &fakeOrderRepo{}
	customers := &fakeCustomerUC{}
	products := seedProducts()
	uc := NewOrderUseCase(orders, customers, products, nil, logger.NewNop())

	result, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerName:  "Maria Delgado",
		OrderDate:     "2026-03-14",
		PaymentMethod: "cash",
		Lines: []dto.OrderLineInput{
			{ProductName: "Hat", Quantity: 1},
			{ProductName: "Scarf", Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.InDelta(t, 80.00, result.Order.TotalPrice, 1e-9)
	require.Len(t, result.Lines, 2)
	require.False(t, result.Lines[0].Skipped)
	require.InDelta(t, 20.00, result.Lines[0].LineTotal, 1e-9)
	require.InDelta(t, 60.00, result.Lines[1].LineTotal, 1e-9)

	require.Len(t, orders.orders, 1)
	require.Len(t, orders.lines, 2)
	require.Len(t, orders.facts, 2)

	cust := customers.find("Maria Delgado")
	require.NotNil(t, cust)
	require.Equal(t, model.PlaceholderContact, cust.Phone)
	require.Equal(t, cust.ID, orders.orders[0].CustomerID)
}

func TestCreateOrder_InvalidDateHasNoSideEffects(t *testing.T) {
	orders := &fakeOrderRepo{}
	customers := &fakeCustomerUC{}
	uc := NewOrderUseCase(orders, customers, seedProducts(), nil, logger.NewNop())

	_, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerName: "Maria Delgado",
		OrderDate:    "14/03/2026",
		Lines:        []dto.OrderLineInput{{ProductName: "Hat", Quantity: 1}},
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)
	require.Empty(t, orders.orders)
	require.Empty(t, customers.customers)
}

func TestCreateOrder_UnknownProductLineSkipped(t *testing.T) {
	orders := &fakeOrderRepo{}
	uc := NewOrderUseCase(orders, &fakeCustomerUC{}, seedProducts(), nil, logger.NewNop())

	result, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerName: "Maria Delgado",
		OrderDate:    "2026-03-14",
		Lines: []dto.OrderLineInput{
			{ProductName: "Hat", Quantity: 1},
			{ProductName: "Dragon", Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.InDelta(t, 20.00, result.Order.TotalPrice, 1e-9)
	require.Len(t, result.Lines, 2)
	require.True(t, result.Lines[1].Skipped)
	require.Equal(t, "Dragon", result.Lines[1].ProductName)

	require.Len(t, orders.lines, 1)
	require.Len(t, orders.facts, 1)
}

func TestCreateOrder_PublishesCreatedEvent(t *testing.T) {
	orders := &fakeOrderRepo{}
	pub := &fakePublisher{messages: make(chan []byte, 1)}
	uc := NewOrderUseCase(orders, &fakeCustomerUC{}, seedProducts(), pub, logger.NewNop())

	result, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerName: "Maria Delgado",
		OrderDate:    "2026-03-14",
		Lines:        []dto.OrderLineInput{{ProductName: "Scarf", Quantity: 2}},
	})
	require.NoError(t, err)

	select {
	case raw := <-pub.messages:
		var event dto.OrderCreatedEvent
		require.NoError(t, json.Unmarshal(raw, &event))
		require.Equal(t, dto.EventTypeOrderCreated, event.EventType)
		require.Equal(t, result.Order.ID, event.Payload.ID)
		require.Len(t, event.Payload.Items, 1)
		require.Equal(t, 2, event.Payload.Items[0].Quantity)
	case <-time.After(2 * time.Second):
		t.Fatal("no order event published")
	}
}

func TestDeleteOrder_CascadesLinesAndFacts(t *testing.T) {
	orders := &fakeOrderRepo{}
	customers := &fakeCustomerUC{}
	uc := NewOrderUseCase(orders, customers, seedProducts(), nil, logger.NewNop())

	_, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerName: "Maria Delgado",
		OrderDate:    "2026-03-14",
		Lines: []dto.OrderLineInput{
			{ProductName: "Hat", Quantity: 1},
			{ProductName: "Scarf", Quantity: 2},
		},
	})
	require.NoError(t, err)

	err = uc.DeleteOrderByCustomerAndDate(context.Background(), "Maria Delgado", "2026-03-14")
	require.NoError(t, err)
	require.Empty(t, orders.orders)
	require.Empty(t, orders.lines)
	require.Empty(t, orders.facts)
}

func TestDeleteOrder_SharedFactGoesOnce(t *testing.T) {
	orders := &fakeOrderRepo{}
	customers := &fakeCustomerUC{}
	uc := NewOrderUseCase(orders, customers, seedProducts(), nil, logger.NewNop())

	for _, date := range []string{"2026-03-14", "2026-04-01"} {
		_, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
			CustomerName: "Maria Delgado",
			OrderDate:    date,
			Lines:        []dto.OrderLineInput{{ProductName: "Hat", Quantity: 1}},
		})
		require.NoError(t, err)
	}
	require.Len(t, orders.facts, 2)

	err := uc.DeleteOrderByCustomerAndDate(context.Background(), "Maria Delgado", "2026-03-14")
	require.NoError(t, err)

	// Facts carry no order id, so exactly one of the two identical facts
	// goes with the deleted order.
	require.Len(t, orders.orders, 1)
	require.Len(t, orders.facts, 1)
}

func TestDeleteOrder_MissingOrderNotFound(t *testing.T) {
	customers := &fakeCustomerUC{}
	_, err := customers.FindOrCreate(context.Background(), "Maria Delgado")
	require.NoError(t, err)

	uc := NewOrderUseCase(&fakeOrderRepo{}, customers, seedProducts(), nil, logger.NewNop())

	err = uc.DeleteOrderByCustomerAndDate(context.Background(), "Maria Delgado", "2026-03-14")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListPurchasesForCustomer(t *testing.T) {
	orders := &fakeOrderRepo{}
	customers := &fakeCustomerUC{}
	uc := NewOrderUseCase(orders, customers, seedProducts(), nil, logger.NewNop())

	_, err := uc.CreateOrder(context.Background(), &dto.CreateOrderInput{
		CustomerName: "Maria Delgado",
		OrderDate:    "2026-03-14",
		Lines: []dto.OrderLineInput{
			{ProductName: "Hat", Quantity: 1},
			{ProductName: "Scarf", Quantity: 1},
		},
	})
	require.NoError(t, err)

	facts, err := uc.ListPurchasesForCustomer(context.Background(), "Maria Delgado")
	require.NoError(t, err)
	require.Len(t, facts, 2)
}
