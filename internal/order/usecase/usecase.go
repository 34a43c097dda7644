package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hooknest/craftstock-service/internal/customer"
	"github.com/hooknest/craftstock-service/internal/model"
	"github.com/hooknest/craftstock-service/internal/order"
	"github.com/hooknest/craftstock-service/internal/order/dto"
	"github.com/hooknest/craftstock-service/internal/product"
	"github.com/hooknest/craftstock-service/pkg/apperrors"
	"github.com/hooknest/craftstock-service/pkg/logger"
)

type orderUseCase struct {
	orders    order.Repository
	customers customer.UseCase
	products  product.Repository
	producer  order.Publisher
	logger    logger.ZapLogger
}

// NewOrderUseCase builds the workflow. producer may be nil; order events
// are then simply not published.
func NewOrderUseCase(
	orders order.Repository,
	customers customer.UseCase,
	products product.Repository,
	producer order.Publisher,
	log logger.ZapLogger,
) order.UseCase {
	return &orderUseCase{
		orders:    orders,
		customers: customers,
		products:  products,
		producer:  producer,
		logger:    log,
	}
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*dto.CreateOrderResult, error) {
	// Date is validated before anything is written, so a bad date leaves
	// no trace.
	orderDate, err := time.Parse(dto.DateLayout, input.OrderDate)
	if err != nil {
		return nil, apperrors.Validation("order date %q is not in %s form", input.OrderDate, dto.DateLayout)
	}

	cust, err := uc.customers.FindOrCreate(ctx, input.CustomerName)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	o := &model.Order{
		BaseModel:     model.BaseModel{ID: uuid.New().String(), CreatedAt: now, UpdatedAt: now},
		CustomerID:    cust.ID,
		OrderDate:     orderDate,
		PaymentMethod: input.PaymentMethod,
	}

	var (
		lines   []model.OrderLine
		facts   []model.PurchaseFact
		results = make([]dto.LineResult, 0, len(input.Lines))
		total   float64
	)
	for _, in := range input.Lines {
		p, err := uc.products.FindByName(ctx, in.ProductName)
		if err != nil {
			return nil, err
		}
		if p == nil {
			// Unresolvable lines are skipped, not fatal. The skip is
			// logged and reported per line rather than swallowed.
			uc.logger.Warn("order line skipped, product not found",
				zap.String("customer", input.CustomerName),
				zap.String("product", in.ProductName),
			)
			results = append(results, dto.LineResult{
				ProductName: in.ProductName,
				Quantity:    in.Quantity,
				Skipped:     true,
			})
			continue
		}

		lineTotal := float64(in.Quantity) * p.SalePrice
		total += lineTotal
		lines = append(lines, model.OrderLine{
			ID:        uuid.New().String(),
			OrderID:   o.ID,
			ProductID: p.ID,
			Quantity:  in.Quantity,
		})
		facts = append(facts, model.PurchaseFact{
			ID:         uuid.New().String(),
			CustomerID: cust.ID,
			ProductID:  p.ID,
			CreatedAt:  now,
		})
		results = append(results, dto.LineResult{
			ProductName: in.ProductName,
			Quantity:    in.Quantity,
			LineTotal:   lineTotal,
		})
	}
	o.TotalPrice = total

	if err := uc.orders.CreateWithLines(ctx, o, lines, facts); err != nil {
		return nil, err
	}

	uc.logger.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("customer", input.CustomerName),
		zap.Float64("total", o.TotalPrice),
		zap.Int("lines", len(lines)),
		zap.Int("skipped", len(input.Lines)-len(lines)),
	)

	go uc.publishCreated(context.Background(), o, lines)

	return &dto.CreateOrderResult{Order: o, Lines: results}, nil
}

func (uc *orderUseCase) publishCreated(ctx context.Context, o *model.Order, lines []model.OrderLine) {
	if uc.producer == nil {
		return
	}

	items := make([]dto.OrderItemPayload, len(lines))
	for i, line := range lines {
		items[i] = dto.OrderItemPayload{ProductID: line.ProductID, Quantity: line.Quantity}
	}
	event := dto.OrderCreatedEvent{
		EventID:   uuid.New().String(),
		EventType: dto.EventTypeOrderCreated,
		Payload: dto.OrderPayload{
			ID:         o.ID,
			CustomerID: o.CustomerID,
			TotalPrice: o.TotalPrice,
			Items:      items,
		},
		Timestamp: time.Now(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		uc.logger.Error("failed to marshal order event", zap.Error(err))
		return
	}
	if err := uc.producer.Publish(ctx, o.ID, value); err != nil {
		uc.logger.Error("failed to publish order event",
			zap.String("order_id", o.ID),
			zap.Error(err),
		)
	}
}

func (uc *orderUseCase) DeleteOrderByCustomerAndDate(ctx context.Context, customerName, orderDate string) error {
	date, err := time.Parse(dto.DateLayout, orderDate)
	if err != nil {
		return apperrors.Validation("order date %q is not in %s form", orderDate, dto.DateLayout)
	}

	cust, err := uc.customers.GetCustomerByName(ctx, customerName)
	if err != nil {
		return err
	}

	o, err := uc.orders.FindByCustomerAndDate(ctx, cust.ID, date)
	if err != nil {
		return err
	}
	if o == nil {
		return apperrors.NotFound("order", customerName+" on "+orderDate)
	}

	lines, err := uc.orders.FindLines(ctx, o.ID)
	if err != nil {
		return err
	}

	if err := uc.orders.DeleteCascade(ctx, o, lines); err != nil {
		return err
	}

	uc.logger.Info("order deleted",
		zap.String("order_id", o.ID),
		zap.String("customer", customerName),
		zap.Int("lines", len(lines)),
	)
	return nil
}

func (uc *orderUseCase) ListOrdersForCustomer(ctx context.Context, customerName string) ([]model.Order, error) {
	cust, err := uc.customers.GetCustomerByName(ctx, customerName)
	if err != nil {
		return nil, err
	}
	return uc.orders.FindAllByCustomer(ctx, cust.ID)
}

func (uc *orderUseCase) ListPurchasesForCustomer(ctx context.Context, customerName string) ([]model.PurchaseFact, error) {
	cust, err := uc.customers.GetCustomerByName(ctx, customerName)
	if err != nil {
		return nil, err
	}
	return uc.orders.FindPurchasesByCustomer(ctx, cust.ID)
}
