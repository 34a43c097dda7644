package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hooknest/craftstock-service/internal/order"
	"github.com/hooknest/craftstock-service/internal/order/dto"
	"github.com/hooknest/craftstock-service/pkg/apperrors"
	"github.com/hooknest/craftstock-service/pkg/httpx"
	"github.com/hooknest/craftstock-service/pkg/logger"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: log}
}

func (h *OrderHandler) RegisterRoutes(r *gin.RouterGroup) {
	o := r.Group("/orders")
	o.POST("", h.create)
	o.GET("", h.listForCustomer)
	o.DELETE("", h.delete)
	o.GET("/purchases", h.purchases)
}

func (h *OrderHandler) create(c *gin.Context) {
	var input dto.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid order payload"))
		return
	}
	result, err := h.uc.CreateOrder(c.Request.Context(), &input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondCreated(c, result)
}

func (h *OrderHandler) listForCustomer(c *gin.Context) {
	orders, err := h.uc.ListOrdersForCustomer(c.Request.Context(), c.Query("customer"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, orders)
}

func (h *OrderHandler) delete(c *gin.Context) {
	if err := h.uc.DeleteOrderByCustomerAndDate(c.Request.Context(), c.Query("customer"), c.Query("date")); err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, gin.H{"deleted": true})
}

func (h *OrderHandler) purchases(c *gin.Context) {
	facts, err := h.uc.ListPurchasesForCustomer(c.Request.Context(), c.Query("customer"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, facts)
}
