package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hooknest/craftstock-service/internal/customer"
	"github.com/hooknest/craftstock-service/internal/customer/dto"
	"github.com/hooknest/craftstock-service/pkg/apperrors"
	"github.com/hooknest/craftstock-service/pkg/httpx"
	"github.com/hooknest/craftstock-service/pkg/logger"
)

type CustomerHandler struct {
	uc     customer.UseCase
	logger logger.ZapLogger
}

func NewCustomerHandler(uc customer.UseCase, log logger.ZapLogger) *CustomerHandler {
	return &CustomerHandler{uc: uc, logger: log}
}

func (h *CustomerHandler) RegisterRoutes(r *gin.RouterGroup) {
	cu := r.Group("/customers")
	cu.POST("", h.create)
	cu.GET("", h.list)
	cu.GET("/find", h.find)
	cu.PUT("/rename", h.rename)
	cu.PUT("/phone", h.updatePhone)
	cu.PUT("/email", h.updateEmail)
	cu.DELETE("", h.delete)
}

func (h *CustomerHandler) create(c *gin.Context) {
	var input dto.CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid customer payload"))
		return
	}
	cust, err := h.uc.CreateCustomer(c.Request.Context(), &input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondCreated(c, cust)
}

func (h *CustomerHandler) list(c *gin.Context) {
	customers, err := h.uc.ListCustomers(c.Request.Context())
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, customers)
}

func (h *CustomerHandler) find(c *gin.Context) {
	cust, err := h.uc.GetCustomerByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, cust)
}

func (h *CustomerHandler) rename(c *gin.Context) {
	var body struct {
		Name    string `json:"name"`
		NewName string `json:"new_name"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid rename payload"))
		return
	}
	cust, err := h.uc.RenameCustomer(c.Request.Context(), body.Name, body.NewName)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, cust)
}

func (h *CustomerHandler) updatePhone(c *gin.Context) {
	var body struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid phone payload"))
		return
	}
	cust, err := h.uc.UpdatePhone(c.Request.Context(), body.Name, body.Phone)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, cust)
}

func (h *CustomerHandler) updateEmail(c *gin.Context) {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid email payload"))
		return
	}
	cust, err := h.uc.UpdateEmail(c.Request.Context(), body.Name, body.Email)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, cust)
}

func (h *CustomerHandler) delete(c *gin.Context) {
	cust, err := h.uc.DeleteCustomerByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, cust)
}
