package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hooknest/craftstock-service/internal/product"
	"github.com/hooknest/craftstock-service/internal/product/dto"
	"github.com/hooknest/craftstock-service/pkg/apperrors"
	"github.com/hooknest/craftstock-service/pkg/httpx"
	"github.com/hooknest/craftstock-service/pkg/logger"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: log}
}

func (h *ProductHandler) RegisterRoutes(r *gin.RouterGroup) {
	p := r.Group("/products")
	p.POST("", h.create)
	p.GET("", h.list)
	p.GET("/exists", h.exists)
	p.GET("/by-name/:name", h.getByName)
	p.PUT("/stock", h.updateStock)
	p.GET("/:id", h.get)
	p.PUT("/:id", h.update)
	p.DELETE("/:id", h.delete)
}

func (h *ProductHandler) create(c *gin.Context) {
	var input dto.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid product payload"))
		return
	}
	p, err := h.uc.CreateProduct(c.Request.Context(), &input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondCreated(c, p)
}

func (h *ProductHandler) list(c *gin.Context) {
	filters := &dto.ProductFilters{
		SearchQuery: c.Query("q"),
		SortBy:      c.Query("sort"),
		SortOrder:   c.Query("order"),
	}
	products, err := h.uc.ListProducts(c.Request.Context(), filters)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, products)
}

func (h *ProductHandler) exists(c *gin.Context) {
	ok, err := h.uc.ProductExists(c.Request.Context(), c.Query("name"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, gin.H{"exists": ok})
}

func (h *ProductHandler) get(c *gin.Context) {
	p, err := h.uc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, p)
}

func (h *ProductHandler) getByName(c *gin.Context) {
	p, err := h.uc.GetProductByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, p)
}

func (h *ProductHandler) update(c *gin.Context) {
	var input dto.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid product payload"))
		return
	}
	input.ID = c.Param("id")
	p, err := h.uc.UpdateProduct(c.Request.Context(), &input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, p)
}

func (h *ProductHandler) updateStock(c *gin.Context) {
	var body struct {
		Name       string `json:"name"`
		StockCount int    `json:"stock_count"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid stock payload"))
		return
	}
	if err := h.uc.UpdateStock(c.Request.Context(), body.Name, body.StockCount); err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, gin.H{"updated": true})
}

func (h *ProductHandler) delete(c *gin.Context) {
	if err := h.uc.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, gin.H{"deleted": true})
}
