package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hooknest/craftstock-service/internal/bom"
	matdto "github.com/hooknest/craftstock-service/internal/material/dto"
	"github.com/hooknest/craftstock-service/internal/model"
	"github.com/hooknest/craftstock-service/pkg/apperrors"
	"github.com/hooknest/craftstock-service/pkg/httpx"
	"github.com/hooknest/craftstock-service/pkg/logger"
)

type BomHandler struct {
	uc     bom.UseCase
	logger logger.ZapLogger
}

func NewBomHandler(uc bom.UseCase, log logger.ZapLogger) *BomHandler {
	return &BomHandler{uc: uc, logger: log}
}

func (h *BomHandler) RegisterRoutes(r *gin.RouterGroup) {
	b := r.Group("/bom")
	b.POST("/links", h.addLink)
	b.DELETE("/links", h.removeLink)
	b.PUT("/links/quantity", h.updateLinkQuantity)
	b.GET("/products/:id/links", h.linksForProduct)
	b.GET("/products/by-name/:name/links", h.detailedLinks)
	b.GET("/materials/:kind/:id/products", h.productsUsing)
	b.GET("/materials/:kind/:id/can-supply", h.canSupply)
}

type linkBody struct {
	ProductName  string                  `json:"product_name"`
	Material     matdto.MaterialSelector `json:"material"`
	QuantityUsed float64                 `json:"quantity_used"`
}

func (h *BomHandler) addLink(c *gin.Context) {
	var body linkBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid link payload"))
		return
	}
	link, err := h.uc.AddMaterial(c.Request.Context(), body.ProductName, body.Material, body.QuantityUsed)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondCreated(c, link)
}

func (h *BomHandler) removeLink(c *gin.Context) {
	var body linkBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid link payload"))
		return
	}
	if err := h.uc.RemoveMaterial(c.Request.Context(), body.ProductName, body.Material); err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, gin.H{"removed": true})
}

func (h *BomHandler) updateLinkQuantity(c *gin.Context) {
	var body linkBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid link payload"))
		return
	}
	if err := h.uc.UpdateMaterialQuantity(c.Request.Context(), body.ProductName, body.Material, body.QuantityUsed); err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, gin.H{"updated": true})
}

func (h *BomHandler) linksForProduct(c *gin.Context) {
	links, err := h.uc.LinksForProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, links)
}

func (h *BomHandler) detailedLinks(c *gin.Context) {
	usages, err := h.uc.DetailedLinksForProduct(c.Request.Context(), c.Param("name"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, usages)
}

func (h *BomHandler) productsUsing(c *gin.Context) {
	kind, err := model.ParseMaterialKind(c.Param("kind"))
	if err != nil {
		httpx.RespondError(c, apperrors.Validation("unknown material kind %q", c.Param("kind")))
		return
	}
	products, err := h.uc.ProductsUsingMaterial(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, products)
}

func (h *BomHandler) canSupply(c *gin.Context) {
	required, err := strconv.ParseFloat(c.Query("required"), 64)
	if err != nil {
		httpx.RespondError(c, apperrors.Validation("required %q is not a number", c.Query("required")))
		return
	}
	ok, err := h.uc.CanSupply(c.Request.Context(), c.Param("id"), required)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, gin.H{"can_supply": ok})
}
