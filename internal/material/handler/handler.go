package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hooknest/craftstock-service/internal/material"
	"github.com/hooknest/craftstock-service/internal/material/dto"
	"github.com/hooknest/craftstock-service/pkg/apperrors"
	"github.com/hooknest/craftstock-service/pkg/httpx"
	"github.com/hooknest/craftstock-service/pkg/logger"
)

// MaterialHandler is transport plumbing only; every rule lives in the use
// case.
type MaterialHandler struct {
	uc     material.UseCase
	logger logger.ZapLogger
}

func NewMaterialHandler(uc material.UseCase, log logger.ZapLogger) *MaterialHandler {
	return &MaterialHandler{uc: uc, logger: log}
}

func (h *MaterialHandler) RegisterRoutes(r *gin.RouterGroup) {
	yarn := r.Group("/materials/yarn")
	yarn.POST("", h.createYarn)
	yarn.GET("", h.listYarn)
	yarn.GET("/brands", h.listYarnBrands)
	yarn.GET("/find", h.findYarn)
	yarn.GET("/exists", h.yarnExists)
	yarn.PUT("/quantity", h.updateYarnQuantity)
	yarn.DELETE("", h.deleteYarn)

	eyes := r.Group("/materials/safety-eyes")
	eyes.POST("", h.createSafetyEyes)
	eyes.GET("", h.listSafetyEyes)
	eyes.GET("/find", h.findSafetyEyes)
	eyes.GET("/exists", h.safetyEyesExist)
	eyes.PUT("/quantity", h.updateSafetyEyesQuantity)
	eyes.DELETE("", h.deleteSafetyEyes)

	stuffing := r.Group("/materials/stuffing")
	stuffing.POST("", h.createStuffing)
	stuffing.GET("", h.listStuffing)
	stuffing.GET("/find", h.findStuffing)
	stuffing.GET("/exists", h.stuffingExists)
	stuffing.PUT("/quantity", h.updateStuffingQuantity)
	stuffing.DELETE("", h.deleteStuffing)
}

func yarnKeyFromQuery(c *gin.Context) dto.YarnKey {
	return dto.YarnKey{
		Brand:     c.Query("brand"),
		FiberType: c.Query("fiber_type"),
		Weight:    c.Query("weight"),
		Color:     c.Query("color"),
	}
}

func safetyEyesKeyFromQuery(c *gin.Context) (dto.SafetyEyesKey, error) {
	size, err := strconv.ParseFloat(c.Query("size_mm"), 64)
	if err != nil {
		return dto.SafetyEyesKey{}, apperrors.Validation("size_mm %q is not a number", c.Query("size_mm"))
	}
	return dto.SafetyEyesKey{SizeMM: size, Color: c.Query("color"), Shape: c.Query("shape")}, nil
}

func stuffingKeyFromQuery(c *gin.Context) dto.StuffingKey {
	return dto.StuffingKey{Brand: c.Query("brand"), FillType: c.Query("fill_type")}
}

func (h *MaterialHandler) createYarn(c *gin.Context) {
	var input dto.CreateYarnInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid yarn payload"))
		return
	}
	y, err := h.uc.CreateYarn(c.Request.Context(), &input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondCreated(c, y)
}

func (h *MaterialHandler) listYarn(c *gin.Context) {
	items, err := h.uc.ListYarn(c.Request.Context(), c.Query("sort"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, items)
}

func (h *MaterialHandler) listYarnBrands(c *gin.Context) {
	brands, err := h.uc.ListYarnBrands(c.Request.Context())
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, brands)
}

func (h *MaterialHandler) findYarn(c *gin.Context) {
	y, err := h.uc.GetYarn(c.Request.Context(), yarnKeyFromQuery(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, y)
}

func (h *MaterialHandler) yarnExists(c *gin.Context) {
	ok, err := h.uc.YarnExists(c.Request.Context(), yarnKeyFromQuery(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, gin.H{"exists": ok})
}

func (h *MaterialHandler) updateYarnQuantity(c *gin.Context) {
	var body struct {
		dto.YarnKey
		SkeinsOwned float64 `json:"skeins_owned"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid yarn quantity payload"))
		return
	}
	if err := h.uc.UpdateYarnQuantity(c.Request.Context(), body.YarnKey, body.SkeinsOwned); err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, gin.H{"updated": true})
}

func (h *MaterialHandler) deleteYarn(c *gin.Context) {
	y, err := h.uc.DeleteYarn(c.Request.Context(), yarnKeyFromQuery(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, y)
}

func (h *MaterialHandler) createSafetyEyes(c *gin.Context) {
	var input dto.CreateSafetyEyesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid safety-eyes payload"))
		return
	}
	e, err := h.uc.CreateSafetyEyes(c.Request.Context(), &input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondCreated(c, e)
}

func (h *MaterialHandler) listSafetyEyes(c *gin.Context) {
	items, err := h.uc.ListSafetyEyes(c.Request.Context(), c.Query("sort"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, items)
}

func (h *MaterialHandler) findSafetyEyes(c *gin.Context) {
	key, err := safetyEyesKeyFromQuery(c)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	e, err := h.uc.GetSafetyEyes(c.Request.Context(), key)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, e)
}

func (h *MaterialHandler) safetyEyesExist(c *gin.Context) {
	key, err := safetyEyesKeyFromQuery(c)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	ok, err := h.uc.SafetyEyesExist(c.Request.Context(), key)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, gin.H{"exists": ok})
}

func (h *MaterialHandler) updateSafetyEyesQuantity(c *gin.Context) {
	var body struct {
		dto.SafetyEyesKey
		PairsOwned float64 `json:"pairs_owned"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid safety-eyes quantity payload"))
		return
	}
	if err := h.uc.UpdateSafetyEyesQuantity(c.Request.Context(), body.SafetyEyesKey, body.PairsOwned); err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, gin.H{"updated": true})
}

func (h *MaterialHandler) deleteSafetyEyes(c *gin.Context) {
	key, err := safetyEyesKeyFromQuery(c)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	e, err := h.uc.DeleteSafetyEyes(c.Request.Context(), key)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, e)
}

func (h *MaterialHandler) createStuffing(c *gin.Context) {
	var input dto.CreateStuffingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid stuffing payload"))
		return
	}
	s, err := h.uc.CreateStuffing(c.Request.Context(), &input)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondCreated(c, s)
}

func (h *MaterialHandler) listStuffing(c *gin.Context) {
	items, err := h.uc.ListStuffing(c.Request.Context(), c.Query("sort"))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, items)
}

func (h *MaterialHandler) findStuffing(c *gin.Context) {
	s, err := h.uc.GetStuffing(c.Request.Context(), stuffingKeyFromQuery(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, s)
}

func (h *MaterialHandler) stuffingExists(c *gin.Context) {
	ok, err := h.uc.StuffingExists(c.Request.Context(), stuffingKeyFromQuery(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, gin.H{"exists": ok})
}

func (h *MaterialHandler) updateStuffingQuantity(c *gin.Context) {
	var body struct {
		dto.StuffingKey
		OuncesOwned float64 `json:"ounces_owned"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		httpx.RespondError(c, apperrors.Validation("invalid stuffing quantity payload"))
		return
	}
	if err := h.uc.UpdateStuffingQuantity(c.Request.Context(), body.StuffingKey, body.OuncesOwned); err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, gin.H{"updated": true})
}

func (h *MaterialHandler) deleteStuffing(c *gin.Context) {
	s, err := h.uc.DeleteStuffing(c.Request.Context(), stuffingKeyFromQuery(c))
	if err != nil {
		httpx.RespondError(c, err)
		return
	}
	httpx.RespondOK(c, s)
}
