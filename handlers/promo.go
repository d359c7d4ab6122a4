package handlers

import (
	"errors"
	"net/http"
	"time"

	"teerenta/models"
	"teerenta/services/promo"
	"teerenta/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PromoHandler exposes promo-code management and validation.
type PromoHandler struct {
	Service promo.PromoService
	Logger  *zap.Logger
}

func NewPromoHandler(svc promo.PromoService, logger *zap.Logger) *PromoHandler {
	return &PromoHandler{Service: svc, Logger: logger}
}

// Create handles POST /api/promo.
func (h *PromoHandler) Create(c *gin.Context) {
	var input struct {
		Code            string    `json:"code" binding:"required"`
		DiscountPercent float64   `json:"discountPercent" binding:"required"`
		ExpiryDate      time.Time `json:"expiryDate" binding:"required"`
		UsageLimit      int       `json:"usageLimit" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	p := &models.PromoCode{
		Code:            input.Code,
		DiscountPercent: input.DiscountPercent,
		ExpiryDate:      input.ExpiryDate,
		UsageLimit:      input.UsageLimit,
	}
	if err := h.Service.Create(p); err != nil {
		h.Logger.Error("failed to create promo code", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Promo code created successfully", "promoCode": p})
}

// Validate handles POST /api/promo/validate. It checks the code without
// consuming a use; reservation happens inside the booking flow.
func (h *PromoHandler) Validate(c *gin.Context) {
	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	discount, err := h.Service.Validate(input.Code)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"discountPercent": discount})
	case errors.Is(err, promo.ErrInvalidPromoCode), errors.Is(err, promo.ErrUsageLimitExceeded):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	default:
		h.Logger.Error("promo validation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
