package handlers

import (
	"errors"
	"net/http"

	"teerenta/middleware"
	"teerenta/models"
	"teerenta/services/tourist"
	"teerenta/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TouristHandler exposes the tourist profile and wallet.
type TouristHandler struct {
	Service tourist.TouristService
	Logger  *zap.Logger
}

func NewTouristHandler(svc tourist.TouristService, logger *zap.Logger) *TouristHandler {
	return &TouristHandler{Service: svc, Logger: logger}
}

// GetProfile handles GET /api/tourist/profile.
func (h *TouristHandler) GetProfile(c *gin.Context) {
	t, err := h.Service.GetProfile(middleware.TouristID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateProfile handles PUT /api/tourist/profile.
func (h *TouristHandler) UpdateProfile(c *gin.Context) {
	var t models.Tourist
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	t.ID = middleware.TouristID(c)
	if err := h.Service.UpdateProfile(&t); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// TopUpWallet handles POST /api/tourist/wallet/topup.
func (h *TouristHandler) TopUpWallet(c *gin.Context) {
	var input struct {
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	t, err := h.Service.TopUpWallet(middleware.TouristID(c), input.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Wallet credited successfully", "wallet": t.Wallet})
}

func (h *TouristHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tourist.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Tourist not found", "")
	case errors.Is(err, tourist.ErrInvalidAmount):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	default:
		h.Logger.Error("tourist request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
