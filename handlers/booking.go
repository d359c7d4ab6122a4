package handlers

import (
	"errors"
	"net/http"

	"teerenta/middleware"
	"teerenta/models"
	"teerenta/services/booking"
	"teerenta/services/promo"
	"teerenta/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking flow over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// Book handles POST /api/<kind>/book/:id.
func (h *BookingHandler) Book(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			PaymentMethod string `json:"paymentMethod"`
			PromoCode     string `json:"promoCode"`
		}
		// The body is optional; payment defaults to the wallet.
		_ = c.ShouldBindJSON(&input)
		if input.PaymentMethod == "" {
			input.PaymentMethod = string(models.PaymentWallet)
		}

		conf, err := h.Service.Book(c.Request.Context(), booking.BookRequest{
			Kind:          kind,
			ItemID:        c.Param("id"),
			TouristID:     middleware.TouristID(c),
			PaymentMethod: models.PaymentMethod(input.PaymentMethod),
			PromoCode:     input.PromoCode,
		})
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booked successfully", "confirmation": conf})
	}
}

// ListBooked handles GET /api/<kind>/booked.
func (h *BookingHandler) ListBooked(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := h.Service.ListBookings(kind, middleware.TouristID(c))
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

// Cancel handles POST /api/<kind>/cancel/:id.
func (h *BookingHandler) Cancel(kind models.ItemKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.Service.Cancel(kind, c.Param("id"), middleware.TouristID(c)); err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
	}
}

// respondError maps the booking error taxonomy onto HTTP statuses.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "Not found or inactive", err.Error())
	case errors.Is(err, booking.ErrIneligible),
		errors.Is(err, booking.ErrDuplicateBooking),
		errors.Is(err, booking.ErrInsufficientFunds),
		errors.Is(err, booking.ErrInvalidPaymentMethod),
		errors.Is(err, booking.ErrAlreadyFinalized),
		errors.Is(err, promo.ErrInvalidPromoCode),
		errors.Is(err, promo.ErrUsageLimitExceeded):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, booking.ErrPaymentFailed):
		utils.JSONError(c, http.StatusPaymentRequired, "Payment failed", err.Error())
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
