package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"teerenta/handlers"
	"teerenta/middleware"
	"teerenta/models"
	"teerenta/services/booking"
	"teerenta/services/promo"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bookingServiceMock struct {
	bookFn   func(ctx context.Context, req booking.BookRequest) (*models.Confirmation, error)
	cancelFn func(kind models.ItemKind, bookingID, touristID string) error
}

func (m *bookingServiceMock) Book(ctx context.Context, req booking.BookRequest) (*models.Confirmation, error) {
	return m.bookFn(ctx, req)
}
func (m *bookingServiceMock) ListBookings(kind models.ItemKind, touristID string) ([]models.Booking, error) {
	return nil, nil
}
func (m *bookingServiceMock) Cancel(kind models.ItemKind, bookingID, touristID string) error {
	if m.cancelFn != nil {
		return m.cancelFn(kind, bookingID, touristID)
	}
	return nil
}

func newRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Stand in for the JWT middleware.
	r.Use(func(c *gin.Context) {
		c.Set(middleware.TouristIDKey, "t1")
	})
	h := handlers.NewBookingHandler(svc, zap.NewNop())
	r.POST("/api/transportation/book/:id", h.Book(models.KindTransportation))
	return r
}

func doBook(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/transportation/book/item1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookHandler_Success(t *testing.T) {
	var got booking.BookRequest
	svc := &bookingServiceMock{
		bookFn: func(ctx context.Context, req booking.BookRequest) (*models.Confirmation, error) {
			got = req
			return &models.Confirmation{BookingID: "b1", FinalPrice: 80}, nil
		},
	}

	w := doBook(t, newRouter(svc), `{"paymentMethod":"card","promoCode":"SAVE20"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "b1")
	assert.Equal(t, models.PaymentCard, got.PaymentMethod)
	assert.Equal(t, "SAVE20", got.PromoCode)
	assert.Equal(t, "t1", got.TouristID)
	assert.Equal(t, "item1", got.ItemID)
}

func TestBookHandler_DefaultsToWallet(t *testing.T) {
	var got booking.BookRequest
	svc := &bookingServiceMock{
		bookFn: func(ctx context.Context, req booking.BookRequest) (*models.Confirmation, error) {
			got = req
			return &models.Confirmation{BookingID: "b1", FinalPrice: 100}, nil
		},
	}

	w := doBook(t, newRouter(svc), ``)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.PaymentWallet, got.PaymentMethod)
}

func TestBookHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", booking.ErrNotFound, http.StatusNotFound},
		{"ineligible", booking.ErrIneligible, http.StatusBadRequest},
		{"duplicate", booking.ErrDuplicateBooking, http.StatusBadRequest},
		{"insufficient funds", booking.ErrInsufficientFunds, http.StatusBadRequest},
		{"invalid method", booking.ErrInvalidPaymentMethod, http.StatusBadRequest},
		{"invalid promo", promo.ErrInvalidPromoCode, http.StatusBadRequest},
		{"promo exhausted", promo.ErrUsageLimitExceeded, http.StatusBadRequest},
		{"payment failed", booking.ErrPaymentFailed, http.StatusPaymentRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &bookingServiceMock{
				bookFn: func(ctx context.Context, req booking.BookRequest) (*models.Confirmation, error) {
					return nil, tc.err
				},
			}
			w := doBook(t, newRouter(svc), `{"paymentMethod":"wallet"}`)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
