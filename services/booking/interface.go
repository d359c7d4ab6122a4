package booking

import (
	"context"

	"teerenta/models"
)

// BookRequest carries everything needed to book one item for one tourist.
type BookRequest struct {
	Kind          models.ItemKind
	ItemID        string
	TouristID     string
	PaymentMethod models.PaymentMethod
	PromoCode     string
}

// BookingService orchestrates the booking flow end to end.
type BookingService interface {
	Book(ctx context.Context, req BookRequest) (*models.Confirmation, error)
	ListBookings(kind models.ItemKind, touristID string) ([]models.Booking, error)
	Cancel(kind models.ItemKind, bookingID, touristID string) error
}
