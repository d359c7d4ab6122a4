package bookingRepo

import (
	"time"

	"teerenta/models"
)

// BookingRepository defines persistence for booking records. Each item kind
// keeps its bookings in its own collection, mirroring the inventory split.
type BookingRepository interface {
	Create(b *models.Booking) error
	GetByID(kind models.ItemKind, id string) (*models.Booking, error)
	// FindPendingByTouristAndItem returns an active Pending booking by the
	// given tourist for the given item, or (nil, nil) if none exists.
	FindPendingByTouristAndItem(kind models.ItemKind, itemID, touristID string) (*models.Booking, error)
	ListByTourist(kind models.ItemKind, touristID string) ([]models.Booking, error)
	// TransitionStatus moves a booking from one status to another as a single
	// conditional update. Returns false when the booking is absent or not in
	// the expected status.
	TransitionStatus(kind models.ItemKind, id string, from, to models.BookingStatus) (bool, error)
	// CompletePastDue marks every active Pending booking dated strictly
	// before the cutoff as Completed and returns the number updated.
	CompletePastDue(kind models.ItemKind, before time.Time) (int64, error)
}
