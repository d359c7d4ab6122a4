package booking

import (
	"teerenta/models"

	"go.uber.org/zap"
)

// ListBookings returns the tourist's active bookings of the given kind.
func (s *DefaultBookingService) ListBookings(kind models.ItemKind, touristID string) ([]models.Booking, error) {
	if !kind.Valid() {
		return nil, ErrNotFound
	}
	return s.Bookings.ListByTourist(kind, touristID)
}

// Cancel moves a Pending booking to Cancelled and refunds wallet payments to
// the wallet. Completed and Cancelled bookings are immutable.
func (s *DefaultBookingService) Cancel(kind models.ItemKind, bookingID, touristID string) error {
	if !kind.Valid() {
		return ErrNotFound
	}

	b, err := s.Bookings.GetByID(kind, bookingID)
	if err != nil {
		return err
	}
	if b == nil || !b.IsActive || b.TouristID != touristID {
		return ErrNotFound
	}

	moved, err := s.Bookings.TransitionStatus(kind, bookingID, models.BookingPending, models.BookingCancelled)
	if err != nil {
		return err
	}
	if !moved {
		return ErrAlreadyFinalized
	}

	if b.PaymentMethod == models.PaymentWallet {
		if err := s.Tourists.CreditWallet(touristID, b.Price); err != nil {
			s.Logger.Error("failed to refund cancelled booking",
				zap.String("booking_id", bookingID), zap.Error(err))
		}
	}

	s.Logger.Info("booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("kind", string(kind)))
	return nil
}
