package booking

import (
	"context"
	"time"

	bookingRepo "teerenta/database/repository/booking"
	itemRepo "teerenta/database/repository/item"
	touristRepo "teerenta/database/repository/tourist"
	"teerenta/models"
	"teerenta/services/promo"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the BookingService backed by the Mongo
// repositories and the card gateway.
type DefaultBookingService struct {
	Items    itemRepo.ItemRepository
	Bookings bookingRepo.BookingRepository
	Tourists touristRepo.TouristRepository
	Promos   promo.PromoService
	Gateway  CardGateway

	Currency    string
	MinimumAges map[models.ItemKind]int
	LoyaltyRate float64 // points awarded per currency unit charged
	Logger      *zap.Logger
}

// Book runs the full orchestration: eligibility, item lookup, promo
// reservation, duplicate check, pricing, payment, and persistence. The promo
// reservation and the wallet debit are compensated if a later step fails.
func (s *DefaultBookingService) Book(ctx context.Context, req BookRequest) (*models.Confirmation, error) {
	if !req.Kind.Valid() {
		return nil, ErrNotFound
	}
	// Reject unknown payment methods before any mutation.
	if req.PaymentMethod != models.PaymentWallet && req.PaymentMethod != models.PaymentCard {
		return nil, ErrInvalidPaymentMethod
	}

	tourist, err := s.Tourists.GetByID(req.TouristID)
	if err != nil {
		return nil, err
	}
	if tourist == nil {
		return nil, ErrNotFound
	}
	if err := s.checkEligibility(tourist, req.Kind); err != nil {
		return nil, err
	}

	item, err := s.Items.GetActiveByID(req.Kind, req.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	// Reserve the promo use up front; every failure path below gives it back.
	discount := 0.0
	if req.PromoCode != "" {
		discount, err = s.Promos.Reserve(req.PromoCode)
		if err != nil {
			return nil, err
		}
	}
	releasePromo := func() {
		if req.PromoCode != "" {
			s.Promos.Release(req.PromoCode)
		}
	}

	existing, err := s.Bookings.FindPendingByTouristAndItem(req.Kind, req.ItemID, req.TouristID)
	if err != nil {
		releasePromo()
		return nil, err
	}
	serviceDate := item.SweepDate()
	if existing != nil && sameDay(existing.Date, serviceDate) {
		releasePromo()
		return nil, ErrDuplicateBooking
	}

	finalPrice := FinalPrice(item.Price, discount)

	var transactionID string
	switch req.PaymentMethod {
	case models.PaymentWallet:
		debited, err := s.Tourists.DebitWallet(req.TouristID, finalPrice)
		if err != nil {
			releasePromo()
			return nil, err
		}
		if !debited {
			releasePromo()
			return nil, ErrInsufficientFunds
		}
	case models.PaymentCard:
		receipt, err := s.Gateway.Charge(ctx, models.ChargeRequest{
			AmountMinor: MinorUnits(finalPrice),
			Currency:    s.Currency,
			TouristID:   req.TouristID,
		})
		if err != nil {
			releasePromo()
			return nil, ErrPaymentFailed
		}
		transactionID = receipt.TransactionID
	}

	record := &models.Booking{
		ID:            uuid.New().String(),
		Kind:          req.Kind,
		ItemID:        req.ItemID,
		TouristID:     req.TouristID,
		Status:        models.BookingPending,
		Date:          serviceDate,
		Price:         finalPrice,
		PaymentMethod: req.PaymentMethod,
		TransactionID: transactionID,
		PromoCode:     req.PromoCode,
		IsActive:      true,
	}
	if err := s.Bookings.Create(record); err != nil {
		releasePromo()
		if req.PaymentMethod == models.PaymentWallet {
			if werr := s.Tourists.CreditWallet(req.TouristID, finalPrice); werr != nil {
				s.Logger.Error("failed to refund wallet after booking persistence failure",
					zap.String("tourist_id", req.TouristID),
					zap.Float64("amount", finalPrice),
					zap.Error(werr))
			}
		}
		return nil, err
	}

	if s.LoyaltyRate > 0 {
		if err := s.Tourists.AddLoyaltyPoints(req.TouristID, finalPrice*s.LoyaltyRate); err != nil {
			s.Logger.Error("failed to award loyalty points",
				zap.String("tourist_id", req.TouristID), zap.Error(err))
		}
	}

	s.Logger.Info("booking created",
		zap.String("booking_id", record.ID),
		zap.String("kind", string(req.Kind)),
		zap.String("tourist_id", req.TouristID),
		zap.Float64("final_price", finalPrice),
		zap.String("payment_method", string(req.PaymentMethod)))

	return &models.Confirmation{BookingID: record.ID, FinalPrice: finalPrice}, nil
}

// sameDay compares two instants at day granularity.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
