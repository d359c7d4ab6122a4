package promo

import (
	"time"

	promoRepo "teerenta/database/repository/promo"
	"teerenta/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultPromoService is the PromoService backed by the promo repository.
type DefaultPromoService struct {
	Repo   promoRepo.PromoRepository
	Logger *zap.Logger
}

// Validate checks the code against expiry and remaining usage.
func (s *DefaultPromoService) Validate(code string) (float64, error) {
	p, err := s.Repo.GetByCode(code)
	if err != nil {
		return 0, err
	}
	if p == nil || !p.IsActive || p.Expired(time.Now()) {
		return 0, ErrInvalidPromoCode
	}
	if p.UsageLimit <= 0 {
		return 0, ErrUsageLimitExceeded
	}
	return p.DiscountPercent, nil
}

// Reserve consumes one use of the code. The decrement carries the expiry and
// remaining-usage preconditions, so a failed reservation is re-read only to
// pick the right error for the caller.
func (s *DefaultPromoService) Reserve(code string) (float64, error) {
	discount, err := s.Validate(code)
	if err != nil {
		return 0, err
	}

	reserved, err := s.Repo.ReserveUsage(code, time.Now())
	if err != nil {
		return 0, err
	}
	if !reserved {
		// Lost a race between Validate and the reservation.
		if _, err := s.Validate(code); err != nil {
			return 0, err
		}
		return 0, ErrUsageLimitExceeded
	}
	return discount, nil
}

// Release gives a reserved use back. Failures are logged, not propagated:
// the caller is already unwinding a failed booking.
func (s *DefaultPromoService) Release(code string) {
	if err := s.Repo.ReleaseUsage(code); err != nil {
		s.Logger.Error("failed to release promo usage",
			zap.String("code", code), zap.Error(err))
	}
}

// Create registers a new promo code.
func (s *DefaultPromoService) Create(p *models.PromoCode) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.IsActive = true
	return s.Repo.Create(p)
}
