package tourist

import (
	"errors"

	touristRepo "teerenta/database/repository/tourist"
	"teerenta/models"

	"go.uber.org/zap"
)

// ErrNotFound means the tourist is absent or deactivated.
var ErrNotFound = errors.New("tourist not found")

// ErrInvalidAmount rejects non-positive wallet credits.
var ErrInvalidAmount = errors.New("amount must be positive")

// TouristService exposes profile and wallet operations.
type TouristService interface {
	GetProfile(id string) (*models.Tourist, error)
	UpdateProfile(t *models.Tourist) error
	TopUpWallet(id string, amount float64) (*models.Tourist, error)
}

// DefaultTouristService is the TouristService backed by the tourist repository.
type DefaultTouristService struct {
	Repo   touristRepo.TouristRepository
	Logger *zap.Logger
}

// GetProfile returns the tourist's profile.
func (s *DefaultTouristService) GetProfile(id string) (*models.Tourist, error) {
	t, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return t, nil
}

// UpdateProfile modifies the tourist's profile fields.
func (s *DefaultTouristService) UpdateProfile(t *models.Tourist) error {
	existing, err := s.Repo.GetByID(t.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	// Wallet and loyalty balances only change through their own operations.
	t.Wallet = existing.Wallet
	t.LoyaltyPoints = existing.LoyaltyPoints
	return s.Repo.Update(t)
}

// TopUpWallet credits the wallet and returns the refreshed profile.
func (s *DefaultTouristService) TopUpWallet(id string, amount float64) (*models.Tourist, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := s.GetProfile(id); err != nil {
		return nil, err
	}
	if err := s.Repo.CreditWallet(id, amount); err != nil {
		return nil, err
	}
	s.Logger.Info("wallet credited", zap.String("tourist_id", id), zap.Float64("amount", amount))
	return s.GetProfile(id)
}
