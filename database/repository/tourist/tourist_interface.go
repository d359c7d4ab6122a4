package touristRepo

import "teerenta/models"

// TouristRepository defines persistence for tourist profiles and wallets.
type TouristRepository interface {
	// GetByID returns the tourist, or (nil, nil) if absent.
	GetByID(id string) (*models.Tourist, error)
	Update(t *models.Tourist) error
	// DebitWallet subtracts amount from the wallet iff the balance covers it.
	// The balance check and the debit are one conditional update; returns
	// false when the balance was insufficient.
	DebitWallet(id string, amount float64) (bool, error)
	CreditWallet(id string, amount float64) error
	AddLoyaltyPoints(id string, points float64) error
}
