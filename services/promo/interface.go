package promo

import "teerenta/models"

// PromoService validates promo codes and accounts for their usage.
type PromoService interface {
	// Validate checks existence, expiry and remaining usage, and returns the
	// discount percentage without consuming a use.
	Validate(code string) (float64, error)
	// Reserve validates the code and atomically consumes one use, returning
	// the discount percentage. A reserved use must be given back with
	// Release if the surrounding operation fails.
	Reserve(code string) (float64, error)
	// Release returns a reserved use after a downstream failure.
	Release(code string)
	Create(p *models.PromoCode) error
}
