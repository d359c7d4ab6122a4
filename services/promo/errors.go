package promo

import "errors"

var (
	// ErrInvalidPromoCode covers unknown, inactive, and expired codes.
	ErrInvalidPromoCode = errors.New("invalid or expired promo code")
	// ErrUsageLimitExceeded means the code exists but has no uses left.
	ErrUsageLimitExceeded = errors.New("promo code usage limit exceeded")
)
