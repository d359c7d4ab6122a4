package models

import "time"

// PromoCode is a discount token with an expiry and a finite redemption count.
// UsageLimit is decremented atomically on each successful reservation.
type PromoCode struct {
	ID              string    `bson:"id" json:"id"`
	Code            string    `bson:"code" json:"code"`
	DiscountPercent float64   `bson:"discount_percent" json:"discount_percent"`
	ExpiryDate      time.Time `bson:"expiry_date" json:"expiry_date"`
	UsageLimit      int       `bson:"usage_limit" json:"usage_limit"`
	IsActive        bool      `bson:"is_active" json:"is_active"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// Expired reports whether the code is past its expiry at the given instant.
func (p *PromoCode) Expired(now time.Time) bool {
	return !p.ExpiryDate.After(now)
}
