package promoRepo

import (
	"time"

	"teerenta/models"
)

// PromoRepository defines persistence for promo codes. Usage accounting is
// done with conditional single-document updates so a reservation can never
// push the counter below zero.
type PromoRepository interface {
	Create(p *models.PromoCode) error
	// GetByCode returns the promo with the exact code, or (nil, nil) if absent.
	GetByCode(code string) (*models.PromoCode, error)
	// ReserveUsage atomically decrements the usage counter of an unexpired
	// code with remaining uses. Returns false when no such code matched.
	ReserveUsage(code string, now time.Time) (bool, error)
	// ReleaseUsage returns a previously reserved use to the counter.
	ReleaseUsage(code string) error
}
