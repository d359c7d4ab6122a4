package booking

import (
	"time"

	"teerenta/models"
)

// DefaultMinimumAges is the per-kind minimum tourist age. Kinds without an
// entry have no age gate.
var DefaultMinimumAges = map[models.ItemKind]int{
	models.KindTransportation: 18,
}

// checkEligibility applies the per-kind eligibility rules to the tourist.
func (s *DefaultBookingService) checkEligibility(t *models.Tourist, kind models.ItemKind) error {
	ages := s.MinimumAges
	if ages == nil {
		ages = DefaultMinimumAges
	}
	minAge, ok := ages[kind]
	if !ok {
		return nil
	}
	if t.AgeAt(time.Now()) < minAge {
		return ErrIneligible
	}
	return nil
}
