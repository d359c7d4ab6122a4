package booking

import "math"

// FinalPrice applies a percentage discount to the listed price.
func FinalPrice(price, discountPercent float64) float64 {
	if discountPercent <= 0 {
		return price
	}
	return price * (1 - discountPercent/100)
}

// MinorUnits converts a price to the smallest currency unit for the gateway.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
