package booking

import "errors"

var (
	// ErrNotFound covers absent or inactive tourists, items and bookings.
	ErrNotFound = errors.New("not found or inactive")
	// ErrIneligible means the tourist failed an eligibility rule for the kind.
	ErrIneligible = errors.New("tourist is not eligible to book this item")
	// ErrDuplicateBooking means a Pending booking for the same item and
	// service date already exists.
	ErrDuplicateBooking = errors.New("a pending booking for this item on the same date already exists")
	// ErrInsufficientFunds means the wallet balance does not cover the price.
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	// ErrPaymentFailed means the card gateway rejected or timed out.
	ErrPaymentFailed = errors.New("payment failed")
	// ErrInvalidPaymentMethod means the payment method is not wallet or card.
	ErrInvalidPaymentMethod = errors.New("invalid payment method selected")
	// ErrAlreadyFinalized means the booking left the Pending state; its
	// status only moves forward.
	ErrAlreadyFinalized = errors.New("booking is already completed or cancelled")
)
