package models

import "time"

// BookingStatus is the lifecycle state of a booking. Transitions only move
// forward: Pending -> Completed or Pending -> Cancelled.
type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingCompleted BookingStatus = "Completed"
	BookingCancelled BookingStatus = "Cancelled"
)

// PaymentMethod selects the payment source for a booking.
type PaymentMethod string

const (
	PaymentWallet PaymentMethod = "wallet"
	PaymentCard   PaymentMethod = "card"
)

// Booking links a tourist to a bookable item with a payment outcome and
// lifecycle status. Bookings are soft-deleted, never removed.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	Kind          ItemKind      `bson:"kind" json:"kind"`
	ItemID        string        `bson:"item_id" json:"item_id"`
	TouristID     string        `bson:"tourist_id" json:"tourist_id"`
	Status        BookingStatus `bson:"status" json:"status"`
	Date          time.Time     `bson:"date" json:"date"` // item's sweep date at booking time
	Price         float64       `bson:"price" json:"price"`
	PaymentMethod PaymentMethod `bson:"payment_method" json:"payment_method"`
	TransactionID string        `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
	PromoCode     string        `bson:"promo_code,omitempty" json:"promo_code,omitempty"`
	IsActive      bool          `bson:"is_active" json:"is_active"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updated_at"`
}

// Confirmation is returned to the client after a successful booking.
type Confirmation struct {
	BookingID  string  `json:"booking_id"`
	FinalPrice float64 `json:"final_price"`
}
