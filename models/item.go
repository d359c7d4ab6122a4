package models

import "time"

// ItemKind identifies a bookable inventory type. Each kind lives in its own
// collection but shares the BookableItem document shape.
type ItemKind string

const (
	KindActivity       ItemKind = "activity"
	KindItinerary      ItemKind = "itinerary"
	KindTransportation ItemKind = "transportation"
	KindFlight         ItemKind = "flight"
	KindHotel          ItemKind = "hotel"
)

// AllKinds lists every bookable kind, in the order the sweeper visits them.
var AllKinds = []ItemKind{
	KindActivity,
	KindItinerary,
	KindTransportation,
	KindFlight,
	KindHotel,
}

// Valid reports whether k is a known item kind.
func (k ItemKind) Valid() bool {
	switch k {
	case KindActivity, KindItinerary, KindTransportation, KindFlight, KindHotel:
		return true
	}
	return false
}

// BookableItem is an inventory document that can be reserved for a date.
// Kind-specific fields are optional and omitted for other kinds.
type BookableItem struct {
	ID            string    `bson:"id" json:"id"`
	Kind          ItemKind  `bson:"kind" json:"kind"`
	Name          string    `bson:"name" json:"name"`
	Price         float64   `bson:"price" json:"price"`
	Date          time.Time `bson:"date" json:"date"` // service date
	IsActive      bool      `bson:"is_active" json:"is_active"`
	IsBookingOpen bool      `bson:"is_booking_open" json:"is_booking_open"`
	CreatedBy     string    `bson:"created_by" json:"created_by"`

	// Activity / itinerary.
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	Language string `bson:"language,omitempty" json:"language,omitempty"`

	// Transportation.
	PickupLocation  string `bson:"pickup_location,omitempty" json:"pickup_location,omitempty"`
	DropOffLocation string `bson:"drop_off_location,omitempty" json:"drop_off_location,omitempty"`

	// Flight.
	Airline       string    `bson:"airline,omitempty" json:"airline,omitempty"`
	DepartureDate time.Time `bson:"departure_date,omitempty" json:"departure_date,omitempty"`
	ArrivalDate   time.Time `bson:"arrival_date,omitempty" json:"arrival_date,omitempty"`

	// Hotel.
	HotelName    string    `bson:"hotel_name,omitempty" json:"hotel_name,omitempty"`
	RoomType     string    `bson:"room_type,omitempty" json:"room_type,omitempty"`
	CheckInDate  time.Time `bson:"check_in_date,omitempty" json:"check_in_date,omitempty"`
	CheckOutDate time.Time `bson:"check_out_date,omitempty" json:"check_out_date,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// SweepDate returns the date a booking of this item is finalized against:
// the check-out date for hotels, the arrival date for flights, and the
// service date otherwise.
func (it *BookableItem) SweepDate() time.Time {
	switch it.Kind {
	case KindHotel:
		return it.CheckOutDate
	case KindFlight:
		return it.ArrivalDate
	default:
		return it.Date
	}
}
