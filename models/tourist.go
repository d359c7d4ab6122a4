package models

import "time"

// Tourist represents a tourist account. Registration and authentication are
// handled by the auth service; this backend reads and updates profiles.
type Tourist struct {
	ID            string    `bson:"id" json:"id"`
	Email         string    `bson:"email" json:"email"`
	Username      string    `bson:"username" json:"username"`
	DateOfBirth   time.Time `bson:"date_of_birth" json:"date_of_birth"`
	Nationality   string    `bson:"nationality,omitempty" json:"nationality,omitempty"`
	Mobile        string    `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Occupation    string    `bson:"occupation,omitempty" json:"occupation,omitempty"`
	Wallet        float64   `bson:"wallet" json:"wallet"`
	LoyaltyPoints float64   `bson:"loyalty_points" json:"loyalty_points"`
	IsActive      bool      `bson:"is_active" json:"is_active"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// AgeAt returns the tourist's age in full years at the given instant.
func (t *Tourist) AgeAt(now time.Time) int {
	age := now.Year() - t.DateOfBirth.Year()
	if now.Month() < t.DateOfBirth.Month() ||
		(now.Month() == t.DateOfBirth.Month() && now.Day() < t.DateOfBirth.Day()) {
		age--
	}
	return age
}
