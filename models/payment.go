package models

import "time"

// ChargeRequest is handed to the card gateway. Amount is in the smallest
// currency unit.
type ChargeRequest struct {
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
	TouristID   string `json:"tourist_id"`
}

// ChargeReceipt is the gateway's record of a successful charge.
type ChargeReceipt struct {
	TransactionID string    `json:"transaction_id"`
	AmountMinor   int64     `json:"amount_minor"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
}
