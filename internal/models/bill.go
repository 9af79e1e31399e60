package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is a single payment made by one member within an event.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string

	// Name is the human-readable label ("Hotel", "Dinner day 2").
	Name string

	// Amount is what the payer spent, at 2-place currency scale.
	Amount decimal.Decimal

	// EventID is the owning event.
	EventID string

	// PayerID is the member who paid the full amount.
	PayerID string

	CreatedAt time.Time
}

// BillParticipant is one member's share of a bill.
// For a given bill the shares are meant to add up to the bill amount, but
// equal-split rounding can leave them a few cents apart.
type BillParticipant struct {
	ID          string
	BillID      string
	MemberID    string
	ShareAmount decimal.Decimal
}
