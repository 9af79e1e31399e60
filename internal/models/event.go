package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is a shared-expense context such as a trip.
// It owns Bills and a derived set of EventBalance rows.
type Event struct {
	ID          string
	Name        string
	Description string

	// CreatedBy is the user who created the event. Only the creator may mutate it.
	CreatedBy string

	CreatedAt time.Time
}

// Member is a person who can pay or owe money within events.
type Member struct {
	ID   string
	Name string
	Note string

	// UserID is the owning account.
	UserID string

	CreatedAt time.Time
}

// EventBalance is one member's net position within one event.
//
// Rows are a materialized view: they are deleted and regenerated every time
// the event is recalculated and are never updated in place.
type EventBalance struct {
	ID       string
	EventID  string
	MemberID string

	// Paid is the sum of bill amounts where the member was the payer.
	Paid decimal.Decimal

	// ShouldPay is the sum of share amounts where the member was a participant.
	ShouldPay decimal.Decimal

	// Balance is Paid - ShouldPay. Positive means the member is owed money.
	Balance decimal.Decimal
}
