package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settlement is a recorded payment from one member to another inside an event.
// Settlements are entered by users; the engine never generates them and they
// do not feed into EventBalance.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// EventID is the event this settlement belongs to.
	EventID string

	// FromMemberID is the member who paid (debtor settling up).
	FromMemberID string

	// ToMemberID is the member who received payment (creditor being paid).
	ToMemberID string

	// Amount is the payment amount.
	Amount decimal.Decimal

	// Note is an optional description for the settlement.
	Note string

	// CreatedBy is the user ID who recorded this settlement.
	CreatedBy string

	CreatedAt time.Time
}
