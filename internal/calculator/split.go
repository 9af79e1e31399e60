package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/ling-4j/prosperpath/internal/money"
)

// ParticipantShare is one member's allocated share of a bill.
type ParticipantShare struct {
	MemberID string
	Share    decimal.Decimal
}

// EqualSplit divides amount equally among memberIDs.
//
// Every share is round(amount / len(memberIDs), 2, HALF_UP). Member IDs are
// kept in input order and repeats are not collapsed: a member listed twice
// gets two shares. The shares are not corrected to add up to amount, so the
// total may drift from it by up to len(memberIDs)-1 cents.
func EqualSplit(amount decimal.Decimal, memberIDs []string) []ParticipantShare {
	if len(memberIDs) == 0 {
		return nil
	}

	share := money.EqualShare(amount, len(memberIDs))
	shares := make([]ParticipantShare, len(memberIDs))
	for i, id := range memberIDs {
		shares[i] = ParticipantShare{MemberID: id, Share: share}
	}
	return shares
}

// SplitTotal adds up the shares of a split.
func SplitTotal(shares []ParticipantShare) decimal.Decimal {
	total := decimal.Zero
	for _, s := range shares {
		total = total.Add(s.Share)
	}
	return total
}
