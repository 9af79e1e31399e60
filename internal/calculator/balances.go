package calculator

import (
	"sort"

	"github.com/shopspring/decimal"
)

// BillForBalance represents a bill with the minimal information needed for balance calculations.
type BillForBalance struct {
	ID           string
	Amount       decimal.Decimal
	PayerID      string
	Participants []ParticipantShare
}

// MemberBalance represents the balance information for one event member.
type MemberBalance struct {
	MemberID  string
	Paid      decimal.Decimal // Total amount paid across all bills
	ShouldPay decimal.Decimal // Total of this member's shares
	Balance   decimal.Decimal // Positive = owed money, Negative = owes money
}

// DebtEdge represents a suggested transfer from one member to another.
type DebtEdge struct {
	From   string // Member who owes
	To     string // Member who is owed
	Amount decimal.Decimal
}

// CalculateEventBalances replays every bill of an event and returns one
// balance per member that either paid or owes.
//
// Algorithm:
//   - paid[payer] += bill amount
//   - shouldPay[participant] += share amount
//   - every member in paid ∪ shouldPay gets balance = paid - shouldPay
//
// Arithmetic is exact; no rounding happens here. Bills without a payer are
// still counted on the owing side and their IDs are returned in skipped.
// The result is sorted by member ID.
func CalculateEventBalances(bills []BillForBalance) (balances []MemberBalance, skipped []string) {
	paid := make(map[string]decimal.Decimal)
	shouldPay := make(map[string]decimal.Decimal)

	for _, bill := range bills {
		if bill.PayerID == "" {
			skipped = append(skipped, bill.ID)
		} else {
			paid[bill.PayerID] = paid[bill.PayerID].Add(bill.Amount)
		}

		for _, p := range bill.Participants {
			shouldPay[p.MemberID] = shouldPay[p.MemberID].Add(p.Share)
		}
	}

	members := make(map[string]struct{}, len(paid)+len(shouldPay))
	for id := range paid {
		members[id] = struct{}{}
	}
	for id := range shouldPay {
		members[id] = struct{}{}
	}

	balances = make([]MemberBalance, 0, len(members))
	for id := range members {
		p := paid[id]
		s := shouldPay[id]
		balances = append(balances, MemberBalance{
			MemberID:  id,
			Paid:      p,
			ShouldPay: s,
			Balance:   p.Sub(s),
		})
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].MemberID < balances[j].MemberID })

	return balances, skipped
}

// SuggestTransfers derives a who-owes-whom view from member balances.
//
// Debtors and creditors are matched greedily, largest amounts first, until
// one side runs out. Amounts are exact; if balances do not net to zero (for
// example because of equal-split rounding drift) the leftover stays unmatched.
// The suggestion is informational and is never stored.
func SuggestTransfers(balances []MemberBalance) []DebtEdge {
	type position struct {
		member string
		amount decimal.Decimal
	}

	var debtors, creditors []position
	for _, b := range balances {
		switch {
		case b.Balance.IsNegative():
			debtors = append(debtors, position{b.MemberID, b.Balance.Neg()})
		case b.Balance.IsPositive():
			creditors = append(creditors, position{b.MemberID, b.Balance})
		}
	}

	byAmount := func(ps []position) func(i, j int) bool {
		return func(i, j int) bool {
			if c := ps[i].amount.Cmp(ps[j].amount); c != 0 {
				return c > 0
			}
			return ps[i].member < ps[j].member
		}
	}
	sort.Slice(debtors, byAmount(debtors))
	sort.Slice(creditors, byAmount(creditors))

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := decimal.Min(debtors[i].amount, creditors[j].amount)
		edges = append(edges, DebtEdge{
			From:   debtors[i].member,
			To:     creditors[j].member,
			Amount: amount,
		})

		debtors[i].amount = debtors[i].amount.Sub(amount)
		creditors[j].amount = creditors[j].amount.Sub(amount)

		if debtors[i].amount.IsZero() {
			i++
		}
		if creditors[j].amount.IsZero() {
			j++
		}
	}

	return edges
}
