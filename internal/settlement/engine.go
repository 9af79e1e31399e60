// Package settlement keeps bill shares and event balances consistent.
//
// Every mutation of a bill's participants is followed by a full rebuild of
// the owning event's balances, and both run inside one store transaction.
package settlement

import (
	"context"
	"log/slog"
	"time"

	"github.com/ling-4j/prosperpath/internal/apperrors"
	"github.com/ling-4j/prosperpath/internal/calculator"
	"github.com/ling-4j/prosperpath/internal/metrics"
	"github.com/ling-4j/prosperpath/internal/models"
	"github.com/ling-4j/prosperpath/internal/storage"
)

// Engine runs the allocator and the balance recalculator.
type Engine struct {
	store   storage.Store
	metrics *metrics.Metrics
}

// NewEngine creates an Engine. m may be nil.
func NewEngine(store storage.Store, m *metrics.Metrics) *Engine {
	return &Engine{store: store, metrics: m}
}

// Summary is an event's stored balances plus the suggested transfers that
// would settle them.
type Summary struct {
	Balances  []*models.EventBalance
	Transfers []calculator.DebtEdge
}

// AllocateBillParticipants replaces the bill's shares with an equal split
// among memberIDs and rebuilds the event's balances.
func (e *Engine) AllocateBillParticipants(ctx context.Context, billID string, memberIDs []string) error {
	return e.store.InTx(ctx, func(l storage.Ledger) error {
		return e.AllocateInTx(ctx, l, billID, memberIDs)
	})
}

// AllocateInTx is AllocateBillParticipants against a ledger the caller
// already holds a transaction on.
//
// memberIDs keep their order and duplicates; an empty list clears the
// shares. The bill and every member must exist before anything is deleted.
func (e *Engine) AllocateInTx(ctx context.Context, l storage.Ledger, billID string, memberIDs []string) error {
	bill, err := l.GetBill(ctx, billID)
	if err != nil {
		return err
	}

	if err := requireMembers(ctx, l, memberIDs); err != nil {
		return err
	}

	if err := l.DeleteParticipantsByBill(ctx, bill.ID); err != nil {
		return err
	}

	shares := calculator.EqualSplit(bill.Amount, memberIDs)
	for _, share := range shares {
		p := &models.BillParticipant{
			BillID:      bill.ID,
			MemberID:    share.MemberID,
			ShareAmount: share.Share,
		}
		if err := l.CreateBillParticipant(ctx, p); err != nil {
			return err
		}
	}
	e.metrics.AddAllocatedShares(len(shares))

	slog.Debug("Allocated bill participants",
		"bill_id", bill.ID,
		"event_id", bill.EventID,
		"participants", len(shares),
	)

	_, err = e.RecalculateInTx(ctx, l, bill.EventID)
	return err
}

// RecalculateEventBalances rebuilds every balance row of the event from its
// bills and shares.
func (e *Engine) RecalculateEventBalances(ctx context.Context, eventID string) error {
	return e.store.InTx(ctx, func(l storage.Ledger) error {
		_, err := e.RecalculateInTx(ctx, l, eventID)
		return err
	})
}

// RecalculateInTx is RecalculateEventBalances against a ledger the caller
// already holds a transaction on. It returns the balances it wrote.
func (e *Engine) RecalculateInTx(ctx context.Context, l storage.Ledger, eventID string) ([]*models.EventBalance, error) {
	start := time.Now()

	if _, err := l.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	if err := l.DeleteBalancesByEvent(ctx, eventID); err != nil {
		return nil, err
	}

	bills, err := l.ListBillsByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	inputs := make([]calculator.BillForBalance, 0, len(bills))
	for _, bill := range bills {
		participants, err := l.ListParticipantsByBill(ctx, bill.ID)
		if err != nil {
			return nil, err
		}
		shares := make([]calculator.ParticipantShare, len(participants))
		for i, p := range participants {
			shares[i] = calculator.ParticipantShare{MemberID: p.MemberID, Share: p.ShareAmount}
		}
		inputs = append(inputs, calculator.BillForBalance{
			ID:           bill.ID,
			Amount:       bill.Amount,
			PayerID:      bill.PayerID,
			Participants: shares,
		})
	}

	computed, skipped := calculator.CalculateEventBalances(inputs)
	for _, id := range skipped {
		slog.Warn("Bill has no payer, left out of paid totals", "event_id", eventID, "bill_id", id)
	}

	balances := make([]*models.EventBalance, 0, len(computed))
	for _, c := range computed {
		b := &models.EventBalance{
			EventID:   eventID,
			MemberID:  c.MemberID,
			Paid:      c.Paid,
			ShouldPay: c.ShouldPay,
			Balance:   c.Balance,
		}
		if err := l.CreateEventBalance(ctx, b); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}

	e.metrics.ObserveRecalculation(time.Since(start), len(skipped))
	slog.Info("Recalculated event balances",
		"event_id", eventID,
		"bills", len(bills),
		"members", len(balances),
	)
	return balances, nil
}

// EventSummary returns the stored balances of an event with a suggested set
// of transfers. Nothing is written.
func (e *Engine) EventSummary(ctx context.Context, eventID string) (*Summary, error) {
	if _, err := e.store.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	balances, err := e.store.ListBalancesByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	positions := make([]calculator.MemberBalance, len(balances))
	for i, b := range balances {
		positions[i] = calculator.MemberBalance{
			MemberID:  b.MemberID,
			Paid:      b.Paid,
			ShouldPay: b.ShouldPay,
			Balance:   b.Balance,
		}
	}

	return &Summary{
		Balances:  balances,
		Transfers: calculator.SuggestTransfers(positions),
	}, nil
}

// requireMembers fails with NotFound for the first unknown id in input order.
func requireMembers(ctx context.Context, l storage.Ledger, memberIDs []string) error {
	if len(memberIDs) == 0 {
		return nil
	}

	unique := make([]string, 0, len(memberIDs))
	seen := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	found, err := l.ListMembersByIDs(ctx, unique)
	if err != nil {
		return err
	}
	if len(found) == len(unique) {
		return nil
	}

	known := make(map[string]bool, len(found))
	for _, m := range found {
		known[m.ID] = true
	}
	for _, id := range unique {
		if !known[id] {
			return apperrors.NotFound("member", id)
		}
	}
	return nil
}
