package sqlite

import (
	"context"
	"fmt"

	"github.com/ling-4j/prosperpath/internal/models"
	"github.com/ling-4j/prosperpath/internal/money"
)

// CreateEventBalance persists one balance row.
func (s *SQLiteStore) CreateEventBalance(ctx context.Context, b *models.EventBalance) error {
	b.ID = newID(b.ID)

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO event_balances (id, event_id, member_id, paid_cents, should_pay_cents, balance_cents)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.EventID, b.MemberID,
		money.ToCents(b.Paid), money.ToCents(b.ShouldPay), money.ToCents(b.Balance),
	)
	if err != nil {
		return fmt.Errorf("failed to insert event balance: %w", err)
	}
	return nil
}

// ListBalancesByEvent retrieves an event's balances ordered by member ID.
func (s *SQLiteStore) ListBalancesByEvent(ctx context.Context, eventID string) ([]*models.EventBalance, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT id, event_id, member_id, paid_cents, should_pay_cents, balance_cents
		 FROM event_balances WHERE event_id = ? ORDER BY member_id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list event balances: %w", err)
	}
	defer rows.Close()

	balances := []*models.EventBalance{}
	for rows.Next() {
		b := &models.EventBalance{}
		var paid, shouldPay, balance int64
		if err := rows.Scan(&b.ID, &b.EventID, &b.MemberID, &paid, &shouldPay, &balance); err != nil {
			return nil, fmt.Errorf("failed to scan event balance: %w", err)
		}
		b.Paid = money.FromCents(paid)
		b.ShouldPay = money.FromCents(shouldPay)
		b.Balance = money.FromCents(balance)
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event balances: %w", err)
	}
	return balances, nil
}

// DeleteBalancesByEvent removes every balance row of an event.
func (s *SQLiteStore) DeleteBalancesByEvent(ctx context.Context, eventID string) error {
	if _, err := s.q.ExecContext(ctx, "DELETE FROM event_balances WHERE event_id = ?", eventID); err != nil {
		return fmt.Errorf("failed to delete event balances: %w", err)
	}
	return nil
}
