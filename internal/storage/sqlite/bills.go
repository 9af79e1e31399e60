package sqlite

import (
	"context"
	"fmt"

	"github.com/ling-4j/prosperpath/internal/models"
	"github.com/ling-4j/prosperpath/internal/money"
)

// CreateBill persists a new bill.
func (s *SQLiteStore) CreateBill(ctx context.Context, bill *models.Bill) error {
	bill.ID = newID(bill.ID)
	bill.CreatedAt = s.stamp(bill.CreatedAt)

	_, err := s.q.ExecContext(ctx,
		"INSERT INTO bills (id, name, amount_cents, event_id, payer_id, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		bill.ID, bill.Name, money.ToCents(bill.Amount), bill.EventID, bill.PayerID, bill.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}
	return nil
}

// GetBill retrieves a bill by ID.
func (s *SQLiteStore) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	row := s.q.QueryRowContext(ctx,
		"SELECT id, name, amount_cents, event_id, payer_id, created_at FROM bills WHERE id = ?",
		billID,
	)
	bill, err := scanBill(row)
	if err != nil {
		return nil, notFoundOr(err, "bill", billID, "get bill")
	}
	return bill, nil
}

// UpdateBill updates the name, amount, event and payer of an existing bill.
func (s *SQLiteStore) UpdateBill(ctx context.Context, bill *models.Bill) error {
	res, err := s.q.ExecContext(ctx,
		"UPDATE bills SET name = ?, amount_cents = ?, event_id = ?, payer_id = ? WHERE id = ?",
		bill.Name, money.ToCents(bill.Amount), bill.EventID, bill.PayerID, bill.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill: %w", err)
	}
	return requireAffected(res, "bill", bill.ID)
}

// DeleteBill removes a bill; its participants go with it (ON DELETE CASCADE).
func (s *SQLiteStore) DeleteBill(ctx context.Context, billID string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM bills WHERE id = ?", billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	return requireAffected(res, "bill", billID)
}

// ListBillsByEvent retrieves all bills of an event in creation order.
func (s *SQLiteStore) ListBillsByEvent(ctx context.Context, eventID string) ([]*models.Bill, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT id, name, amount_cents, event_id, payer_id, created_at FROM bills WHERE event_id = ? ORDER BY created_at, id",
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	bills := []*models.Bill{}
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}
	return bills, nil
}

// DeleteBillsByEvent removes every bill of an event along with their participants.
func (s *SQLiteStore) DeleteBillsByEvent(ctx context.Context, eventID string) error {
	if _, err := s.q.ExecContext(ctx, "DELETE FROM bills WHERE event_id = ?", eventID); err != nil {
		return fmt.Errorf("failed to delete bills: %w", err)
	}
	return nil
}

// CreateBillParticipant persists one share. Shares keep their insertion order.
func (s *SQLiteStore) CreateBillParticipant(ctx context.Context, p *models.BillParticipant) error {
	p.ID = newID(p.ID)

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO bill_participants (id, bill_id, member_id, share_cents, position)
		 VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM bill_participants WHERE bill_id = ?))`,
		p.ID, p.BillID, p.MemberID, money.ToCents(p.ShareAmount), p.BillID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill participant: %w", err)
	}
	return nil
}

// ListParticipantsByBill retrieves a bill's shares in insertion order.
func (s *SQLiteStore) ListParticipantsByBill(ctx context.Context, billID string) ([]*models.BillParticipant, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT id, bill_id, member_id, share_cents FROM bill_participants WHERE bill_id = ? ORDER BY position",
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bill participants: %w", err)
	}
	defer rows.Close()

	participants := []*models.BillParticipant{}
	for rows.Next() {
		p := &models.BillParticipant{}
		var share int64
		if err := rows.Scan(&p.ID, &p.BillID, &p.MemberID, &share); err != nil {
			return nil, fmt.Errorf("failed to scan bill participant: %w", err)
		}
		p.ShareAmount = money.FromCents(share)
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bill participants: %w", err)
	}
	return participants, nil
}

// DeleteParticipantsByBill removes every share of a bill. Deleting nothing is not an error.
func (s *SQLiteStore) DeleteParticipantsByBill(ctx context.Context, billID string) error {
	if _, err := s.q.ExecContext(ctx, "DELETE FROM bill_participants WHERE bill_id = ?", billID); err != nil {
		return fmt.Errorf("failed to delete bill participants: %w", err)
	}
	return nil
}

func scanBill(row scanner) (*models.Bill, error) {
	bill := &models.Bill{}
	var amount, createdAt int64
	if err := row.Scan(&bill.ID, &bill.Name, &amount, &bill.EventID, &bill.PayerID, &createdAt); err != nil {
		return nil, err
	}
	bill.Amount = money.FromCents(amount)
	bill.CreatedAt = fromUnix(createdAt)
	return bill, nil
}
