package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ling-4j/prosperpath/internal/models"
	"github.com/ling-4j/prosperpath/internal/money"
)

const settlementColumns = `id, event_id, from_member_id, to_member_id, amount_cents, note, created_by, created_at`

// CreateSettlement persists a new settlement to the database.
func (s *SQLiteStore) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	settlement.ID = newID(settlement.ID)
	settlement.CreatedAt = s.stamp(settlement.CreatedAt)

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO settlements (`+settlementColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		settlement.ID, settlement.EventID, settlement.FromMemberID, settlement.ToMemberID,
		money.ToCents(settlement.Amount), nullable(settlement.Note), settlement.CreatedBy,
		settlement.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}

	return nil
}

// GetSettlement retrieves a settlement by ID.
func (s *SQLiteStore) GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error) {
	row := s.q.QueryRowContext(ctx,
		`SELECT `+settlementColumns+` FROM settlements WHERE id = ?`,
		settlementID,
	)
	settlement, err := scanSettlement(row)
	if err != nil {
		return nil, notFoundOr(err, "settlement", settlementID, "get settlement")
	}
	return settlement, nil
}

// ListSettlementsByEvent retrieves all settlements for an event, newest first.
func (s *SQLiteStore) ListSettlementsByEvent(ctx context.Context, eventID string) ([]*models.Settlement, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT `+settlementColumns+` FROM settlements WHERE event_id = ? ORDER BY created_at DESC, id`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements by event: %w", err)
	}
	defer rows.Close()

	settlements := []*models.Settlement{}
	for rows.Next() {
		settlement, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, settlement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}

// DeleteSettlement removes a settlement by ID.
func (s *SQLiteStore) DeleteSettlement(ctx context.Context, settlementID string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM settlements WHERE id = ?", settlementID)
	if err != nil {
		return fmt.Errorf("failed to delete settlement: %w", err)
	}
	return requireAffected(res, "settlement", settlementID)
}

// DeleteSettlementsByEvent removes every settlement recorded for an event.
func (s *SQLiteStore) DeleteSettlementsByEvent(ctx context.Context, eventID string) error {
	if _, err := s.q.ExecContext(ctx, "DELETE FROM settlements WHERE event_id = ?", eventID); err != nil {
		return fmt.Errorf("failed to delete settlements: %w", err)
	}
	return nil
}

func scanSettlement(row scanner) (*models.Settlement, error) {
	settlement := &models.Settlement{}
	var note sql.NullString
	var amount, createdAt int64

	if err := row.Scan(&settlement.ID, &settlement.EventID, &settlement.FromMemberID, &settlement.ToMemberID,
		&amount, &note, &settlement.CreatedBy, &createdAt); err != nil {
		return nil, err
	}

	if note.Valid {
		settlement.Note = note.String
	}
	settlement.Amount = money.FromCents(amount)
	settlement.CreatedAt = fromUnix(createdAt)
	return settlement, nil
}
