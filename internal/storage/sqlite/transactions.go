package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ling-4j/prosperpath/internal/models"
	"github.com/ling-4j/prosperpath/internal/money"
)

const transactionColumns = `id, user_id, category_id, amount_cents, type, description, transaction_date, created_at, updated_at`

// CreateTransaction persists an income or expense record.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	t.ID = newID(t.ID)
	t.CreatedAt = s.stamp(t.CreatedAt)
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = t.CreatedAt
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO transactions (`+transactionColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, nullable(t.CategoryID), money.ToCents(t.Amount), string(t.Type),
		t.Description, t.TransactionDate.Unix(), t.CreatedAt.Unix(), t.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// ListTransactionsByUser retrieves a user's transactions, newest first.
func (s *SQLiteStore) ListTransactionsByUser(ctx context.Context, userID string) ([]*models.Transaction, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = ? ORDER BY transaction_date DESC, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []*models.Transaction{}
	for rows.Next() {
		t := &models.Transaction{}
		var category sql.NullString
		var typ string
		var amount, date, createdAt, updatedAt int64
		if err := rows.Scan(&t.ID, &t.UserID, &category, &amount, &typ, &t.Description,
			&date, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.CategoryID = category.String
		t.Amount = money.FromCents(amount)
		t.Type = models.TransactionType(typ)
		t.TransactionDate = fromUnix(date).In(s.loc)
		t.CreatedAt = fromUnix(createdAt)
		t.UpdatedAt = fromUnix(updatedAt)
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}

// SumAmountByCategoryAndUser totals amounts with from <= transaction_date < to.
// Income and expense rows are both counted.
func (s *SQLiteStore) SumAmountByCategoryAndUser(ctx context.Context, categoryID, userID string, from, to time.Time) (decimal.Decimal, error) {
	var cents int64
	err := s.q.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_cents), 0) FROM transactions
		 WHERE category_id = ? AND user_id = ? AND transaction_date >= ? AND transaction_date < ?`,
		categoryID, userID, from.Unix(), to.Unix(),
	).Scan(&cents)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return money.FromCents(cents), nil
}
