package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/ling-4j/prosperpath/internal/models"
	"github.com/ling-4j/prosperpath/internal/money"
)

// CreateCategory persists a new category.
func (s *SQLiteStore) CreateCategory(ctx context.Context, c *models.Category) error {
	c.ID = newID(c.ID)

	_, err := s.q.ExecContext(ctx,
		"INSERT INTO categories (id, name, type, icon, user_id) VALUES (?, ?, ?, ?, ?)",
		c.ID, c.Name, string(c.Type), c.Icon, c.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

// GetCategory retrieves a category by ID.
func (s *SQLiteStore) GetCategory(ctx context.Context, categoryID string) (*models.Category, error) {
	c := &models.Category{}
	var typ string
	err := s.q.QueryRowContext(ctx,
		"SELECT id, name, type, icon, user_id FROM categories WHERE id = ?",
		categoryID,
	).Scan(&c.ID, &c.Name, &typ, &c.Icon, &c.UserID)
	if err != nil {
		return nil, notFoundOr(err, "category", categoryID, "get category")
	}
	c.Type = models.TransactionType(typ)
	return c, nil
}

// ListCategoriesByUser retrieves a user's categories ordered by name.
func (s *SQLiteStore) ListCategoriesByUser(ctx context.Context, userID string) ([]*models.Category, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT id, name, type, icon, user_id FROM categories WHERE user_id = ? ORDER BY name, id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []*models.Category{}
	for rows.Next() {
		c := &models.Category{}
		var typ string
		if err := rows.Scan(&c.ID, &c.Name, &typ, &c.Icon, &c.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		c.Type = models.TransactionType(typ)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

const budgetColumns = `id, user_id, category_id, amount_cents, start_date, end_date, status, created_at, updated_at`

// CreateBudget persists a new budget. An empty status defaults to ACTIVE.
func (s *SQLiteStore) CreateBudget(ctx context.Context, b *models.Budget) error {
	b.ID = newID(b.ID)
	b.CreatedAt = s.stamp(b.CreatedAt)
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = b.CreatedAt
	}
	if b.Status == "" {
		b.Status = models.BudgetActive
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO budgets (`+budgetColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.UserID, b.CategoryID, money.ToCents(b.Amount),
		s.formatDate(b.StartDate), s.formatDate(b.EndDate), string(b.Status),
		b.CreatedAt.Unix(), b.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert budget: %w", err)
	}
	return nil
}

// GetBudget retrieves a budget by ID.
func (s *SQLiteStore) GetBudget(ctx context.Context, budgetID string) (*models.Budget, error) {
	row := s.q.QueryRowContext(ctx, `SELECT `+budgetColumns+` FROM budgets WHERE id = ?`, budgetID)
	b, err := s.scanBudget(row)
	if err != nil {
		return nil, notFoundOr(err, "budget", budgetID, "get budget")
	}
	return b, nil
}

// UpdateBudgetStatus moves a budget to the given status.
func (s *SQLiteStore) UpdateBudgetStatus(ctx context.Context, budgetID string, status models.BudgetStatus) error {
	res, err := s.q.ExecContext(ctx,
		"UPDATE budgets SET status = ?, updated_at = ? WHERE id = ?",
		string(status), s.now().Unix(), budgetID,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget status: %w", err)
	}
	return requireAffected(res, "budget", budgetID)
}

// ListBudgetsByUser retrieves a user's budgets, most recent range first.
func (s *SQLiteStore) ListBudgetsByUser(ctx context.Context, userID string) ([]*models.Budget, error) {
	return s.listBudgets(ctx,
		`SELECT `+budgetColumns+` FROM budgets WHERE user_id = ? ORDER BY start_date DESC, id`,
		userID,
	)
}

// FindActiveBudgets returns ACTIVE budgets of the user and category whose
// date range covers the day of at (both ends inclusive).
func (s *SQLiteStore) FindActiveBudgets(ctx context.Context, userID, categoryID string, at time.Time) ([]*models.Budget, error) {
	day := s.formatDate(at)
	return s.listBudgets(ctx,
		`SELECT `+budgetColumns+` FROM budgets
		 WHERE user_id = ? AND category_id = ? AND status = ? AND start_date <= ? AND end_date >= ?
		 ORDER BY start_date, id`,
		userID, categoryID, string(models.BudgetActive), day, day,
	)
}

func (s *SQLiteStore) listBudgets(ctx context.Context, query string, args ...any) ([]*models.Budget, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	budgets := []*models.Budget{}
	for rows.Next() {
		b, err := s.scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}
	return budgets, nil
}

func (s *SQLiteStore) scanBudget(row scanner) (*models.Budget, error) {
	b := &models.Budget{}
	var amount, createdAt, updatedAt int64
	var start, end, status string
	if err := row.Scan(&b.ID, &b.UserID, &b.CategoryID, &amount, &start, &end, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if b.StartDate, err = s.parseDate(start); err != nil {
		return nil, err
	}
	if b.EndDate, err = s.parseDate(end); err != nil {
		return nil, err
	}
	b.Amount = money.FromCents(amount)
	b.Status = models.BudgetStatus(status)
	b.CreatedAt = fromUnix(createdAt)
	b.UpdatedAt = fromUnix(updatedAt)
	return b, nil
}
