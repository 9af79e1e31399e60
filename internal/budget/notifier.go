// Package budget checks recorded transactions against the user's budgets.
package budget

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ling-4j/prosperpath/internal/apperrors"
	"github.com/ling-4j/prosperpath/internal/metrics"
	"github.com/ling-4j/prosperpath/internal/models"
	"github.com/ling-4j/prosperpath/internal/storage"
)

// BudgetExceeded describes one budget whose spending went over its cap.
type BudgetExceeded struct {
	UserID        string
	TransactionID string
	Budget        *models.Budget
	Category      *models.Category
	TotalSpent    decimal.Decimal
	Excess        decimal.Decimal

	// Notification is the stored alert.
	Notification *models.Notification
}

// Publisher forwards BudgetExceeded events to other systems.
type Publisher interface {
	PublishBudgetExceeded(ctx context.Context, event *BudgetExceeded) error
}

// Notifier creates BUDGET_EXCEEDED notifications.
//
// Calls are not deduplicated: checking the same transaction twice while a
// budget is over its cap creates two notifications.
type Notifier struct {
	store     storage.Store
	publisher Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithPublisher sends every exceeded budget to p after the notification is
// stored.
func WithPublisher(p Publisher) Option {
	return func(n *Notifier) { n.publisher = p }
}

// WithMetrics records created notifications and publish failures.
func WithMetrics(m *metrics.Metrics) Option {
	return func(n *Notifier) { n.metrics = m }
}

// WithClock overrides the time used for notification CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) { n.now = now }
}

// NewNotifier creates a Notifier.
func NewNotifier(store storage.Store, opts ...Option) *Notifier {
	n := &Notifier{store: store, now: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NotifyIfBudgetExceeded checks tx against the user's active budgets for its
// category and stores one notification per budget that is now over its cap.
//
// An unknown user is not an error: the check is skipped with a warning.
func (n *Notifier) NotifyIfBudgetExceeded(ctx context.Context, userID string, tx *models.Transaction) ([]*BudgetExceeded, error) {
	var exceeded []*BudgetExceeded
	err := n.store.InTx(ctx, func(l storage.Ledger) error {
		var err error
		exceeded, err = n.NotifyInTx(ctx, l, userID, tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	n.Publish(ctx, exceeded)
	return exceeded, nil
}

// NotifyInTx is NotifyIfBudgetExceeded against a ledger the caller already
// holds a transaction on. Nothing is published; call Publish after commit.
func (n *Notifier) NotifyInTx(ctx context.Context, l storage.Ledger, userID string, tx *models.Transaction) ([]*BudgetExceeded, error) {
	if tx == nil || tx.CategoryID == "" {
		return nil, apperrors.ValidationFailed("invalid transaction", "transaction must have a category")
	}
	if tx.TransactionDate.IsZero() {
		return nil, apperrors.ValidationFailed("invalid transaction", "transaction must have a date")
	}

	user, err := l.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			slog.Warn("User not found, skipping budget check", "user_id", userID, "transaction_id", tx.ID)
			return nil, nil
		}
		return nil, err
	}

	budgets, err := l.FindActiveBudgets(ctx, user.ID, tx.CategoryID, tx.TransactionDate)
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return nil, nil
	}

	category, err := l.GetCategory(ctx, tx.CategoryID)
	if err != nil {
		return nil, err
	}

	var exceeded []*BudgetExceeded
	for _, b := range budgets {
		from, to := b.Window()
		total, err := l.SumAmountByCategoryAndUser(ctx, b.CategoryID, user.ID, from, to)
		if err != nil {
			return nil, err
		}

		if !total.GreaterThan(b.Amount) {
			slog.Debug("Budget not exceeded",
				"budget_id", b.ID,
				"total_spent", total.StringFixed(2),
				"budget_amount", b.Amount.StringFixed(2),
			)
			continue
		}

		event := &BudgetExceeded{
			UserID:        user.ID,
			TransactionID: tx.ID,
			Budget:        b,
			Category:      category,
			TotalSpent:    total,
			Excess:        total.Sub(b.Amount),
		}

		notification := &models.Notification{
			UserID:    user.ID,
			Message:   FormatMessage(event),
			Type:      models.NotificationBudgetExceeded,
			IsRead:    false,
			CreatedAt: n.now().UTC().Truncate(time.Second),
		}
		if err := l.CreateNotification(ctx, notification); err != nil {
			return nil, err
		}
		event.Notification = notification

		n.metrics.IncBudgetNotifications()
		slog.Info("Budget exceeded",
			"user_id", user.ID,
			"budget_id", b.ID,
			"category", category.Name,
			"excess", event.Excess.StringFixed(2),
		)
		exceeded = append(exceeded, event)
	}

	return exceeded, nil
}

// Publish forwards events to the configured publisher. Failures are logged
// and counted but never returned.
func (n *Notifier) Publish(ctx context.Context, events []*BudgetExceeded) {
	if n.publisher == nil {
		return
	}
	for _, e := range events {
		if err := n.publisher.PublishBudgetExceeded(ctx, e); err != nil {
			n.metrics.IncPublishFailures()
			slog.Error("Failed to publish budget exceeded event",
				"budget_id", e.Budget.ID,
				"error", err,
			)
		}
	}
}
