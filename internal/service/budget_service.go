package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/ling-4j/prosperpath/internal/apperrors"
	"github.com/ling-4j/prosperpath/internal/budget"
	"github.com/ling-4j/prosperpath/internal/middleware"
	"github.com/ling-4j/prosperpath/internal/models"
	"github.com/ling-4j/prosperpath/internal/money"
	"github.com/ling-4j/prosperpath/internal/storage"
	"github.com/ling-4j/prosperpath/pkg/rpc"
)

// BudgetService implements rpc.BudgetServiceHandler.
type BudgetService struct {
	store    storage.Store
	notifier *budget.Notifier
	loc      *time.Location
}

var _ rpc.BudgetServiceHandler = (*BudgetService)(nil)

// NewBudgetService creates a BudgetService. Budget dates are read as
// calendar days in loc.
func NewBudgetService(store storage.Store, notifier *budget.Notifier, loc *time.Location) *BudgetService {
	if loc == nil {
		loc = time.UTC
	}
	return &BudgetService{store: store, notifier: notifier, loc: loc}
}

func (s *BudgetService) parseDate(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), s.loc)
	if err != nil {
		return time.Time{}, apperrors.ValidationFailed("invalid "+field, fmt.Sprintf("%s must be formatted as %s", field, dateLayout))
	}
	return t, nil
}

// ownedCategory loads a category and reports another user's category as NotFound.
func ownedCategory(ctx context.Context, l storage.Ledger, categoryID, userID string) (*models.Category, error) {
	category, err := l.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.UserID != userID {
		return nil, apperrors.NotFound("category", categoryID)
	}
	return category, nil
}

// CreateCategory adds a category for the caller.
func (s *BudgetService) CreateCategory(ctx context.Context, req *connect.Request[rpc.CreateCategoryRequest]) (*connect.Response[rpc.CreateCategoryResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	name, err := requireName("category name", req.Msg.Name)
	if err != nil {
		return nil, err
	}
	kind := models.TransactionType(strings.ToUpper(req.Msg.Type))
	if !kind.Valid() {
		return nil, apperrors.ValidationFailed("invalid category type", "type must be INCOME or EXPENSE")
	}

	category := &models.Category{Name: name, Type: kind, Icon: req.Msg.Icon, UserID: userID}
	if err := s.store.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.CreateCategoryResponse{Category: toCategory(category)}), nil
}

// ListCategories returns the caller's categories.
func (s *BudgetService) ListCategories(ctx context.Context, req *connect.Request[rpc.ListCategoriesRequest]) (*connect.Response[rpc.ListCategoriesResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.store.ListCategoriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*rpc.Category, len(categories))
	for i, c := range categories {
		out[i] = toCategory(c)
	}
	return connect.NewResponse(&rpc.ListCategoriesResponse{Categories: out}), nil
}

// CreateBudget adds an ACTIVE budget over an inclusive date range.
func (s *BudgetService) CreateBudget(ctx context.Context, req *connect.Request[rpc.CreateBudgetRequest]) (*connect.Response[rpc.CreateBudgetResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := money.ValidatePositive("amount", req.Msg.Amount); err != nil {
		return nil, err
	}
	start, err := s.parseDate("startDate", req.Msg.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := s.parseDate("endDate", req.Msg.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, apperrors.ValidationFailed("invalid budget range", "endDate must not be before startDate")
	}

	b := &models.Budget{
		UserID:     userID,
		CategoryID: req.Msg.CategoryID,
		Amount:     req.Msg.Amount,
		StartDate:  start,
		EndDate:    end,
		Status:     models.BudgetActive,
	}
	err = s.store.InTx(ctx, func(l storage.Ledger) error {
		if _, err := ownedCategory(ctx, l, b.CategoryID, userID); err != nil {
			return err
		}
		return l.CreateBudget(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Budget created",
		"budget_id", b.ID,
		"category_id", b.CategoryID,
		"amount", b.Amount.StringFixed(2),
		"start", req.Msg.StartDate,
		"end", req.Msg.EndDate,
	)
	return connect.NewResponse(&rpc.CreateBudgetResponse{Budget: toBudget(b)}), nil
}

// UpdateBudgetStatus closes or reopens one of the caller's budgets.
func (s *BudgetService) UpdateBudgetStatus(ctx context.Context, req *connect.Request[rpc.UpdateBudgetStatusRequest]) (*connect.Response[rpc.UpdateBudgetStatusResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	status := models.BudgetStatus(strings.ToUpper(req.Msg.Status))
	if !status.Valid() {
		return nil, apperrors.ValidationFailed("invalid budget status", "status must be ACTIVE or CLOSED")
	}

	var b *models.Budget
	err = s.store.InTx(ctx, func(l storage.Ledger) error {
		var err error
		b, err = l.GetBudget(ctx, req.Msg.BudgetID)
		if err != nil {
			return err
		}
		if b.UserID != userID {
			return apperrors.NotFound("budget", req.Msg.BudgetID)
		}
		if err := l.UpdateBudgetStatus(ctx, b.ID, status); err != nil {
			return err
		}
		b, err = l.GetBudget(ctx, b.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Budget status updated", "budget_id", b.ID, "status", b.Status)
	return connect.NewResponse(&rpc.UpdateBudgetStatusResponse{Budget: toBudget(b)}), nil
}

// ListBudgets returns the caller's budgets.
func (s *BudgetService) ListBudgets(ctx context.Context, req *connect.Request[rpc.ListBudgetsRequest]) (*connect.Response[rpc.ListBudgetsResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	budgets, err := s.store.ListBudgetsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*rpc.Budget, len(budgets))
	for i, b := range budgets {
		out[i] = toBudget(b)
	}
	return connect.NewResponse(&rpc.ListBudgetsResponse{Budgets: out}), nil
}

// CreateTransaction records income or an expense. A categorized transaction
// is checked against the caller's budgets in the same database transaction;
// any notifications it caused are returned.
func (s *BudgetService) CreateTransaction(ctx context.Context, req *connect.Request[rpc.CreateTransactionRequest]) (*connect.Response[rpc.CreateTransactionResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := money.ValidatePositive("amount", req.Msg.Amount); err != nil {
		return nil, err
	}
	kind := models.TransactionType(strings.ToUpper(req.Msg.Type))
	if !kind.Valid() {
		return nil, apperrors.ValidationFailed("invalid transaction type", "type must be INCOME or EXPENSE")
	}
	if req.Msg.TransactionDate.IsZero() {
		return nil, apperrors.ValidationFailed("invalid transaction", "transactionDate is required")
	}

	tx := &models.Transaction{
		UserID:          userID,
		CategoryID:      req.Msg.CategoryID,
		Amount:          req.Msg.Amount,
		Type:            kind,
		Description:     strings.TrimSpace(req.Msg.Description),
		TransactionDate: req.Msg.TransactionDate,
	}
	exceeded, err := s.record(ctx, userID, []*models.Transaction{tx})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&rpc.CreateTransactionResponse{
		Transaction:   toTransaction(tx),
		Notifications: exceededNotifications(exceeded),
	}), nil
}

// record stores txs and runs the budget check for each categorized one,
// all in one database transaction. Events are published after commit.
func (s *BudgetService) record(ctx context.Context, userID string, txs []*models.Transaction) ([]*budget.BudgetExceeded, error) {
	var exceeded []*budget.BudgetExceeded
	err := s.store.InTx(ctx, func(l storage.Ledger) error {
		exceeded = nil
		checked := map[string]bool{}
		for _, tx := range txs {
			if tx.CategoryID != "" && !checked[tx.CategoryID] {
				if _, err := ownedCategory(ctx, l, tx.CategoryID, userID); err != nil {
					return err
				}
				checked[tx.CategoryID] = true
			}
			if err := l.CreateTransaction(ctx, tx); err != nil {
				return err
			}
			if tx.CategoryID == "" {
				continue
			}
			events, err := s.notifier.NotifyInTx(ctx, l, userID, tx)
			if err != nil {
				return err
			}
			exceeded = append(exceeded, events...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(ctx, exceeded)
	return exceeded, nil
}

func exceededNotifications(events []*budget.BudgetExceeded) []*rpc.Notification {
	out := make([]*rpc.Notification, 0, len(events))
	for _, e := range events {
		out = append(out, toNotification(e.Notification))
	}
	return out
}

// ListTransactions returns the caller's transactions.
func (s *BudgetService) ListTransactions(ctx context.Context, req *connect.Request[rpc.ListTransactionsRequest]) (*connect.Response[rpc.ListTransactionsResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	txs, err := s.store.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.ListTransactionsResponse{Transactions: toTransactions(txs)}), nil
}

// ListNotifications returns the caller's notifications, newest first.
func (s *BudgetService) ListNotifications(ctx context.Context, req *connect.Request[rpc.ListNotificationsRequest]) (*connect.Response[rpc.ListNotificationsResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	notifications, err := s.store.ListNotificationsByUser(ctx, userID, req.Msg.UnreadOnly)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.ListNotificationsResponse{Notifications: toNotifications(notifications)}), nil
}

// MarkNotificationRead flags one of the caller's notifications as read.
func (s *BudgetService) MarkNotificationRead(ctx context.Context, req *connect.Request[rpc.MarkNotificationReadRequest]) (*connect.Response[rpc.MarkNotificationReadResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.MarkNotificationRead(ctx, req.Msg.NotificationID, userID); err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.MarkNotificationReadResponse{}), nil
}
