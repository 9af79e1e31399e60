// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ling-4j/prosperpath/internal/models"
)

// Every Get* method returns an apperrors NotFound error when the row does not
// exist. List* methods return an empty slice, never an error, for no rows.

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// EventStore persists events and the members that take part in them.
type EventStore interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
	ListEventsByCreator(ctx context.Context, userID string) ([]*models.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error

	CreateMember(ctx context.Context, member *models.Member) error
	GetMember(ctx context.Context, memberID string) (*models.Member, error)
	ListMembersByUser(ctx context.Context, userID string) ([]*models.Member, error)
	// ListMembersByIDs omits IDs that do not exist.
	ListMembersByIDs(ctx context.Context, ids []string) ([]*models.Member, error)
}

// BillStore persists bills and their participant shares.
type BillStore interface {
	CreateBill(ctx context.Context, bill *models.Bill) error
	GetBill(ctx context.Context, billID string) (*models.Bill, error)
	UpdateBill(ctx context.Context, bill *models.Bill) error
	// DeleteBill removes a bill and, by cascade, its participants.
	DeleteBill(ctx context.Context, billID string) error
	ListBillsByEvent(ctx context.Context, eventID string) ([]*models.Bill, error)
	DeleteBillsByEvent(ctx context.Context, eventID string) error

	CreateBillParticipant(ctx context.Context, participant *models.BillParticipant) error
	ListParticipantsByBill(ctx context.Context, billID string) ([]*models.BillParticipant, error)
	DeleteParticipantsByBill(ctx context.Context, billID string) error
}

// BalanceStore persists the derived per-member event balances.
type BalanceStore interface {
	CreateEventBalance(ctx context.Context, balance *models.EventBalance) error
	ListBalancesByEvent(ctx context.Context, eventID string) ([]*models.EventBalance, error)
	DeleteBalancesByEvent(ctx context.Context, eventID string) error
}

// SettlementStore persists recorded settlements.
type SettlementStore interface {
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error
	GetSettlement(ctx context.Context, settlementID string) (*models.Settlement, error)
	ListSettlementsByEvent(ctx context.Context, eventID string) ([]*models.Settlement, error)
	DeleteSettlement(ctx context.Context, settlementID string) error
	DeleteSettlementsByEvent(ctx context.Context, eventID string) error
}

// BudgetStore persists categories and budgets.
type BudgetStore interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategory(ctx context.Context, categoryID string) (*models.Category, error)
	ListCategoriesByUser(ctx context.Context, userID string) ([]*models.Category, error)

	CreateBudget(ctx context.Context, budget *models.Budget) error
	GetBudget(ctx context.Context, budgetID string) (*models.Budget, error)
	UpdateBudgetStatus(ctx context.Context, budgetID string, status models.BudgetStatus) error
	ListBudgetsByUser(ctx context.Context, userID string) ([]*models.Budget, error)
	// FindActiveBudgets returns the user's ACTIVE budgets for the category
	// whose inclusive date range contains the day of at.
	FindActiveBudgets(ctx context.Context, userID, categoryID string, at time.Time) ([]*models.Budget, error)
}

// TransactionStore persists income/expense records and notifications.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	ListTransactionsByUser(ctx context.Context, userID string) ([]*models.Transaction, error)
	// SumAmountByCategoryAndUser adds up transaction amounts for the category
	// and user with from <= transaction_date < to. It returns zero, never an
	// error, when nothing matches.
	SumAmountByCategoryAndUser(ctx context.Context, categoryID, userID string, from, to time.Time) (decimal.Decimal, error)

	CreateNotification(ctx context.Context, n *models.Notification) error
	ListNotificationsByUser(ctx context.Context, userID string, unreadOnly bool) ([]*models.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID, userID string) error
}

// Ledger is the full set of persistence operations.
type Ledger interface {
	UserStore
	EventStore
	BillStore
	BalanceStore
	SettlementStore
	BudgetStore
	TransactionStore
}

// Store defines the interface for ledger storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	Ledger

	// InTx runs fn against a Ledger bound to a single transaction. The
	// transaction commits when fn returns nil and rolls back otherwise, so
	// callers never observe a partial write.
	InTx(ctx context.Context, fn func(Ledger) error) error

	// Close releases any resources held by the store.
	Close() error
}
