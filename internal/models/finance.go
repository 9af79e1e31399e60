package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// BudgetStatus is the lifecycle state of a budget.
//
// Budgets are created ACTIVE. Closing a budget stops threshold checks for it;
// a closed budget can be reopened. Nothing closes budgets automatically.
type BudgetStatus string

const (
	BudgetActive BudgetStatus = "ACTIVE"
	BudgetClosed BudgetStatus = "CLOSED"
)

// Valid reports whether s is a known budget status.
func (s BudgetStatus) Valid() bool {
	return s == BudgetActive || s == BudgetClosed
}

// NotificationType classifies user-facing alerts.
type NotificationType string

const (
	NotificationBudgetExceeded NotificationType = "BUDGET_EXCEEDED"
)

// Category classifies transactions and budgets.
type Category struct {
	ID     string
	Name   string
	Type   TransactionType
	Icon   string
	UserID string
}

// Budget is a spending cap for a category over an inclusive date range.
type Budget struct {
	ID         string
	UserID     string
	CategoryID string

	// Amount is the cap. Spending strictly above it triggers a notification.
	Amount decimal.Decimal

	// StartDate and EndDate are calendar dates (midnight in the ledger
	// timezone); both days are inside the budget.
	StartDate time.Time
	EndDate   time.Time

	Status BudgetStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Covers reports whether the instant t falls on a day inside the budget.
func (b *Budget) Covers(t time.Time) bool {
	from, to := b.Window()
	return !t.Before(from) && t.Before(to)
}

// Window returns the half-open instant range [start 00:00, end+1 00:00)
// that the budget's inclusive date range covers.
func (b *Budget) Window() (time.Time, time.Time) {
	return b.StartDate, b.EndDate.AddDate(0, 0, 1)
}

// Transaction is an income or expense record.
type Transaction struct {
	ID     string
	UserID string

	// CategoryID may be empty for imported, not yet categorized rows.
	CategoryID string

	Amount          decimal.Decimal
	Type            TransactionType
	Description     string
	TransactionDate time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Notification is a user-facing alert.
type Notification struct {
	ID      string
	UserID  string
	Message string
	Type    NotificationType
	IsRead  bool

	CreatedAt time.Time
}
