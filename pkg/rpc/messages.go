package rpc

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Bill struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	EventID   string          `json:"eventId"`
	PayerID   string          `json:"payerId"`
	CreatedAt time.Time       `json:"createdAt"`
}

type BillParticipant struct {
	ID          string          `json:"id"`
	BillID      string          `json:"billId"`
	MemberID    string          `json:"memberId"`
	ShareAmount decimal.Decimal `json:"shareAmount"`
}

type EventBalance struct {
	MemberID  string          `json:"memberId"`
	Paid      decimal.Decimal `json:"paid"`
	ShouldPay decimal.Decimal `json:"shouldPay"`
	Balance   decimal.Decimal `json:"balance"`
}

// Transfer is a suggested payment that would settle balances. It is never stored.
type Transfer struct {
	FromMemberID string          `json:"fromMemberId"`
	ToMemberID   string          `json:"toMemberId"`
	Amount       decimal.Decimal `json:"amount"`
}

type Settlement struct {
	ID           string          `json:"id"`
	EventID      string          `json:"eventId"`
	FromMemberID string          `json:"fromMemberId"`
	ToMemberID   string          `json:"toMemberId"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note,omitempty"`
	CreatedBy    string          `json:"createdBy"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon,omitempty"`
}

type Budget struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	Status     string          `json:"status"`
}

type Transaction struct {
	ID              string          `json:"id"`
	CategoryID      string          `json:"categoryId,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	Description     string          `json:"description,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
}

type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// Auth

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

// Events and members

type CreateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CreateEventResponse struct {
	Event *Event `json:"event"`
}

type GetEventRequest struct {
	EventID string `json:"eventId"`
}

type GetEventResponse struct {
	Event *Event `json:"event"`
}

type ListEventsRequest struct{}

type ListEventsResponse struct {
	Events []*Event `json:"events"`
}

type DeleteEventRequest struct {
	EventID string `json:"eventId"`
}

type DeleteEventResponse struct{}

type CreateMemberRequest struct {
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

type CreateMemberResponse struct {
	Member *Member `json:"member"`
}

type ListMembersRequest struct{}

type ListMembersResponse struct {
	Members []*Member `json:"members"`
}

// Bills

type CreateBillRequest struct {
	EventID string          `json:"eventId"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	PayerID string          `json:"payerId"`
	// MemberIDs, when set, are split equally right away.
	MemberIDs []string `json:"memberIds,omitempty"`
}

type CreateBillResponse struct {
	Bill         *Bill              `json:"bill"`
	Participants []*BillParticipant `json:"participants"`
}

type UpdateBillRequest struct {
	BillID  string          `json:"billId"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	PayerID string          `json:"payerId"`
	// MemberIDs replaces the participants. When empty the current
	// participants are split again over the new amount.
	MemberIDs []string `json:"memberIds,omitempty"`
}

type UpdateBillResponse struct {
	Bill         *Bill              `json:"bill"`
	Participants []*BillParticipant `json:"participants"`
}

type DeleteBillRequest struct {
	BillID string `json:"billId"`
}

type DeleteBillResponse struct{}

type ListBillsRequest struct {
	EventID string `json:"eventId"`
}

type ListBillsResponse struct {
	Bills []*Bill `json:"bills"`
}

type SaveBillParticipantsRequest struct {
	BillID    string   `json:"billId"`
	MemberIDs []string `json:"memberIds"`
}

type SaveBillParticipantsResponse struct {
	Participants []*BillParticipant `json:"participants"`
}

type ListBillParticipantsRequest struct {
	BillID string `json:"billId"`
}

type ListBillParticipantsResponse struct {
	Participants []*BillParticipant `json:"participants"`
}

// Balances and settlements

type RecalculateEventBalancesRequest struct {
	EventID string `json:"eventId"`
}

type RecalculateEventBalancesResponse struct {
	Balances []*EventBalance `json:"balances"`
}

type ListEventBalancesRequest struct {
	EventID string `json:"eventId"`
}

type ListEventBalancesResponse struct {
	Balances  []*EventBalance `json:"balances"`
	Transfers []*Transfer     `json:"transfers"`
}

type CreateSettlementRequest struct {
	EventID      string          `json:"eventId"`
	FromMemberID string          `json:"fromMemberId"`
	ToMemberID   string          `json:"toMemberId"`
	Amount       decimal.Decimal `json:"amount"`
	Note         string          `json:"note,omitempty"`
}

type CreateSettlementResponse struct {
	Settlement *Settlement `json:"settlement"`
}

type ListSettlementsRequest struct {
	EventID string `json:"eventId"`
}

type ListSettlementsResponse struct {
	Settlements []*Settlement `json:"settlements"`
}

type DeleteSettlementRequest struct {
	SettlementID string `json:"settlementId"`
}

type DeleteSettlementResponse struct{}

// Budgets, transactions and notifications

type CreateCategoryRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon,omitempty"`
}

type CreateCategoryResponse struct {
	Category *Category `json:"category"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
}

type CreateBudgetRequest struct {
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
}

type CreateBudgetResponse struct {
	Budget *Budget `json:"budget"`
}

type UpdateBudgetStatusRequest struct {
	BudgetID string `json:"budgetId"`
	Status   string `json:"status"`
}

type UpdateBudgetStatusResponse struct {
	Budget *Budget `json:"budget"`
}

type ListBudgetsRequest struct{}

type ListBudgetsResponse struct {
	Budgets []*Budget `json:"budgets"`
}

type CreateTransactionRequest struct {
	CategoryID      string          `json:"categoryId"`
	Amount          decimal.Decimal `json:"amount"`
	Type            string          `json:"type"`
	Description     string          `json:"description,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"`
}

type CreateTransactionResponse struct {
	Transaction   *Transaction    `json:"transaction"`
	Notifications []*Notification `json:"notifications"`
}

type ListTransactionsRequest struct{}

type ListTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

type ListNotificationsRequest struct {
	UnreadOnly bool `json:"unreadOnly,omitempty"`
}

type ListNotificationsResponse struct {
	Notifications []*Notification `json:"notifications"`
}

type MarkNotificationReadRequest struct {
	NotificationID string `json:"notificationId"`
}

type MarkNotificationReadResponse struct{}

// Imports

type ImportStatementRequest struct {
	// File is the xlsx workbook; JSON carries it base64 encoded.
	File []byte `json:"file"`
	// Save persists the parsed transactions for the caller.
	Save bool `json:"save,omitempty"`
	// CategoryID is assigned to saved transactions and enables budget checks.
	CategoryID string `json:"categoryId,omitempty"`
}

type ImportStatementResponse struct {
	HeaderRow     int             `json:"headerRow"`
	Skipped       int             `json:"skipped"`
	Transactions  []*Transaction  `json:"transactions"`
	Notifications []*Notification `json:"notifications,omitempty"`
}

type ImportSheetRequest struct {
	SpreadsheetID string `json:"spreadsheetId"`
	Range         string `json:"range"`
	Save          bool   `json:"save,omitempty"`
	CategoryID    string `json:"categoryId,omitempty"`
}

type ImportSheetResponse = ImportStatementResponse
