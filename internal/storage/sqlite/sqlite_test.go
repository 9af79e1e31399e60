package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ling-4j/prosperpath/internal/apperrors"
	"github.com/ling-4j/prosperpath/internal/models"
	"github.com/ling-4j/prosperpath/internal/storage"
)

var ict = time.FixedZone("ICT", 7*60*60)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "prosperpath-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"), WithLocation(ict))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedEvent(t *testing.T, store *SQLiteStore, members ...string) (*models.Event, []*models.Member) {
	t.Helper()
	ctx := context.Background()

	event := &models.Event{Name: "Da Lat trip", CreatedBy: "user-1"}
	if err := store.CreateEvent(ctx, event); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	var created []*models.Member
	for _, name := range members {
		m := &models.Member{Name: name, UserID: "user-1"}
		if err := store.CreateMember(ctx, m); err != nil {
			t.Fatalf("CreateMember failed: %v", err)
		}
		created = append(created, m)
	}
	return event, created
}

func TestSQLiteStore_Bills(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	event, members := seedEvent(t, store, "An", "Binh", "Chi")

	t.Run("CreateBill generates ID and keeps amount exact", func(t *testing.T) {
		bill := &models.Bill{Name: "Hotel", Amount: d("300.10"), EventID: event.ID, PayerID: members[0].ID}
		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}
		if bill.ID == "" {
			t.Error("Expected bill ID to be generated")
		}
		if bill.CreatedAt.IsZero() {
			t.Error("Expected CreatedAt to be set")
		}

		got, err := store.GetBill(ctx, bill.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}
		if !got.Amount.Equal(d("300.10")) {
			t.Errorf("Amount = %s, want 300.10", got.Amount)
		}
		if got.PayerID != members[0].ID {
			t.Errorf("PayerID = %s, want %s", got.PayerID, members[0].ID)
		}
	})

	t.Run("GetBill returns NotFound for nonexistent bill", func(t *testing.T) {
		_, err := store.GetBill(ctx, "nonexistent-id")
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected NotFound, got %v", err)
		}
	})

	t.Run("participants keep insertion order", func(t *testing.T) {
		bill := &models.Bill{Name: "Dinner", Amount: d("90"), EventID: event.ID, PayerID: members[1].ID}
		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}

		order := []string{members[2].ID, members[0].ID, members[1].ID}
		for _, id := range order {
			p := &models.BillParticipant{BillID: bill.ID, MemberID: id, ShareAmount: d("30")}
			if err := store.CreateBillParticipant(ctx, p); err != nil {
				t.Fatalf("CreateBillParticipant failed: %v", err)
			}
		}

		got, err := store.ListParticipantsByBill(ctx, bill.ID)
		if err != nil {
			t.Fatalf("ListParticipantsByBill failed: %v", err)
		}
		if len(got) != len(order) {
			t.Fatalf("got %d participants, want %d", len(got), len(order))
		}
		for i, p := range got {
			if p.MemberID != order[i] {
				t.Errorf("participant %d = %s, want %s", i, p.MemberID, order[i])
			}
		}
	})

	t.Run("DeleteBill cascades to participants", func(t *testing.T) {
		bill := &models.Bill{Name: "Taxi", Amount: d("20"), EventID: event.ID, PayerID: members[0].ID}
		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}
		p := &models.BillParticipant{BillID: bill.ID, MemberID: members[1].ID, ShareAmount: d("20")}
		if err := store.CreateBillParticipant(ctx, p); err != nil {
			t.Fatalf("CreateBillParticipant failed: %v", err)
		}

		if err := store.DeleteBill(ctx, bill.ID); err != nil {
			t.Fatalf("DeleteBill failed: %v", err)
		}
		got, err := store.ListParticipantsByBill(ctx, bill.ID)
		if err != nil {
			t.Fatalf("ListParticipantsByBill failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no participants after delete, got %d", len(got))
		}

		if err := store.DeleteBill(ctx, bill.ID); !errors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("second delete: expected NotFound, got %v", err)
		}
	})

	t.Run("ListMembersByIDs omits unknown IDs", func(t *testing.T) {
		got, err := store.ListMembersByIDs(ctx, []string{members[0].ID, "ghost", members[2].ID})
		if err != nil {
			t.Fatalf("ListMembersByIDs failed: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("got %d members, want 2", len(got))
		}
	})
}

func TestSQLiteStore_Balances(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	event, members := seedEvent(t, store, "An", "Binh")

	for _, b := range []*models.EventBalance{
		{EventID: event.ID, MemberID: members[0].ID, Paid: d("90"), ShouldPay: d("30"), Balance: d("60")},
		{EventID: event.ID, MemberID: members[1].ID, Paid: d("0"), ShouldPay: d("60"), Balance: d("-60")},
	} {
		if err := store.CreateEventBalance(ctx, b); err != nil {
			t.Fatalf("CreateEventBalance failed: %v", err)
		}
	}

	got, err := store.ListBalancesByEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("ListBalancesByEvent failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d balances, want 2", len(got))
	}
	byMember := map[string]*models.EventBalance{}
	for _, b := range got {
		byMember[b.MemberID] = b
	}
	if !byMember[members[1].ID].Balance.Equal(d("-60")) {
		t.Errorf("Binh balance = %s, want -60", byMember[members[1].ID].Balance)
	}

	if err := store.DeleteBalancesByEvent(ctx, event.ID); err != nil {
		t.Fatalf("DeleteBalancesByEvent failed: %v", err)
	}
	got, err = store.ListBalancesByEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("ListBalancesByEvent failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no balances, got %d", len(got))
	}
}

func TestSQLiteStore_Settlements(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	event, members := seedEvent(t, store, "An", "Binh")

	s := &models.Settlement{
		EventID:      event.ID,
		FromMemberID: members[1].ID,
		ToMemberID:   members[0].ID,
		Amount:       d("60.50"),
		CreatedBy:    "user-1",
	}
	if err := store.CreateSettlement(ctx, s); err != nil {
		t.Fatalf("CreateSettlement failed: %v", err)
	}

	got, err := store.GetSettlement(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetSettlement failed: %v", err)
	}
	if !got.Amount.Equal(d("60.50")) || got.Note != "" {
		t.Errorf("unexpected settlement: %+v", got)
	}

	list, err := store.ListSettlementsByEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("ListSettlementsByEvent failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("got %d settlements, want 1", len(list))
	}

	if err := store.DeleteSettlement(ctx, s.ID); err != nil {
		t.Fatalf("DeleteSettlement failed: %v", err)
	}
	if _, err := store.GetSettlement(ctx, s.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected NotFound after delete, got %v", err)
	}
}

func TestSQLiteStore_Budgets(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	category := &models.Category{Name: "Food", Type: models.TransactionExpense, UserID: "user-1"}
	if err := store.CreateCategory(ctx, category); err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}

	budget := &models.Budget{
		UserID:     "user-1",
		CategoryID: category.ID,
		Amount:     d("100"),
		StartDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, ict),
		EndDate:    time.Date(2024, 3, 31, 0, 0, 0, 0, ict),
	}
	if err := store.CreateBudget(ctx, budget); err != nil {
		t.Fatalf("CreateBudget failed: %v", err)
	}
	if budget.Status != models.BudgetActive {
		t.Errorf("Status = %s, want ACTIVE", budget.Status)
	}

	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"first day", time.Date(2024, 3, 1, 0, 0, 0, 0, ict), 1},
		{"last day late evening", time.Date(2024, 3, 31, 23, 59, 0, 0, ict), 1},
		{"day after end", time.Date(2024, 4, 1, 0, 0, 0, 0, ict), 0},
		{"day before start", time.Date(2024, 2, 29, 23, 59, 0, 0, ict), 0},
		// 2024-03-31 18:00 UTC is already 2024-04-01 in ICT.
		{"instant outside in ledger zone", time.Date(2024, 3, 31, 18, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.FindActiveBudgets(ctx, "user-1", category.ID, tt.at)
			if err != nil {
				t.Fatalf("FindActiveBudgets failed: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d budgets, want %d", len(got), tt.want)
			}
		})
	}

	t.Run("closed budgets are not active", func(t *testing.T) {
		if err := store.UpdateBudgetStatus(ctx, budget.ID, models.BudgetClosed); err != nil {
			t.Fatalf("UpdateBudgetStatus failed: %v", err)
		}
		got, err := store.FindActiveBudgets(ctx, "user-1", category.ID, time.Date(2024, 3, 10, 12, 0, 0, 0, ict))
		if err != nil {
			t.Fatalf("FindActiveBudgets failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d budgets, want 0", len(got))
		}

		stored, err := store.GetBudget(ctx, budget.ID)
		if err != nil {
			t.Fatalf("GetBudget failed: %v", err)
		}
		if !stored.StartDate.Equal(budget.StartDate) || !stored.EndDate.Equal(budget.EndDate) {
			t.Errorf("dates round-trip: got %v..%v", stored.StartDate, stored.EndDate)
		}
	})
}

func TestSQLiteStore_SumAmountByCategoryAndUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	category := &models.Category{Name: "Food", Type: models.TransactionExpense, UserID: "user-1"}
	if err := store.CreateCategory(ctx, category); err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, ict)
	to := time.Date(2024, 4, 1, 0, 0, 0, 0, ict)

	for _, tx := range []*models.Transaction{
		{UserID: "user-1", CategoryID: category.ID, Amount: d("40.25"), Type: models.TransactionExpense, TransactionDate: from},
		{UserID: "user-1", CategoryID: category.ID, Amount: d("10.10"), Type: models.TransactionIncome, TransactionDate: to.Add(-time.Second)},
		{UserID: "user-1", CategoryID: category.ID, Amount: d("999"), Type: models.TransactionExpense, TransactionDate: to},
		{UserID: "user-2", CategoryID: category.ID, Amount: d("5"), Type: models.TransactionExpense, TransactionDate: from},
		{UserID: "user-1", Amount: d("7"), Type: models.TransactionExpense, TransactionDate: from},
	} {
		if err := store.CreateTransaction(ctx, tx); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	sum, err := store.SumAmountByCategoryAndUser(ctx, category.ID, "user-1", from, to)
	if err != nil {
		t.Fatalf("SumAmountByCategoryAndUser failed: %v", err)
	}
	if !sum.Equal(d("50.35")) {
		t.Errorf("sum = %s, want 50.35", sum)
	}

	empty, err := store.SumAmountByCategoryAndUser(ctx, category.ID, "nobody", from, to)
	if err != nil {
		t.Fatalf("SumAmountByCategoryAndUser failed: %v", err)
	}
	if !empty.IsZero() {
		t.Errorf("sum for unknown user = %s, want 0", empty)
	}

	list, err := store.ListTransactionsByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListTransactionsByUser failed: %v", err)
	}
	if len(list) != 4 {
		t.Errorf("got %d transactions, want 4", len(list))
	}
}

func TestSQLiteStore_Notifications(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	n := &models.Notification{UserID: "user-1", Message: "over budget", Type: models.NotificationBudgetExceeded}
	if err := store.CreateNotification(ctx, n); err != nil {
		t.Fatalf("CreateNotification failed: %v", err)
	}

	unread, err := store.ListNotificationsByUser(ctx, "user-1", true)
	if err != nil {
		t.Fatalf("ListNotificationsByUser failed: %v", err)
	}
	if len(unread) != 1 || unread[0].IsRead {
		t.Fatalf("expected one unread notification, got %+v", unread)
	}

	if err := store.MarkNotificationRead(ctx, n.ID, "user-2"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("marking someone else's notification: expected NotFound, got %v", err)
	}
	if err := store.MarkNotificationRead(ctx, n.ID, "user-1"); err != nil {
		t.Fatalf("MarkNotificationRead failed: %v", err)
	}

	unread, err = store.ListNotificationsByUser(ctx, "user-1", true)
	if err != nil {
		t.Fatalf("ListNotificationsByUser failed: %v", err)
	}
	if len(unread) != 0 {
		t.Errorf("expected no unread notifications, got %d", len(unread))
	}

	all, err := store.ListNotificationsByUser(ctx, "user-1", false)
	if err != nil {
		t.Fatalf("ListNotificationsByUser failed: %v", err)
	}
	if len(all) != 1 || !all[0].IsRead {
		t.Errorf("expected one read notification, got %+v", all)
	}
}

func TestSQLiteStore_Users(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := models.NewUser("an@example.com", "An", "hash")
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	dup := models.NewUser("an@example.com", "Another An", "hash")
	if err := store.CreateUser(ctx, dup); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("duplicate email: expected Conflict, got %v", err)
	}

	got, err := store.GetUserByEmail(ctx, "an@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("ID = %s, want %s", got.ID, user.ID)
	}

	if _, err := store.GetUserByID(ctx, "missing"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestSQLiteStore_InTx(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	event, members := seedEvent(t, store, "An")

	boom := errors.New("boom")
	err := store.InTx(ctx, func(l storage.Ledger) error {
		b := &models.EventBalance{EventID: event.ID, MemberID: members[0].ID, Paid: d("1"), ShouldPay: d("0"), Balance: d("1")}
		if err := l.CreateEventBalance(ctx, b); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("InTx error = %v, want boom", err)
	}

	got, err := store.ListBalancesByEvent(ctx, event.ID)
	if err != nil {
		t.Fatalf("ListBalancesByEvent failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("rolled back transaction left %d balances", len(got))
	}
}
