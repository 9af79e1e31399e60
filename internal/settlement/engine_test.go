package settlement

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ling-4j/prosperpath/internal/apperrors"
	"github.com/ling-4j/prosperpath/internal/metrics"
	"github.com/ling-4j/prosperpath/internal/models"
	"github.com/ling-4j/prosperpath/internal/storage"
	"github.com/ling-4j/prosperpath/internal/storage/sqlite"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixture struct {
	store   *sqlite.SQLiteStore
	engine  *Engine
	event   *models.Event
	members map[string]*models.Member
}

func newFixture(t *testing.T, names ...string) *fixture {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	event := &models.Event{Name: "Trip", CreatedBy: "user-1"}
	require.NoError(t, store.CreateEvent(ctx, event))

	members := make(map[string]*models.Member, len(names))
	for _, name := range names {
		m := &models.Member{Name: name, UserID: "user-1"}
		require.NoError(t, store.CreateMember(ctx, m))
		members[name] = m
	}

	return &fixture{
		store:   store,
		engine:  NewEngine(store, metrics.New(prometheus.NewRegistry())),
		event:   event,
		members: members,
	}
}

func (f *fixture) ids(names ...string) []string {
	ids := make([]string, len(names))
	for i, n := range names {
		ids[i] = f.members[n].ID
	}
	return ids
}

func (f *fixture) bill(t *testing.T, name, amount, payer string) *models.Bill {
	t.Helper()
	b := &models.Bill{Name: name, Amount: d(amount), EventID: f.event.ID, PayerID: f.members[payer].ID}
	require.NoError(t, f.store.CreateBill(context.Background(), b))
	return b
}

func (f *fixture) balances(t *testing.T) map[string]*models.EventBalance {
	t.Helper()
	rows, err := f.store.ListBalancesByEvent(context.Background(), f.event.ID)
	require.NoError(t, err)

	byName := make(map[string]*models.EventBalance, len(rows))
	for _, r := range rows {
		for name, m := range f.members {
			if m.ID == r.MemberID {
				byName[name] = r
			}
		}
	}
	return byName
}

func assertBalance(t *testing.T, b *models.EventBalance, paid, shouldPay, balance string) {
	t.Helper()
	require.NotNil(t, b)
	assert.True(t, b.Paid.Equal(d(paid)), "paid = %s, want %s", b.Paid, paid)
	assert.True(t, b.ShouldPay.Equal(d(shouldPay)), "shouldPay = %s, want %s", b.ShouldPay, shouldPay)
	assert.True(t, b.Balance.Equal(d(balance)), "balance = %s, want %s", b.Balance, balance)
}

func TestAllocate_TripScenario(t *testing.T) {
	f := newFixture(t, "M1", "M2", "M3")
	ctx := context.Background()

	b1 := f.bill(t, "Hotel", "30.00", "M1")
	b2 := f.bill(t, "Coffee", "10.00", "M2")

	require.NoError(t, f.engine.AllocateBillParticipants(ctx, b1.ID, f.ids("M1", "M2", "M3")))
	require.NoError(t, f.engine.AllocateBillParticipants(ctx, b2.ID, f.ids("M1", "M2")))

	shares, err := f.store.ListParticipantsByBill(ctx, b1.ID)
	require.NoError(t, err)
	require.Len(t, shares, 3)
	for _, s := range shares {
		assert.True(t, s.ShareAmount.Equal(d("10.00")))
	}

	shares, err = f.store.ListParticipantsByBill(ctx, b2.ID)
	require.NoError(t, err)
	require.Len(t, shares, 2)
	for _, s := range shares {
		assert.True(t, s.ShareAmount.Equal(d("5.00")))
	}

	balances := f.balances(t)
	require.Len(t, balances, 3)
	assertBalance(t, balances["M1"], "30.00", "15.00", "15.00")
	assertBalance(t, balances["M2"], "10.00", "15.00", "-5.00")
	assertBalance(t, balances["M3"], "0", "10.00", "-10.00")
}

func TestAllocate_RoundingDriftIsKept(t *testing.T) {
	f := newFixture(t, "A", "B", "C")
	ctx := context.Background()

	b := f.bill(t, "Dinner", "100.00", "A")
	require.NoError(t, f.engine.AllocateBillParticipants(ctx, b.ID, f.ids("A", "B", "C")))

	shares, err := f.store.ListParticipantsByBill(ctx, b.ID)
	require.NoError(t, err)

	total := decimal.Zero
	for _, s := range shares {
		assert.True(t, s.ShareAmount.Equal(d("33.33")))
		total = total.Add(s.ShareAmount)
	}
	assert.True(t, total.Equal(d("99.99")), "total = %s", total)
}

func TestAllocate_DuplicatesAndReplace(t *testing.T) {
	f := newFixture(t, "A", "B")
	ctx := context.Background()

	b := f.bill(t, "Taxi", "9.00", "A")
	require.NoError(t, f.engine.AllocateBillParticipants(ctx, b.ID, f.ids("A", "B", "B")))

	shares, err := f.store.ListParticipantsByBill(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, shares, 3)
	assert.Equal(t, f.ids("A", "B", "B"), []string{shares[0].MemberID, shares[1].MemberID, shares[2].MemberID})
	assertBalance(t, f.balances(t)["B"], "0", "6.00", "-6.00")

	// A second allocation replaces the first one.
	require.NoError(t, f.engine.AllocateBillParticipants(ctx, b.ID, f.ids("B")))
	shares, err = f.store.ListParticipantsByBill(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, shares, 1)
	assertBalance(t, f.balances(t)["B"], "0", "9.00", "-9.00")
	assertBalance(t, f.balances(t)["A"], "9.00", "0", "9.00")
}

func TestAllocate_EmptyListStillRecalculates(t *testing.T) {
	f := newFixture(t, "A", "B")
	ctx := context.Background()

	b := f.bill(t, "Snacks", "12.00", "A")
	require.NoError(t, f.engine.AllocateBillParticipants(ctx, b.ID, f.ids("A", "B")))
	require.NoError(t, f.engine.AllocateBillParticipants(ctx, b.ID, nil))

	shares, err := f.store.ListParticipantsByBill(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, shares)

	balances := f.balances(t)
	require.Len(t, balances, 1)
	assertBalance(t, balances["A"], "12.00", "0", "12.00")
}

func TestAllocate_NotFound(t *testing.T) {
	f := newFixture(t, "A")
	ctx := context.Background()

	err := f.engine.AllocateBillParticipants(ctx, "missing-bill", f.ids("A"))
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	b := f.bill(t, "Lunch", "20.00", "A")
	require.NoError(t, f.engine.AllocateBillParticipants(ctx, b.ID, f.ids("A")))

	err = f.engine.AllocateBillParticipants(ctx, b.ID, []string{f.members["A"].ID, "ghost"})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.NotFoundError, appErr.Type)
	assert.Equal(t, "ghost", appErr.ID)

	// The earlier allocation is untouched.
	shares, err := f.store.ListParticipantsByBill(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, shares, 1)
}

// brokenStore fails every balance insert inside a transaction.
type brokenStore struct {
	storage.Store
}

type brokenLedger struct {
	storage.Ledger
}

func (s *brokenStore) InTx(ctx context.Context, fn func(storage.Ledger) error) error {
	return s.Store.InTx(ctx, func(l storage.Ledger) error {
		return fn(&brokenLedger{Ledger: l})
	})
}

func (l *brokenLedger) CreateEventBalance(context.Context, *models.EventBalance) error {
	return errors.New("disk full")
}

func TestAllocate_FailureRollsBack(t *testing.T) {
	f := newFixture(t, "A", "B")
	ctx := context.Background()

	b := f.bill(t, "Fuel", "40.00", "A")
	require.NoError(t, f.engine.AllocateBillParticipants(ctx, b.ID, f.ids("A", "B")))

	broken := NewEngine(&brokenStore{Store: f.store}, nil)
	err := broken.AllocateBillParticipants(ctx, b.ID, f.ids("B"))
	require.Error(t, err)

	shares, err := f.store.ListParticipantsByBill(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, shares, 2)

	balances := f.balances(t)
	require.Len(t, balances, 2)
	assertBalance(t, balances["B"], "0", "20.00", "-20.00")
}

func TestRecalculate(t *testing.T) {
	f := newFixture(t, "A", "B", "C")
	ctx := context.Background()

	t.Run("missing event", func(t *testing.T) {
		err := f.engine.RecalculateEventBalances(ctx, "nope")
		assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	})

	t.Run("payer only and owe only members", func(t *testing.T) {
		b := f.bill(t, "Tickets", "60.00", "C")
		require.NoError(t, f.engine.AllocateBillParticipants(ctx, b.ID, f.ids("A", "B")))

		balances := f.balances(t)
		require.Len(t, balances, 3)
		assertBalance(t, balances["C"], "60.00", "0", "60.00")
		assertBalance(t, balances["A"], "0", "30.00", "-30.00")
	})

	t.Run("idempotent", func(t *testing.T) {
		before := f.balances(t)
		require.NoError(t, f.engine.RecalculateEventBalances(ctx, f.event.ID))
		require.NoError(t, f.engine.RecalculateEventBalances(ctx, f.event.ID))
		after := f.balances(t)

		require.Len(t, after, len(before))
		for name, b := range before {
			assertBalance(t, after[name], b.Paid.String(), b.ShouldPay.String(), b.Balance.String())
		}
	})

	t.Run("balance identity", func(t *testing.T) {
		for name, b := range f.balances(t) {
			assert.True(t, b.Balance.Equal(b.Paid.Sub(b.ShouldPay)), "member %s", name)
		}
	})
}

func TestEventSummary(t *testing.T) {
	f := newFixture(t, "M1", "M2", "M3")
	ctx := context.Background()

	b1 := f.bill(t, "Hotel", "30.00", "M1")
	b2 := f.bill(t, "Coffee", "10.00", "M2")
	require.NoError(t, f.engine.AllocateBillParticipants(ctx, b1.ID, f.ids("M1", "M2", "M3")))
	require.NoError(t, f.engine.AllocateBillParticipants(ctx, b2.ID, f.ids("M1", "M2")))

	summary, err := f.engine.EventSummary(ctx, f.event.ID)
	require.NoError(t, err)
	assert.Len(t, summary.Balances, 3)
	require.Len(t, summary.Transfers, 2)

	total := decimal.Zero
	for _, tr := range summary.Transfers {
		assert.Equal(t, f.members["M1"].ID, tr.To)
		total = total.Add(tr.Amount)
	}
	assert.True(t, total.Equal(d("15.00")))

	_, err = f.engine.EventSummary(ctx, "missing")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
