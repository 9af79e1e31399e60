package service

import (
	"time"

	"github.com/ling-4j/prosperpath/internal/calculator"
	"github.com/ling-4j/prosperpath/internal/models"
	"github.com/ling-4j/prosperpath/pkg/rpc"
)

// dateLayout is the wire format of calendar dates.
const dateLayout = "2006-01-02"

func toUser(u *models.User) *rpc.User {
	return &rpc.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   time.Unix(u.CreatedAt, 0).UTC(),
	}
}

func toEvent(e *models.Event) *rpc.Event {
	return &rpc.Event{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
	}
}

func toMember(m *models.Member) *rpc.Member {
	return &rpc.Member{ID: m.ID, Name: m.Name, Note: m.Note, CreatedAt: m.CreatedAt}
}

func toBill(b *models.Bill) *rpc.Bill {
	return &rpc.Bill{
		ID:        b.ID,
		Name:      b.Name,
		Amount:    b.Amount,
		EventID:   b.EventID,
		PayerID:   b.PayerID,
		CreatedAt: b.CreatedAt,
	}
}

func toParticipants(ps []*models.BillParticipant) []*rpc.BillParticipant {
	out := make([]*rpc.BillParticipant, len(ps))
	for i, p := range ps {
		out[i] = &rpc.BillParticipant{
			ID:          p.ID,
			BillID:      p.BillID,
			MemberID:    p.MemberID,
			ShareAmount: p.ShareAmount,
		}
	}
	return out
}

func toBalances(bs []*models.EventBalance) []*rpc.EventBalance {
	out := make([]*rpc.EventBalance, len(bs))
	for i, b := range bs {
		out[i] = &rpc.EventBalance{
			MemberID:  b.MemberID,
			Paid:      b.Paid,
			ShouldPay: b.ShouldPay,
			Balance:   b.Balance,
		}
	}
	return out
}

func toTransfers(edges []calculator.DebtEdge) []*rpc.Transfer {
	out := make([]*rpc.Transfer, len(edges))
	for i, e := range edges {
		out[i] = &rpc.Transfer{FromMemberID: e.From, ToMemberID: e.To, Amount: e.Amount}
	}
	return out
}

func toSettlement(s *models.Settlement) *rpc.Settlement {
	return &rpc.Settlement{
		ID:           s.ID,
		EventID:      s.EventID,
		FromMemberID: s.FromMemberID,
		ToMemberID:   s.ToMemberID,
		Amount:       s.Amount,
		Note:         s.Note,
		CreatedBy:    s.CreatedBy,
		CreatedAt:    s.CreatedAt,
	}
}

func toCategory(c *models.Category) *rpc.Category {
	return &rpc.Category{ID: c.ID, Name: c.Name, Type: string(c.Type), Icon: c.Icon}
}

func toBudget(b *models.Budget) *rpc.Budget {
	return &rpc.Budget{
		ID:         b.ID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount,
		StartDate:  b.StartDate.Format(dateLayout),
		EndDate:    b.EndDate.Format(dateLayout),
		Status:     string(b.Status),
	}
}

func toTransaction(t *models.Transaction) *rpc.Transaction {
	return &rpc.Transaction{
		ID:              t.ID,
		CategoryID:      t.CategoryID,
		Amount:          t.Amount,
		Type:            string(t.Type),
		Description:     t.Description,
		TransactionDate: t.TransactionDate,
	}
}

func toTransactions(ts []*models.Transaction) []*rpc.Transaction {
	out := make([]*rpc.Transaction, len(ts))
	for i, t := range ts {
		out[i] = toTransaction(t)
	}
	return out
}

func toNotification(n *models.Notification) *rpc.Notification {
	return &rpc.Notification{
		ID:        n.ID,
		Message:   n.Message,
		Type:      string(n.Type),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func toNotifications(ns []*models.Notification) []*rpc.Notification {
	out := make([]*rpc.Notification, len(ns))
	for i, n := range ns {
		out[i] = toNotification(n)
	}
	return out
}
