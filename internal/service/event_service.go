package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/ling-4j/prosperpath/internal/apperrors"
	"github.com/ling-4j/prosperpath/internal/middleware"
	"github.com/ling-4j/prosperpath/internal/models"
	"github.com/ling-4j/prosperpath/internal/money"
	"github.com/ling-4j/prosperpath/internal/settlement"
	"github.com/ling-4j/prosperpath/internal/storage"
	"github.com/ling-4j/prosperpath/pkg/rpc"
)

// EventService implements rpc.EventServiceHandler.
//
// Only the creator of an event may read or change it. Members belong to the
// user that created them and can only be used in that user's events.
type EventService struct {
	store  storage.Store
	engine *settlement.Engine
}

var _ rpc.EventServiceHandler = (*EventService)(nil)

// NewEventService creates a new EventService.
func NewEventService(store storage.Store, engine *settlement.Engine) *EventService {
	return &EventService{store: store, engine: engine}
}

// ownedEvent loads an event and checks that userID created it.
func ownedEvent(ctx context.Context, l storage.Ledger, eventID, userID string) (*models.Event, error) {
	event, err := l.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != userID {
		return nil, apperrors.Forbidden("event belongs to another user")
	}
	return event, nil
}

// ownedBill loads a bill and checks that userID created its event.
func ownedBill(ctx context.Context, l storage.Ledger, billID, userID string) (*models.Bill, error) {
	bill, err := l.GetBill(ctx, billID)
	if err != nil {
		return nil, err
	}
	if _, err := ownedEvent(ctx, l, bill.EventID, userID); err != nil {
		return nil, err
	}
	return bill, nil
}

// requireOwnMembers reports the first id that is not a member of userID as
// NotFound.
func requireOwnMembers(ctx context.Context, l storage.Ledger, userID string, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	members, err := l.ListMembersByIDs(ctx, ids)
	if err != nil {
		return err
	}
	owned := make(map[string]bool, len(members))
	for _, m := range members {
		if m.UserID == userID {
			owned[m.ID] = true
		}
	}
	for _, id := range ids {
		if !owned[id] {
			return apperrors.NotFound("member", id)
		}
	}
	return nil
}

func requireName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.ValidationFailed("invalid "+field, field+" is required")
	}
	return name, nil
}

// CreateEvent creates an event owned by the caller.
func (s *EventService) CreateEvent(ctx context.Context, req *connect.Request[rpc.CreateEventRequest]) (*connect.Response[rpc.CreateEventResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	name, err := requireName("event name", req.Msg.Name)
	if err != nil {
		return nil, err
	}

	event := &models.Event{Name: name, Description: strings.TrimSpace(req.Msg.Description), CreatedBy: userID}
	if err := s.store.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	slog.Info("Event created", "event_id", event.ID, "user_id", userID)
	return connect.NewResponse(&rpc.CreateEventResponse{Event: toEvent(event)}), nil
}

// GetEvent returns one of the caller's events.
func (s *EventService) GetEvent(ctx context.Context, req *connect.Request[rpc.GetEventRequest]) (*connect.Response[rpc.GetEventResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	event, err := ownedEvent(ctx, s.store, req.Msg.EventID, userID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.GetEventResponse{Event: toEvent(event)}), nil
}

// ListEvents returns the caller's events, newest first.
func (s *EventService) ListEvents(ctx context.Context, req *connect.Request[rpc.ListEventsRequest]) (*connect.Response[rpc.ListEventsResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.store.ListEventsByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*rpc.Event, len(events))
	for i, e := range events {
		out[i] = toEvent(e)
	}
	return connect.NewResponse(&rpc.ListEventsResponse{Events: out}), nil
}

// DeleteEvent removes an event with its bills, shares, balances and
// settlements in one transaction.
func (s *EventService) DeleteEvent(ctx context.Context, req *connect.Request[rpc.DeleteEventRequest]) (*connect.Response[rpc.DeleteEventResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	err = s.store.InTx(ctx, func(l storage.Ledger) error {
		event, err := ownedEvent(ctx, l, req.Msg.EventID, userID)
		if err != nil {
			return err
		}
		if err := l.DeleteBalancesByEvent(ctx, event.ID); err != nil {
			return err
		}
		if err := l.DeleteSettlementsByEvent(ctx, event.ID); err != nil {
			return err
		}
		bills, err := l.ListBillsByEvent(ctx, event.ID)
		if err != nil {
			return err
		}
		for _, b := range bills {
			if err := l.DeleteParticipantsByBill(ctx, b.ID); err != nil {
				return err
			}
		}
		if err := l.DeleteBillsByEvent(ctx, event.ID); err != nil {
			return err
		}
		return l.DeleteEvent(ctx, event.ID)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Event deleted", "event_id", req.Msg.EventID, "user_id", userID)
	return connect.NewResponse(&rpc.DeleteEventResponse{}), nil
}

// CreateMember adds a member to the caller's address book.
func (s *EventService) CreateMember(ctx context.Context, req *connect.Request[rpc.CreateMemberRequest]) (*connect.Response[rpc.CreateMemberResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	name, err := requireName("member name", req.Msg.Name)
	if err != nil {
		return nil, err
	}

	member := &models.Member{Name: name, Note: strings.TrimSpace(req.Msg.Note), UserID: userID}
	if err := s.store.CreateMember(ctx, member); err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.CreateMemberResponse{Member: toMember(member)}), nil
}

// ListMembers returns the caller's members ordered by name.
func (s *EventService) ListMembers(ctx context.Context, req *connect.Request[rpc.ListMembersRequest]) (*connect.Response[rpc.ListMembersResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.store.ListMembersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*rpc.Member, len(members))
	for i, m := range members {
		out[i] = toMember(m)
	}
	return connect.NewResponse(&rpc.ListMembersResponse{Members: out}), nil
}

// CreateBill records a bill. When member IDs are given the bill is split
// equally among them; the event's balances are rebuilt either way.
func (s *EventService) CreateBill(ctx context.Context, req *connect.Request[rpc.CreateBillRequest]) (*connect.Response[rpc.CreateBillResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	name, err := requireName("bill name", req.Msg.Name)
	if err != nil {
		return nil, err
	}
	if err := money.ValidatePositive("amount", req.Msg.Amount); err != nil {
		return nil, err
	}

	bill := &models.Bill{Name: name, Amount: req.Msg.Amount, EventID: req.Msg.EventID, PayerID: req.Msg.PayerID}
	var participants []*models.BillParticipant
	err = s.store.InTx(ctx, func(l storage.Ledger) error {
		if _, err := ownedEvent(ctx, l, bill.EventID, userID); err != nil {
			return err
		}
		if err := requireOwnMembers(ctx, l, userID, append([]string{bill.PayerID}, req.Msg.MemberIDs...)...); err != nil {
			return err
		}
		if err := l.CreateBill(ctx, bill); err != nil {
			return err
		}
		if err := s.engine.AllocateInTx(ctx, l, bill.ID, req.Msg.MemberIDs); err != nil {
			return err
		}
		participants, err = l.ListParticipantsByBill(ctx, bill.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Bill created",
		"bill_id", bill.ID,
		"event_id", bill.EventID,
		"amount", bill.Amount.StringFixed(2),
		"participants", len(participants),
	)
	return connect.NewResponse(&rpc.CreateBillResponse{
		Bill:         toBill(bill),
		Participants: toParticipants(participants),
	}), nil
}

// UpdateBill changes a bill and splits it again. Without member IDs the
// current participants are kept, in their stored order.
func (s *EventService) UpdateBill(ctx context.Context, req *connect.Request[rpc.UpdateBillRequest]) (*connect.Response[rpc.UpdateBillResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	name, err := requireName("bill name", req.Msg.Name)
	if err != nil {
		return nil, err
	}
	if err := money.ValidatePositive("amount", req.Msg.Amount); err != nil {
		return nil, err
	}

	var bill *models.Bill
	var participants []*models.BillParticipant
	err = s.store.InTx(ctx, func(l storage.Ledger) error {
		var err error
		bill, err = ownedBill(ctx, l, req.Msg.BillID, userID)
		if err != nil {
			return err
		}

		memberIDs := req.Msg.MemberIDs
		if len(memberIDs) == 0 {
			current, err := l.ListParticipantsByBill(ctx, bill.ID)
			if err != nil {
				return err
			}
			for _, p := range current {
				memberIDs = append(memberIDs, p.MemberID)
			}
		}
		if err := requireOwnMembers(ctx, l, userID, append([]string{req.Msg.PayerID}, memberIDs...)...); err != nil {
			return err
		}

		bill.Name = name
		bill.Amount = req.Msg.Amount
		bill.PayerID = req.Msg.PayerID
		if err := l.UpdateBill(ctx, bill); err != nil {
			return err
		}
		if err := s.engine.AllocateInTx(ctx, l, bill.ID, memberIDs); err != nil {
			return err
		}
		participants, err = l.ListParticipantsByBill(ctx, bill.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Bill updated", "bill_id", bill.ID, "event_id", bill.EventID)
	return connect.NewResponse(&rpc.UpdateBillResponse{
		Bill:         toBill(bill),
		Participants: toParticipants(participants),
	}), nil
}

// DeleteBill removes a bill with its shares and rebuilds the event's balances.
func (s *EventService) DeleteBill(ctx context.Context, req *connect.Request[rpc.DeleteBillRequest]) (*connect.Response[rpc.DeleteBillResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	err = s.store.InTx(ctx, func(l storage.Ledger) error {
		bill, err := ownedBill(ctx, l, req.Msg.BillID, userID)
		if err != nil {
			return err
		}
		if err := l.DeleteBill(ctx, bill.ID); err != nil {
			return err
		}
		_, err = s.engine.RecalculateInTx(ctx, l, bill.EventID)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Bill deleted", "bill_id", req.Msg.BillID)
	return connect.NewResponse(&rpc.DeleteBillResponse{}), nil
}

// ListBills returns an event's bills in creation order.
func (s *EventService) ListBills(ctx context.Context, req *connect.Request[rpc.ListBillsRequest]) (*connect.Response[rpc.ListBillsResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := ownedEvent(ctx, s.store, req.Msg.EventID, userID); err != nil {
		return nil, err
	}
	bills, err := s.store.ListBillsByEvent(ctx, req.Msg.EventID)
	if err != nil {
		return nil, err
	}

	out := make([]*rpc.Bill, len(bills))
	for i, b := range bills {
		out[i] = toBill(b)
	}
	return connect.NewResponse(&rpc.ListBillsResponse{Bills: out}), nil
}

// SaveBillParticipants replaces a bill's participants with an equal split.
func (s *EventService) SaveBillParticipants(ctx context.Context, req *connect.Request[rpc.SaveBillParticipantsRequest]) (*connect.Response[rpc.SaveBillParticipantsResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	var participants []*models.BillParticipant
	err = s.store.InTx(ctx, func(l storage.Ledger) error {
		bill, err := ownedBill(ctx, l, req.Msg.BillID, userID)
		if err != nil {
			return err
		}
		if err := requireOwnMembers(ctx, l, userID, req.Msg.MemberIDs...); err != nil {
			return err
		}
		if err := s.engine.AllocateInTx(ctx, l, bill.ID, req.Msg.MemberIDs); err != nil {
			return err
		}
		participants, err = l.ListParticipantsByBill(ctx, bill.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&rpc.SaveBillParticipantsResponse{Participants: toParticipants(participants)}), nil
}

// ListBillParticipants returns a bill's shares in allocation order.
func (s *EventService) ListBillParticipants(ctx context.Context, req *connect.Request[rpc.ListBillParticipantsRequest]) (*connect.Response[rpc.ListBillParticipantsResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	bill, err := ownedBill(ctx, s.store, req.Msg.BillID, userID)
	if err != nil {
		return nil, err
	}
	participants, err := s.store.ListParticipantsByBill(ctx, bill.ID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.ListBillParticipantsResponse{Participants: toParticipants(participants)}), nil
}

// RecalculateEventBalances rebuilds an event's balances on demand.
func (s *EventService) RecalculateEventBalances(ctx context.Context, req *connect.Request[rpc.RecalculateEventBalancesRequest]) (*connect.Response[rpc.RecalculateEventBalancesResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	var balances []*models.EventBalance
	err = s.store.InTx(ctx, func(l storage.Ledger) error {
		if _, err := ownedEvent(ctx, l, req.Msg.EventID, userID); err != nil {
			return err
		}
		var err error
		balances, err = s.engine.RecalculateInTx(ctx, l, req.Msg.EventID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&rpc.RecalculateEventBalancesResponse{Balances: toBalances(balances)}), nil
}

// ListEventBalances returns the stored balances and the transfers that
// would settle them.
func (s *EventService) ListEventBalances(ctx context.Context, req *connect.Request[rpc.ListEventBalancesRequest]) (*connect.Response[rpc.ListEventBalancesResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := ownedEvent(ctx, s.store, req.Msg.EventID, userID); err != nil {
		return nil, err
	}

	summary, err := s.engine.EventSummary(ctx, req.Msg.EventID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.ListEventBalancesResponse{
		Balances:  toBalances(summary.Balances),
		Transfers: toTransfers(summary.Transfers),
	}), nil
}

// CreateSettlement records a payment between two members of an event.
// Settlements do not change the event's balances.
func (s *EventService) CreateSettlement(ctx context.Context, req *connect.Request[rpc.CreateSettlementRequest]) (*connect.Response[rpc.CreateSettlementResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	if err := money.ValidatePositive("amount", req.Msg.Amount); err != nil {
		return nil, err
	}
	if req.Msg.FromMemberID == req.Msg.ToMemberID {
		return nil, apperrors.ValidationFailed("invalid settlement", "from and to members must differ")
	}

	st := &models.Settlement{
		EventID:      req.Msg.EventID,
		FromMemberID: req.Msg.FromMemberID,
		ToMemberID:   req.Msg.ToMemberID,
		Amount:       req.Msg.Amount,
		Note:         strings.TrimSpace(req.Msg.Note),
		CreatedBy:    userID,
	}
	err = s.store.InTx(ctx, func(l storage.Ledger) error {
		if _, err := ownedEvent(ctx, l, st.EventID, userID); err != nil {
			return err
		}
		if err := requireOwnMembers(ctx, l, userID, st.FromMemberID, st.ToMemberID); err != nil {
			return err
		}
		return l.CreateSettlement(ctx, st)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Settlement recorded",
		"settlement_id", st.ID,
		"event_id", st.EventID,
		"amount", st.Amount.StringFixed(2),
	)
	return connect.NewResponse(&rpc.CreateSettlementResponse{Settlement: toSettlement(st)}), nil
}

// ListSettlements returns an event's settlements, newest first.
func (s *EventService) ListSettlements(ctx context.Context, req *connect.Request[rpc.ListSettlementsRequest]) (*connect.Response[rpc.ListSettlementsResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := ownedEvent(ctx, s.store, req.Msg.EventID, userID); err != nil {
		return nil, err
	}
	settlements, err := s.store.ListSettlementsByEvent(ctx, req.Msg.EventID)
	if err != nil {
		return nil, err
	}

	out := make([]*rpc.Settlement, len(settlements))
	for i, st := range settlements {
		out[i] = toSettlement(st)
	}
	return connect.NewResponse(&rpc.ListSettlementsResponse{Settlements: out}), nil
}

// DeleteSettlement removes a recorded settlement.
func (s *EventService) DeleteSettlement(ctx context.Context, req *connect.Request[rpc.DeleteSettlementRequest]) (*connect.Response[rpc.DeleteSettlementResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	err = s.store.InTx(ctx, func(l storage.Ledger) error {
		st, err := l.GetSettlement(ctx, req.Msg.SettlementID)
		if err != nil {
			return err
		}
		if _, err := ownedEvent(ctx, l, st.EventID, userID); err != nil {
			return err
		}
		return l.DeleteSettlement(ctx, st.ID)
	})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.DeleteSettlementResponse{}), nil
}
