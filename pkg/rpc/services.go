package rpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// Service names.
const (
	EventServiceName  = "prosperpath.v1.EventService"
	BudgetServiceName = "prosperpath.v1.BudgetService"
	ImportServiceName = "prosperpath.v1.ImportService"
	AuthServiceName   = "prosperpath.v1.AuthService"
)

// EventService procedures.
const (
	EventServiceCreateEventProcedure              = "/" + EventServiceName + "/CreateEvent"
	EventServiceGetEventProcedure                 = "/" + EventServiceName + "/GetEvent"
	EventServiceListEventsProcedure               = "/" + EventServiceName + "/ListEvents"
	EventServiceDeleteEventProcedure              = "/" + EventServiceName + "/DeleteEvent"
	EventServiceCreateMemberProcedure             = "/" + EventServiceName + "/CreateMember"
	EventServiceListMembersProcedure              = "/" + EventServiceName + "/ListMembers"
	EventServiceCreateBillProcedure               = "/" + EventServiceName + "/CreateBill"
	EventServiceUpdateBillProcedure               = "/" + EventServiceName + "/UpdateBill"
	EventServiceDeleteBillProcedure               = "/" + EventServiceName + "/DeleteBill"
	EventServiceListBillsProcedure                = "/" + EventServiceName + "/ListBills"
	EventServiceSaveBillParticipantsProcedure     = "/" + EventServiceName + "/SaveBillParticipants"
	EventServiceListBillParticipantsProcedure     = "/" + EventServiceName + "/ListBillParticipants"
	EventServiceRecalculateEventBalancesProcedure = "/" + EventServiceName + "/RecalculateEventBalances"
	EventServiceListEventBalancesProcedure        = "/" + EventServiceName + "/ListEventBalances"
	EventServiceCreateSettlementProcedure         = "/" + EventServiceName + "/CreateSettlement"
	EventServiceListSettlementsProcedure          = "/" + EventServiceName + "/ListSettlements"
	EventServiceDeleteSettlementProcedure         = "/" + EventServiceName + "/DeleteSettlement"
)

// BudgetService procedures.
const (
	BudgetServiceCreateCategoryProcedure       = "/" + BudgetServiceName + "/CreateCategory"
	BudgetServiceListCategoriesProcedure       = "/" + BudgetServiceName + "/ListCategories"
	BudgetServiceCreateBudgetProcedure         = "/" + BudgetServiceName + "/CreateBudget"
	BudgetServiceUpdateBudgetStatusProcedure   = "/" + BudgetServiceName + "/UpdateBudgetStatus"
	BudgetServiceListBudgetsProcedure          = "/" + BudgetServiceName + "/ListBudgets"
	BudgetServiceCreateTransactionProcedure    = "/" + BudgetServiceName + "/CreateTransaction"
	BudgetServiceListTransactionsProcedure     = "/" + BudgetServiceName + "/ListTransactions"
	BudgetServiceListNotificationsProcedure    = "/" + BudgetServiceName + "/ListNotifications"
	BudgetServiceMarkNotificationReadProcedure = "/" + BudgetServiceName + "/MarkNotificationRead"
)

// ImportService procedures.
const (
	ImportServiceImportStatementProcedure = "/" + ImportServiceName + "/ImportStatement"
	ImportServiceImportSheetProcedure     = "/" + ImportServiceName + "/ImportSheet"
)

// AuthService procedures.
const (
	AuthServiceRegisterProcedure       = "/" + AuthServiceName + "/Register"
	AuthServiceLoginProcedure          = "/" + AuthServiceName + "/Login"
	AuthServiceGetCurrentUserProcedure = "/" + AuthServiceName + "/GetCurrentUser"
)

// EventServiceHandler is implemented by the server side of EventService.
type EventServiceHandler interface {
	CreateEvent(context.Context, *connect.Request[CreateEventRequest]) (*connect.Response[CreateEventResponse], error)
	GetEvent(context.Context, *connect.Request[GetEventRequest]) (*connect.Response[GetEventResponse], error)
	ListEvents(context.Context, *connect.Request[ListEventsRequest]) (*connect.Response[ListEventsResponse], error)
	DeleteEvent(context.Context, *connect.Request[DeleteEventRequest]) (*connect.Response[DeleteEventResponse], error)
	CreateMember(context.Context, *connect.Request[CreateMemberRequest]) (*connect.Response[CreateMemberResponse], error)
	ListMembers(context.Context, *connect.Request[ListMembersRequest]) (*connect.Response[ListMembersResponse], error)
	CreateBill(context.Context, *connect.Request[CreateBillRequest]) (*connect.Response[CreateBillResponse], error)
	UpdateBill(context.Context, *connect.Request[UpdateBillRequest]) (*connect.Response[UpdateBillResponse], error)
	DeleteBill(context.Context, *connect.Request[DeleteBillRequest]) (*connect.Response[DeleteBillResponse], error)
	ListBills(context.Context, *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error)
	SaveBillParticipants(context.Context, *connect.Request[SaveBillParticipantsRequest]) (*connect.Response[SaveBillParticipantsResponse], error)
	ListBillParticipants(context.Context, *connect.Request[ListBillParticipantsRequest]) (*connect.Response[ListBillParticipantsResponse], error)
	RecalculateEventBalances(context.Context, *connect.Request[RecalculateEventBalancesRequest]) (*connect.Response[RecalculateEventBalancesResponse], error)
	ListEventBalances(context.Context, *connect.Request[ListEventBalancesRequest]) (*connect.Response[ListEventBalancesResponse], error)
	CreateSettlement(context.Context, *connect.Request[CreateSettlementRequest]) (*connect.Response[CreateSettlementResponse], error)
	ListSettlements(context.Context, *connect.Request[ListSettlementsRequest]) (*connect.Response[ListSettlementsResponse], error)
	DeleteSettlement(context.Context, *connect.Request[DeleteSettlementRequest]) (*connect.Response[DeleteSettlementResponse], error)
}

// NewEventServiceHandler builds an HTTP handler for svc. It returns the path to mount it on.
func NewEventServiceHandler(svc EventServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(EventServiceCreateEventProcedure, connect.NewUnaryHandler(EventServiceCreateEventProcedure, svc.CreateEvent, opts...))
	mux.Handle(EventServiceGetEventProcedure, connect.NewUnaryHandler(EventServiceGetEventProcedure, svc.GetEvent, opts...))
	mux.Handle(EventServiceListEventsProcedure, connect.NewUnaryHandler(EventServiceListEventsProcedure, svc.ListEvents, opts...))
	mux.Handle(EventServiceDeleteEventProcedure, connect.NewUnaryHandler(EventServiceDeleteEventProcedure, svc.DeleteEvent, opts...))
	mux.Handle(EventServiceCreateMemberProcedure, connect.NewUnaryHandler(EventServiceCreateMemberProcedure, svc.CreateMember, opts...))
	mux.Handle(EventServiceListMembersProcedure, connect.NewUnaryHandler(EventServiceListMembersProcedure, svc.ListMembers, opts...))
	mux.Handle(EventServiceCreateBillProcedure, connect.NewUnaryHandler(EventServiceCreateBillProcedure, svc.CreateBill, opts...))
	mux.Handle(EventServiceUpdateBillProcedure, connect.NewUnaryHandler(EventServiceUpdateBillProcedure, svc.UpdateBill, opts...))
	mux.Handle(EventServiceDeleteBillProcedure, connect.NewUnaryHandler(EventServiceDeleteBillProcedure, svc.DeleteBill, opts...))
	mux.Handle(EventServiceListBillsProcedure, connect.NewUnaryHandler(EventServiceListBillsProcedure, svc.ListBills, opts...))
	mux.Handle(EventServiceSaveBillParticipantsProcedure, connect.NewUnaryHandler(EventServiceSaveBillParticipantsProcedure, svc.SaveBillParticipants, opts...))
	mux.Handle(EventServiceListBillParticipantsProcedure, connect.NewUnaryHandler(EventServiceListBillParticipantsProcedure, svc.ListBillParticipants, opts...))
	mux.Handle(EventServiceRecalculateEventBalancesProcedure, connect.NewUnaryHandler(EventServiceRecalculateEventBalancesProcedure, svc.RecalculateEventBalances, opts...))
	mux.Handle(EventServiceListEventBalancesProcedure, connect.NewUnaryHandler(EventServiceListEventBalancesProcedure, svc.ListEventBalances, opts...))
	mux.Handle(EventServiceCreateSettlementProcedure, connect.NewUnaryHandler(EventServiceCreateSettlementProcedure, svc.CreateSettlement, opts...))
	mux.Handle(EventServiceListSettlementsProcedure, connect.NewUnaryHandler(EventServiceListSettlementsProcedure, svc.ListSettlements, opts...))
	mux.Handle(EventServiceDeleteSettlementProcedure, connect.NewUnaryHandler(EventServiceDeleteSettlementProcedure, svc.DeleteSettlement, opts...))
	return "/" + EventServiceName + "/", mux
}

// EventServiceClient calls EventService.
type EventServiceClient struct {
	createEvent              *connect.Client[CreateEventRequest, CreateEventResponse]
	getEvent                 *connect.Client[GetEventRequest, GetEventResponse]
	listEvents               *connect.Client[ListEventsRequest, ListEventsResponse]
	deleteEvent              *connect.Client[DeleteEventRequest, DeleteEventResponse]
	createMember             *connect.Client[CreateMemberRequest, CreateMemberResponse]
	listMembers              *connect.Client[ListMembersRequest, ListMembersResponse]
	createBill               *connect.Client[CreateBillRequest, CreateBillResponse]
	updateBill               *connect.Client[UpdateBillRequest, UpdateBillResponse]
	deleteBill               *connect.Client[DeleteBillRequest, DeleteBillResponse]
	listBills                *connect.Client[ListBillsRequest, ListBillsResponse]
	saveBillParticipants     *connect.Client[SaveBillParticipantsRequest, SaveBillParticipantsResponse]
	listBillParticipants     *connect.Client[ListBillParticipantsRequest, ListBillParticipantsResponse]
	recalculateEventBalances *connect.Client[RecalculateEventBalancesRequest, RecalculateEventBalancesResponse]
	listEventBalances        *connect.Client[ListEventBalancesRequest, ListEventBalancesResponse]
	createSettlement         *connect.Client[CreateSettlementRequest, CreateSettlementResponse]
	listSettlements          *connect.Client[ListSettlementsRequest, ListSettlementsResponse]
	deleteSettlement         *connect.Client[DeleteSettlementRequest, DeleteSettlementResponse]
}

// NewEventServiceClient creates a client for the server at baseURL ("http://localhost:8080").
func NewEventServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *EventServiceClient {
	opts = clientOptions(opts)
	return &EventServiceClient{
		createEvent:              connect.NewClient[CreateEventRequest, CreateEventResponse](httpClient, baseURL+EventServiceCreateEventProcedure, opts...),
		getEvent:                 connect.NewClient[GetEventRequest, GetEventResponse](httpClient, baseURL+EventServiceGetEventProcedure, opts...),
		listEvents:               connect.NewClient[ListEventsRequest, ListEventsResponse](httpClient, baseURL+EventServiceListEventsProcedure, opts...),
		deleteEvent:              connect.NewClient[DeleteEventRequest, DeleteEventResponse](httpClient, baseURL+EventServiceDeleteEventProcedure, opts...),
		createMember:             connect.NewClient[CreateMemberRequest, CreateMemberResponse](httpClient, baseURL+EventServiceCreateMemberProcedure, opts...),
		listMembers:              connect.NewClient[ListMembersRequest, ListMembersResponse](httpClient, baseURL+EventServiceListMembersProcedure, opts...),
		createBill:               connect.NewClient[CreateBillRequest, CreateBillResponse](httpClient, baseURL+EventServiceCreateBillProcedure, opts...),
		updateBill:               connect.NewClient[UpdateBillRequest, UpdateBillResponse](httpClient, baseURL+EventServiceUpdateBillProcedure, opts...),
		deleteBill:               connect.NewClient[DeleteBillRequest, DeleteBillResponse](httpClient, baseURL+EventServiceDeleteBillProcedure, opts...),
		listBills:                connect.NewClient[ListBillsRequest, ListBillsResponse](httpClient, baseURL+EventServiceListBillsProcedure, opts...),
		saveBillParticipants:     connect.NewClient[SaveBillParticipantsRequest, SaveBillParticipantsResponse](httpClient, baseURL+EventServiceSaveBillParticipantsProcedure, opts...),
		listBillParticipants:     connect.NewClient[ListBillParticipantsRequest, ListBillParticipantsResponse](httpClient, baseURL+EventServiceListBillParticipantsProcedure, opts...),
		recalculateEventBalances: connect.NewClient[RecalculateEventBalancesRequest, RecalculateEventBalancesResponse](httpClient, baseURL+EventServiceRecalculateEventBalancesProcedure, opts...),
		listEventBalances:        connect.NewClient[ListEventBalancesRequest, ListEventBalancesResponse](httpClient, baseURL+EventServiceListEventBalancesProcedure, opts...),
		createSettlement:         connect.NewClient[CreateSettlementRequest, CreateSettlementResponse](httpClient, baseURL+EventServiceCreateSettlementProcedure, opts...),
		listSettlements:          connect.NewClient[ListSettlementsRequest, ListSettlementsResponse](httpClient, baseURL+EventServiceListSettlementsProcedure, opts...),
		deleteSettlement:         connect.NewClient[DeleteSettlementRequest, DeleteSettlementResponse](httpClient, baseURL+EventServiceDeleteSettlementProcedure, opts...),
	}
}

func (c *EventServiceClient) CreateEvent(ctx context.Context, req *connect.Request[CreateEventRequest]) (*connect.Response[CreateEventResponse], error) {
	return c.createEvent.CallUnary(ctx, req)
}

func (c *EventServiceClient) GetEvent(ctx context.Context, req *connect.Request[GetEventRequest]) (*connect.Response[GetEventResponse], error) {
	return c.getEvent.CallUnary(ctx, req)
}

func (c *EventServiceClient) ListEvents(ctx context.Context, req *connect.Request[ListEventsRequest]) (*connect.Response[ListEventsResponse], error) {
	return c.listEvents.CallUnary(ctx, req)
}

func (c *EventServiceClient) DeleteEvent(ctx context.Context, req *connect.Request[DeleteEventRequest]) (*connect.Response[DeleteEventResponse], error) {
	return c.deleteEvent.CallUnary(ctx, req)
}

func (c *EventServiceClient) CreateMember(ctx context.Context, req *connect.Request[CreateMemberRequest]) (*connect.Response[CreateMemberResponse], error) {
	return c.createMember.CallUnary(ctx, req)
}

func (c *EventServiceClient) ListMembers(ctx context.Context, req *connect.Request[ListMembersRequest]) (*connect.Response[ListMembersResponse], error) {
	return c.listMembers.CallUnary(ctx, req)
}

func (c *EventServiceClient) CreateBill(ctx context.Context, req *connect.Request[CreateBillRequest]) (*connect.Response[CreateBillResponse], error) {
	return c.createBill.CallUnary(ctx, req)
}

func (c *EventServiceClient) UpdateBill(ctx context.Context, req *connect.Request[UpdateBillRequest]) (*connect.Response[UpdateBillResponse], error) {
	return c.updateBill.CallUnary(ctx, req)
}

func (c *EventServiceClient) DeleteBill(ctx context.Context, req *connect.Request[DeleteBillRequest]) (*connect.Response[DeleteBillResponse], error) {
	return c.deleteBill.CallUnary(ctx, req)
}

func (c *EventServiceClient) ListBills(ctx context.Context, req *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

func (c *EventServiceClient) SaveBillParticipants(ctx context.Context, req *connect.Request[SaveBillParticipantsRequest]) (*connect.Response[SaveBillParticipantsResponse], error) {
	return c.saveBillParticipants.CallUnary(ctx, req)
}

func (c *EventServiceClient) ListBillParticipants(ctx context.Context, req *connect.Request[ListBillParticipantsRequest]) (*connect.Response[ListBillParticipantsResponse], error) {
	return c.listBillParticipants.CallUnary(ctx, req)
}

func (c *EventServiceClient) RecalculateEventBalances(ctx context.Context, req *connect.Request[RecalculateEventBalancesRequest]) (*connect.Response[RecalculateEventBalancesResponse], error) {
	return c.recalculateEventBalances.CallUnary(ctx, req)
}

func (c *EventServiceClient) ListEventBalances(ctx context.Context, req *connect.Request[ListEventBalancesRequest]) (*connect.Response[ListEventBalancesResponse], error) {
	return c.listEventBalances.CallUnary(ctx, req)
}

func (c *EventServiceClient) CreateSettlement(ctx context.Context, req *connect.Request[CreateSettlementRequest]) (*connect.Response[CreateSettlementResponse], error) {
	return c.createSettlement.CallUnary(ctx, req)
}

func (c *EventServiceClient) ListSettlements(ctx context.Context, req *connect.Request[ListSettlementsRequest]) (*connect.Response[ListSettlementsResponse], error) {
	return c.listSettlements.CallUnary(ctx, req)
}

func (c *EventServiceClient) DeleteSettlement(ctx context.Context, req *connect.Request[DeleteSettlementRequest]) (*connect.Response[DeleteSettlementResponse], error) {
	return c.deleteSettlement.CallUnary(ctx, req)
}

// BudgetServiceHandler is implemented by the server side of BudgetService.
type BudgetServiceHandler interface {
	CreateCategory(context.Context, *connect.Request[CreateCategoryRequest]) (*connect.Response[CreateCategoryResponse], error)
	ListCategories(context.Context, *connect.Request[ListCategoriesRequest]) (*connect.Response[ListCategoriesResponse], error)
	CreateBudget(context.Context, *connect.Request[CreateBudgetRequest]) (*connect.Response[CreateBudgetResponse], error)
	UpdateBudgetStatus(context.Context, *connect.Request[UpdateBudgetStatusRequest]) (*connect.Response[UpdateBudgetStatusResponse], error)
	ListBudgets(context.Context, *connect.Request[ListBudgetsRequest]) (*connect.Response[ListBudgetsResponse], error)
	CreateTransaction(context.Context, *connect.Request[CreateTransactionRequest]) (*connect.Response[CreateTransactionResponse], error)
	ListTransactions(context.Context, *connect.Request[ListTransactionsRequest]) (*connect.Response[ListTransactionsResponse], error)
	ListNotifications(context.Context, *connect.Request[ListNotificationsRequest]) (*connect.Response[ListNotificationsResponse], error)
	MarkNotificationRead(context.Context, *connect.Request[MarkNotificationReadRequest]) (*connect.Response[MarkNotificationReadResponse], error)
}

// NewBudgetServiceHandler builds an HTTP handler for svc. It returns the path to mount it on.
func NewBudgetServiceHandler(svc BudgetServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(BudgetServiceCreateCategoryProcedure, connect.NewUnaryHandler(BudgetServiceCreateCategoryProcedure, svc.CreateCategory, opts...))
	mux.Handle(BudgetServiceListCategoriesProcedure, connect.NewUnaryHandler(BudgetServiceListCategoriesProcedure, svc.ListCategories, opts...))
	mux.Handle(BudgetServiceCreateBudgetProcedure, connect.NewUnaryHandler(BudgetServiceCreateBudgetProcedure, svc.CreateBudget, opts...))
	mux.Handle(BudgetServiceUpdateBudgetStatusProcedure, connect.NewUnaryHandler(BudgetServiceUpdateBudgetStatusProcedure, svc.UpdateBudgetStatus, opts...))
	mux.Handle(BudgetServiceListBudgetsProcedure, connect.NewUnaryHandler(BudgetServiceListBudgetsProcedure, svc.ListBudgets, opts...))
	mux.Handle(BudgetServiceCreateTransactionProcedure, connect.NewUnaryHandler(BudgetServiceCreateTransactionProcedure, svc.CreateTransaction, opts...))
	mux.Handle(BudgetServiceListTransactionsProcedure, connect.NewUnaryHandler(BudgetServiceListTransactionsProcedure, svc.ListTransactions, opts...))
	mux.Handle(BudgetServiceListNotificationsProcedure, connect.NewUnaryHandler(BudgetServiceListNotificationsProcedure, svc.ListNotifications, opts...))
	mux.Handle(BudgetServiceMarkNotificationReadProcedure, connect.NewUnaryHandler(BudgetServiceMarkNotificationReadProcedure, svc.MarkNotificationRead, opts...))
	return "/" + BudgetServiceName + "/", mux
}

// BudgetServiceClient calls BudgetService.
type BudgetServiceClient struct {
	createCategory       *connect.Client[CreateCategoryRequest, CreateCategoryResponse]
	listCategories       *connect.Client[ListCategoriesRequest, ListCategoriesResponse]
	createBudget         *connect.Client[CreateBudgetRequest, CreateBudgetResponse]
	updateBudgetStatus   *connect.Client[UpdateBudgetStatusRequest, UpdateBudgetStatusResponse]
	listBudgets          *connect.Client[ListBudgetsRequest, ListBudgetsResponse]
	createTransaction    *connect.Client[CreateTransactionRequest, CreateTransactionResponse]
	listTransactions     *connect.Client[ListTransactionsRequest, ListTransactionsResponse]
	listNotifications    *connect.Client[ListNotificationsRequest, ListNotificationsResponse]
	markNotificationRead *connect.Client[MarkNotificationReadRequest, MarkNotificationReadResponse]
}

// NewBudgetServiceClient creates a client for the server at baseURL ("http://localhost:8080").
func NewBudgetServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *BudgetServiceClient {
	opts = clientOptions(opts)
	return &BudgetServiceClient{
		createCategory:       connect.NewClient[CreateCategoryRequest, CreateCategoryResponse](httpClient, baseURL+BudgetServiceCreateCategoryProcedure, opts...),
		listCategories:       connect.NewClient[ListCategoriesRequest, ListCategoriesResponse](httpClient, baseURL+BudgetServiceListCategoriesProcedure, opts...),
		createBudget:         connect.NewClient[CreateBudgetRequest, CreateBudgetResponse](httpClient, baseURL+BudgetServiceCreateBudgetProcedure, opts...),
		updateBudgetStatus:   connect.NewClient[UpdateBudgetStatusRequest, UpdateBudgetStatusResponse](httpClient, baseURL+BudgetServiceUpdateBudgetStatusProcedure, opts...),
		listBudgets:          connect.NewClient[ListBudgetsRequest, ListBudgetsResponse](httpClient, baseURL+BudgetServiceListBudgetsProcedure, opts...),
		createTransaction:    connect.NewClient[CreateTransactionRequest, CreateTransactionResponse](httpClient, baseURL+BudgetServiceCreateTransactionProcedure, opts...),
		listTransactions:     connect.NewClient[ListTransactionsRequest, ListTransactionsResponse](httpClient, baseURL+BudgetServiceListTransactionsProcedure, opts...),
		listNotifications:    connect.NewClient[ListNotificationsRequest, ListNotificationsResponse](httpClient, baseURL+BudgetServiceListNotificationsProcedure, opts...),
		markNotificationRead: connect.NewClient[MarkNotificationReadRequest, MarkNotificationReadResponse](httpClient, baseURL+BudgetServiceMarkNotificationReadProcedure, opts...),
	}
}

func (c *BudgetServiceClient) CreateCategory(ctx context.Context, req *connect.Request[CreateCategoryRequest]) (*connect.Response[CreateCategoryResponse], error) {
	return c.createCategory.CallUnary(ctx, req)
}

func (c *BudgetServiceClient) ListCategories(ctx context.Context, req *connect.Request[ListCategoriesRequest]) (*connect.Response[ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}

func (c *BudgetServiceClient) CreateBudget(ctx context.Context, req *connect.Request[CreateBudgetRequest]) (*connect.Response[CreateBudgetResponse], error) {
	return c.createBudget.CallUnary(ctx, req)
}

func (c *BudgetServiceClient) UpdateBudgetStatus(ctx context.Context, req *connect.Request[UpdateBudgetStatusRequest]) (*connect.Response[UpdateBudgetStatusResponse], error) {
	return c.updateBudgetStatus.CallUnary(ctx, req)
}

func (c *BudgetServiceClient) ListBudgets(ctx context.Context, req *connect.Request[ListBudgetsRequest]) (*connect.Response[ListBudgetsResponse], error) {
	return c.listBudgets.CallUnary(ctx, req)
}

func (c *BudgetServiceClient) CreateTransaction(ctx context.Context, req *connect.Request[CreateTransactionRequest]) (*connect.Response[CreateTransactionResponse], error) {
	return c.createTransaction.CallUnary(ctx, req)
}

func (c *BudgetServiceClient) ListTransactions(ctx context.Context, req *connect.Request[ListTransactionsRequest]) (*connect.Response[ListTransactionsResponse], error) {
	return c.listTransactions.CallUnary(ctx, req)
}

func (c *BudgetServiceClient) ListNotifications(ctx context.Context, req *connect.Request[ListNotificationsRequest]) (*connect.Response[ListNotificationsResponse], error) {
	return c.listNotifications.CallUnary(ctx, req)
}

func (c *BudgetServiceClient) MarkNotificationRead(ctx context.Context, req *connect.Request[MarkNotificationReadRequest]) (*connect.Response[MarkNotificationReadResponse], error) {
	return c.markNotificationRead.CallUnary(ctx, req)
}

// ImportServiceHandler is implemented by the server side of ImportService.
type ImportServiceHandler interface {
	ImportStatement(context.Context, *connect.Request[ImportStatementRequest]) (*connect.Response[ImportStatementResponse], error)
	ImportSheet(context.Context, *connect.Request[ImportSheetRequest]) (*connect.Response[ImportSheetResponse], error)
}

// NewImportServiceHandler builds an HTTP handler for svc. It returns the path to mount it on.
func NewImportServiceHandler(svc ImportServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(ImportServiceImportStatementProcedure, connect.NewUnaryHandler(ImportServiceImportStatementProcedure, svc.ImportStatement, opts...))
	mux.Handle(ImportServiceImportSheetProcedure, connect.NewUnaryHandler(ImportServiceImportSheetProcedure, svc.ImportSheet, opts...))
	return "/" + ImportServiceName + "/", mux
}

// ImportServiceClient calls ImportService.
type ImportServiceClient struct {
	importStatement *connect.Client[ImportStatementRequest, ImportStatementResponse]
	importSheet     *connect.Client[ImportSheetRequest, ImportSheetResponse]
}

// NewImportServiceClient creates a client for the server at baseURL ("http://localhost:8080").
func NewImportServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ImportServiceClient {
	opts = clientOptions(opts)
	return &ImportServiceClient{
		importStatement: connect.NewClient[ImportStatementRequest, ImportStatementResponse](httpClient, baseURL+ImportServiceImportStatementProcedure, opts...),
		importSheet:     connect.NewClient[ImportSheetRequest, ImportSheetResponse](httpClient, baseURL+ImportServiceImportSheetProcedure, opts...),
	}
}

func (c *ImportServiceClient) ImportStatement(ctx context.Context, req *connect.Request[ImportStatementRequest]) (*connect.Response[ImportStatementResponse], error) {
	return c.importStatement.CallUnary(ctx, req)
}

func (c *ImportServiceClient) ImportSheet(ctx context.Context, req *connect.Request[ImportSheetRequest]) (*connect.Response[ImportSheetResponse], error) {
	return c.importSheet.CallUnary(ctx, req)
}

// AuthServiceHandler is implemented by the server side of AuthService.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error)
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler for svc. It returns the path to mount it on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(AuthServiceRegisterProcedure, connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...))
	mux.Handle(AuthServiceLoginProcedure, connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...))
	mux.Handle(AuthServiceGetCurrentUserProcedure, connect.NewUnaryHandler(AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...))
	return "/" + AuthServiceName + "/", mux
}

// AuthServiceClient calls AuthService.
type AuthServiceClient struct {
	register       *connect.Client[RegisterRequest, RegisterResponse]
	login          *connect.Client[LoginRequest, LoginResponse]
	getCurrentUser *connect.Client[GetCurrentUserRequest, GetCurrentUserResponse]
}

// NewAuthServiceClient creates a client for the server at baseURL ("http://localhost:8080").
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	opts = clientOptions(opts)
	return &AuthServiceClient{
		register:       connect.NewClient[RegisterRequest, RegisterResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:          connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		getCurrentUser: connect.NewClient[GetCurrentUserRequest, GetCurrentUserResponse](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
	}
}

func (c *AuthServiceClient) Register(ctx context.Context, req *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *AuthServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}
