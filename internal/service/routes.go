package service

import (
	"net/http"

	"connectrpc.com/connect"

	"github.com/ling-4j/prosperpath/internal/auth"
	"github.com/ling-4j/prosperpath/internal/metrics"
	"github.com/ling-4j/prosperpath/internal/middleware"
	"github.com/ling-4j/prosperpath/pkg/rpc"
)

// Services groups the RPC handlers served by one process.
type Services struct {
	Auth   *AuthService
	Events *EventService
	Budget *BudgetService
	Import *ImportService
}

// PublicProcedures can be called without a Bearer token.
var PublicProcedures = []string{
	rpc.AuthServiceRegisterProcedure,
	rpc.AuthServiceLoginProcedure,
}

// Register mounts every service on mux behind the auth, logging and error
// interceptors, outermost first.
func (s *Services) Register(mux *http.ServeMux, jwtManager *auth.JWTManager, m *metrics.Metrics) {
	interceptors := connect.WithInterceptors(
		middleware.RequireAuth(jwtManager, PublicProcedures...),
		middleware.LoggingInterceptor(m),
		middleware.ErrorInterceptor(),
	)

	mux.Handle(rpc.NewAuthServiceHandler(s.Auth, interceptors))
	mux.Handle(rpc.NewEventServiceHandler(s.Events, interceptors))
	mux.Handle(rpc.NewBudgetServiceHandler(s.Budget, interceptors))
	mux.Handle(rpc.NewImportServiceHandler(s.Import, interceptors))
}
