package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/ling-4j/prosperpath/internal/apperrors"
	"github.com/ling-4j/prosperpath/internal/budget"
	"github.com/ling-4j/prosperpath/internal/importer"
	"github.com/ling-4j/prosperpath/internal/middleware"
	"github.com/ling-4j/prosperpath/pkg/rpc"
)

// RowSource fetches the cell values of a remote spreadsheet range.
// *importer.SheetsSource implements it.
type RowSource interface {
	FetchRows(ctx context.Context, spreadsheetID, readRange string) ([][]string, error)
}

// ImportService implements rpc.ImportServiceHandler.
type ImportService struct {
	parser  *importer.Parser
	budgets *BudgetService
	sheets  RowSource
}

var _ rpc.ImportServiceHandler = (*ImportService)(nil)

// NewImportService creates an ImportService. Saved rows go through budgets
// so they get the same budget checks as single transactions. sheets may be
// nil, in which case ImportSheet reports Unimplemented.
func NewImportService(parser *importer.Parser, budgets *BudgetService, sheets RowSource) *ImportService {
	return &ImportService{parser: parser, budgets: budgets, sheets: sheets}
}

// ImportStatement parses an uploaded xlsx bank statement.
func (s *ImportService) ImportStatement(ctx context.Context, req *connect.Request[rpc.ImportStatementRequest]) (*connect.Response[rpc.ImportStatementResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	if len(req.Msg.File) == 0 {
		return nil, apperrors.ValidationFailed("invalid import", "file is required")
	}

	statement, err := s.parser.ParseStatementFile(req.Msg.File)
	if err != nil {
		return nil, err
	}
	resp, err := s.finish(ctx, userID, statement, req.Msg.Save, req.Msg.CategoryID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(resp), nil
}

// ImportSheet parses a statement held in a Google Sheet.
func (s *ImportService) ImportSheet(ctx context.Context, req *connect.Request[rpc.ImportSheetRequest]) (*connect.Response[rpc.ImportSheetResponse], error) {
	userID, err := middleware.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	if s.sheets == nil {
		return nil, connect.NewError(connect.CodeUnimplemented, errors.New("google sheets import is not configured"))
	}
	if strings.TrimSpace(req.Msg.SpreadsheetID) == "" || strings.TrimSpace(req.Msg.Range) == "" {
		return nil, apperrors.ValidationFailed("invalid import", "spreadsheetId and range are required")
	}

	rows, err := s.sheets.FetchRows(ctx, req.Msg.SpreadsheetID, req.Msg.Range)
	if err != nil {
		return nil, err
	}
	statement, err := s.parser.ParseStatement(rows)
	if err != nil {
		return nil, err
	}
	resp, err := s.finish(ctx, userID, statement, req.Msg.Save, req.Msg.CategoryID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(resp), nil
}

// finish assigns the parsed rows to the caller and stores them when asked.
func (s *ImportService) finish(ctx context.Context, userID string, st *importer.Statement, save bool, categoryID string) (*rpc.ImportStatementResponse, error) {
	for _, tx := range st.Transactions {
		tx.UserID = userID
		tx.CategoryID = categoryID
	}

	var exceeded []*budget.BudgetExceeded
	if save && len(st.Transactions) > 0 {
		var err error
		exceeded, err = s.budgets.record(ctx, userID, st.Transactions)
		if err != nil {
			return nil, err
		}
		slog.Info("Statement imported",
			"user_id", userID,
			"transactions", len(st.Transactions),
			"skipped", st.Skipped,
			"notifications", len(exceeded),
		)
	}

	return &rpc.ImportStatementResponse{
		HeaderRow:     st.HeaderRow,
		Skipped:       st.Skipped,
		Transactions:  toTransactions(st.Transactions),
		Notifications: exceededNotifications(exceeded),
	}, nil
}
