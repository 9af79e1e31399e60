// Package importer turns bank statement spreadsheets into transactions.
package importer

import (
	"bytes"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/ling-4j/prosperpath/internal/apperrors"
	"github.com/ling-4j/prosperpath/internal/metrics"
	"github.com/ling-4j/prosperpath/internal/models"
	"github.com/ling-4j/prosperpath/internal/money"
)

// dateLayouts are tried in order against the first line of a date cell.
var dateLayouts = []string{"2/1/2006 15:04", "2/1/2006"}

// Statement is the result of parsing one spreadsheet.
type Statement struct {
	// HeaderRow is the 0-based index of the detected header row.
	HeaderRow int

	// Transactions have Amount, Type, Description and TransactionDate set.
	// UserID and CategoryID are left for the caller.
	Transactions []*models.Transaction

	// Skipped counts data rows that did not yield a transaction.
	Skipped int
}

// Parser extracts transactions from statement rows.
type Parser struct {
	loc     *time.Location
	metrics *metrics.Metrics
}

// NewParser creates a Parser that reads dates in loc. m may be nil.
func NewParser(loc *time.Location, m *metrics.Metrics) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{loc: loc, metrics: m}
}

// ParseStatementFile reads the first sheet of an xlsx workbook.
func (p *Parser) ParseStatementFile(data []byte) (*Statement, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.ParseFailed("file is not a readable spreadsheet", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.ParseFailed("spreadsheet has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.ParseFailed("failed to read sheet rows", err)
	}
	return p.ParseStatement(rows)
}

// ParseStatement finds the header row and converts every following row.
//
// Rows without a usable amount or date are skipped silently. A positive
// debit makes an EXPENSE; otherwise the credit value becomes an INCOME,
// even when it is zero or negative.
func (p *Parser) ParseStatement(rows [][]string) (*Statement, error) {
	headerRow := -1
	var cols columns
	for i, row := range rows {
		if c, ok := detectColumns(row); ok {
			headerRow, cols = i, c
			break
		}
	}
	if headerRow == -1 {
		return nil, apperrors.ParseFailed("no header row with date, debit, credit and description columns", nil)
	}

	stmt := &Statement{HeaderRow: headerRow, Transactions: []*models.Transaction{}}
	for i := headerRow + 1; i < len(rows); i++ {
		tx, ok := p.parseRow(rows[i], cols)
		if !ok {
			slog.Debug("Skipping statement row", "row", i)
			stmt.Skipped++
			continue
		}
		stmt.Transactions = append(stmt.Transactions, tx)
	}

	p.metrics.AddImportedRows(len(stmt.Transactions), stmt.Skipped)
	return stmt, nil
}

func (p *Parser) parseRow(row []string, cols columns) (*models.Transaction, bool) {
	debit, hasDebit := parseAmount(cell(row, cols[roleDebit]))
	credit, hasCredit := parseAmount(cell(row, cols[roleCredit]))

	var amount decimal.Decimal
	var typ models.TransactionType
	switch {
	case hasDebit && debit.IsPositive():
		amount, typ = debit, models.TransactionExpense
	case hasCredit:
		amount, typ = credit, models.TransactionIncome
	default:
		return nil, false
	}
	if !money.HasValidScale(amount) {
		return nil, false
	}

	date, ok := p.parseDate(cell(row, cols[roleDate]))
	if !ok {
		return nil, false
	}

	return &models.Transaction{
		Amount:          amount,
		Type:            typ,
		Description:     strings.TrimSpace(cell(row, cols[roleDescription])),
		TransactionDate: date,
	}, true
}

func (p *Parser) parseDate(s string) (time.Time, bool) {
	line, _, _ := strings.Cut(s, "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, line, p.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseAmount reads "1,234,567.89", "1.234.567", "50.000" or "1234.5".
// Commas and spaces are grouping. Dots are grouping too when there are
// several of them, or when a comma-free cell has a single dot followed by
// exactly three digits.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	hasComma := strings.Contains(s, ",")
	s = strings.NewReplacer(",", "", " ", "", "\u00a0", "").Replace(s)
	if s == "" {
		return decimal.Zero, false
	}
	if dotGrouped(s, hasComma) {
		s = strings.ReplaceAll(s, ".", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func dotGrouped(s string, hasComma bool) bool {
	switch strings.Count(s, ".") {
	case 0:
		return false
	case 1:
		_, tail, _ := strings.Cut(s, ".")
		return !hasComma && len(tail) == 3
	default:
		return true
	}
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
