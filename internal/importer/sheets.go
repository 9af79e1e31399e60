package importer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// SheetsSource reads statement rows from Google Sheets.
type SheetsSource struct {
	svc *gsheet.Service
}

// NewSheetsSource creates a read-only Sheets client.
func NewSheetsSource(ctx context.Context, opts ...option.ClientOption) (*SheetsSource, error) {
	opts = append([]option.ClientOption{option.WithScopes(gsheet.SpreadsheetsReadonlyScope)}, opts...)
	svc, err := gsheet.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &SheetsSource{svc: svc}, nil
}

// NewSheetsSourceFromCredentials authenticates with a service account key.
func NewSheetsSourceFromCredentials(ctx context.Context, credentialsJSON []byte) (*SheetsSource, error) {
	return NewSheetsSource(ctx, option.WithCredentialsJSON(credentialsJSON))
}

// FetchRows returns the cells of readRange ("Sheet1!A1:F200") as text.
func (s *SheetsSource) FetchRows(ctx context.Context, spreadsheetID, readRange string) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s: %w", readRange, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		rows[i] = toStrings(row)
	}
	return rows, nil
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}
