package sheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"interndash/internal"
	"interndash/internal/config"
)

// Connector reads the listing sheet through the Google Sheets API with a
// read-only service-account scope.
type Connector struct {
	service       *sheetsapi.Service
	spreadsheetID string
	sheetName     string
	cellRange     string
}

func NewConnector(ctx context.Context, cfg config.Config) (*Connector, error) {
	if err := cfg.Require("SPREADSHEET_ID", cfg.SpreadsheetID); err != nil {
		return nil, err
	}

	credentials, err := loadCredentials(cfg)
	if err != nil {
		return nil, err
	}

	jwtCfg, err := google.JWTConfigFromJSON(credentials, sheetsapi.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}

	svc, err := sheetsapi.NewService(ctx, option.WithTokenSource(jwtCfg.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Connector{
		service:       svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
		cellRange:     cfg.SheetRange,
	}, nil
}

func loadCredentials(cfg config.Config) ([]byte, error) {
	if cfg.SheetsCredentialsJSON != "" {
		return []byte(cfg.SheetsCredentialsJSON), nil
	}
	if cfg.SheetsCredentialsFile != "" {
		raw, err := os.ReadFile(cfg.SheetsCredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		return raw, nil
	}
	return nil, fmt.Errorf("missing sheets credentials: set SHEETS_CREDENTIALS_FILE or SHEETS_CREDENTIALS_JSON")
}

// FetchGrid returns the configured range as rows of text cells. Trailing
// empty cells inside a row are omitted by the API; the normalizer pads them.
func (c *Connector) FetchGrid(ctx context.Context) (internal.RawGrid, error) {
	readRange := fmt.Sprintf("%s!%s", c.sheetName, c.cellRange)
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets values get %s: %w", readRange, err)
	}

	grid := make(internal.RawGrid, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, value := range row {
			cells = append(cells, cellText(value))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

func cellText(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
