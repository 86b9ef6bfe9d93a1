// Package sheets implements the record store against the club's Google
// spreadsheet, the system of record of the original deployment.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"camclub-backend/internal/repository"
)

const scopeSheets = "https://www.googleapis.com/auth/spreadsheets"

// Worksheet names, fixed by the existing spreadsheet.
const (
	inventorySheet = "Inventory"
	rentalsSheet   = "Rentals"
	settingsSheet  = "Settings"
)

type client struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewStore authenticates with a service-account key and returns a store over
// the given spreadsheet.
func NewStore(ctx context.Context, credentialsJSON []byte, spreadsheetID string) (*repository.Store, error) {
	jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, scopeSheets)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	c := &client{svc: svc, spreadsheetID: spreadsheetID}
	return &repository.Store{
		EquipmentRepository: &equipmentRepository{c},
		RentalRepository:    &rentalRepository{c},
		SettingsRepository:  &settingsRepository{c},
	}, nil
}

func (c *client) getValues(ctx context.Context, readRange string) ([][]interface{}, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", readRange, err)
	}
	return resp.Values, nil
}

func (c *client) updateValues(ctx context.Context, writeRange string, values [][]interface{}) error {
	_, err := c.svc.Spreadsheets.Values.
		Update(c.spreadsheetID, writeRange, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update %s: %w", writeRange, err)
	}
	return nil
}

func (c *client) appendRow(ctx context.Context, sheet string, row []interface{}) error {
	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, sheet+"!A1", &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to %s: %w", sheet, err)
	}
	return nil
}

func (c *client) clear(ctx context.Context, clearRange string) error {
	_, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear %s: %w", clearRange, err)
	}
	return nil
}

// cell reads column i of a row as a trimmed string; short rows read as "".
func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}
