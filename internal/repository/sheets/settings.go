package sheets

import (
	"context"
	"fmt"

	"camclub-backend/internal/domain"
)

type settingsRepository struct {
	c *client
}

func (r *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	rows, err := r.c.getValues(ctx, settingsSheet+"!A2:B")
	if err != nil {
		return "", err
	}
	for _, row := range rows {
		if cell(row, 0) == key {
			return cell(row, 1), nil
		}
	}
	return "", domain.ErrNotFound
}

func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
	rows, err := r.c.getValues(ctx, settingsSheet+"!A2:B")
	if err != nil {
		return err
	}
	for i, row := range rows {
		if cell(row, 0) == key {
			writeRange := fmt.Sprintf("%s!B%d", settingsSheet, i+2)
			return r.c.updateValues(ctx, writeRange, [][]interface{}{{value}})
		}
	}
	return r.c.appendRow(ctx, settingsSheet, []interface{}{key, value})
}
