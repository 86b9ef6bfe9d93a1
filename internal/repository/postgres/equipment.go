package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"camclub-backend/internal/domain"
	"camclub-backend/internal/repository"
)

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.EquipmentItem, error) {
	query := `SELECT model, kind, category, brand, format, status FROM equipment ORDER BY kind, category, model`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	var items []domain.EquipmentItem
	for rows.Next() {
		var it domain.EquipmentItem
		if err := rows.Scan(&it.Model, &it.Kind, &it.Category, &it.Brand, &it.Format, &it.Status); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Replace swaps the catalog in one transaction so a failed bulk edit never
// leaves a half-written inventory.
func (r *equipmentRepository) Replace(ctx context.Context, items []domain.EquipmentItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM equipment`); err != nil {
		return fmt.Errorf("clear equipment: %w", err)
	}

	query := `INSERT INTO equipment (model, kind, category, brand, format, status) VALUES ($1, $2, $3, $4, $5, $6)`
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, query, it.Model, it.Kind, it.Category, it.Brand, it.Format, it.Status); err != nil {
			return fmt.Errorf("insert equipment %q: %w", it.Model, err)
		}
	}
	return tx.Commit()
}
