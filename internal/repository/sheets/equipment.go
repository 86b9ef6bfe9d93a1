package sheets

import (
	"context"

	"camclub-backend/internal/domain"
)

// Inventory column order: 구분, 카테고리, 브랜드, 모델명, 규격, 상태.
var inventoryHeader = []interface{}{"구분", "카테고리", "브랜드", "모델명", "규격", "상태"}

const (
	legacyKindBody    = "Body"
	legacyKindLens    = "Lens"
	legacyAvailable   = "대여가능"
	legacyUnavailable = "대여불가"
	legacyFullFrame   = "FF"
	legacyCrop        = "Crop"
)

type equipmentRepository struct {
	c *client
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.EquipmentItem, error) {
	rows, err := r.c.getValues(ctx, inventorySheet+"!A2:F")
	if err != nil {
		return nil, err
	}

	var items []domain.EquipmentItem
	for _, row := range rows {
		it := domain.EquipmentItem{
			Category: cell(row, 1),
			Brand:    cell(row, 2),
			Model:    cell(row, 3),
		}
		if it.Model == "" {
			continue
		}
		switch cell(row, 0) {
		case legacyKindBody:
			it.Kind = domain.KindBody
		case legacyKindLens:
			it.Kind = domain.KindLens
		default:
			continue
		}
		if cell(row, 4) == legacyFullFrame {
			it.Format = domain.FormatFullFrame
		} else {
			it.Format = domain.FormatCrop
		}
		if cell(row, 5) == legacyAvailable {
			it.Status = domain.EquipmentAvailable
		} else {
			it.Status = domain.EquipmentUnavailable
		}
		items = append(items, it)
	}
	return items, nil
}

func (r *equipmentRepository) Replace(ctx context.Context, items []domain.EquipmentItem) error {
	values := [][]interface{}{inventoryHeader}
	for _, it := range items {
		kind := legacyKindLens
		if it.Kind == domain.KindBody {
			kind = legacyKindBody
		}
		format := legacyCrop
		if it.Format == domain.FormatFullFrame {
			format = legacyFullFrame
		}
		status := legacyUnavailable
		if it.Status == domain.EquipmentAvailable {
			status = legacyAvailable
		}
		values = append(values, []interface{}{kind, it.Category, it.Brand, it.Model, format, status})
	}

	if err := r.c.clear(ctx, inventorySheet+"!A:F"); err != nil {
		return err
	}
	return r.c.updateValues(ctx, inventorySheet+"!A1", values)
}
