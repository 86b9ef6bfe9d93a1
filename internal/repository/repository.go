package repository

import (
	"context"
	"time"

	"camclub-backend/internal/domain"
)

// StatusUpdate carries the writable fields of a status change. Nil optional
// fields leave the stored value untouched.
type StatusUpdate struct {
	Status       domain.RentalStatus
	Staff        string
	Remark       *string
	ActualReturn *time.Time
}

type EquipmentRepository interface {
	List(ctx context.Context) ([]domain.EquipmentItem, error)
	// Replace swaps the whole catalog for the given items (admin bulk edit).
	Replace(ctx context.Context, items []domain.EquipmentItem) error
}

type RentalRepository interface {
	// List returns every rental record, newest first by id.
	List(ctx context.Context) ([]domain.RentalRecord, error)
	GetByID(ctx context.Context, id int32) (*domain.RentalRecord, error)
	// Create inserts the record and assigns its id.
	Create(ctx context.Context, rec *domain.RentalRecord) error
	UpdateStatus(ctx context.Context, id int32, upd StatusUpdate) error
}

type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Store bundles the repositories a backend implementation provides.
type Store struct {
	EquipmentRepository
	RentalRepository
	SettingsRepository
}
