package postgres

import (
	"database/sql"

	"camclub-backend/internal/repository"

	_ "github.com/lib/pq"
)

// NewStore wires the postgres-backed repositories over one connection pool.
func NewStore(db *sql.DB) *repository.Store {
	return &repository.Store{
		EquipmentRepository: NewEquipmentRepository(db),
		RentalRepository:    NewRentalRepository(db),
		SettingsRepository:  NewSettingsRepository(db),
	}
}
