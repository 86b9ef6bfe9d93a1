package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"camclub-backend/internal/domain"
	"camclub-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, applicant, contact, body_model, lens_model, start_date, due_date, meeting_time, staff, status, remark, actual_return, accessories, submitted_at, created_on`

// Create inserts the record and fills in its id. The conflict check runs
// before this call without a lock, so two concurrent submissions can both
// pass it; closing that race needs an exclusion constraint on
// (model, daterange) in the schema, which the sheets backend cannot mirror.
func (r *rentalRepository) Create(ctx context.Context, rec *domain.RentalRecord) error {
	query := `INSERT INTO rentals (applicant, contact, body_model, lens_model, start_date, due_date, meeting_time, staff, status, remark, accessories, submitted_at, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		rec.Applicant, rec.Contact, rec.Equipment.BodyModel, rec.Equipment.LensModel,
		rec.StartDate, rec.DueDate, rec.MeetingTime, rec.Staff, rec.Status, rec.Remark,
		pq.Array(rec.Accessories), rec.SubmittedAt, time.Now(),
	).Scan(&rec.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.RentalRecord, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rec, err := scanRental(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.RentalRecord, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list rentals: %w", err)
	}
	defer rows.Close()

	var recs []domain.RentalRecord
	for rows.Next() {
		rec, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id int32, upd repository.StatusUpdate) error {
	query := `UPDATE rentals SET status = $1, staff = $2,
	          remark = COALESCE($3, remark),
	          actual_return = COALESCE($4, actual_return)
	          WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, upd.Status, upd.Staff, upd.Remark, upd.ActualReturn, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRental(row rowScanner) (*domain.RentalRecord, error) {
	var (
		rec          domain.RentalRecord
		start, due   sql.NullTime
		actualReturn sql.NullTime
		accessories  pq.StringArray
	)
	err := row.Scan(&rec.ID, &rec.Applicant, &rec.Contact,
		&rec.Equipment.BodyModel, &rec.Equipment.LensModel,
		&start, &due, &rec.MeetingTime, &rec.Staff, &rec.Status, &rec.Remark,
		&actualReturn, &accessories, &rec.SubmittedAt, &rec.CreatedOn)
	if err != nil {
		return nil, err
	}
	// NULL dates stay zero so scans skip the record instead of failing.
	if start.Valid {
		rec.StartDate = start.Time
	}
	if due.Valid {
		rec.DueDate = due.Time
	}
	if actualReturn.Valid {
		t := actualReturn.Time
		rec.ActualReturn = &t
	}
	rec.Accessories = []string(accessories)
	return &rec, nil
}
