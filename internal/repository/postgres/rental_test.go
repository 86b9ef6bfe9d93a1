package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"camclub-backend/internal/domain"
	"camclub-backend/internal/repository"
)

var rentalCols = []string{"id", "applicant", "contact", "body_model", "lens_model", "start_date", "due_date", "meeting_time", "staff", "status", "remark", "actual_return", "accessories", "submitted_at", "created_on"}

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rec := &domain.RentalRecord{
			Applicant:   "민지",
			Contact:     "010-1234-5678",
			Equipment:   domain.EquipmentRef{BodyModel: "EOS R5"},
			StartDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			DueDate:     time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			Staff:       domain.DefaultStaff,
			Status:      domain.RentalStatusPending,
			Accessories: []string{"삼각대"},
			SubmittedAt: time.Now(),
		}

		mock.ExpectQuery("INSERT INTO rentals").
			WithArgs(rec.Applicant, rec.Contact, "EOS R5", "", rec.StartDate, rec.DueDate,
				"", rec.Staff, rec.Status, "", pq.Array(rec.Accessories), rec.SubmittedAt, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.Create(ctx, rec)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), rec.ID)
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(rentalCols).
			AddRow(1, "민지", "010-1234-5678", "EOS R5", "RF 50mm", time.Now(), time.Now(), "18:00", "김담당", "CONFIRMED", "", nil, pq.StringArray{"삼각대"}, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		rec, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), rec.ID)
		assert.Equal(t, domain.EquipmentRef{BodyModel: "EOS R5", LensModel: "RF 50mm"}, rec.Equipment)
		assert.Equal(t, []string{"삼각대"}, rec.Accessories)
		assert.Nil(t, rec.ActualReturn)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows(rentalCols))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("NullDatesStayZero", func(t *testing.T) {
		rows := sqlmock.NewRows(rentalCols).
			AddRow(2, "하준", "010-2222-3333", "EOS R5", "", nil, nil, "", "미지정", "PENDING", "", nil, pq.StringArray{}, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int32(2)).
			WillReturnRows(rows)

		rec, err := repo.GetByID(ctx, 2)
		assert.NoError(t, err)
		assert.False(t, rec.HasValidDates())
	})
}

func TestRentalRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)

	rows := sqlmock.NewRows(rentalCols).
		AddRow(2, "하준", "010-2222-3333", "", "RF 50mm", time.Now(), time.Now(), "", "미지정", "PENDING", "", nil, pq.StringArray{}, time.Now(), time.Now()).
		AddRow(1, "민지", "010-1234-5678", "EOS R5", "", time.Now(), time.Now(), "", "김담당", "CONFIRMED", "", nil, pq.StringArray{}, time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM rentals ORDER BY id DESC").
		WillReturnRows(rows)

	recs, err := repo.List(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, recs, 2) {
		assert.Equal(t, int32(2), recs[0].ID, "newest first")
	}
}

func TestRentalRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		remark := "동방에서 수령"
		mock.ExpectExec("UPDATE rentals SET status").
			WithArgs(domain.RentalStatusConfirmed, "김담당", &remark, nil, int32(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, 1, repository.StatusUpdate{
			Status: domain.RentalStatusConfirmed,
			Staff:  "김담당",
			Remark: &remark,
		})
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE rentals SET status").
			WithArgs(domain.RentalStatusRejected, "김담당", nil, nil, int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, 99, repository.StatusUpdate{
			Status: domain.RentalStatusRejected,
			Staff:  "김담당",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEquipmentRepository_Replace(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewEquipmentRepository(db)

	items := []domain.EquipmentItem{
		{Model: "EOS R5", Kind: domain.KindBody, Category: "미러리스", Brand: "Canon", Format: domain.FormatFullFrame, Status: domain.EquipmentAvailable},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM equipment").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("INSERT INTO equipment").
		WithArgs("EOS R5", domain.KindBody, "미러리스", "Canon", domain.FormatFullFrame, domain.EquipmentAvailable).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.Replace(context.Background(), items)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewSettingsRepository(db)
	ctx := context.Background()

	t.Run("Get", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM settings WHERE key = \\$1").
			WithArgs(domain.SettingAdminPassword).
			WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("secret"))

		value, err := repo.Get(ctx, domain.SettingAdminPassword)
		assert.NoError(t, err)
		assert.Equal(t, "secret", value)
	})

	t.Run("GetMissing", func(t *testing.T) {
		mock.ExpectQuery("SELECT value FROM settings WHERE key = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		_, err := repo.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("SetUpserts", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO settings").
			WithArgs(domain.SettingAdminPassword, "new-secret").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Set(ctx, domain.SettingAdminPassword, "new-secret"))
	})
}
