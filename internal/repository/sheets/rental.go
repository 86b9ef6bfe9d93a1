package sheets

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"camclub-backend/internal/domain"
	"camclub-backend/internal/repository"
)

// Rentals column order (A..L):
// id, 신청자, 연락처, 장비명, 대여시작일, 반납예정일, 대면시간, 담당자, 상태, 비고, 실제반납일, 전체이력저장
const (
	colID = iota
	colApplicant
	colContact
	colEquipment
	colStartDate
	colDueDate
	colMeetingTime
	colStaff
	colStatus
	colRemark
	colActualReturn
	colHistory
)

type rentalRepository struct {
	c *client
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.RentalRecord, error) {
	rows, err := r.c.getValues(ctx, rentalsSheet+"!A2:L")
	if err != nil {
		return nil, err
	}

	recs := make([]domain.RentalRecord, 0, len(rows))
	for _, row := range rows {
		if rec, ok := parseRow(row); ok {
			recs = append(recs, rec)
		}
	}
	// The sheet is append-ordered; callers expect newest first.
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID > recs[j].ID })
	return recs, nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.RentalRecord, error) {
	recs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range recs {
		if recs[i].ID == id {
			return &recs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *rentalRepository) Create(ctx context.Context, rec *domain.RentalRecord) error {
	recs, err := r.List(ctx)
	if err != nil {
		return err
	}
	var maxID int32
	for i := range recs {
		if recs[i].ID > maxID {
			maxID = recs[i].ID
		}
	}
	rec.ID = maxID + 1
	rec.CreatedOn = time.Now()

	row := []interface{}{
		strconv.Itoa(int(rec.ID)),
		rec.Applicant,
		rec.Contact,
		formatDescriptor(rec.Equipment),
		rec.StartDate.Format(dateLayout),
		rec.DueDate.Format(dateLayout),
		rec.MeetingTime,
		rec.Staff,
		formatStatus(rec.Status),
		rec.Remark,
		"",
		formatHistoryBlob(rec.Accessories, rec.SubmittedAt),
	}
	return r.c.appendRow(ctx, rentalsSheet, row)
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id int32, upd repository.StatusUpdate) error {
	rowNum, rec, err := r.findRow(ctx, id)
	if err != nil {
		return err
	}

	// Columns H..K hold staff, status, remark and the return timestamp; the
	// whole block is written in one call. Nil optionals keep stored values.
	remark := rec.Remark
	if upd.Remark != nil {
		remark = *upd.Remark
	}
	actualReturn := ""
	if rec.ActualReturn != nil {
		actualReturn = rec.ActualReturn.Format(timestampLayout)
	}
	if upd.ActualReturn != nil {
		actualReturn = upd.ActualReturn.Format(timestampLayout)
	}

	writeRange := fmt.Sprintf("%s!H%d:K%d", rentalsSheet, rowNum, rowNum)
	return r.c.updateValues(ctx, writeRange, [][]interface{}{{
		upd.Staff,
		formatStatus(upd.Status),
		remark,
		actualReturn,
	}})
}

// findRow locates the sheet row (1-based, header included) holding id.
func (r *rentalRepository) findRow(ctx context.Context, id int32) (int, *domain.RentalRecord, error) {
	rows, err := r.c.getValues(ctx, rentalsSheet+"!A2:L")
	if err != nil {
		return 0, nil, err
	}
	want := strconv.Itoa(int(id))
	for i, row := range rows {
		if cell(row, colID) == want {
			rec, _ := parseRow(row)
			return i + 2, &rec, nil
		}
	}
	return 0, nil, domain.ErrNotFound
}

func parseRow(row []interface{}) (domain.RentalRecord, bool) {
	id, err := strconv.Atoi(cell(row, colID))
	if err != nil || id <= 0 {
		return domain.RentalRecord{}, false
	}

	rec := domain.RentalRecord{
		ID:          int32(id),
		Applicant:   cell(row, colApplicant),
		Contact:     cell(row, colContact),
		Equipment:   parseDescriptor(cell(row, colEquipment)),
		StartDate:   parseDate(cell(row, colStartDate)),
		DueDate:     parseDate(cell(row, colDueDate)),
		MeetingTime: cell(row, colMeetingTime),
		Staff:       cell(row, colStaff),
		Status:      parseStatus(cell(row, colStatus)),
		Remark:      cell(row, colRemark),
	}
	if raw := cell(row, colActualReturn); raw != "" {
		if t := parseDate(raw); !t.IsZero() {
			rec.ActualReturn = &t
		}
	}
	rec.Accessories, rec.SubmittedAt = parseHistoryBlob(cell(row, colHistory))
	rec.CreatedOn = rec.SubmittedAt
	return rec, true
}
