package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"camclub-backend/internal/booking"
	"camclub-backend/internal/catalog"
	"camclub-backend/internal/domain"
	"camclub-backend/internal/logger"
	"camclub-backend/internal/repository"
)

// maxRentalDays bounds the rental window: due date at most a week after the
// start.
const maxRentalDays = 7

const dateLayout = "2006-01-02"

type rentalService struct {
	rentalRepo    repository.RentalRepository
	equipmentRepo repository.EquipmentRepository
	emailSvc      EmailService
	validate      *validator.Validate
	now           func() time.Time
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	equipmentRepo repository.EquipmentRepository,
	emailSvc EmailService,
) RentalService {
	return &rentalService{
		rentalRepo:    rentalRepo,
		equipmentRepo: equipmentRepo,
		emailSvc:      emailSvc,
		validate:      validator.New(),
		now:           time.Now,
	}
}

func (s *rentalService) Submit(ctx context.Context, req SubmitRequest) (*domain.RentalRecord, error) {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return nil, domain.NewValidationError(strings.ToLower(fe.Field()), "missing or malformed")
		}
		return nil, err
	}

	ref := domain.EquipmentRef{
		BodyModel: strings.TrimSpace(req.BodyModel),
		LensModel: strings.TrimSpace(req.LensModel),
	}
	if ref.IsEmpty() {
		return nil, domain.NewValidationError("equipment", "select at least a body or a lens")
	}

	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return nil, domain.NewValidationError("start_date", "must be YYYY-MM-DD")
	}
	due, err := time.Parse(dateLayout, req.DueDate)
	if err != nil {
		return nil, domain.NewValidationError("due_date", "must be YYYY-MM-DD")
	}
	if due.Before(start) {
		return nil, domain.NewValidationError("due_date", "must not be before the start date")
	}
	if due.After(start.AddDate(0, 0, maxRentalDays)) {
		return nil, domain.NewValidationError("due_date", fmt.Sprintf("rental period is at most %d days", maxRentalDays))
	}

	if err := s.checkSelection(ctx, ref); err != nil {
		return nil, err
	}

	// Conflict check over the current snapshot. Two overlapping submissions
	// racing past this point can both land; see the repository notes.
	records, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if model := booking.FirstConflict(ref, start, due, records); model != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrConflict, model)
	}

	rec := &domain.RentalRecord{
		Applicant:   req.Applicant,
		Contact:     req.Contact,
		Equipment:   ref,
		StartDate:   start,
		DueDate:     due,
		MeetingTime: req.MeetingTime,
		Staff:       domain.DefaultStaff,
		Status:      domain.RentalStatusPending,
		Accessories: req.Accessories,
		SubmittedAt: s.now(),
	}
	if err := s.rentalRepo.Create(ctx, rec); err != nil {
		return nil, err
	}

	if err := s.emailSvc.SendRequestSubmitted(ctx, rec); err != nil {
		logger.Warn("Failed to notify staff of new request", "rental_id", rec.ID, "error", err)
	}
	return rec, nil
}

// checkSelection verifies the selected models against the catalog: the body
// must exist and be available, and the lens must be compatible with it.
func (s *rentalService) checkSelection(ctx context.Context, ref domain.EquipmentRef) error {
	items, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return err
	}

	var body *domain.EquipmentItem
	if ref.BodyModel != "" {
		if body = catalog.FindBody(items, ref.BodyModel); body == nil {
			return domain.NewValidationError("body_model", "unknown body")
		}
		if !body.IsAvailable() {
			return domain.NewValidationError("body_model", "body is not available for rental")
		}
	}
	if ref.LensModel != "" {
		for _, lens := range catalog.CompatibleLenses(items, body) {
			if lens.Model == ref.LensModel {
				return nil
			}
		}
		return domain.NewValidationError("lens_model", "lens is unknown, unavailable or incompatible with the selected body")
	}
	return nil
}

func (s *rentalService) Approve(ctx context.Context, id int32, staff string, remark *string) (*domain.RentalRecord, error) {
	return s.apply(ctx, id, booking.Transition{
		Status: domain.RentalStatusConfirmed,
		Staff:  staff,
		Remark: remark,
	})
}

func (s *rentalService) Reject(ctx context.Context, id int32, staff, reason string) (*domain.RentalRecord, error) {
	return s.apply(ctx, id, booking.Transition{
		Status: domain.RentalStatusRejected,
		Staff:  staff,
		Remark: &reason,
	})
}

func (s *rentalService) Restore(ctx context.Context, id int32, remark *string) (*domain.RentalRecord, error) {
	return s.apply(ctx, id, booking.Transition{
		Status: domain.RentalStatusPending,
		Remark: remark,
	})
}

func (s *rentalService) CompleteReturn(ctx context.Context, id int32, remark *string, returnedAt time.Time) (*domain.RentalRecord, error) {
	return s.apply(ctx, id, booking.Transition{
		Status:       domain.RentalStatusReturned,
		Remark:       remark,
		ActualReturn: &returnedAt,
	})
}

func (s *rentalService) MarkInProgress(ctx context.Context, id int32) (*domain.RentalRecord, error) {
	return s.apply(ctx, id, booking.Transition{Status: domain.RentalStatusInProgress})
}

func (s *rentalService) List(ctx context.Context, status domain.RentalStatus) ([]domain.RentalRecord, error) {
	records, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return records, nil
	}
	var filtered []domain.RentalRecord
	for _, rec := range records {
		if rec.Status == status {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

func (s *rentalService) apply(ctx context.Context, id int32, t booking.Transition) (*domain.RentalRecord, error) {
	rec, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := booking.Apply(*rec, t)
	if err != nil {
		return nil, err
	}

	upd := repository.StatusUpdate{
		Status: updated.Status,
		Staff:  updated.Staff,
		Remark: &updated.Remark,
	}
	if updated.Status == domain.RentalStatusReturned {
		upd.ActualReturn = updated.ActualReturn
	}
	if err := s.rentalRepo.UpdateStatus(ctx, id, upd); err != nil {
		return nil, err
	}
	return &updated, nil
}
