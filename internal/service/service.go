package service

import (
	"context"
	"time"

	"camclub-backend/internal/calendar"
	"camclub-backend/internal/domain"
)

type CatalogService interface {
	ListBodies(ctx context.Context, category string) ([]domain.EquipmentItem, error)
	ListCategories(ctx context.Context) ([]string, error)
	// ListCompatibleLenses filters lenses for the given body model; an empty
	// model means a lens-only rental and returns every available lens.
	ListCompatibleLenses(ctx context.Context, bodyModel string) ([]domain.EquipmentItem, error)
}

// SubmitRequest is a member's rental application.
type SubmitRequest struct {
	Applicant   string   `json:"applicant" validate:"required"`
	Contact     string   `json:"contact" validate:"required"`
	BodyModel   string   `json:"body_model"`
	LensModel   string   `json:"lens_model"`
	StartDate   string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	DueDate     string   `json:"due_date" validate:"required,datetime=2006-01-02"`
	MeetingTime string   `json:"meeting_time"`
	Accessories []string `json:"accessories"`
}

type RentalService interface {
	Submit(ctx context.Context, req SubmitRequest) (*domain.RentalRecord, error)
	Approve(ctx context.Context, id int32, staff string, remark *string) (*domain.RentalRecord, error)
	Reject(ctx context.Context, id int32, staff, reason string) (*domain.RentalRecord, error)
	Restore(ctx context.Context, id int32, remark *string) (*domain.RentalRecord, error)
	CompleteReturn(ctx context.Context, id int32, remark *string, returnedAt time.Time) (*domain.RentalRecord, error)
	// MarkInProgress is the system transition applied when a confirmed
	// rental's start date arrives.
	MarkInProgress(ctx context.Context, id int32) (*domain.RentalRecord, error)
	// List returns rentals newest first, optionally filtered by status.
	List(ctx context.Context, status domain.RentalStatus) ([]domain.RentalRecord, error)
}

type CalendarService interface {
	// Month renders the booking grid. privileged must stay false for any
	// public caller; it gates staff remarks in tooltips.
	Month(ctx context.Context, year int, month time.Month, privileged bool) (calendar.Month, error)
}

type AdminService interface {
	// Login checks the staff password and returns a session token.
	Login(ctx context.Context, password string) (string, error)
	ChangePassword(ctx context.Context, newPassword string) error
	ReplaceEquipment(ctx context.Context, items []domain.EquipmentItem) error
	StaffMembers() []string
}

type EmailService interface {
	SendRequestSubmitted(ctx context.Context, rec *domain.RentalRecord) error
	SendReturnReminder(ctx context.Context, rec *domain.RentalRecord) error
}
