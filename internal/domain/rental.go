package domain

import (
	"fmt"
	"time"
)

type RentalStatus string

const (
	RentalStatusPending    RentalStatus = "PENDING"
	RentalStatusConfirmed  RentalStatus = "CONFIRMED"
	RentalStatusInProgress RentalStatus = "IN_PROGRESS"
	RentalStatusRejected   RentalStatus = "REJECTED"
	RentalStatusReturned   RentalStatus = "RETURNED"
)

// IsActive reports whether a rental in this status still holds its equipment
// for conflict purposes. Unknown statuses count as inactive.
func (s RentalStatus) IsActive() bool {
	switch s {
	case RentalStatusPending, RentalStatusConfirmed, RentalStatusInProgress:
		return true
	}
	return false
}

// OnCalendar reports whether the rental appears on the public calendar.
// Pending requests are not committed bookings and stay hidden.
func (s RentalStatus) OnCalendar() bool {
	return s == RentalStatusConfirmed || s == RentalStatusInProgress
}

func (s RentalStatus) IsTerminal() bool {
	return s == RentalStatusRejected || s == RentalStatusReturned
}

// Display labels used by the legacy spreadsheet and the member-facing UI.
const (
	NoBodyLabel  = "바디없음"
	NoLensLabel  = "선택안함"
	DefaultStaff = "미지정"
)

// EquipmentRef identifies the equipment of a rental: a body, a lens, or both.
// It replaces the legacy composite "[body] + [lens]" string; exact model
// matching here avoids the substring false positives of the old format
// ("EOS R" matching inside "EOS R5").
type EquipmentRef struct {
	BodyModel string `json:"body_model,omitempty"`
	LensModel string `json:"lens_model,omitempty"`
}

func (r EquipmentRef) IsEmpty() bool {
	return r.BodyModel == "" && r.LensModel == ""
}

// References reports whether the ref includes the given model exactly.
func (r EquipmentRef) References(model string) bool {
	return model != "" && (r.BodyModel == model || r.LensModel == model)
}

// Models returns the selected model names, body first.
func (r EquipmentRef) Models() []string {
	var models []string
	if r.BodyModel != "" {
		models = append(models, r.BodyModel)
	}
	if r.LensModel != "" {
		models = append(models, r.LensModel)
	}
	return models
}

// String renders the descriptor in the legacy display form.
func (r EquipmentRef) String() string {
	body, lens := r.BodyModel, r.LensModel
	if body == "" {
		body = NoBodyLabel
	}
	if lens == "" {
		lens = NoLensLabel
	}
	return fmt.Sprintf("[%s] + [%s]", body, lens)
}

// RentalRecord is one rental request over its whole lifecycle. Records are
// never deleted; terminal states stay for history. StartDate and DueDate are
// date-only values; a zero time means the stored date was malformed and the
// record must be skipped by date-based scans rather than aborting them.
type RentalRecord struct {
	ID           int32        `json:"id"`
	Applicant    string       `json:"applicant"`
	Contact      string       `json:"contact"`
	Equipment    EquipmentRef `json:"equipment"`
	StartDate    time.Time    `json:"start_date"`
	DueDate      time.Time    `json:"due_date"`
	MeetingTime  string       `json:"meeting_time"`
	Staff        string       `json:"staff"`
	Status       RentalStatus `json:"status"`
	Remark       string       `json:"remark,omitempty"`
	ActualReturn *time.Time   `json:"actual_return,omitempty"`
	Accessories  []string     `json:"accessories"`
	SubmittedAt  time.Time    `json:"submitted_at"`
	CreatedOn    time.Time    `json:"created_on"`
}

// HasValidDates reports whether both range endpoints parsed.
func (r *RentalRecord) HasValidDates() bool {
	return !r.StartDate.IsZero() && !r.DueDate.IsZero()
}

// Settings keys. The only one the application reads today.
const SettingAdminPassword = "admin_password"
