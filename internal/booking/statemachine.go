package booking

import (
	"fmt"
	"time"

	"camclub-backend/internal/domain"
)

// RejectPrefix marks rejection reasons apart from approval remarks in the
// shared remark field.
const RejectPrefix = "[반려]"

// Transition describes one requested status change.
type Transition struct {
	Status       domain.RentalStatus
	Staff        string
	Remark       *string    // nil keeps the record's current remark
	ActualReturn *time.Time // required when Status is RETURNED
}

// allowed enumerates the legal status changes. Confirmed->InProgress is the
// system transition applied when the start date arrives; the rest are
// staff actions. Rejected and Returned are terminal.
var allowed = map[domain.RentalStatus][]domain.RentalStatus{
	domain.RentalStatusPending: {
		domain.RentalStatusConfirmed,
		domain.RentalStatusRejected,
	},
	domain.RentalStatusConfirmed: {
		domain.RentalStatusPending,
		domain.RentalStatusInProgress,
		domain.RentalStatusReturned,
	},
	domain.RentalStatusInProgress: {
		domain.RentalStatusReturned,
	},
}

// CanTransition reports whether from -> to is a legal change. Unknown
// statuses have no outgoing transitions, so malformed records are refused
// rather than crashing the caller.
func CanTransition(from, to domain.RentalStatus) bool {
	for _, next := range allowed[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Apply validates the transition against rec and returns the updated record.
// rec is taken by value; the caller persists the result and must re-read the
// store afterwards (writes invalidate any cached snapshot).
func Apply(rec domain.RentalRecord, t Transition) (domain.RentalRecord, error) {
	if !CanTransition(rec.Status, t.Status) {
		return rec, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, rec.Status, t.Status)
	}

	if t.Staff != "" {
		rec.Staff = t.Staff
	}
	remark := rec.Remark
	if t.Remark != nil {
		remark = *t.Remark
	}

	switch t.Status {
	case domain.RentalStatusConfirmed:
		if rec.Staff == "" || rec.Staff == domain.DefaultStaff {
			return rec, domain.NewValidationError("staff", "a staff member must be assigned to confirm a rental")
		}
	case domain.RentalStatusRejected:
		remark = fmt.Sprintf("%s %s", RejectPrefix, remark)
	case domain.RentalStatusReturned:
		if t.ActualReturn == nil {
			return rec, domain.NewValidationError("actual_return", "return time is required to close a rental")
		}
		ret := *t.ActualReturn
		rec.ActualReturn = &ret
	}

	rec.Remark = remark
	rec.Status = t.Status
	return rec, nil
}
