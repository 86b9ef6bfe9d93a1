// Package booking holds the pure booking rules: date-range conflict
// detection and the rental status state machine. Everything here computes
// over record snapshots handed in by the caller and performs no I/O.
package booking

import (
	"time"

	"camclub-backend/internal/domain"
)

// HasConflict reports whether the given equipment model is already held by an
// active rental somewhere in [start, due]. Both interval boundaries are
// inclusive: a rental due back on day X blocks a new one starting on day X,
// because handover within the same day is not guaranteed.
//
// Records in terminal statuses never conflict, and records whose stored dates
// failed to parse are skipped rather than failing the whole scan.
func HasConflict(model string, start, due time.Time, records []domain.RentalRecord) bool {
	for i := range records {
		r := &records[i]
		if !r.Status.IsActive() || !r.Equipment.References(model) {
			continue
		}
		if !r.HasValidDates() {
			continue
		}
		if overlaps(start, due, r.StartDate, r.DueDate) {
			return true
		}
	}
	return false
}

// overlaps is the closed-interval test: [s1,e1] and [s2,e2] touch or cross.
func overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !e1.Before(s2)
}

// FirstConflict returns the model of the first selected equipment that is
// unavailable in [start, due], or "" when every selection is free. Body and
// lens are checked independently; both must pass.
func FirstConflict(ref domain.EquipmentRef, start, due time.Time, records []domain.RentalRecord) string {
	for _, model := range ref.Models() {
		if HasConflict(model, start, due, records) {
			return model
		}
	}
	return ""
}
