package jobs

import (
	"context"
	"time"

	"camclub-backend/internal/domain"
	"camclub-backend/internal/logger"
)

// MarkRentalsInProgress moves confirmed rentals whose start date has arrived
// into IN_PROGRESS
func (jr *JobRunner) MarkRentalsInProgress() {
	jr.runWithRecovery("MarkRentalsInProgress", func() {
		ctx := context.Background()
		today := truncateToDay(time.Now())

		rentals, err := jr.services.Rental.List(ctx, domain.RentalStatusConfirmed)
		if err != nil {
			logger.Error("Failed to list confirmed rentals", "error", err)
			return
		}

		count := 0
		for _, rental := range rentals {
			if !rental.HasValidDates() || truncateToDay(rental.StartDate).After(today) {
				continue
			}
			if _, err := jr.services.Rental.MarkInProgress(ctx, rental.ID); err != nil {
				logger.Error("Failed to mark rental in progress",
					"rental_id", rental.ID, "error", err)
				continue
			}
			logger.Debug("Marked rental in progress",
				"rental_id", rental.ID,
				"applicant", rental.Applicant,
				"start_date", rental.StartDate.Format("2006-01-02"))
			count++
		}

		logger.Info("Marked rentals in progress", "count", count)
	})
}

// SendReturnReminders emails the staff inbox about rentals due today or
// already overdue
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		today := truncateToDay(time.Now())

		rentals, err := jr.services.Rental.List(ctx, "")
		if err != nil {
			logger.Error("Failed to list rentals", "error", err)
			return
		}

		count := 0
		for _, rental := range rentals {
			if !rental.Status.IsActive() || !rental.HasValidDates() {
				continue
			}
			if truncateToDay(rental.DueDate).After(today) {
				continue
			}
			if err := jr.services.Email.SendReturnReminder(ctx, &rental); err != nil {
				logger.Error("Failed to send return reminder",
					"rental_id", rental.ID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Sent return reminders", "count", count)
	})
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
