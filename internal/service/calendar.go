package service

import (
	"context"
	"time"

	"camclub-backend/internal/calendar"
	"camclub-backend/internal/logger"
	"camclub-backend/internal/repository"
)

type calendarService struct {
	rentalRepo repository.RentalRepository
}

func NewCalendarService(rentalRepo repository.RentalRepository) CalendarService {
	return &calendarService{rentalRepo: rentalRepo}
}

// Month renders the grid. A store failure degrades to an empty calendar:
// members still get a page, and the error is logged rather than surfaced.
func (s *calendarService) Month(ctx context.Context, year int, month time.Month, privileged bool) (calendar.Month, error) {
	records, err := s.rentalRepo.List(ctx)
	if err != nil {
		logger.Warn("Rendering empty calendar, store read failed", "year", year, "month", int(month), "error", err)
		records = nil
	}
	return calendar.Render(records, year, month, privileged), nil
}
