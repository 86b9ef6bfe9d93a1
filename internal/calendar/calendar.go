// Package calendar builds the month view of committed bookings. The grid is
// a pure projection of a record snapshot; rendering it twice for the same
// input yields the same output, so callers may re-render freely.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"camclub-backend/internal/domain"
)

// MaxEntriesPerDay caps how many bookings a day cell shows before collapsing
// the rest into an overflow count. Keeps dense weeks readable.
const MaxEntriesPerDay = 3

// palette cycles per day in record order, so colors are deterministic for a
// given store snapshot (newest-first).
var palette = [...]string{"#FF5252", "#448AFF", "#4CAF50", "#FFC107", "#9C27B0", "#00BCD4", "#E91E63"}

// Weekdays are the column headers, Sunday first.
var Weekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// Entry is one booking line inside a day cell.
type Entry struct {
	RentalID  int32  `json:"rental_id"`
	Applicant string `json:"applicant"`
	Equipment string `json:"equipment"`
	Color     string `json:"color"`
	Tooltip   string `json:"tooltip"`
}

// Day is one cell of the month grid. Leading and trailing cells outside the
// month have Day == 0 and no date.
type Day struct {
	Day           int     `json:"day"`
	Date          string  `json:"date,omitempty"`
	Entries       []Entry `json:"entries,omitempty"`
	Overflow      int     `json:"overflow,omitempty"`
	OverflowLabel string  `json:"overflow_label,omitempty"`
}

// Month is the rendered grid: len(Days) is always a multiple of 7 (35 or 42
// for every month whose first week is padded).
type Month struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Days  []Day    `json:"days"`
}

// Render builds the grid for one month. A record occupies every day D with
// start <= D <= due while its status is a committed one (confirmed or in
// progress); pending requests and terminal records never appear.
//
// privileged appends the internal staff remark to tooltips. The public
// calendar must never leak remarks, so every new call site defaults to false
// and only an authenticated staff view passes true.
func Render(records []domain.RentalRecord, year int, month time.Month, privileged bool) Month {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	lead := int(first.Weekday()) // Sunday == 0

	cells := lead + daysInMonth
	if rem := cells % 7; rem != 0 {
		cells += 7 - rem
	}

	m := Month{Year: year, Month: int(month), Days: make([]Day, cells)}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		cell := Day{Day: d, Date: date.Format("2006-01-02")}

		rank := 0
		for i := range records {
			r := &records[i]
			if !occupies(r, date) {
				continue
			}
			if rank < MaxEntriesPerDay {
				cell.Entries = append(cell.Entries, newEntry(r, rank, privileged))
			} else {
				cell.Overflow++
			}
			rank++
		}
		if cell.Overflow > 0 {
			cell.OverflowLabel = fmt.Sprintf("+%d건", cell.Overflow)
		}
		m.Days[lead+d-1] = cell
	}
	return m
}

func occupies(r *domain.RentalRecord, day time.Time) bool {
	if !r.Status.OnCalendar() || !r.HasValidDates() {
		return false
	}
	s := truncate(r.StartDate)
	e := truncate(r.DueDate)
	return !day.Before(s) && !day.After(e)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func newEntry(r *domain.RentalRecord, rank int, privileged bool) Entry {
	acc := "없음"
	if len(r.Accessories) > 0 {
		acc = strings.Join(r.Accessories, ", ")
	}
	tooltip := fmt.Sprintf("%s / %s / %s", r.Applicant, r.Equipment, acc)
	if privileged && r.Remark != "" {
		tooltip += " | 비고: " + r.Remark
	}
	return Entry{
		RentalID:  r.ID,
		Applicant: r.Applicant,
		Equipment: r.Equipment.String(),
		Color:     palette[rank%len(palette)],
		Tooltip:   tooltip,
	}
}
