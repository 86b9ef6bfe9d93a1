package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"camclub-backend/internal/domain"
)

func (h *Handler) publicCalendar(w http.ResponseWriter, r *http.Request) {
	h.renderCalendar(w, r, false)
}

func (h *Handler) staffCalendar(w http.ResponseWriter, r *http.Request) {
	h.renderCalendar(w, r, true)
}

func (h *Handler) renderCalendar(w http.ResponseWriter, r *http.Request, privileged bool) {
	vars := mux.Vars(r)
	year, _ := strconv.Atoi(vars["year"])
	month, _ := strconv.Atoi(vars["month"])
	if month < 1 || month > 12 || year < 2000 || year > 2200 {
		writeError(w, domain.NewValidationError("month", "out of range"))
		return
	}

	grid, err := h.calendar.Month(r.Context(), year, time.Month(month), privileged)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, grid)
}
