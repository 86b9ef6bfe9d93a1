package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"camclub-backend/internal/domain"
	"camclub-backend/internal/service"
)

func (h *Handler) submitRental(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	rec, err := h.rentals.Submit(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *Handler) listRentals(w http.ResponseWriter, r *http.Request) {
	status := domain.RentalStatus(r.URL.Query().Get("status"))
	recs, err := h.rentals.List(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

type triageRequest struct {
	Staff  string  `json:"staff"`
	Reason string  `json:"reason"`
	Remark *string `json:"remark"`
}

func (h *Handler) approveRental(w http.ResponseWriter, r *http.Request) {
	var req triageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rec, err := h.rentals.Approve(r.Context(), rentalID(r), req.Staff, req.Remark)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) rejectRental(w http.ResponseWriter, r *http.Request) {
	var req triageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rec, err := h.rentals.Reject(r.Context(), rentalID(r), req.Staff, req.Reason)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) restoreRental(w http.ResponseWriter, r *http.Request) {
	var req triageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rec, err := h.rentals.Restore(r.Context(), rentalID(r), req.Remark)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// returnRental stamps the return with the server clock; staff record returns
// as they happen.
func (h *Handler) returnRental(w http.ResponseWriter, r *http.Request) {
	var req triageRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rec, err := h.rentals.CompleteReturn(r.Context(), rentalID(r), req.Remark, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func rentalID(r *http.Request) int32 {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return int32(id)
}
