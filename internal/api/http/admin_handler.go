package http

import (
	"net/http"

	"camclub-backend/internal/domain"
)

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	token, err := h.admin.Login(r.Context(), req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}

type changePasswordRequest struct {
	Password string `json:"password"`
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.admin.ChangePassword(r.Context(), req.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) replaceEquipment(w http.ResponseWriter, r *http.Request) {
	var items []domain.EquipmentItem
	if err := decodeBody(r, &items); err != nil {
		writeError(w, err)
		return
	}
	if err := h.admin.ReplaceEquipment(r.Context(), items); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": len(items)})
}

func (h *Handler) listStaff(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.admin.StaffMembers())
}
