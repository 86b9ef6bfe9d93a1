package http

import "net/http"

func (h *Handler) listBodies(w http.ResponseWriter, r *http.Request) {
	bodies, err := h.catalog.ListBodies(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bodies)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

// listLenses returns lenses compatible with ?body=<model>, or every
// available lens when no body is given.
func (h *Handler) listLenses(w http.ResponseWriter, r *http.Request) {
	lenses, err := h.catalog.ListCompatibleLenses(r.Context(), r.URL.Query().Get("body"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lenses)
}
