// Package http exposes the JSON API: the public member surface (catalog,
// calendar, submissions) and the token-guarded staff surface.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"camclub-backend/internal/security"
	"camclub-backend/internal/service"
)

type Handler struct {
	catalog  service.CatalogService
	rentals  service.RentalService
	calendar service.CalendarService
	admin    service.AdminService
	tokens   security.TokenManager
}

func NewHandler(
	catalog service.CatalogService,
	rentals service.RentalService,
	calendar service.CalendarService,
	admin service.AdminService,
	tokens security.TokenManager,
) *Handler {
	return &Handler{
		catalog:  catalog,
		rentals:  rentals,
		calendar: calendar,
		admin:    admin,
		tokens:   tokens,
	}
}

func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogging)

	api := r.PathPrefix("/api").Subrouter()

	// Public surface. The calendar here always renders non-privileged.
	api.HandleFunc("/equipment/bodies", h.listBodies).Methods(http.MethodGet)
	api.HandleFunc("/equipment/categories", h.listCategories).Methods(http.MethodGet)
	api.HandleFunc("/equipment/lenses", h.listLenses).Methods(http.MethodGet)
	api.HandleFunc("/calendar/{year:[0-9]+}/{month:[0-9]+}", h.publicCalendar).Methods(http.MethodGet)
	api.HandleFunc("/rentals", h.submitRental).Methods(http.MethodPost)
	api.HandleFunc("/admin/login", h.login).Methods(http.MethodPost)

	// Staff surface.
	api.HandleFunc("/admin/rentals", h.requireStaff(h.listRentals)).Methods(http.MethodGet)
	api.HandleFunc("/admin/rentals/{id:[0-9]+}/approve", h.requireStaff(h.approveRental)).Methods(http.MethodPost)
	api.HandleFunc("/admin/rentals/{id:[0-9]+}/reject", h.requireStaff(h.rejectRental)).Methods(http.MethodPost)
	api.HandleFunc("/admin/rentals/{id:[0-9]+}/restore", h.requireStaff(h.restoreRental)).Methods(http.MethodPost)
	api.HandleFunc("/admin/rentals/{id:[0-9]+}/return", h.requireStaff(h.returnRental)).Methods(http.MethodPost)
	api.HandleFunc("/admin/calendar/{year:[0-9]+}/{month:[0-9]+}", h.requireStaff(h.staffCalendar)).Methods(http.MethodGet)
	api.HandleFunc("/admin/equipment", h.requireStaff(h.replaceEquipment)).Methods(http.MethodPut)
	api.HandleFunc("/admin/password", h.requireStaff(h.changePassword)).Methods(http.MethodPut)
	api.HandleFunc("/admin/staff", h.requireStaff(h.listStaff)).Methods(http.MethodGet)

	return r
}
