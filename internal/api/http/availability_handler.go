package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"courtside-backend/internal/domain"
	"courtside-backend/internal/service"
)

// AvailabilityHandler exposes the facility catalogue and the per-date
// availability query.
type AvailabilityHandler struct {
	availability service.AvailabilityService
}

func NewAvailabilityHandler(availability service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

func (h *AvailabilityHandler) GetDayFacilityWise(w http.ResponseWriter, r *http.Request) {
	facilityID, err := parseID(r.URL.Query().Get("facility_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, domain.NewValidationError("date is required"))
		return
	}

	availability, err := h.availability.GetFacilityAvailability(r.Context(), facilityID, date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, availability)
}

func (h *AvailabilityHandler) ListFacilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.availability.ListFacilities(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, facilities)
}

func (h *AvailabilityHandler) GetFacilitySchedules(w http.ResponseWriter, r *http.Request) {
	schedules, err := h.availability.GetFacilitySchedules(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, schedules)
}

func (h *AvailabilityHandler) CreateDayType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string   `json:"name"`
		Weekdays []string `json:"weekdays"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	dt := &domain.DayType{Name: req.Name, Weekdays: req.Weekdays}
	if err := h.availability.CreateDayType(r.Context(), dt); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dt)
}

func (h *AvailabilityHandler) DeleteDayType(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.availability.DeleteDayType(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// RegisterAvailabilityRoutes wires the facility endpoints onto the router
func RegisterAvailabilityRoutes(router *mux.Router, availability service.AvailabilityService, auth *AuthMiddleware) {
	h := NewAvailabilityHandler(availability)

	router.HandleFunc("/api/sports/day-facility-wise", h.GetDayFacilityWise).Methods("GET")
	router.HandleFunc("/api/sports/facilities", h.ListFacilities).Methods("GET")
	router.HandleFunc("/api/sports/schedules", h.GetFacilitySchedules).Methods("GET")

	router.HandleFunc("/api/sports/day-types", auth.RequireAdmin(h.CreateDayType)).Methods("POST")
	router.HandleFunc("/api/sports/day-types/{id}", auth.RequireAdmin(h.DeleteDayType)).Methods("DELETE")
}
