package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Availability report and schedule listing
	r.HandleFunc("/api/availability", deps.AvailabilityHandler.GetAvailability).Methods("GET")
	r.HandleFunc("/api/schedule", deps.AvailabilityHandler.GetSchedule).Methods("GET")

	// Calendars in the local store
	r.HandleFunc("/api/calendars", deps.CalendarHandler.ListCalendars).Methods("GET")
}
