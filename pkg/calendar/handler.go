package calendar

import (
	"encoding/json"
	"net/http"

	"github.com/freebusy/freebusy/internal/rest"
)

type CalendarItemDto struct {
	Id    int64  `json:"id"`
	Title string `json:"title"`
}

type Handler struct {
	lister CalendarLister
}

func NewHandler(lister CalendarLister) *Handler {
	return &Handler{lister}
}

func (h *Handler) ListCalendars(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	calendars, err := h.lister.ListCalendars(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Failed to list calendars",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	calendarItems := make([]CalendarItemDto, 0, len(calendars))
	for _, c := range calendars {
		calendarItems = append(calendarItems, CalendarItemDto{Id: c.ID, Title: c.Title})
	}

	if err := json.NewEncoder(w).Encode(calendarItems); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
