package availability

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/freebusy/freebusy/internal/rest"
)

type IntervalDTO struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Status string `json:"status"`
}

type DayScheduleDTO struct {
	Date      string        `json:"date"`
	Weekday   string        `json:"weekday"`
	Intervals []IntervalDTO `json:"intervals"`
}

type ReportDTO struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generatedAt"`
	Days        []DayScheduleDTO `json:"days"`
}

type EventDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Title string `json:"title"`
}

type DayEventsDTO struct {
	Date    string     `json:"date"`
	Weekday string     `json:"weekday"`
	Events  []EventDTO `json:"events"`
}

type ScheduleDTO struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Days        []DayEventsDTO `json:"days"`
}

type Handler struct {
	service          Service
	reportRenderer   ReportRenderer
	scheduleRenderer ScheduleRenderer
	reference        *time.Location
}

func NewHandler(service Service, reportRenderer ReportRenderer, scheduleRenderer ScheduleRenderer, reference *time.Location) *Handler {
	return &Handler{service, reportRenderer, scheduleRenderer, reference}
}

func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.BuildReport(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Failed to build availability report",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("X-Report-Id", report.ID)

	if r.Header.Get("Accept") == "text/plain" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		text, err := h.reportRenderer.RenderReport(report)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(text)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(h.reportToDTO(report)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.service.BuildSchedule(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Failed to build schedule",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("X-Report-Id", schedule.ID)

	if r.Header.Get("Accept") == "text/plain" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		text, err := h.scheduleRenderer.RenderSchedule(schedule)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(text)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(h.scheduleToDTO(schedule)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) reportToDTO(report Report) ReportDTO {
	days := make([]DayScheduleDTO, 0, len(report.Days))
	for _, day := range report.Days {
		dayDTO := DayScheduleDTO{
			Date:      day.Date.Format("2006-01-02"),
			Weekday:   day.Weekday.String(),
			Intervals: make([]IntervalDTO, 0, len(day.Intervals)),
		}
		for _, interval := range day.Intervals {
			dayDTO.Intervals = append(dayDTO.Intervals, IntervalDTO{
				Start:  interval.Start.In(h.reference).Format("15:04"),
				End:    interval.End.In(h.reference).Format("15:04"),
				Status: interval.Status.String(),
			})
		}
		days = append(days, dayDTO)
	}
	return ReportDTO{ID: report.ID, GeneratedAt: report.GeneratedAt, Days: days}
}

func (h *Handler) scheduleToDTO(schedule Schedule) ScheduleDTO {
	days := make([]DayEventsDTO, 0, len(schedule.Days))
	for _, day := range schedule.Days {
		dayDTO := DayEventsDTO{
			Date:    day.Date.Format("2006-01-02"),
			Weekday: day.Weekday.String(),
			Events:  make([]EventDTO, 0, len(day.Events)),
		}
		for _, event := range day.Events {
			dayDTO.Events = append(dayDTO.Events, EventDTO{
				Start: event.Start.In(event.Location).Format("15:04"),
				End:   event.End.In(event.Location).Format("15:04"),
				Title: event.Title,
			})
		}
		days = append(days, dayDTO)
	}
	return ScheduleDTO{ID: schedule.ID, GeneratedAt: schedule.GeneratedAt, Days: days}
}
