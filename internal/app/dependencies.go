package app

import (
	"database/sql"

	"github.com/freebusy/freebusy/internal/config"
	"github.com/freebusy/freebusy/internal/utils"
	"github.com/freebusy/freebusy/pkg/availability"
	"github.com/freebusy/freebusy/pkg/calendar"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventStore      calendar.EventStore
	CalendarHandler *calendar.Handler

	AvailabilityService availability.Service
	ReportRenderer      availability.ReportRenderer
	ScheduleRenderer    availability.ScheduleRenderer
	AvailabilityHandler *availability.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventStore = calendar.NewEventStore(db, cfg.Calendars)
	deps.CalendarHandler = calendar.NewHandler(deps.EventStore)

	deps.Clock = &utils.SystemClock{}
	deps.AvailabilityService = availability.NewService(deps.EventStore, cfg, deps.Clock)
	deps.ReportRenderer = availability.NewTextReportRenderer(cfg.ReferenceLocation())
	deps.ScheduleRenderer = availability.NewTextScheduleRenderer()
	deps.AvailabilityHandler = availability.NewHandler(
		deps.AvailabilityService,
		deps.ReportRenderer,
		deps.ScheduleRenderer,
		cfg.ReferenceLocation(),
	)

	return deps
}
