package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/freebusy/freebusy/internal/config"
	"github.com/freebusy/freebusy/internal/utils"
	"github.com/freebusy/freebusy/pkg/calendar"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	BuildReport(ctx context.Context) (Report, error)
	BuildSchedule(ctx context.Context) (Schedule, error)
}

// ServiceImpl runs the pipeline: fetch raw events for the lookahead
// range, normalize, generate day windows, compute each day's intervals.
// Every run owns its own working set; two runs with the same source
// snapshot and the same clock produce identical days.
type ServiceImpl struct {
	source calendar.EventSource
	cfg    config.Application
	clock  utils.Clock
}

func NewService(source calendar.EventSource, cfg config.Application, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{source: source, cfg: cfg, clock: clock}
}

func (s *ServiceImpl) BuildReport(ctx context.Context) (Report, error) {
	now := s.clock.Now()
	windows, events, err := s.prepare(ctx, now)
	if err != nil {
		return Report{}, err
	}

	days := make([]DaySchedule, 0, len(windows))
	for _, win := range windows {
		days = append(days, DaySchedule{
			Date:      win.Date,
			Weekday:   win.Weekday,
			Intervals: ComputeDay(win, events, s.cfg.Availability.StrictWindow),
		})
	}

	report := Report{ID: uuid.NewString(), GeneratedAt: now, Days: days}
	log.Infof("availability report %s covers %d days with %d events", report.ID, len(days), len(events))
	return report, nil
}

func (s *ServiceImpl) BuildSchedule(ctx context.Context) (Schedule, error) {
	now := s.clock.Now()
	windows, events, err := s.prepare(ctx, now)
	if err != nil {
		return Schedule{}, err
	}

	days := make([]DayEvents, 0, len(windows))
	for _, win := range windows {
		day := DayEvents{Date: win.Date, Weekday: win.Weekday}
		for _, e := range events {
			if !e.Start.Before(win.DayStart()) && e.Start.Before(win.DayEnd()) {
				day.Events = append(day.Events, e)
			}
		}
		days = append(days, day)
	}

	schedule := Schedule{ID: uuid.NewString(), GeneratedAt: now, Days: days}
	log.Infof("schedule %s covers %d days with %d events", schedule.ID, len(days), len(events))
	return schedule, nil
}

func (s *ServiceImpl) prepare(ctx context.Context, now time.Time) ([]DayWindow, []NormalizedEvent, error) {
	av := s.cfg.Availability

	queryEnd := now.Add(time.Duration(av.LookaheadDays) * 24 * time.Hour)
	raw, err := s.source.FetchEvents(ctx, now, queryEnd)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	events := Normalize(raw, s.cfg.DefaultLocation())
	windows := GenerateDayWindows(now, av.LookaheadDays, av.WorkStartHour, av.WorkEndHour, s.cfg.ReferenceLocation())
	return windows, events, nil
}
