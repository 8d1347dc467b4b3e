package google

import (
	"context"
	"fmt"
	"time"

	"github.com/freebusy/freebusy/internal/config"
	"github.com/freebusy/freebusy/pkg/calendar"
	log "github.com/sirupsen/logrus"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// CalendarClient is a read-only Google Calendar event source. It maps
// fetched events onto the store's raw schema so the engine and the
// importer see the same shape regardless of origin.
type CalendarClient struct {
	service    *gcal.Service
	calendarId string
}

func NewCalendarClient(ctx context.Context, cfg config.Google) (*CalendarClient, error) {
	oauthConfig := oauthConfig(cfg)

	token, err := tokenFromFile(cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("could not load token from %s (run the auth command first): %w", cfg.TokenFile, err)
	}

	service, err := gcal.NewService(ctx, option.WithHTTPClient(oauthConfig.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &CalendarClient{service: service, calendarId: cfg.CalendarId}, nil
}

// FetchEvents implements calendar.EventSource over the Google Calendar
// API. All-day entries (date only, no time of day) are skipped here;
// timed events longer than the all-day threshold are left for the
// normalizer to drop.
func (c *CalendarClient) FetchEvents(ctx context.Context, from time.Time, to time.Time) ([]calendar.RawEvent, error) {
	googleEvents, err := c.service.Events.List(c.calendarId).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		ShowDeleted(false).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		err := fmt.Errorf("unable to retrieve events from Google Calendar: %v", err)
		log.Error(err)
		return nil, err
	}

	events := make([]calendar.RawEvent, 0, len(googleEvents.Items))
	for _, item := range googleEvents.Items {
		if item.Start == nil || item.Start.DateTime == "" {
			log.Debugf("skipping all-day event %q", item.Summary)
			continue
		}

		startTime, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			log.Warnf("skipping event %q with unparseable start %q", item.Summary, item.Start.DateTime)
			continue
		}
		endTime, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			log.Warnf("skipping event %q with unparseable end %q", item.Summary, item.End.DateTime)
			continue
		}

		timezone := item.Start.TimeZone
		if timezone == "" {
			timezone = googleEvents.TimeZone
		}

		events = append(events, calendar.RawEvent{
			StartSeconds: calendar.ToAnchorSeconds(startTime),
			EndSeconds:   calendar.ToAnchorSeconds(endTime),
			Timezone:     timezone,
			Title:        item.Summary,
		})
	}

	return events, nil
}
