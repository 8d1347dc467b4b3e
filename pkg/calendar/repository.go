package calendar

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/freebusy/freebusy/internal/config"
	log "github.com/sirupsen/logrus"
)

// EventStore is the locally-owned sqlite event cache. It is both the
// event source for the availability engine and the target of the
// Google importer.
type EventStore interface {
	EventSource
	CalendarLister
	EnsureCalendar(ctx context.Context, title string) (int64, error)
	StoreEvents(ctx context.Context, calendarID int64, events []RawEvent) error
}

type EventStoreImpl struct {
	db      *sql.DB
	showAll bool
	ids     []int64
}

func NewEventStore(db *sql.DB, cfg config.Calendars) *EventStoreImpl {
	return &EventStoreImpl{db: db, showAll: cfg.ShowAll, ids: cfg.IDs}
}

// FetchEvents returns every stored event whose interval intersects
// [from, to). When a calendar id filter is configured it is applied
// here; the engine downstream never filters by calendar.
func (s *EventStoreImpl) FetchEvents(ctx context.Context, from time.Time, to time.Time) ([]RawEvent, error) {
	query := `
		SELECT calendar_id, start_seconds, end_seconds, timezone, title
		FROM calendar_item
		WHERE start_seconds < ? AND end_seconds > ?`
	args := []interface{}{ToAnchorSeconds(to), ToAnchorSeconds(from)}

	if !s.showAll {
		if len(s.ids) == 0 {
			return nil, nil
		}
		placeholders := make([]string, len(s.ids))
		for i, id := range s.ids {
			placeholders[i] = "?"
			args = append(args, id)
		}
		query += " AND calendar_id IN (" + strings.Join(placeholders, ", ") + ")"
	}
	query += " ORDER BY start_seconds"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("could not query events: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var events []RawEvent
	for rows.Next() {
		var event RawEvent
		if err := rows.Scan(&event.CalendarID, &event.StartSeconds, &event.EndSeconds, &event.Timezone, &event.Title); err != nil {
			err := fmt.Errorf("could not scan event row: %w", err)
			log.Error(err)
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("failed reading event rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return events, nil
}

func (s *EventStoreImpl) ListCalendars(ctx context.Context) ([]CalendarInfo, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, title FROM calendar ORDER BY id")
	if err != nil {
		err := fmt.Errorf("could not query calendars: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var calendars []CalendarInfo
	for rows.Next() {
		var info CalendarInfo
		if err := rows.Scan(&info.ID, &info.Title); err != nil {
			err := fmt.Errorf("could not scan calendar row: %w", err)
			log.Error(err)
			return nil, err
		}
		calendars = append(calendars, info)
	}
	if err := rows.Err(); err != nil {
		err := fmt.Errorf("failed reading calendar rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return calendars, nil
}

// EnsureCalendar returns the id of the calendar with the given title,
// creating it if it does not exist yet.
func (s *EventStoreImpl) EnsureCalendar(ctx context.Context, title string) (int64, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id FROM calendar WHERE title = ?", title)
	var id int64
	err := row.Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		err := fmt.Errorf("could not look up calendar %q: %w", title, err)
		log.Error(err)
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, "INSERT INTO calendar (title) VALUES (?)", title)
	if err != nil {
		err := fmt.Errorf("could not create calendar %q: %w", title, err)
		log.Error(err)
		return 0, err
	}
	return result.LastInsertId()
}

// StoreEvents replaces the stored events of the given calendar with the
// provided set. The importer calls this with a full fetched range.
func (s *EventStoreImpl) StoreEvents(ctx context.Context, calendarID int64, events []RawEvent) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM calendar_item WHERE calendar_id = ?", calendarID); err != nil {
		err := fmt.Errorf("could not clear calendar %d: %w", calendarID, err)
		log.Error(err)
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO calendar_item (calendar_id, start_seconds, end_seconds, timezone, title) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		err := fmt.Errorf("could not prepare insert: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	for _, event := range events {
		if _, err := stmt.ExecContext(ctx, calendarID, event.StartSeconds, event.EndSeconds, event.Timezone, event.Title); err != nil {
			err := fmt.Errorf("could not store event %q: %w", event.Title, err)
			log.Error(err)
			return err
		}
	}

	return tx.Commit()
}
