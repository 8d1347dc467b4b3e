package availability

import (
	"strings"
)

type ScheduleRenderer interface {
	RenderSchedule(schedule Schedule) (string, error)
}

// TextScheduleRendererImpl renders the per-day event listing. Event
// times are shown on the wall clock of the zone each event was authored
// in; days without events read "(No Events)".
type TextScheduleRendererImpl struct {
}

func NewTextScheduleRenderer() *TextScheduleRendererImpl {
	return &TextScheduleRendererImpl{}
}

func (r *TextScheduleRendererImpl) RenderSchedule(schedule Schedule) (string, error) {
	var b strings.Builder
	for _, day := range schedule.Days {
		b.WriteString("\n")
		b.WriteString(day.Weekday.String())
		b.WriteString(" - ")
		b.WriteString(day.Date.Format("2006-01-02"))
		b.WriteString("\n\n")
		if len(day.Events) == 0 {
			b.WriteString("(No Events)\n")
			continue
		}
		for _, event := range day.Events {
			b.WriteString(event.Start.In(event.Location).Format("15:04"))
			b.WriteString(" - ")
			b.WriteString(event.End.In(event.Location).Format("15:04"))
			b.WriteString(" - ")
			b.WriteString(event.Title)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
