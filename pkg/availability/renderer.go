package availability

import (
	"strings"
	"time"
)

type ReportRenderer interface {
	RenderReport(report Report) (string, error)
}

// TextReportRendererImpl renders a report as plain text, one block per
// day, with interval boundaries shown on the reference timezone's wall
// clock:
//
//	Tuesday - 2024-06-04
//
//	09:00 to 09:30 - Busy
//	09:30 to 17:00 - Available
type TextReportRendererImpl struct {
	reference *time.Location
}

func NewTextReportRenderer(reference *time.Location) *TextReportRendererImpl {
	return &TextReportRendererImpl{reference: reference}
}

func (r *TextReportRendererImpl) RenderReport(report Report) (string, error) {
	var b strings.Builder
	for _, day := range report.Days {
		b.WriteString("\n")
		b.WriteString(day.Weekday.String())
		b.WriteString(" - ")
		b.WriteString(day.Date.Format("2006-01-02"))
		b.WriteString("\n\n")
		for _, interval := range day.Intervals {
			b.WriteString(interval.Start.In(r.reference).Format("15:04"))
			b.WriteString(" to ")
			b.WriteString(interval.End.In(r.reference).Format("15:04"))
			b.WriteString(" - ")
			b.WriteString(interval.Status.String())
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
