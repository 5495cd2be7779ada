package payroll

import (
	"time"

	"github.com/currency-covenant/amg-delivery-logger/pkg/models/domain"
)

// ResolveWeek turns an optional ISO date into the Sunday-aligned week
// containing it. Missing or unparseable input degrades to the week
// containing now; a bad date never fails a report request.
func ResolveWeek(raw string, now time.Time) domain.WeekWindow {
	day := now
	if raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			day = parsed
		}
	}

	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	start := day.AddDate(0, 0, -int(day.Weekday()))
	return domain.WeekWindow{
		Start: start,
		End:   start.AddDate(0, 0, 6),
	}
}
