package domain

import "time"

// WeekWindow is a Sunday-aligned 7-day reporting window. Start is always
// a Sunday, End is Start plus six days, both at midnight UTC.
type WeekWindow struct {
	Start time.Time
	End   time.Time
}

func (w WeekWindow) StartISO() string {
	return w.Start.Format("2006-01-02")
}

func (w WeekWindow) EndISO() string {
	return w.End.Format("2006-01-02")
}

// DayIndex maps a date to its slot in a DayVector (0 = Sunday .. 6 = Saturday).
func DayIndex(date time.Time) int {
	return int(date.Weekday())
}
