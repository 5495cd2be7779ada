package domain

import "time"

// Assignment associates a driver with one or more driver-number labels for
// a bounded (or open-ended) span of weeks. WeekEnd == nil means the
// assignment has not been closed out.
type Assignment struct {
	ID        string
	DriverID  string
	Numbers   []string
	WeekStart time.Time
	WeekEnd   *time.Time
}

// ActiveDuring reports whether the assignment's closed interval
// [WeekStart, WeekEnd or +inf] intersects the window.
func (a Assignment) ActiveDuring(w WeekWindow) bool {
	if a.WeekStart.After(w.End) {
		return false
	}
	return a.WeekEnd == nil || !a.WeekEnd.Before(w.Start)
}

// DisplayNumber is the label shown on a report row. Assignments can carry
// several labels; only the first one is displayed, the rest are unused.
func (a Assignment) DisplayNumber() string {
	if len(a.Numbers) == 0 {
		return PlaceholderNumber
	}
	return a.Numbers[0]
}

// PlaceholderNumber stands in for a missing driver-number label.
const PlaceholderNumber = "—"
