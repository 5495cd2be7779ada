package store

import "time"

// DriverRecord is a drivers row joined with its affiliated area name.
// AreaName is empty when the driver has no area on file.
type DriverRecord struct {
	ID       string
	FullName string
	Manager  bool
	Seasonal bool
	AreaName string
}

// AssignmentRecord is a driver_number_assignments row with its number
// labels collapsed in join order. WeekEnd is nil for open-ended
// assignments.
type AssignmentRecord struct {
	ID        string
	DriverID  string
	Numbers   []string
	WeekStart time.Time
	WeekEnd   *time.Time
}

// DeliveryRecord is one delivery_entries row. Several rows may exist for
// the same assignment and date.
type DeliveryRecord struct {
	AssignmentID string
	Date         time.Time
	Deliveries   int
}

// SessionRecord is a sessions row from the identity collaborator's store.
type SessionRecord struct {
	Token     string
	UserID    string
	Role      string
	ExpiresAt time.Time
}
