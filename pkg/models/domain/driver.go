package domain

type Driver struct {
	ID       string
	Name     string
	Manager  bool
	Seasonal bool
	AreaName string
}

type Role string

const (
	RoleDriver   Role = "driver"
	RoleSeasonal Role = "seasonal"
	RoleManager  Role = "manager"
)

// RoleFor derives the payroll role with manager taking precedence over
// seasonal; a driver never holds more than one role.
func RoleFor(manager, seasonal bool) Role {
	if manager {
		return RoleManager
	}
	if seasonal {
		return RoleSeasonal
	}
	return RoleDriver
}
