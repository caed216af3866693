package models

// Role selects which dashboard a session sees
type Role string

const (
	RoleEmployee  Role = "employee"
	RoleHRManager Role = "hr_manager"
)

// Label returns the display name used by the role selector
func (r Role) Label() string {
	switch r {
	case RoleHRManager:
		return "HR Manager"
	default:
		return "Employee"
	}
}
