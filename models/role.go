package models

// Canonical role names recognised by the authorization layer.
// The set is fixed: roles are seeded at startup and permission sets on
// routes are declared in terms of these constants.
const (
	RoleAdmin    = "ADMIN"
	RoleModerate = "MODERATE"
	RoleUser     = "USER"
	RoleView     = "VIEW"
)

// Role is a named permission level assigned to every user account.
type Role struct {
	RoleID int64  `json:"id"`
	Name   string `json:"name"`
}

// AllRoleNames lists every canonical role name. Used by the seed routine
// and by tests that enumerate permission sets.
func AllRoleNames() []string {
	return []string{RoleAdmin, RoleModerate, RoleUser, RoleView}
}

// TableName returns the name of the database table
// associated with the Role model.
func (r Role) TableName() string {
	return "roles"
}
