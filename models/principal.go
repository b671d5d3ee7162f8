package models

// Principal is the resolved identity of the caller for a single request.
//
// It is produced once by the access-gate middleware after the bearer token
// has been decoded and the user's current role has been loaded from storage,
// and is then passed explicitly (via the request context) to anything that
// needs it. It is never persisted and has no lifecycle beyond one request.
type Principal struct {
	// UserID is the internal identifier of the authenticated user.
	UserID int64 `json:"id"`

	// Username is the subject the token was issued for.
	Username string `json:"username"`

	// RoleName is the user's current role as stored in the database at the
	// time of the request, not at the time the token was issued.
	RoleName string `json:"role"`
}

// HasAnyRole reports whether the principal's role is a member of the given
// permission set.
func (p Principal) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if p.RoleName == role {
			return true
		}
	}
	return false
}
