package domain

import "time"

// Role is a member's role within their firm.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleAdvisor Role = "advisor"
	RoleClient  Role = "client"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdvisor, RoleClient:
		return true
	}
	return false
}

// CanAdvise reports whether the role may invite clients and manage grants.
func (r Role) CanAdvise() bool {
	return r == RoleOwner || r == RoleAdvisor
}

// Membership places a user in exactly one firm with one role. A user has
// at most one membership row at a time; the schema keys on UserID.
type Membership struct {
	UserID    string
	FirmID    string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
