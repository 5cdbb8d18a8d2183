package domain

// Actor is the caller's resolved position in the permission model,
// computed once per request by the authorization guard and passed down
// instead of re-deriving role checks ad hoc.
type Actor struct {
	UserID   string
	FirmID   string
	FirmName string
	Role     Role

	CanInviteClients  bool
	CanInviteAdvisors bool
	CanManageGrants   bool
}

// ActorFor computes the capability set for a membership.
func ActorFor(m Membership, firmName string) Actor {
	return Actor{
		UserID:   m.UserID,
		FirmID:   m.FirmID,
		FirmName: firmName,
		Role:     m.Role,

		CanInviteClients:  m.Role.CanAdvise(),
		CanInviteAdvisors: m.Role == RoleOwner,
		CanManageGrants:   m.Role.CanAdvise(),
	}
}
