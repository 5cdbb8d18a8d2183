package domain

import "time"

// Invite is a one-shot credential-setup token minted when a pending
// identity is created. Only the SHA-256 fingerprint of the token is stored;
// the raw token travels inside the invitation email.
type Invite struct {
	ID        string
	TokenHash string
	UserID    string // identity the invite activates
	CreatedBy string // inviter identity id, or "system" for admin invites
	ExpiresAt time.Time
	Used      bool
	UsedBy    string // empty until redeemed
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InviteMeta is the metadata carried by an invitation email: everything the
// recipient's onboarding flow needs to know about who invited them and into
// what.
type InviteMeta struct {
	FirstName string
	LastName  string
	FirmID    string
	Role      Role
	InviterID string
}
