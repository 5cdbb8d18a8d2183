package domain

import "time"

// IdentityStatus tracks whether an identity has set a credential yet.
type IdentityStatus string

const (
	// IdentityPending means the identity was created by an invitation and
	// has not yet set a password.
	IdentityPending IdentityStatus = "pending"
	// IdentityActive means the identity can sign in.
	IdentityActive IdentityStatus = "active"
)

// Identity is a person known to the identity directory. Profile fields are
// upserted by invitations; the id and email never change.
type Identity struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string // argon2 encoded; empty while pending
	Status       IdentityStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName returns "First Last", falling back to the email address when
// no profile fields were ever set.
func (i Identity) DisplayName() string {
	switch {
	case i.FirstName != "" && i.LastName != "":
		return i.FirstName + " " + i.LastName
	case i.FirstName != "":
		return i.FirstName
	default:
		return i.Email
	}
}
