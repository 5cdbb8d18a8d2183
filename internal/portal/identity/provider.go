// Package identity abstracts the user directory the portal onboards people
// into. The invitation workflows only see this interface; the store-backed
// implementation lives in identity/directory.
package identity

import (
	"context"
	"errors"

	"github.com/harborfin/rollover/internal/portal/domain"
)

// ErrDeliveryFailed is returned when a pending identity could not be
// delivered its invitation email. The identity is rolled back so the
// invitation can be retried cleanly.
var ErrDeliveryFailed = errors.New("identity: invite delivery failed")

// Provider looks up and provisions identities.
type Provider interface {
	GetByEmail(ctx context.Context, email string) (domain.Identity, error)
	GetByID(ctx context.Context, id string) (domain.Identity, error)

	// InviteByEmail creates a pending identity for email and delivers a
	// one-shot setup token. Returns store.ErrAlreadyExists when the email
	// is already registered (including losing a concurrent create race).
	InviteByEmail(ctx context.Context, email string, meta domain.InviteMeta) (domain.Identity, error)

	// UpdateProfile overwrites the name fields of an existing identity.
	UpdateProfile(ctx context.Context, id, firstName, lastName string) error
}
