// Package store defines the persistence contract for the portal service.
// Drivers live under store/drivers; the service layer only ever sees these
// interfaces.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/harborfin/rollover/internal/portal/domain"
)

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrAlreadyExists is returned when an insert collides with a unique
	// constraint. Callers racing on create-if-absent treat this as "lost
	// the race" and re-read the winner.
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root persistence handle.
type Store interface {
	Identities() IdentityRepo
	Firms() FirmRepo
	Memberships() MembershipRepo
	Grants() GrantRepo
	Invites() InviteRepo

	// Tx starts a read/write transaction.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction. A non-nil error rolls the
	// transaction back; otherwise it commits.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	ApplyMigrations() error
	Ping(ctx context.Context) error
	Close() error
}

// Tx exposes the repositories bound to an open transaction.
type Tx interface {
	Identities() IdentityRepo
	Firms() FirmRepo
	Memberships() MembershipRepo
	Grants() GrantRepo
	Invites() InviteRepo

	Commit() error
	Rollback() error
}

// IdentityRepo persists identities.
type IdentityRepo interface {
	Create(ctx context.Context, id domain.Identity) error
	GetByID(ctx context.Context, id string) (domain.Identity, error)
	GetByEmail(ctx context.Context, email string) (domain.Identity, error)
	// UpdateProfile overwrites the name fields only.
	UpdateProfile(ctx context.Context, id, firstName, lastName string) error
	// Activate sets the password hash and flips status to active.
	Activate(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

// FirmRepo persists firms.
type FirmRepo interface {
	Create(ctx context.Context, firm domain.Firm) error
	GetByID(ctx context.Context, id string) (domain.Firm, error)
	GetByName(ctx context.Context, name string) (domain.Firm, error)
}

// MembershipRepo persists firm memberships, one row per user.
type MembershipRepo interface {
	Upsert(ctx context.Context, m domain.Membership) error
	GetByUser(ctx context.Context, userID string) (domain.Membership, error)
	ListByFirm(ctx context.Context, firmID string) ([]domain.Membership, error)
	CountByFirm(ctx context.Context, firmID string) (int64, error)
}

// GrantRepo persists advisor-client access grants.
type GrantRepo interface {
	Create(ctx context.Context, g domain.Grant) error
	Get(ctx context.Context, clientID, advisorID string) (domain.Grant, error)
	Delete(ctx context.Context, clientID, advisorID string) error
	ListByAdvisor(ctx context.Context, advisorID string) ([]domain.Grant, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Grant, error)
}

// InviteRepo persists one-shot invitation tokens.
type InviteRepo interface {
	Create(ctx context.Context, inv domain.Invite) error
	GetByTokenHash(ctx context.Context, tokenHash string) (domain.Invite, error)
	// MarkUsed flips the invite to used atomically; it returns
	// ErrNotFound if the invite was already consumed or expired.
	MarkUsed(ctx context.Context, id, usedBy string, now time.Time) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
