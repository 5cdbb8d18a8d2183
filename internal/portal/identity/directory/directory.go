// Package directory is the store-backed identity provider. It owns pending
// identity provisioning and the one-shot invite tokens that activate them.
package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harborfin/rollover/internal/portal/domain"
	"github.com/harborfin/rollover/internal/portal/identity"
	"github.com/harborfin/rollover/internal/portal/mail"
	"github.com/harborfin/rollover/internal/portal/store"
	"github.com/harborfin/rollover/pkg/cryptox"
	"github.com/harborfin/rollover/pkg/idx"
	"github.com/harborfin/rollover/pkg/slogx"
)

// DefaultInviteTTL is how long a setup token stays redeemable.
const DefaultInviteTTL = 7 * 24 * time.Hour

type Directory struct {
	store     store.Store
	mailer    mail.Mailer
	inviteTTL time.Duration
}

func New(st store.Store, mailer mail.Mailer) *Directory {
	return &Directory{
		store:     st,
		mailer:    mailer,
		inviteTTL: DefaultInviteTTL,
	}
}

func (d *Directory) GetByEmail(ctx context.Context, email string) (domain.Identity, error) {
	return d.store.Identities().GetByEmail(ctx, email)
}

func (d *Directory) GetByID(ctx context.Context, id string) (domain.Identity, error) {
	return d.store.Identities().GetByID(ctx, id)
}

func (d *Directory) UpdateProfile(ctx context.Context, id, firstName, lastName string) error {
	return d.store.Identities().UpdateProfile(ctx, id, firstName, lastName)
}

// InviteByEmail provisions a pending identity and emails it a setup token.
// The identity and its invite commit before the email goes out; if delivery
// fails the identity is removed again so a retry starts from scratch.
func (d *Directory) InviteByEmail(ctx context.Context, email string, meta domain.InviteMeta) (domain.Identity, error) {
	now := time.Now().UTC()

	// 1. Mint the raw setup token. Only its fingerprint is persisted.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("generate invite token: %w", err)
	}

	ident := domain.Identity{
		ID:        idx.New().String(),
		Email:     email,
		FirstName: meta.FirstName,
		LastName:  meta.LastName,
		Status:    domain.IdentityPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 2. Create the identity and invite in one transaction. Losing the
	// unique-email race surfaces as ErrAlreadyExists for the caller.
	err = d.store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Identities().Create(ctx, ident); err != nil {
			return err
		}
		return tx.Invites().Create(ctx, domain.Invite{
			ID:        idx.New().String(),
			TokenHash: cryptox.FingerprintToken(token),
			UserID:    ident.ID,
			CreatedBy: meta.InviterID,
			ExpiresAt: now.Add(d.inviteTTL),
			CreatedAt: now,
			UpdatedAt: now,
		})
	})
	if err != nil {
		return domain.Identity{}, err
	}

	// 3. Deliver the invitation.
	if err := d.mailer.SendInvitation(ctx, d.invitation(ctx, email, token, meta)); err != nil {
		slogx.FromContext(ctx).Error("invite delivery failed, rolling back identity",
			"email", email, "error", err)

		// 4. Roll the identity back so the invite can be retried. The
		// invite row cascades with it.
		if delErr := d.store.Identities().Delete(ctx, ident.ID); delErr != nil && !errors.Is(delErr, store.ErrNotFound) {
			slogx.FromContext(ctx).Error("identity rollback failed", "user_id", ident.ID, "error", delErr)
		}
		return domain.Identity{}, fmt.Errorf("%w: %w", identity.ErrDeliveryFailed, err)
	}

	return ident, nil
}

// invitation fills in the human-readable context for the email. Lookups
// here are best effort; a missing firm or inviter never blocks delivery.
func (d *Directory) invitation(ctx context.Context, email, token string, meta domain.InviteMeta) mail.Invitation {
	inv := mail.Invitation{
		Email: email,
		Token: token,
		Meta:  meta,
	}
	if firm, err := d.store.Firms().GetByID(ctx, meta.FirmID); err == nil {
		inv.FirmName = firm.Name
	}
	if inviter, err := d.store.Identities().GetByID(ctx, meta.InviterID); err == nil {
		inv.InviterName = inviter.DisplayName()
	}
	return inv
}
