package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/harborfin/rollover/internal/portal/domain"
	"github.com/harborfin/rollover/internal/portal/store"
	"github.com/harborfin/rollover/pkg/slogx"
)

var (
	ErrNotAClient      = errors.New("target user is not a client in this firm")
	ErrNotAnAdvisor    = errors.New("target user is not an advisor in this firm")
	ErrDifferentFirm   = errors.New("target user belongs to a different firm")
	ErrCannotGrantSelf = errors.New("cannot grant a client access to themselves")
)

// SharingService manages the access-grant ledger: which advisor may see
// which client.
type SharingService struct {
	Store store.Store
}

// memberInFirm loads the target's membership and checks it belongs to the
// actor's firm.
func (s *SharingService) memberInFirm(ctx context.Context, actor domain.Actor, userID string) (domain.Membership, error) {
	m, err := s.Store.Memberships().GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, ErrDifferentFirm
		}
		return domain.Membership{}, err
	}
	if m.FirmID != actor.FirmID {
		return domain.Membership{}, ErrDifferentFirm
	}
	return m, nil
}

// hasGrant reports whether advisorID currently holds a grant for clientID.
func (s *SharingService) hasGrant(ctx context.Context, clientID, advisorID string) (bool, error) {
	_, err := s.Store.Grants().Get(ctx, clientID, advisorID)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Grant gives advisorID access to clientID's data. Only an advisor who
// already holds access to the client may extend it; the original inviter
// has no special standing. Granting an existing pair is a no-op so retries
// and concurrent grants converge on one row.
func (s *SharingService) Grant(ctx context.Context, actor domain.Actor, clientID, advisorID string) (domain.Grant, error) {
	log := slogx.FromContext(ctx)

	// 1. Only owners and advisors manage grants, and only over clients they
	// already have access to.
	if !actor.CanManageGrants {
		return domain.Grant{}, ErrForbidden
	}
	if clientID == advisorID {
		return domain.Grant{}, ErrCannotGrantSelf
	}
	ok, err := s.hasGrant(ctx, clientID, actor.UserID)
	if err != nil {
		return domain.Grant{}, err
	}
	if !ok {
		return domain.Grant{}, ErrNoClientAccess
	}

	// 2. Both parties must be in the actor's firm with the right roles.
	clientM, err := s.memberInFirm(ctx, actor, clientID)
	if err != nil {
		return domain.Grant{}, err
	}
	if clientM.Role != domain.RoleClient {
		return domain.Grant{}, ErrNotAClient
	}

	advisorM, err := s.memberInFirm(ctx, actor, advisorID)
	if err != nil {
		return domain.Grant{}, err
	}
	if !advisorM.Role.CanAdvise() {
		return domain.Grant{}, ErrNotAnAdvisor
	}

	// 3. Create the grant; an existing pair wins and is returned as-is.
	g := domain.Grant{
		ClientID:  clientID,
		AdvisorID: advisorID,
		FirmID:    actor.FirmID,
		GrantedBy: actor.UserID,
		CreatedAt: time.Now().UTC(),
	}
	err = s.Store.Grants().Create(ctx, g)
	if errors.Is(err, store.ErrAlreadyExists) {
		return s.Store.Grants().Get(ctx, clientID, advisorID)
	}
	if err != nil {
		return domain.Grant{}, err
	}

	log.Info("client access granted",
		slog.String("client_id", clientID),
		slog.String("advisor_id", advisorID),
		slog.String("granted_by", actor.UserID),
	)
	return g, nil
}

// Revoke removes advisorID's access to clientID. Any advisor with access
// to the client may revoke any grant for them, including their own; the
// client may cut off any advisor from their data. Revoking an absent
// grant is a no-op, not an error, so concurrent revokes converge.
func (s *SharingService) Revoke(ctx context.Context, actor domain.Actor, clientID, advisorID string) error {
	log := slogx.FromContext(ctx)

	allowed := actor.UserID == clientID || actor.UserID == advisorID
	if !allowed && actor.CanManageGrants {
		ok, err := s.hasGrant(ctx, clientID, actor.UserID)
		if err != nil {
			return err
		}
		allowed = ok
	}
	if !allowed {
		return ErrForbidden
	}

	if err := s.Store.Grants().Delete(ctx, clientID, advisorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	log.Info("client access revoked",
		slog.String("client_id", clientID),
		slog.String("advisor_id", advisorID),
		slog.String("revoked_by", actor.UserID),
	)
	return nil
}

// GrantDetail is a grant joined with the advisor's identity for display.
type GrantDetail struct {
	Grant   domain.Grant
	Advisor domain.Identity
}

// ListForClient returns everyone who can see the client's data. The caller
// must be the client themselves or hold a grant for them.
func (s *SharingService) ListForClient(ctx context.Context, actor domain.Actor, clientID string) ([]GrantDetail, error) {
	grants, err := s.Store.Grants().ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	out := make([]GrantDetail, 0, len(grants))
	for _, g := range grants {
		adv, err := s.Store.Identities().GetByID(ctx, g.AdvisorID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, GrantDetail{Grant: g, Advisor: adv})
	}
	return out, nil
}

// ClientsForAdvisor resolves the identities of every client the advisor
// holds a grant for. Clients without a resolvable identity are skipped.
func (s *SharingService) ClientsForAdvisor(ctx context.Context, advisorID string) ([]domain.Identity, error) {
	grants, err := s.Store.Grants().ListByAdvisor(ctx, advisorID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Identity, 0, len(grants))
	for _, g := range grants {
		ident, err := s.Store.Identities().GetByID(ctx, g.ClientID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, ident)
	}
	return out, nil
}
