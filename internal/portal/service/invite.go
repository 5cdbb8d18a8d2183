package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/harborfin/rollover/internal/portal/domain"
	"github.com/harborfin/rollover/internal/portal/identity"
	"github.com/harborfin/rollover/internal/portal/store"
	"github.com/harborfin/rollover/pkg/slogx"
)

var (
	ErrInvalidInviteRequest = errors.New("invalid invite request")
	ErrInviteDeliveryFailed = errors.New("invitation email could not be delivered")
)

// SystemInviter marks invites minted by the admin surface rather than a
// signed-in member.
const SystemInviter = "system"

// InviteService orchestrates onboarding: advisor invitations from the
// admin surface and client invitations from signed-in advisors.
type InviteService struct {
	Store    store.Store
	Identity identity.Provider
	Members  *MembershipService
}

// InviteAdvisorRequest invites an advisor into a firm, creating the firm if
// it does not exist yet.
type InviteAdvisorRequest struct {
	Email     string
	FirstName string
	LastName  string
	FirmName  string
}

// InviteClientRequest invites a client into the actor's own firm. The firm
// is always derived from the caller's membership, never from the request.
type InviteClientRequest struct {
	Email     string
	FirstName string
	LastName  string
}

// InviteResult reports what an invitation did.
type InviteResult struct {
	UserID string
	Email  string
	FirmID string
	Role   domain.Role

	// Invited is false when the email already had an account; the person
	// was attached to the firm directly and no email was sent.
	Invited bool
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidInviteRequest
	}
	return email, nil
}

// InviteAdvisor onboards an advisor. The first member of a firm becomes
// its owner; everyone after that joins as an advisor.
func (s *InviteService) InviteAdvisor(ctx context.Context, req InviteAdvisorRequest) (InviteResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate input.
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return InviteResult{}, err
	}
	firmName := strings.TrimSpace(req.FirmName)
	if firmName == "" {
		return InviteResult{}, ErrInvalidInviteRequest
	}

	// 2. Find or create the firm.
	firm, err := s.Members.EnsureFirm(ctx, firmName)
	if err != nil {
		return InviteResult{}, err
	}

	// 3. Existing account: attach directly, no email.
	ident, err := s.Identity.GetByEmail(ctx, email)
	if err == nil {
		return s.attachExisting(ctx, ident, firm.ID, domain.RoleAdvisor, req.FirstName, req.LastName)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return InviteResult{}, err
	}

	// 4. New account: provision a pending identity and send the invite.
	meta := domain.InviteMeta{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		FirmID:    firm.ID,
		Role:      domain.RoleAdvisor,
		InviterID: SystemInviter,
	}
	ident, err = s.Identity.InviteByEmail(ctx, email, meta)
	if errors.Is(err, store.ErrAlreadyExists) {
		// Lost a concurrent-signup race; fall back to the existing-account
		// path with the winner's identity.
		winner, getErr := s.Identity.GetByEmail(ctx, email)
		if getErr != nil {
			return InviteResult{}, getErr
		}
		return s.attachExisting(ctx, winner, firm.ID, domain.RoleAdvisor, req.FirstName, req.LastName)
	}
	if errors.Is(err, identity.ErrDeliveryFailed) {
		return InviteResult{}, ErrInviteDeliveryFailed
	}
	if err != nil {
		return InviteResult{}, err
	}

	// 5. Attach the membership. Role may be upgraded to owner inside.
	m, err := s.Members.AssignMembership(ctx, ident.ID, firm.ID, domain.RoleAdvisor)
	if err != nil {
		return InviteResult{}, err
	}

	log.Info("advisor invited",
		slog.String("user_id", ident.ID),
		slog.String("firm_id", firm.ID),
		slog.String("role", string(m.Role)),
	)
	return InviteResult{
		UserID:  ident.ID,
		Email:   email,
		FirmID:  firm.ID,
		Role:    m.Role,
		Invited: true,
	}, nil
}

// InviteClient onboards a client into the actor's firm and grants the
// inviting advisor access to them.
func (s *InviteService) InviteClient(ctx context.Context, actor domain.Actor, req InviteClientRequest) (InviteResult, error) {
	log := slogx.FromContext(ctx)

	// 1. Only owners and advisors invite clients.
	if !actor.CanInviteClients {
		return InviteResult{}, ErrForbidden
	}

	// 2. Validate input.
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return InviteResult{}, err
	}

	// 3. Resolve or provision the identity.
	var result InviteResult
	ident, err := s.Identity.GetByEmail(ctx, email)
	switch {
	case err == nil:
		result, err = s.attachExisting(ctx, ident, actor.FirmID, domain.RoleClient, req.FirstName, req.LastName)
		if err != nil {
			return InviteResult{}, err
		}

	case errors.Is(err, store.ErrNotFound):
		meta := domain.InviteMeta{
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
			FirmID:    actor.FirmID,
			Role:      domain.RoleClient,
			InviterID: actor.UserID,
		}
		ident, err = s.Identity.InviteByEmail(ctx, email, meta)
		if errors.Is(err, store.ErrAlreadyExists) {
			winner, getErr := s.Identity.GetByEmail(ctx, email)
			if getErr != nil {
				return InviteResult{}, getErr
			}
			result, err = s.attachExisting(ctx, winner, actor.FirmID, domain.RoleClient, req.FirstName, req.LastName)
			if err != nil {
				return InviteResult{}, err
			}
			break
		}
		if errors.Is(err, identity.ErrDeliveryFailed) {
			return InviteResult{}, ErrInviteDeliveryFailed
		}
		if err != nil {
			return InviteResult{}, err
		}

		if _, err := s.Members.AssignMembership(ctx, ident.ID, actor.FirmID, domain.RoleClient); err != nil {
			return InviteResult{}, err
		}
		result = InviteResult{
			UserID:  ident.ID,
			Email:   email,
			FirmID:  actor.FirmID,
			Role:    domain.RoleClient,
			Invited: true,
		}

	default:
		return InviteResult{}, err
	}

	// 4. The inviting advisor gets access to their new client. An existing
	// grant is fine.
	grant := domain.Grant{
		ClientID:  result.UserID,
		AdvisorID: actor.UserID,
		FirmID:    actor.FirmID,
		GrantedBy: actor.UserID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Store.Grants().Create(ctx, grant); err != nil && !errors.Is(err, store.ErrAlreadyExists) {
		return InviteResult{}, err
	}

	log.Info("client invited",
		slog.String("user_id", result.UserID),
		slog.String("firm_id", actor.FirmID),
		slog.String("invited_by", actor.UserID),
		slog.Bool("emailed", result.Invited),
	)
	return result, nil
}

// attachExisting joins an already-registered identity to the firm: profile
// refresh, membership upsert, no email.
func (s *InviteService) attachExisting(ctx context.Context, ident domain.Identity, firmID string, role domain.Role, firstName, lastName string) (InviteResult, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName != "" || lastName != "" {
		if err := s.Identity.UpdateProfile(ctx, ident.ID, firstName, lastName); err != nil {
			return InviteResult{}, err
		}
	}

	m, err := s.Members.AssignMembership(ctx, ident.ID, firmID, role)
	if err != nil {
		return InviteResult{}, err
	}

	return InviteResult{
		UserID:  ident.ID,
		Email:   ident.Email,
		FirmID:  firmID,
		Role:    m.Role,
		Invited: false,
	}, nil
}
