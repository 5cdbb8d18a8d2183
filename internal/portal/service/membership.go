package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/harborfin/rollover/internal/portal/domain"
	"github.com/harborfin/rollover/internal/portal/store"
	"github.com/harborfin/rollover/pkg/idx"
	"github.com/harborfin/rollover/pkg/slogx"
)

var (
	ErrNotMemberOfFirm = errors.New("caller has no firm membership")
	ErrFirmNotFound    = errors.New("firm not found")
)

// MembershipService owns the firm directory: firms, memberships and the
// first-member-becomes-owner rule.
type MembershipService struct {
	Store store.Store
}

// GetMembership returns the user's single membership row.
func (s *MembershipService) GetMembership(ctx context.Context, userID string) (domain.Membership, error) {
	m, err := s.Store.Memberships().GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, ErrNotMemberOfFirm
		}
		return domain.Membership{}, err
	}
	return m, nil
}

// EnsureFirm finds the firm with the given name, creating it if it does not
// exist yet. Two concurrent creates race on the unique name index; the
// loser adopts the winner's row.
func (s *MembershipService) EnsureFirm(ctx context.Context, name string) (domain.Firm, error) {
	log := slogx.FromContext(ctx)

	// 1. Fast path: the firm already exists.
	firm, err := s.Store.Firms().GetByName(ctx, name)
	if err == nil {
		return firm, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Firm{}, err
	}

	// 2. Create it.
	now := time.Now().UTC()
	firm = domain.Firm{
		ID:        idx.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = s.Store.Firms().Create(ctx, firm)
	if err == nil {
		log.Info("firm created", slog.String("firm_id", firm.ID), slog.String("name", name))
		return firm, nil
	}

	// 3. Lost the race: someone else created it between our read and
	// write. Adopt theirs.
	if errors.Is(err, store.ErrAlreadyExists) {
		return s.Store.Firms().GetByName(ctx, name)
	}
	return domain.Firm{}, err
}

// AssignMembership places the user in the firm. An advisor joining an empty
// firm is promoted to owner; if two first advisors race, the one-owner
// index decides and the loser stays an advisor.
func (s *MembershipService) AssignMembership(ctx context.Context, userID, firmID string, role domain.Role) (domain.Membership, error) {
	log := slogx.FromContext(ctx)

	effective := role
	if role == domain.RoleAdvisor {
		n, err := s.Store.Memberships().CountByFirm(ctx, firmID)
		if err != nil {
			return domain.Membership{}, err
		}
		if n == 0 {
			effective = domain.RoleOwner
		}
	}

	now := time.Now().UTC()
	m := domain.Membership{
		UserID:    userID,
		FirmID:    firmID,
		Role:      effective,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.Store.Memberships().Upsert(ctx, m)
	if errors.Is(err, store.ErrAlreadyExists) && effective == domain.RoleOwner {
		// Lost the first-member race; the firm has an owner now.
		m.Role = domain.RoleAdvisor
		err = s.Store.Memberships().Upsert(ctx, m)
	}
	if err != nil {
		return domain.Membership{}, err
	}

	log.Info("membership assigned",
		slog.String("user_id", userID),
		slog.String("firm_id", firmID),
		slog.String("role", string(m.Role)),
	)
	return m, nil
}

// FirmMember pairs a member's identity with their role for directory views.
type FirmMember struct {
	Identity domain.Identity
	Role     domain.Role
	JoinedAt time.Time
}

// FirmOverview is the firm page payload: the firm plus everyone in it.
type FirmOverview struct {
	Firm    domain.Firm
	Members []FirmMember
}

// GetFirmOverview loads the firm and its member directory.
func (s *MembershipService) GetFirmOverview(ctx context.Context, firmID string) (FirmOverview, error) {
	firm, err := s.Store.Firms().GetByID(ctx, firmID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return FirmOverview{}, ErrFirmNotFound
		}
		return FirmOverview{}, err
	}

	memberships, err := s.Store.Memberships().ListByFirm(ctx, firmID)
	if err != nil {
		return FirmOverview{}, err
	}

	overview := FirmOverview{Firm: firm, Members: make([]FirmMember, 0, len(memberships))}
	for _, m := range memberships {
		ident, err := s.Store.Identities().GetByID(ctx, m.UserID)
		if err != nil {
			// A membership without an identity means a cascade is mid
			// flight; skip rather than fail the whole page.
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return FirmOverview{}, err
		}
		overview.Members = append(overview.Members, FirmMember{
			Identity: ident,
			Role:     m.Role,
			JoinedAt: m.CreatedAt,
		})
	}
	return overview, nil
}
