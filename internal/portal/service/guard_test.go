package service

import (
	"context"
	"testing"
	"time"

	"github.com/harborfin/rollover/internal/portal/domain"
	"github.com/stretchr/testify/require"
)

func TestActorForCapabilities(t *testing.T) {
	st := newTestStore(t)
	guard := &Guard{Store: st}
	ctx := context.Background()

	firm := seedFirm(t, st, "Harbor Wealth")
	owner := seedActor(t, st, "owner@example.com", firm, domain.RoleOwner)
	advisor := seedActor(t, st, "adv@example.com", firm, domain.RoleAdvisor)
	client := seedActor(t, st, "client@example.com", firm, domain.RoleClient)

	got, err := guard.ActorFor(ctx, owner.UserID)
	require.NoError(t, err)
	require.True(t, got.CanInviteAdvisors)
	require.True(t, got.CanInviteClients)
	require.True(t, got.CanManageGrants)
	require.Equal(t, "Harbor Wealth", got.FirmName)

	got, err = guard.ActorFor(ctx, advisor.UserID)
	require.NoError(t, err)
	require.False(t, got.CanInviteAdvisors)
	require.True(t, got.CanInviteClients)

	got, err = guard.ActorFor(ctx, client.UserID)
	require.NoError(t, err)
	require.False(t, got.CanInviteClients)
	require.False(t, got.CanManageGrants)

	_, err = guard.ActorFor(ctx, "stranger")
	require.ErrorIs(t, err, ErrNotMemberOfFirm)
}

func TestRequireRole(t *testing.T) {
	st := newTestStore(t)
	guard := &Guard{Store: st}
	ctx := context.Background()

	firm := seedFirm(t, st, "Harbor Wealth")
	advisor := seedActor(t, st, "adv@example.com", firm, domain.RoleAdvisor)
	client := seedActor(t, st, "client@example.com", firm, domain.RoleClient)

	_, err := guard.RequireRole(ctx, advisor.UserID, domain.RoleOwner, domain.RoleAdvisor)
	require.NoError(t, err)

	_, err = guard.RequireRole(ctx, client.UserID, domain.RoleOwner, domain.RoleAdvisor)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestRequireClientAccess(t *testing.T) {
	st := newTestStore(t)
	guard := &Guard{Store: st}
	ctx := context.Background()

	firm := seedFirm(t, st, "Harbor Wealth")
	advisor := seedActor(t, st, "adv@example.com", firm, domain.RoleAdvisor)
	other := seedActor(t, st, "other@example.com", firm, domain.RoleAdvisor)
	client := seedActor(t, st, "client@example.com", firm, domain.RoleClient)

	// No grant yet: denied.
	err := guard.RequireClientAccess(ctx, advisor, client.UserID)
	require.ErrorIs(t, err, ErrNoClientAccess)

	// Clients always see themselves.
	require.NoError(t, guard.RequireClientAccess(ctx, client, client.UserID))

	// A client never sees another member's data this way.
	err = guard.RequireClientAccess(ctx, client, advisor.UserID)
	require.ErrorIs(t, err, ErrForbidden)

	// Grant flips the answer for exactly the granted advisor.
	require.NoError(t, st.Grants().Create(ctx, domain.Grant{
		ClientID: client.UserID, AdvisorID: advisor.UserID, FirmID: firm.ID,
		GrantedBy: advisor.UserID, CreatedAt: time.Now().UTC(),
	}))
	require.NoError(t, guard.RequireClientAccess(ctx, advisor, client.UserID))
	require.ErrorIs(t, guard.RequireClientAccess(ctx, other, client.UserID), ErrNoClientAccess)
}
