package service

import (
	"context"
	"testing"
	"time"

	"github.com/harborfin/rollover/internal/portal/domain"
	"github.com/harborfin/rollover/internal/portal/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

// seedGrant plants the grant an inviting advisor would have received at
// invite time, so the actor has standing to share.
func seedGrant(t *testing.T, st *sqlite.Store, client, advisor domain.Actor) {
	t.Helper()

	err := st.Grants().Create(context.Background(), domain.Grant{
		ClientID:  client.UserID,
		AdvisorID: advisor.UserID,
		FirmID:    advisor.FirmID,
		GrantedBy: advisor.UserID,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
}

func TestGrantAndRevoke(t *testing.T) {
	st := newTestStore(t)
	svc := &SharingService{Store: st}
	ctx := context.Background()

	firm := seedFirm(t, st, "Harbor Wealth")
	owner := seedActor(t, st, "owner@example.com", firm, domain.RoleOwner)
	advisor := seedActor(t, st, "adv@example.com", firm, domain.RoleAdvisor)
	client := seedActor(t, st, "client@example.com", firm, domain.RoleClient)
	seedGrant(t, st, client, owner)

	g, err := svc.Grant(ctx, owner, client.UserID, advisor.UserID)
	require.NoError(t, err)
	require.Equal(t, owner.UserID, g.GrantedBy)

	// Granting again converges on the existing row.
	again, err := svc.Grant(ctx, advisor, client.UserID, advisor.UserID)
	require.NoError(t, err)
	require.Equal(t, g.GrantedBy, again.GrantedBy)

	require.NoError(t, svc.Revoke(ctx, owner, client.UserID, advisor.UserID))

	// A second revoke finds nothing and is still a success.
	require.NoError(t, svc.Revoke(ctx, owner, client.UserID, advisor.UserID))
}

func TestGrantValidation(t *testing.T) {
	st := newTestStore(t)
	svc := &SharingService{Store: st}
	ctx := context.Background()

	firm := seedFirm(t, st, "Harbor Wealth")
	otherFirm := seedFirm(t, st, "Rival Wealth")
	owner := seedActor(t, st, "owner@example.com", firm, domain.RoleOwner)
	advisor := seedActor(t, st, "adv@example.com", firm, domain.RoleAdvisor)
	client := seedActor(t, st, "client@example.com", firm, domain.RoleClient)
	outsider := seedActor(t, st, "out@example.com", otherFirm, domain.RoleOwner)
	seedGrant(t, st, client, owner)

	t.Run("clients cannot manage grants", func(t *testing.T) {
		_, err := svc.Grant(ctx, client, client.UserID, advisor.UserID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("sharer must already hold access", func(t *testing.T) {
		second := seedActor(t, st, "adv2@example.com", firm, domain.RoleAdvisor)
		_, err := svc.Grant(ctx, second, client.UserID, advisor.UserID)
		require.ErrorIs(t, err, ErrNoClientAccess)
	})

	t.Run("grantee must be an advisor", func(t *testing.T) {
		secondClient := seedActor(t, st, "client2@example.com", firm, domain.RoleClient)
		_, err := svc.Grant(ctx, owner, client.UserID, secondClient.UserID)
		require.ErrorIs(t, err, ErrNotAnAdvisor)
	})

	t.Run("subject must be a client", func(t *testing.T) {
		_, err := svc.Grant(ctx, owner, advisor.UserID, advisor.UserID)
		require.ErrorIs(t, err, ErrCannotGrantSelf)

		third := seedActor(t, st, "adv3@example.com", firm, domain.RoleAdvisor)
		seedGrant(t, st, third, owner)
		_, err = svc.Grant(ctx, owner, third.UserID, advisor.UserID)
		require.ErrorIs(t, err, ErrNotAClient)
	})

	t.Run("cross-firm grants rejected", func(t *testing.T) {
		seedGrant(t, st, client, outsider)
		_, err := svc.Grant(ctx, outsider, client.UserID, advisor.UserID)
		require.ErrorIs(t, err, ErrDifferentFirm)
	})
}

func TestRevokePermissions(t *testing.T) {
	st := newTestStore(t)
	svc := &SharingService{Store: st}
	ctx := context.Background()

	firm := seedFirm(t, st, "Harbor Wealth")
	owner := seedActor(t, st, "owner@example.com", firm, domain.RoleOwner)
	advisor := seedActor(t, st, "adv@example.com", firm, domain.RoleAdvisor)
	client := seedActor(t, st, "client@example.com", firm, domain.RoleClient)
	seedGrant(t, st, client, owner)

	grant := func() {
		_, err := svc.Grant(ctx, owner, client.UserID, advisor.UserID)
		require.NoError(t, err)
	}

	// The client may cut off their own advisor.
	grant()
	require.NoError(t, svc.Revoke(ctx, client, client.UserID, advisor.UserID))

	// The advisor may drop their own access.
	grant()
	require.NoError(t, svc.Revoke(ctx, advisor, client.UserID, advisor.UserID))

	// An advisor holding access may revoke another advisor's grant.
	grant()
	require.NoError(t, svc.Revoke(ctx, owner, client.UserID, advisor.UserID))

	// An advisor without access to this client may not.
	grant()
	stranger := seedActor(t, st, "stranger@example.com", firm, domain.RoleAdvisor)
	require.ErrorIs(t, svc.Revoke(ctx, stranger, client.UserID, advisor.UserID), ErrForbidden)

	// Neither may an unrelated client.
	bystander := seedActor(t, st, "bystander@example.com", firm, domain.RoleClient)
	require.ErrorIs(t, svc.Revoke(ctx, bystander, client.UserID, advisor.UserID), ErrForbidden)
}

func TestClientsForAdvisorIsGrantFiltered(t *testing.T) {
	st := newTestStore(t)
	svc := &SharingService{Store: st}
	ctx := context.Background()

	firm := seedFirm(t, st, "Harbor Wealth")
	owner := seedActor(t, st, "owner@example.com", firm, domain.RoleOwner)
	advisor := seedActor(t, st, "adv@example.com", firm, domain.RoleAdvisor)
	c1 := seedActor(t, st, "c1@example.com", firm, domain.RoleClient)
	seedActor(t, st, "c2@example.com", firm, domain.RoleClient)
	seedGrant(t, st, c1, owner)

	_, err := svc.Grant(ctx, owner, c1.UserID, advisor.UserID)
	require.NoError(t, err)

	// Only the granted client comes back, not every client in the firm.
	clients, err := svc.ClientsForAdvisor(ctx, advisor.UserID)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	require.Equal(t, "c1@example.com", clients[0].Email)

	list, err := svc.ListForClient(ctx, c1, c1.UserID)
	require.NoError(t, err)
	require.Len(t, list, 2)
}
