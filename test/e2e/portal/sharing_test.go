package portal_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/harborfin/rollover/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

// TestAccessSharingFlow covers granting, listing, and revoking a second
// advisor's access to a client, and that grants gate what each advisor
// can see.
func TestAccessSharingFlow(t *testing.T) {
	baseURL, container, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	client.AdminToken = adminToken
	ctx := context.Background()

	primary := inviteAndActivateAdvisor(t, client, container,
		"primary@harborwealth.test", "Olive", "Marsh", firmName)
	secondary := inviteAndActivateAdvisor(t, client, container,
		"secondary@harborwealth.test", "Ben", "Choi", firmName)

	clientID, clientSession := inviteAndActivateClient(t, client, container, primary,
		"casey@example.test", "Casey", "Reid")

	secondaryID := secondary.User().ID

	t.Run("secondary starts with no clients", func(t *testing.T) {
		clients, err := secondary.Clients(ctx)
		require.NoError(t, err)
		require.Empty(t, clients.Clients)
	})

	t.Run("secondary cannot view client access yet", func(t *testing.T) {
		_, err := secondary.ClientAccess(ctx, clientID)
		requireAPIError(t, err, http.StatusForbidden, "ungranted advisor")
	})

	t.Run("primary grants secondary access", func(t *testing.T) {
		grant, err := primary.GrantAccess(ctx, clientID, secondaryID)
		require.NoError(t, err)
		require.Equal(t, clientID, grant.ClientID)
		require.Equal(t, secondaryID, grant.AdvisorID)
		require.Equal(t, primary.User().ID, grant.GrantedBy)
	})

	t.Run("granting twice returns the same grant", func(t *testing.T) {
		grant, err := primary.GrantAccess(ctx, clientID, secondaryID)
		require.NoError(t, err)

		// GrantedBy still names the original grantor.
		require.Equal(t, primary.User().ID, grant.GrantedBy)
	})

	t.Run("secondary now sees the client", func(t *testing.T) {
		clients, err := secondary.Clients(ctx)
		require.NoError(t, err)
		require.Len(t, clients.Clients, 1)
		require.Equal(t, clientID, clients.Clients[0].ID)
	})

	t.Run("client sees both grants", func(t *testing.T) {
		access, err := clientSession.ClientAccess(ctx, clientID)
		require.NoError(t, err)
		require.Len(t, access.Grants, 2)
	})

	t.Run("client cannot grant themselves", func(t *testing.T) {
		_, err := clientSession.GrantAccess(ctx, clientID, secondaryID)
		requireAPIError(t, err, http.StatusForbidden, "client granting")
	})

	t.Run("self grant rejected", func(t *testing.T) {
		_, err := primary.GrantAccess(ctx, clientID, clientID)
		requireAPIError(t, err, http.StatusBadRequest, "grant to the client themselves")
	})

	t.Run("client revokes secondary", func(t *testing.T) {
		require.NoError(t, clientSession.RevokeAccess(ctx, clientID, secondaryID))

		clients, err := secondary.Clients(ctx)
		require.NoError(t, err)
		require.Empty(t, clients.Clients)
	})

	t.Run("revoking again is a no-op", func(t *testing.T) {
		require.NoError(t, clientSession.RevokeAccess(ctx, clientID, secondaryID))
	})

	t.Run("primary still holds access", func(t *testing.T) {
		access, err := primary.ClientAccess(ctx, clientID)
		require.NoError(t, err)
		require.Len(t, access.Grants, 1)
		require.Equal(t, primary.User().ID, access.Grants[0].AdvisorID)
	})
}

// TestCrossFirmIsolation verifies that advisors from one firm can never
// touch clients of another.
func TestCrossFirmIsolation(t *testing.T) {
	baseURL, container, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	client.AdminToken = adminToken
	ctx := context.Background()

	insider := inviteAndActivateAdvisor(t, client, container,
		"insider@harborwealth.test", "Olive", "Marsh", firmName)
	outsider := inviteAndActivateAdvisor(t, client, container,
		"outsider@rivalfirm.test", "Rex", "Vale", "Rival Advisors LLC")

	clientID, _ := inviteAndActivateClient(t, client, container, insider,
		"casey@example.test", "Casey", "Reid")

	t.Run("outsider cannot view access", func(t *testing.T) {
		_, err := outsider.ClientAccess(ctx, clientID)
		requireAPIError(t, err, http.StatusForbidden, "cross-firm read")
	})

	t.Run("outsider cannot be granted access", func(t *testing.T) {
		_, err := insider.GrantAccess(ctx, clientID, outsider.User().ID)
		requireAPIError(t, err, http.StatusBadRequest, "cross-firm grant")
	})

	t.Run("outsider firm directory excludes the client", func(t *testing.T) {
		firm, err := outsider.Firm(ctx)
		require.NoError(t, err)
		require.Len(t, firm.Members, 1)
	})
}
