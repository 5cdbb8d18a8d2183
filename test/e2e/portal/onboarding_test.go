package portal_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/harborfin/rollover/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

// TestHealthEndpoints verifies the liveness and readiness probes of a
// freshly started portal.
func TestHealthEndpoints(t *testing.T) {
	baseURL, _, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	ctx := context.Background()

	t.Run("livez", func(t *testing.T) {
		health, err := client.Livez(ctx)
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.NotEmpty(t, health.Version)
	})

	t.Run("readyz", func(t *testing.T) {
		health, err := client.Readyz(ctx)
		require.NoError(t, err)
		require.Equal(t, "ok", health.Status)
		require.NotNil(t, health.Checks)
		require.Equal(t, "ok", health.Checks.Database)
		require.Equal(t, "ok", health.Checks.Signer)
	})
}

// TestAdvisorOnboardingFlow walks the full admin-driven advisor flow:
// invite into a new firm, redeem the token, sign in, and read the firm
// directory back.
func TestAdvisorOnboardingFlow(t *testing.T) {
	baseURL, container, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	client.AdminToken = adminToken
	ctx := context.Background()

	const ownerEmail = "owner@harborwealth.test"

	var inviteToken string

	t.Run("invite advisor into new firm", func(t *testing.T) {
		resp, err := client.InviteAdvisor(ctx, portalsdk.InviteAdvisorRequest{
			Email:     ownerEmail,
			FirstName: "Olive",
			LastName:  "Marsh",
			FirmName:  firmName,
		})
		require.NoError(t, err)
		require.True(t, resp.Invited)
		require.NotEmpty(t, resp.UserID)
		require.NotEmpty(t, resp.FirmID)

		// First advisor in a fresh firm becomes its owner.
		require.Equal(t, "owner", resp.Role)

		inviteToken = inviteTokenFromLogs(t, container, ownerEmail)
		require.NotEmpty(t, inviteToken)
	})

	t.Run("login rejected before activation", func(t *testing.T) {
		_, err := client.Login(ctx, ownerEmail, testPassword)
		requireAPIError(t, err, http.StatusUnauthorized, "pending account login")
	})

	t.Run("weak password rejected", func(t *testing.T) {
		_, err := client.AcceptInvite(ctx, inviteToken, "short")
		requireAPIError(t, err, http.StatusBadRequest, "weak password")
	})

	t.Run("accept invite", func(t *testing.T) {
		resp, err := client.AcceptInvite(ctx, inviteToken, testPassword)
		require.NoError(t, err)
		require.Equal(t, ownerEmail, resp.User.Email)
		require.Equal(t, "Olive", resp.User.FirstName)
	})

	t.Run("token is one shot", func(t *testing.T) {
		_, err := client.AcceptInvite(ctx, inviteToken, testPassword)
		requireAPIError(t, err, http.StatusBadRequest, "second redemption")
	})

	t.Run("login and read firm", func(t *testing.T) {
		session, err := client.Login(ctx, ownerEmail, testPassword)
		require.NoError(t, err)
		require.Equal(t, ownerEmail, session.User().Email)

		firm, err := session.Firm(ctx)
		require.NoError(t, err)
		require.Equal(t, firmName, firm.Name)
		require.Len(t, firm.Members, 1)
		require.Equal(t, "owner", firm.Members[0].Role)
	})

	t.Run("second advisor joins as advisor", func(t *testing.T) {
		resp, err := client.InviteAdvisor(ctx, portalsdk.InviteAdvisorRequest{
			Email:     "advisor2@harborwealth.test",
			FirstName: "Ben",
			LastName:  "Choi",
			FirmName:  firmName,
		})
		require.NoError(t, err)
		require.Equal(t, "advisor", resp.Role)
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		_, err := client.Login(ctx, ownerEmail, "Definitely-Wrong-1")
		requireAPIError(t, err, http.StatusUnauthorized, "wrong password")
	})
}

// TestAdminSurfaceAuthorization verifies the advisor-invitation endpoint
// only accepts the configured admin token.
func TestAdminSurfaceAuthorization(t *testing.T) {
	baseURL, _, cleanup := setupPortalContainer(t)
	defer cleanup()

	ctx := context.Background()
	req := portalsdk.InviteAdvisorRequest{
		Email:     "nope@harborwealth.test",
		FirstName: "No",
		LastName:  "Body",
		FirmName:  firmName,
	}

	t.Run("missing token", func(t *testing.T) {
		client := portalsdk.NewSDKClient(baseURL)
		_, err := client.InviteAdvisor(ctx, req)
		requireAPIError(t, err, http.StatusUnauthorized, "no admin token")
	})

	t.Run("wrong token", func(t *testing.T) {
		client := portalsdk.NewSDKClient(baseURL)
		client.AdminToken = "not-the-admin-token"
		_, err := client.InviteAdvisor(ctx, req)
		requireAPIError(t, err, http.StatusUnauthorized, "wrong admin token")
	})
}

// TestClientOnboardingFlow covers advisor-driven client invitations and
// the implicit access grant the inviter receives.
func TestClientOnboardingFlow(t *testing.T) {
	baseURL, container, cleanup := setupPortalContainer(t)
	defer cleanup()

	client := portalsdk.NewSDKClient(baseURL)
	client.AdminToken = adminToken
	ctx := context.Background()

	advisor := inviteAndActivateAdvisor(t, client, container,
		"advisor@harborwealth.test", "Olive", "Marsh", firmName)

	clientID, clientSession := inviteAndActivateClient(t, client, container, advisor,
		"client@example.test", "Casey", "Reid")

	t.Run("inviter holds a grant", func(t *testing.T) {
		clients, err := advisor.Clients(ctx)
		require.NoError(t, err)
		require.Len(t, clients.Clients, 1)
		require.Equal(t, clientID, clients.Clients[0].ID)
	})

	t.Run("re-inviting the same client is idempotent", func(t *testing.T) {
		resp, err := advisor.InviteClient(ctx, portalsdk.InviteClientRequest{
			Email: "client@example.test",
		})
		require.NoError(t, err)
		require.False(t, resp.Invited)
		require.Equal(t, clientID, resp.UserID)
	})

	t.Run("client sees the firm directory", func(t *testing.T) {
		firm, err := clientSession.Firm(ctx)
		require.NoError(t, err)
		require.Equal(t, firmName, firm.Name)
		require.Len(t, firm.Members, 2)
	})

	t.Run("client cannot invite clients", func(t *testing.T) {
		_, err := clientSession.InviteClient(ctx, portalsdk.InviteClientRequest{
			Email: "another@example.test",
		})
		requireAPIError(t, err, http.StatusForbidden, "client inviting")
	})

	t.Run("client cannot list clients", func(t *testing.T) {
		_, err := clientSession.Clients(ctx)
		requireAPIError(t, err, http.StatusForbidden, "client listing clients")
	})

	t.Run("logout", func(t *testing.T) {
		require.NoError(t, clientSession.Logout(ctx))
	})
}
