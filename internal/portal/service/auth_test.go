package service

import (
	"context"
	"testing"
	"time"

	"github.com/harborfin/rollover/internal/portal/domain"
	"github.com/harborfin/rollover/pkg/cryptox"
	"github.com/harborfin/rollover/pkg/idx"
	"github.com/harborfin/rollover/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T) (*SessionService, *jwtx.EdDSASigner) {
	t.Helper()

	signer, err := jwtx.NewEphemeralSigner("test-key")
	require.NoError(t, err)

	return &SessionService{
		Store:  newTestStore(t),
		Signer: signer,
		Issuer: "portal-test",
	}, signer
}

func TestLogin(t *testing.T) {
	svc, signer := newSessionService(t)
	st := svc.Store
	ctx := context.Background()

	hash, err := cryptox.HashPassword("correct horse battery")
	require.NoError(t, err)

	now := time.Now().UTC()
	ident := domain.Identity{
		ID: idx.New().String(), Email: "alice@example.com",
		FirstName: "Alice", LastName: "Adviser",
		PasswordHash: hash, Status: domain.IdentityActive,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, st.Identities().Create(ctx, ident))

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		sess, err := svc.Login(ctx, "alice@example.com", "correct horse battery")
		require.NoError(t, err)
		require.NotEmpty(t, sess.Token)

		keys := jwtx.NewKeySet()
		require.NoError(t, keys.AddSigner(signer))
		verifier := jwtx.NewVerifier(keys, "portal-test")

		claims, err := verifier.Verify(sess.Token)
		require.NoError(t, err)
		require.Equal(t, ident.ID, claims.Subject)
		require.Equal(t, "alice@example.com", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice@example.com", "nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost@example.com", "whatever")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("pending account cannot sign in", func(t *testing.T) {
		pending := domain.Identity{
			ID: idx.New().String(), Email: "pending@example.com",
			Status: domain.IdentityPending, CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, st.Identities().Create(ctx, pending))

		_, err := svc.Login(ctx, "pending@example.com", "anything")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAcceptInvite(t *testing.T) {
	svc, _ := newSessionService(t)
	st := svc.Store
	ctx := context.Background()

	now := time.Now().UTC()
	pending := domain.Identity{
		ID: idx.New().String(), Email: "invitee@example.com",
		Status: domain.IdentityPending, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, st.Identities().Create(ctx, pending))

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	require.NoError(t, st.Invites().Create(ctx, domain.Invite{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		UserID:    pending.ID,
		CreatedBy: SystemInviter,
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}))

	t.Run("weak password rejected", func(t *testing.T) {
		_, err := svc.AcceptInvite(ctx, token, "short")
		require.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("redeems once and activates", func(t *testing.T) {
		ident, err := svc.AcceptInvite(ctx, token, "a long enough password")
		require.NoError(t, err)
		require.Equal(t, domain.IdentityActive, ident.Status)

		// The account can sign in now.
		_, err = svc.Login(ctx, "invitee@example.com", "a long enough password")
		require.NoError(t, err)
	})

	t.Run("second redemption fails", func(t *testing.T) {
		_, err := svc.AcceptInvite(ctx, token, "another long password")
		require.ErrorIs(t, err, ErrInviteAlreadyUsed)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.AcceptInvite(ctx, "bogus-token", "a long enough password")
		require.ErrorIs(t, err, ErrInviteNotFound)
	})
}

func TestAcceptInviteExpired(t *testing.T) {
	svc, _ := newSessionService(t)
	st := svc.Store
	ctx := context.Background()

	now := time.Now().UTC()
	pending := domain.Identity{
		ID: idx.New().String(), Email: "late@example.com",
		Status: domain.IdentityPending, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, st.Identities().Create(ctx, pending))

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	require.NoError(t, st.Invites().Create(ctx, domain.Invite{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		UserID:    pending.ID,
		CreatedBy: SystemInviter,
		ExpiresAt: now.Add(-time.Minute),
		CreatedAt: now.Add(-time.Hour),
		UpdatedAt: now.Add(-time.Hour),
	}))

	_, err = svc.AcceptInvite(ctx, token, "a long enough password")
	require.ErrorIs(t, err, ErrInviteNotFound)
}
