package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harborfin/rollover/internal/portal/domain"
	"github.com/harborfin/rollover/internal/portal/store/drivers/sqlite"
	"github.com/harborfin/rollover/pkg/cryptox"
	"github.com/harborfin/rollover/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "pepper")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedIdentity(t *testing.T, st *sqlite.Store, email string, status domain.IdentityStatus) domain.Identity {
	t.Helper()

	now := time.Now().UTC()
	ident := domain.Identity{
		ID:        idx.New().String(),
		Email:     email,
		FirstName: "Seed",
		LastName:  "User",
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, st.Identities().Create(context.Background(), ident))
	return ident
}

func seedFirm(t *testing.T, st *sqlite.Store, name string) domain.Firm {
	t.Helper()

	now := time.Now().UTC()
	firm := domain.Firm{ID: idx.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, st.Firms().Create(context.Background(), firm))
	return firm
}

func seedMember(t *testing.T, st *sqlite.Store, userID, firmID string, role domain.Role) domain.Membership {
	t.Helper()

	now := time.Now().UTC()
	m := domain.Membership{UserID: userID, FirmID: firmID, Role: role, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, st.Memberships().Upsert(context.Background(), m))
	return m
}

// seedActor builds a member and returns their resolved actor.
func seedActor(t *testing.T, st *sqlite.Store, email string, firm domain.Firm, role domain.Role) domain.Actor {
	t.Helper()

	ident := seedIdentity(t, st, email, domain.IdentityActive)
	m := seedMember(t, st, ident.ID, firm.ID, role)
	return domain.ActorFor(m, firm.Name)
}
