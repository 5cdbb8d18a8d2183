package sqlite

import (
	"database/sql"

	"github.com/harborfin/rollover/internal/portal/store"
)

// txStore binds the repositories to an open transaction.
type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore { return &txStore{tx: tx} }

func (t *txStore) Identities() store.IdentityRepo    { return &identitiesRepo{db: t.tx} }
func (t *txStore) Firms() store.FirmRepo             { return &firmsRepo{db: t.tx} }
func (t *txStore) Memberships() store.MembershipRepo { return &membershipsRepo{db: t.tx} }
func (t *txStore) Grants() store.GrantRepo           { return &grantsRepo{db: t.tx} }
func (t *txStore) Invites() store.InviteRepo         { return &invitesRepo{db: t.tx} }

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }
