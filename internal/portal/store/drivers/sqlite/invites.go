package sqlite

import (
	"context"
	"time"

	"github.com/harborfin/rollover/internal/portal/domain"
)

type invitesRepo struct {
	db dbtx
}

func (r *invitesRepo) Create(ctx context.Context, inv domain.Invite) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO invites (id, token_hash, user_id, created_by, expires_at, used, used_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.TokenHash, inv.UserID, inv.CreatedBy, inv.ExpiresAt, inv.Used, inv.UsedBy, inv.CreatedAt, inv.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *invitesRepo) GetByTokenHash(ctx context.Context, tokenHash string) (domain.Invite, error) {
	var inv domain.Invite
	err := r.db.QueryRowContext(ctx, `
		SELECT id, token_hash, user_id, created_by, expires_at, used, used_by, created_at, updated_at
		FROM invites WHERE token_hash = ?`, tokenHash,
	).Scan(&inv.ID, &inv.TokenHash, &inv.UserID, &inv.CreatedBy, &inv.ExpiresAt, &inv.Used, &inv.UsedBy, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.Invite{}, mapNotFound(err)
	}
	return inv, nil
}

// MarkUsed consumes the invite. The WHERE clause guards the one-shot
// property: a second redeemer or an expired token matches no row.
func (r *invitesRepo) MarkUsed(ctx context.Context, id, usedBy string, now time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE invites SET used = TRUE, used_by = ?, updated_at = ?
		WHERE id = ? AND used = FALSE AND expires_at > ?`,
		usedBy, now, id, now,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *invitesRepo) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM invites WHERE expires_at <= ?`, before)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
