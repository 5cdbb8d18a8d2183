package sqlite

import (
	"context"

	"github.com/harborfin/rollover/internal/portal/domain"
)

type membershipsRepo struct {
	db dbtx
}

// Upsert inserts or replaces the user's single membership row. Moving a
// user between firms or roles rewrites the same row; the one-owner partial
// index still applies and surfaces as ErrAlreadyExists.
func (r *membershipsRepo) Upsert(ctx context.Context, m domain.Membership) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO firm_memberships (user_id, firm_id, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			firm_id = excluded.firm_id,
			role = excluded.role,
			updated_at = excluded.updated_at`,
		m.UserID, m.FirmID, m.Role, m.CreatedAt, m.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *membershipsRepo) GetByUser(ctx context.Context, userID string) (domain.Membership, error) {
	var m domain.Membership
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, firm_id, role, created_at, updated_at
		FROM firm_memberships WHERE user_id = ?`, userID,
	).Scan(&m.UserID, &m.FirmID, &m.Role, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membershipsRepo) ListByFirm(ctx context.Context, firmID string) ([]domain.Membership, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, firm_id, role, created_at, updated_at
		FROM firm_memberships WHERE firm_id = ?
		ORDER BY created_at, user_id`, firmID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Membership
	for rows.Next() {
		var m domain.Membership
		if err := rows.Scan(&m.UserID, &m.FirmID, &m.Role, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *membershipsRepo) CountByFirm(ctx context.Context, firmID string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM firm_memberships WHERE firm_id = ?`, firmID,
	).Scan(&n)
	return n, err
}
