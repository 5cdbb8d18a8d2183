package sqlite

import (
	"context"

	"github.com/harborfin/rollover/internal/portal/domain"
)

type grantsRepo struct {
	db dbtx
}

func (r *grantsRepo) Create(ctx context.Context, g domain.Grant) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO client_access (client_id, advisor_id, firm_id, granted_by, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		g.ClientID, g.AdvisorID, g.FirmID, g.GrantedBy, g.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *grantsRepo) Get(ctx context.Context, clientID, advisorID string) (domain.Grant, error) {
	var g domain.Grant
	err := r.db.QueryRowContext(ctx, `
		SELECT client_id, advisor_id, firm_id, granted_by, created_at
		FROM client_access WHERE client_id = ? AND advisor_id = ?`,
		clientID, advisorID,
	).Scan(&g.ClientID, &g.AdvisorID, &g.FirmID, &g.GrantedBy, &g.CreatedAt)
	if err != nil {
		return domain.Grant{}, mapNotFound(err)
	}
	return g, nil
}

func (r *grantsRepo) Delete(ctx context.Context, clientID, advisorID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM client_access WHERE client_id = ? AND advisor_id = ?`,
		clientID, advisorID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *grantsRepo) ListByAdvisor(ctx context.Context, advisorID string) ([]domain.Grant, error) {
	return r.list(ctx, `
		SELECT client_id, advisor_id, firm_id, granted_by, created_at
		FROM client_access WHERE advisor_id = ?
		ORDER BY created_at, client_id`, advisorID)
}

func (r *grantsRepo) ListByClient(ctx context.Context, clientID string) ([]domain.Grant, error) {
	return r.list(ctx, `
		SELECT client_id, advisor_id, firm_id, granted_by, created_at
		FROM client_access WHERE client_id = ?
		ORDER BY created_at, advisor_id`, clientID)
}

func (r *grantsRepo) list(ctx context.Context, query string, arg any) ([]domain.Grant, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Grant
	for rows.Next() {
		var g domain.Grant
		if err := rows.Scan(&g.ClientID, &g.AdvisorID, &g.FirmID, &g.GrantedBy, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
