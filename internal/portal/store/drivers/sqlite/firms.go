package sqlite

import (
	"context"

	"github.com/harborfin/rollover/internal/portal/domain"
)

type firmsRepo struct {
	db dbtx
}

func (r *firmsRepo) Create(ctx context.Context, f domain.Firm) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO firms (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		f.ID, f.Name, f.CreatedAt, f.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *firmsRepo) GetByID(ctx context.Context, id string) (domain.Firm, error) {
	var f domain.Firm
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at FROM firms WHERE id = ?`, id,
	).Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return domain.Firm{}, mapNotFound(err)
	}
	return f, nil
}

func (r *firmsRepo) GetByName(ctx context.Context, name string) (domain.Firm, error) {
	var f domain.Firm
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at FROM firms WHERE name = ?`, name,
	).Scan(&f.ID, &f.Name, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return domain.Firm{}, mapNotFound(err)
	}
	return f, nil
}
