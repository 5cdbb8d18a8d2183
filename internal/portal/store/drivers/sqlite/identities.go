package sqlite

import (
	"context"
	"time"

	"github.com/harborfin/rollover/internal/portal/domain"
)

type identitiesRepo struct {
	db dbtx
}

const identityColumns = `id, email, first_name, last_name, password_hash, status, created_at, updated_at`

func scanIdentity(row interface{ Scan(...any) error }) (domain.Identity, error) {
	var i domain.Identity
	err := row.Scan(&i.ID, &i.Email, &i.FirstName, &i.LastName, &i.PasswordHash, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func (r *identitiesRepo) Create(ctx context.Context, i domain.Identity) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO identities (id, email, first_name, last_name, password_hash, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		i.ID, i.Email, i.FirstName, i.LastName, i.PasswordHash, i.Status, i.CreatedAt, i.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *identitiesRepo) GetByID(ctx context.Context, id string) (domain.Identity, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+identityColumns+` FROM identities WHERE id = ?`, id)
	i, err := scanIdentity(row)
	if err != nil {
		return domain.Identity{}, mapNotFound(err)
	}
	return i, nil
}

func (r *identitiesRepo) GetByEmail(ctx context.Context, email string) (domain.Identity, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+identityColumns+` FROM identities WHERE email = ?`, email)
	i, err := scanIdentity(row)
	if err != nil {
		return domain.Identity{}, mapNotFound(err)
	}
	return i, nil
}

func (r *identitiesRepo) UpdateProfile(ctx context.Context, id, firstName, lastName string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE identities SET first_name = ?, last_name = ?, updated_at = ?
		WHERE id = ?`,
		firstName, lastName, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *identitiesRepo) Activate(ctx context.Context, id, passwordHash string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE identities SET password_hash = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		passwordHash, domain.IdentityActive, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *identitiesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM identities WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
