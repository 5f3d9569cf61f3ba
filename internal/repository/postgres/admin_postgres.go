package postgres

import (
	"context"
	"database/sql"

	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/repository"
)

// AdminPostgres is a PostgreSQL implementation of repository.AdminRepository.
type AdminPostgres struct {
	db *sql.DB
}

// NewAdminPostgres creates a new AdminPostgres repository.
func NewAdminPostgres(db *sql.DB) *AdminPostgres {
	return &AdminPostgres{db: db}
}

var _ repository.AdminRepository = (*AdminPostgres)(nil)

const adminColumns = `id, username, password_hash, created_at`

func scanAdmin(row interface{ Scan(dest ...any) error }) (*model.Admin, error) {
	var a model.Admin
	if err := row.Scan(
		&a.ID,
		&a.Username,
		&a.PasswordHash,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByUsername fetches an admin account by username.
func (r *AdminPostgres) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	const q = `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE username = $1
	`
	return scanAdmin(r.db.QueryRowContext(ctx, q, username))
}

// Upsert creates the admin or replaces its password hash.
func (r *AdminPostgres) Upsert(ctx context.Context, username, passwordHash string) (*model.Admin, error) {
	const q = `
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING ` + adminColumns
	return scanAdmin(r.db.QueryRowContext(ctx, q, username, passwordHash))
}
