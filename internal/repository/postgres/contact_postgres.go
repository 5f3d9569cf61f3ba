package postgres

import (
	"context"
	"database/sql"

	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/repository"
)

// ContactPostgres is a PostgreSQL implementation of repository.ContactRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ContactPostgres struct {
	db *sql.DB
}

// NewContactPostgres creates a new ContactPostgres repository.
func NewContactPostgres(db *sql.DB) *ContactPostgres {
	return &ContactPostgres{db: db}
}

var _ repository.ContactRepository = (*ContactPostgres)(nil)

const contactColumns = `id, full_name, email, phone, message, status, created_at`

func scanContact(row interface{ Scan(dest ...any) error }) (*model.ContactSubmission, error) {
	var c model.ContactSubmission
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Message,
		&c.Status,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new submission row and returns the stored record.
func (r *ContactPostgres) Create(ctx context.Context, c *model.ContactSubmission) (*model.ContactSubmission, error) {
	const q = `
		INSERT INTO contact_submissions (full_name, email, phone, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + contactColumns
	return scanContact(r.db.QueryRowContext(ctx, q,
		c.Name,
		c.Email,
		c.Phone,
		c.Message,
		model.ContactStatusNew,
	))
}

// FindByID fetches a single submission by its ID.
func (r *ContactPostgres) FindByID(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	const q = `
		SELECT ` + contactColumns + `
		FROM contact_submissions
		WHERE id = $1
	`
	return scanContact(r.db.QueryRowContext(ctx, q, id))
}

// List returns submissions using LIMIT/OFFSET pagination and a total count.
func (r *ContactPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.ContactSubmission], error) {
	search := likePattern(pq.Search)

	const qCount = `
		SELECT COUNT(*) FROM contact_submissions
		WHERE ($1 = '' OR full_name ILIKE $2 OR email ILIKE $2)
	`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, pq.Search, search).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + contactColumns + `
		FROM contact_submissions
		WHERE ($1 = '' OR full_name ILIKE $2 OR email ILIKE $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Search, search, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ContactSubmission, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ContactSubmission]{Items: items, Total: total}, nil
}

// MarkReviewed flips a NEW submission to REVIEWED.
func (r *ContactPostgres) MarkReviewed(ctx context.Context, id int64) (bool, error) {
	const q = `
		UPDATE contact_submissions
		SET status = $1
		WHERE id = $2 AND status = $3
	`
	res, err := r.db.ExecContext(ctx, q, model.ContactStatusReviewed, id, model.ContactStatusNew)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
