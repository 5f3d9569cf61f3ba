package postgres

import (
	"context"
	"database/sql"

	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/repository"
)

// QueryPostgres is a PostgreSQL implementation of repository.QueryRepository.
type QueryPostgres struct {
	db *sql.DB
}

// NewQueryPostgres creates a new QueryPostgres repository.
func NewQueryPostgres(db *sql.DB) *QueryPostgres {
	return &QueryPostgres{db: db}
}

var _ repository.QueryRepository = (*QueryPostgres)(nil)

const queryColumns = `id, name, designation, organization, office_address, city, email,
		telephone_no, mobile_no, other_professional, subject, query_text, created_at`

func scanQuery(row interface{ Scan(dest ...any) error }) (*model.Query, error) {
	var q model.Query
	if err := row.Scan(
		&q.ID,
		&q.Name,
		&q.Designation,
		&q.Organization,
		&q.OfficeAddress,
		&q.City,
		&q.Email,
		&q.TelephoneNo,
		&q.MobileNo,
		&q.OtherProfessional,
		&q.Subject,
		&q.QueryText,
		&q.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &q, nil
}

// Create inserts a new query row and returns the stored record.
func (r *QueryPostgres) Create(ctx context.Context, m *model.Query) (*model.Query, error) {
	const q = `
		INSERT INTO queries (
			name, designation, organization, office_address, city, email,
			telephone_no, mobile_no, other_professional, subject, query_text
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + queryColumns
	return scanQuery(r.db.QueryRowContext(ctx, q,
		m.Name,
		m.Designation,
		m.Organization,
		m.OfficeAddress,
		m.City,
		m.Email,
		m.TelephoneNo,
		m.MobileNo,
		m.OtherProfessional,
		m.Subject,
		m.QueryText,
	))
}

// FindByID fetches a single query by its ID.
func (r *QueryPostgres) FindByID(ctx context.Context, id int64) (*model.Query, error) {
	const q = `
		SELECT ` + queryColumns + `
		FROM queries
		WHERE id = $1
	`
	return scanQuery(r.db.QueryRowContext(ctx, q, id))
}

// List returns queries using LIMIT/OFFSET pagination and a total count.
func (r *QueryPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Query], error) {
	search := likePattern(pq.Search)

	const qCount = `
		SELECT COUNT(*) FROM queries
		WHERE ($1 = '' OR name ILIKE $2 OR email ILIKE $2 OR subject ILIKE $2)
	`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, pq.Search, search).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + queryColumns + `
		FROM queries
		WHERE ($1 = '' OR name ILIKE $2 OR email ILIKE $2 OR subject ILIKE $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Search, search, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Query, 0)
	for rows.Next() {
		m, err := scanQuery(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Query]{Items: items, Total: total}, nil
}
