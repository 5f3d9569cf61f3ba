package postgres

import (
	"context"
	"database/sql"

	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/repository"
)

// PostPostgres is a PostgreSQL implementation of repository.PostRepository.
type PostPostgres struct {
	db *sql.DB
}

// NewPostPostgres creates a new PostPostgres repository.
func NewPostPostgres(db *sql.DB) *PostPostgres {
	return &PostPostgres{db: db}
}

var _ repository.PostRepository = (*PostPostgres)(nil)

const postColumns = `id, type, content, link_url, date, created_at`

func scanPost(row interface{ Scan(dest ...any) error }) (*model.Post, error) {
	var p model.Post
	if err := row.Scan(
		&p.ID,
		&p.Type,
		&p.Content,
		&p.LinkURL,
		&p.Date,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new post row and returns the stored record.
func (r *PostPostgres) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	const q = `
		INSERT INTO posts (type, content, link_url, date)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + postColumns
	return scanPost(r.db.QueryRowContext(ctx, q, p.Type, p.Content, p.LinkURL, p.Date))
}

// FindByID fetches a single post by its ID.
func (r *PostPostgres) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	const q = `
		SELECT ` + postColumns + `
		FROM posts
		WHERE id = $1
	`
	return scanPost(r.db.QueryRowContext(ctx, q, id))
}

// List returns posts using LIMIT/OFFSET pagination and a total count,
// optionally narrowed by type and date window.
func (r *PostPostgres) List(ctx context.Context, f repository.PostFilter) (*repository.PageResult[model.Post], error) {
	search := likePattern(f.Search)

	const qCount = `
		SELECT COUNT(*) FROM posts
		WHERE ($1 = '' OR type = $1)
		AND ($2 = '' OR content ILIKE $3)
		AND ($4::date IS NULL OR date >= $4)
		AND ($5::date IS NULL OR date <= $5)
	`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, f.Type, f.Search, search, f.DateFrom, f.DateTo).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + postColumns + `
		FROM posts
		WHERE ($1 = '' OR type = $1)
		AND ($2 = '' OR content ILIKE $3)
		AND ($4::date IS NULL OR date >= $4)
		AND ($5::date IS NULL OR date <= $5)
		ORDER BY date DESC, id DESC
		LIMIT $6 OFFSET $7
	`
	rows, err := r.db.QueryContext(ctx, qList, f.Type, f.Search, search, f.DateFrom, f.DateTo, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Post]{Items: items, Total: total}, nil
}

// Update replaces the mutable fields of a post and returns the stored record,
// or sql.ErrNoRows if the id is unknown.
func (r *PostPostgres) Update(ctx context.Context, p *model.Post) (*model.Post, error) {
	const q = `
		UPDATE posts
		SET type = $1, content = $2, link_url = $3, date = $4
		WHERE id = $5
		RETURNING ` + postColumns
	return scanPost(r.db.QueryRowContext(ctx, q, p.Type, p.Content, p.LinkURL, p.Date, p.ID))
}

// Delete removes a post by ID. It does not return an error if the row does
// not exist.
func (r *PostPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM posts WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
