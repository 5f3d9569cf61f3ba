package postgres

import (
	"context"
	"database/sql"

	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/repository"
)

// NewsPostgres is a PostgreSQL implementation of repository.NewsRepository.
type NewsPostgres struct {
	db *sql.DB
}

// NewNewsPostgres creates a new NewsPostgres repository.
func NewNewsPostgres(db *sql.DB) *NewsPostgres {
	return &NewsPostgres{db: db}
}

var _ repository.NewsRepository = (*NewsPostgres)(nil)

const newsColumns = `id, category, title, url, created_at`

func scanNews(row interface{ Scan(dest ...any) error }) (*model.NewsItem, error) {
	var n model.NewsItem
	if err := row.Scan(
		&n.ID,
		&n.Category,
		&n.Title,
		&n.URL,
		&n.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &n, nil
}

// Create inserts a new news row and returns the stored record.
func (r *NewsPostgres) Create(ctx context.Context, n *model.NewsItem) (*model.NewsItem, error) {
	const q = `
		INSERT INTO news (category, title, url)
		VALUES ($1, $2, $3)
		RETURNING ` + newsColumns
	return scanNews(r.db.QueryRowContext(ctx, q, n.Category, n.Title, n.URL))
}

// FindByID fetches a single news item by its ID.
func (r *NewsPostgres) FindByID(ctx context.Context, id int64) (*model.NewsItem, error) {
	const q = `
		SELECT ` + newsColumns + `
		FROM news
		WHERE id = $1
	`
	return scanNews(r.db.QueryRowContext(ctx, q, id))
}

// List returns news items using LIMIT/OFFSET pagination and a total count.
func (r *NewsPostgres) List(ctx context.Context, category string, pq repository.PageQuery) (*repository.PageResult[model.NewsItem], error) {
	search := likePattern(pq.Search)

	const qCount = `
		SELECT COUNT(*) FROM news
		WHERE ($1 = '' OR category = $1)
		AND ($2 = '' OR title ILIKE $3 OR url ILIKE $3)
	`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, category, pq.Search, search).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + newsColumns + `
		FROM news
		WHERE ($1 = '' OR category = $1)
		AND ($2 = '' OR title ILIKE $3 OR url ILIKE $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4 OFFSET $5
	`
	rows, err := r.db.QueryContext(ctx, qList, category, pq.Search, search, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.NewsItem, 0)
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.NewsItem]{Items: items, Total: total}, nil
}

// Update replaces the mutable fields of a news item and returns the stored
// record, or sql.ErrNoRows if the id is unknown.
func (r *NewsPostgres) Update(ctx context.Context, n *model.NewsItem) (*model.NewsItem, error) {
	const q = `
		UPDATE news
		SET category = $1, title = $2, url = $3
		WHERE id = $4
		RETURNING ` + newsColumns
	return scanNews(r.db.QueryRowContext(ctx, q, n.Category, n.Title, n.URL, n.ID))
}

// Delete removes a news item by ID. It does not return an error if the row
// does not exist.
func (r *NewsPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM news WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
