package repository

import (
	"context"
	"time"

	"github.com/Kavitha8494/ca/internal/model"
)

// PostFilter narrows a post listing by type and date window on top of the
// usual pagination parameters.
type PostFilter struct {
	PageQuery
	Type     string
	DateFrom *time.Time
	DateTo   *time.Time
}

// NewsRepository defines data access for news links shown on the site.
type NewsRepository interface {
	Create(ctx context.Context, n *model.NewsItem) (*model.NewsItem, error)

	FindByID(ctx context.Context, id int64) (*model.NewsItem, error)

	// List returns news newest first. An empty category returns all
	// categories; Search matches the title or URL.
	List(ctx context.Context, category string, pq PageQuery) (*PageResult[model.NewsItem], error)

	Update(ctx context.Context, n *model.NewsItem) (*model.NewsItem, error)

	// Delete removes a news item by ID. It returns nil if the row was deleted
	// or did not exist.
	Delete(ctx context.Context, id int64) error
}

// PostRepository defines data access for dated posts (news, blogs,
// due-date reminders).
type PostRepository interface {
	Create(ctx context.Context, p *model.Post) (*model.Post, error)

	FindByID(ctx context.Context, id int64) (*model.Post, error)

	List(ctx context.Context, f PostFilter) (*PageResult[model.Post], error)

	Update(ctx context.Context, p *model.Post) (*model.Post, error)

	Delete(ctx context.Context, id int64) error
}

// AdminRepository defines data access for back-office accounts.
type AdminRepository interface {
	// FindByUsername returns the admin with the given username, or
	// sql.ErrNoRows.
	FindByUsername(ctx context.Context, username string) (*model.Admin, error)

	// Upsert creates the admin or replaces its password hash if the username
	// already exists.
	Upsert(ctx context.Context, username, passwordHash string) (*model.Admin, error)
}
