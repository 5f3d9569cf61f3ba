package repository

import (
	"context"

	"github.com/Kavitha8494/ca/internal/model"
)

// ContactRepository defines data access for contact form submissions.
// No business logic here — strictly persistence operations.
type ContactRepository interface {
	// Create inserts a new submission and returns it with DB-assigned fields
	// (id, created_at) populated.
	Create(ctx context.Context, c *model.ContactSubmission) (*model.ContactSubmission, error)

	// FindByID returns a submission by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.ContactSubmission, error)

	// List returns a paginated page of submissions, newest first. Search
	// matches name and email.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.ContactSubmission], error)

	// MarkReviewed flips a NEW submission to REVIEWED. The returned bool
	// reports whether a row changed; false means the id is unknown or the
	// submission was already reviewed.
	MarkReviewed(ctx context.Context, id int64) (bool, error)
}

// CareerRepository defines data access for career applications.
type CareerRepository interface {
	Create(ctx context.Context, a *model.CareerApplication) (*model.CareerApplication, error)

	FindByID(ctx context.Context, id int64) (*model.CareerApplication, error)

	// List returns a paginated page of applications, newest first. Search
	// matches name, email and position.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.CareerApplication], error)

	// ResumePathExists reports whether any application references the given
	// storage key. Used by the orphan sweeper.
	ResumePathExists(ctx context.Context, path string) (bool, error)
}

// QueryRepository defines data access for professional queries.
type QueryRepository interface {
	Create(ctx context.Context, q *model.Query) (*model.Query, error)

	FindByID(ctx context.Context, id int64) (*model.Query, error)

	// List returns a paginated page of queries, newest first. Search matches
	// name, email and subject.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Query], error)
}
