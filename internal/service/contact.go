package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Kavitha8494/ca/internal/form"
	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/repository"
)

// ContactService defines the use cases around contact form submissions.
type ContactService interface {
	// Submit sanitizes and validates the raw form values, then persists the
	// submission. A *ValidationError is returned when any field is rejected.
	Submit(ctx context.Context, raw map[string]string) (*model.ContactSubmission, error)

	// List returns submissions using limit/offset and a total count.
	List(ctx context.Context, limit, offset int, search string) (*ListResult[model.ContactSubmission], error)

	// Get returns a single submission by its ID.
	Get(ctx context.Context, id int64) (*model.ContactSubmission, error)

	// Review marks a submission as reviewed. The action is idempotent:
	// reviewing twice succeeds without effect. An unknown id returns
	// ErrNotFound.
	Review(ctx context.Context, id int64) error
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService constructs a new ContactService.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) Submit(ctx context.Context, raw map[string]string) (*model.ContactSubmission, error) {
	p := form.SanitizeContact(raw)
	res := form.Validate(form.KindContact, p.Values())
	if !res.Valid {
		return nil, &ValidationError{Errors: res.Errors}
	}

	return s.repo.Create(ctx, &model.ContactSubmission{
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Message: p.Message,
	})
}

func (s *contactService) List(ctx context.Context, limit, offset int, search string) (*ListResult[model.ContactSubmission], error) {
	limit, offset = normalizePage(limit, offset)
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset, Search: search})
	if err != nil {
		return nil, err
	}
	return &ListResult[model.ContactSubmission]{Items: res.Items, Total: res.Total}, nil
}

func (s *contactService) Get(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *contactService) Review(ctx context.Context, id int64) error {
	changed, err := s.repo.MarkReviewed(ctx, id)
	if err != nil {
		return err
	}
	if changed {
		return nil
	}
	// Nothing changed: either the row is gone, or it was reviewed earlier and
	// repeating the action is a no-op.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
