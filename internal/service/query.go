package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Kavitha8494/ca/internal/form"
	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/repository"
)

// QueryService defines the use cases around professional queries.
type QueryService interface {
	// Submit sanitizes and validates the raw form values, then persists the
	// query. A *ValidationError is returned when any field is rejected.
	Submit(ctx context.Context, raw map[string]string) (*model.Query, error)

	// List returns queries using limit/offset and a total count.
	List(ctx context.Context, limit, offset int, search string) (*ListResult[model.Query], error)

	// Get returns a single query by its ID.
	Get(ctx context.Context, id int64) (*model.Query, error)
}

type queryService struct {
	repo repository.QueryRepository
}

// NewQueryService constructs a new QueryService.
func NewQueryService(repo repository.QueryRepository) QueryService {
	return &queryService{repo: repo}
}

func (s *queryService) Submit(ctx context.Context, raw map[string]string) (*model.Query, error) {
	p := form.SanitizeQuery(raw)
	res := form.Validate(form.KindQuery, p.Values())
	if !res.Valid {
		return nil, &ValidationError{Errors: res.Errors}
	}

	return s.repo.Create(ctx, &model.Query{
		Name:              p.Name,
		Designation:       p.Designation,
		Organization:      p.Organization,
		OfficeAddress:     p.OfficeAddress,
		City:              p.City,
		Email:             p.Email,
		TelephoneNo:       p.TelephoneNo,
		MobileNo:          p.MobileNo,
		OtherProfessional: model.YesNo(p.OtherProfessional),
		Subject:           p.Subject,
		QueryText:         p.QueryText,
	})
}

func (s *queryService) List(ctx context.Context, limit, offset int, search string) (*ListResult[model.Query], error) {
	limit, offset = normalizePage(limit, offset)
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset, Search: search})
	if err != nil {
		return nil, err
	}
	return &ListResult[model.Query]{Items: res.Items, Total: res.Total}, nil
}

func (s *queryService) Get(ctx context.Context, id int64) (*model.Query, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return q, nil
}
