package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/repository"
)

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, c *model.ContactSubmission) (*model.ContactSubmission, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactSubmission), args.Error(1)
}

func (m *MockContactRepository) FindByID(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactSubmission), args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.ContactSubmission], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ContactSubmission]), args.Error(1)
}

func (m *MockContactRepository) MarkReviewed(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCareerRepository struct {
	mock.Mock
}

func (m *MockCareerRepository) Create(ctx context.Context, a *model.CareerApplication) (*model.CareerApplication, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CareerApplication), args.Error(1)
}

func (m *MockCareerRepository) FindByID(ctx context.Context, id int64) (*model.CareerApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CareerApplication), args.Error(1)
}

func (m *MockCareerRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.CareerApplication], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.CareerApplication]), args.Error(1)
}

func (m *MockCareerRepository) ResumePathExists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

type MockQueryRepository struct {
	mock.Mock
}

func (m *MockQueryRepository) Create(ctx context.Context, q *model.Query) (*model.Query, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Query), args.Error(1)
}

func (m *MockQueryRepository) FindByID(ctx context.Context, id int64) (*model.Query, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Query), args.Error(1)
}

func (m *MockQueryRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Query], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Query]), args.Error(1)
}
