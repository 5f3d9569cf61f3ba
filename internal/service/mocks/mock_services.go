package mocks

import (
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"

	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/service"
)

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, raw map[string]string) (*model.ContactSubmission, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactSubmission), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context, limit, offset int, search string) (*service.ListResult[model.ContactSubmission], error) {
	args := m.Called(ctx, limit, offset, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.ContactSubmission]), args.Error(1)
}

func (m *MockContactService) Get(ctx context.Context, id int64) (*model.ContactSubmission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactSubmission), args.Error(1)
}

func (m *MockContactService) Review(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCareerService struct {
	mock.Mock
}

func (m *MockCareerService) Submit(ctx context.Context, raw map[string]string, mf *multipart.Form) (*model.CareerApplication, error) {
	args := m.Called(ctx, raw, mf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CareerApplication), args.Error(1)
}

func (m *MockCareerService) List(ctx context.Context, limit, offset int, search string) (*service.ListResult[model.CareerApplication], error) {
	args := m.Called(ctx, limit, offset, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.CareerApplication]), args.Error(1)
}

func (m *MockCareerService) Get(ctx context.Context, id int64) (*model.CareerApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CareerApplication), args.Error(1)
}

func (m *MockCareerService) OpenResume(ctx context.Context, id int64) (service.ResumeFile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.ResumeFile), args.Error(1)
}

type MockQueryService struct {
	mock.Mock
}

func (m *MockQueryService) Submit(ctx context.Context, raw map[string]string) (*model.Query, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Query), args.Error(1)
}

func (m *MockQueryService) List(ctx context.Context, limit, offset int, search string) (*service.ListResult[model.Query], error) {
	args := m.Called(ctx, limit, offset, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Query]), args.Error(1)
}

func (m *MockQueryService) Get(ctx context.Context, id int64) (*model.Query, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Query), args.Error(1)
}

type MockNewsService struct {
	mock.Mock
}

func (m *MockNewsService) Create(ctx context.Context, in service.NewsInput) (*model.NewsItem, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsItem), args.Error(1)
}

func (m *MockNewsService) Update(ctx context.Context, id int64, in service.NewsInput) (*model.NewsItem, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsItem), args.Error(1)
}

func (m *MockNewsService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNewsService) Get(ctx context.Context, id int64) (*model.NewsItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsItem), args.Error(1)
}

func (m *MockNewsService) List(ctx context.Context, category string, limit, offset int, search string) (*service.ListResult[model.NewsItem], error) {
	args := m.Called(ctx, category, limit, offset, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.NewsItem]), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) Create(ctx context.Context, in service.PostInput) (*model.Post, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Update(ctx context.Context, id int64, in service.PostInput) (*model.Post, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostService) Get(ctx context.Context, id int64) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) List(ctx context.Context, q service.PostListQuery) (*service.ListResult[model.Post], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Post]), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}
