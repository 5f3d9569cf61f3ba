package service

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/repository"
)

// NewsInput carries the editable fields of a news link.
type NewsInput struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

// PostInput carries the editable fields of a dated post. Date uses the
// YYYY-MM-DD wire format.
type PostInput struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	LinkURL string `json:"link_url"`
	Date    string `json:"date"`
}

// NewsService manages the curated news links shown on the public site.
type NewsService interface {
	Create(ctx context.Context, in NewsInput) (*model.NewsItem, error)
	Update(ctx context.Context, id int64, in NewsInput) (*model.NewsItem, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*model.NewsItem, error)
	List(ctx context.Context, category string, limit, offset int, search string) (*ListResult[model.NewsItem], error)
}

// PostListQuery filters the post listing. Nil date bounds mean unbounded.
type PostListQuery struct {
	Type     string
	DateFrom *time.Time
	DateTo   *time.Time
	Limit    int
	Offset   int
	Search   string
}

// PostService manages dated posts: news blurbs, blog posts, and due-date
// reminders.
type PostService interface {
	Create(ctx context.Context, in PostInput) (*model.Post, error)
	Update(ctx context.Context, id int64, in PostInput) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (*model.Post, error)
	List(ctx context.Context, q PostListQuery) (*ListResult[model.Post], error)
}

type newsService struct {
	repo repository.NewsRepository
}

// NewNewsService constructs a new NewsService.
func NewNewsService(repo repository.NewsRepository) NewsService {
	return &newsService{repo: repo}
}

var newsCategories = map[string]bool{
	model.NewsCategoryBusiness:      true,
	model.NewsCategoryNational:      true,
	model.NewsCategoryInternational: true,
}

func validateNews(in NewsInput) map[string]string {
	errs := make(map[string]string)
	if !newsCategories[in.Category] {
		errs["category"] = "Category must be Business, National, or International"
	}
	if len(strings.TrimSpace(in.Title)) < 3 {
		errs["title"] = "Title must be at least 3 characters"
	}
	if !isHTTPURL(in.URL) {
		errs["url"] = "URL must start with http:// or https://"
	}
	return errs
}

func (s *newsService) Create(ctx context.Context, in NewsInput) (*model.NewsItem, error) {
	if errs := validateNews(in); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}
	return s.repo.Create(ctx, &model.NewsItem{
		Category: in.Category,
		Title:    strings.TrimSpace(in.Title),
		URL:      strings.TrimSpace(in.URL),
	})
}

func (s *newsService) Update(ctx context.Context, id int64, in NewsInput) (*model.NewsItem, error) {
	if errs := validateNews(in); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}
	n, err := s.repo.Update(ctx, &model.NewsItem{
		ID:       id,
		Category: in.Category,
		Title:    strings.TrimSpace(in.Title),
		URL:      strings.TrimSpace(in.URL),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

func (s *newsService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *newsService) Get(ctx context.Context, id int64) (*model.NewsItem, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

func (s *newsService) List(ctx context.Context, category string, limit, offset int, search string) (*ListResult[model.NewsItem], error) {
	if category != "" && !newsCategories[category] {
		return nil, &ValidationError{Errors: map[string]string{"category": "Category must be Business, National, or International"}}
	}
	limit, offset = normalizePage(limit, offset)
	res, err := s.repo.List(ctx, category, repository.PageQuery{Limit: limit, Offset: offset, Search: search})
	if err != nil {
		return nil, err
	}
	return &ListResult[model.NewsItem]{Items: res.Items, Total: res.Total}, nil
}

type postService struct {
	repo repository.PostRepository
}

// NewPostService constructs a new PostService.
func NewPostService(repo repository.PostRepository) PostService {
	return &postService{repo: repo}
}

var postTypes = map[string]bool{
	string(model.PostTypeNews):     true,
	string(model.PostTypeReminder): true,
	string(model.PostTypeBlog):     true,
}

var htmlTags = regexp.MustCompile(`<[^>]*>`)

func validatePost(in PostInput) (time.Time, map[string]string) {
	errs := make(map[string]string)
	if !postTypes[in.Type] {
		errs["type"] = "Type must be NEWS, DUE_DATE_REMAINDER, or BLOGS"
	}
	// Editors paste rich text; length is judged on the visible text only.
	plain := strings.TrimSpace(htmlTags.ReplaceAllString(in.Content, ""))
	if len(plain) < 10 {
		errs["content"] = "Content must be at least 10 characters"
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		errs["date"] = "Date must be a valid YYYY-MM-DD date"
	}
	if in.LinkURL != "" && !isHTTPURL(in.LinkURL) {
		errs["link_url"] = "Link must start with http:// or https://"
	}
	return date, errs
}

func (s *postService) Create(ctx context.Context, in PostInput) (*model.Post, error) {
	date, errs := validatePost(in)
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}
	return s.repo.Create(ctx, &model.Post{
		Type:    model.PostType(in.Type),
		Content: in.Content,
		LinkURL: strings.TrimSpace(in.LinkURL),
		Date:    date,
	})
}

func (s *postService) Update(ctx context.Context, id int64, in PostInput) (*model.Post, error) {
	date, errs := validatePost(in)
	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}
	p, err := s.repo.Update(ctx, &model.Post{
		ID:      id,
		Type:    model.PostType(in.Type),
		Content: in.Content,
		LinkURL: strings.TrimSpace(in.LinkURL),
		Date:    date,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *postService) Get(ctx context.Context, id int64) (*model.Post, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *postService) List(ctx context.Context, q PostListQuery) (*ListResult[model.Post], error) {
	if q.Type != "" && !postTypes[q.Type] {
		return nil, &ValidationError{Errors: map[string]string{"type": "Type must be NEWS, DUE_DATE_REMAINDER, or BLOGS"}}
	}
	limit, offset := normalizePage(q.Limit, q.Offset)
	res, err := s.repo.List(ctx, repository.PostFilter{
		PageQuery: repository.PageQuery{Limit: limit, Offset: offset, Search: q.Search},
		Type:      q.Type,
		DateFrom:  q.DateFrom,
		DateTo:    q.DateTo,
	})
	if err != nil {
		return nil, err
	}
	return &ListResult[model.Post]{Items: res.Items, Total: res.Total}, nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
