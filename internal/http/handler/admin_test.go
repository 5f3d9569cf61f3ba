package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Kavitha8494/ca/internal/config"
	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/service"
	serviceMocks "github.com/Kavitha8494/ca/internal/service/mocks"
	"github.com/Kavitha8494/ca/internal/storage"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		Secret:      "test-secret",
		TokenExpiry: time.Hour,
		CookieName:  "admin_token",
	}
}

type adminMocks struct {
	auth     *serviceMocks.MockAuthService
	contacts *serviceMocks.MockContactService
	careers  *serviceMocks.MockCareerService
	queries  *serviceMocks.MockQueryService
	news     *serviceMocks.MockNewsService
	posts    *serviceMocks.MockPostService
}

func newAdminHandler() (*AdminHandler, adminMocks) {
	m := adminMocks{
		auth:     new(serviceMocks.MockAuthService),
		contacts: new(serviceMocks.MockContactService),
		careers:  new(serviceMocks.MockCareerService),
		queries:  new(serviceMocks.MockQueryService),
		news:     new(serviceMocks.MockNewsService),
		posts:    new(serviceMocks.MockPostService),
	}
	h := NewAdminHandler(m.auth, m.contacts, m.careers, m.queries, m.news, m.posts, testAuthConfig())
	return h, m
}

func TestAdminLogin(t *testing.T) {
	h, m := newAdminHandler()
	app := fiber.New()
	app.Post("/admin/login", h.Login)

	t.Run("success sets HttpOnly session cookie", func(t *testing.T) {
		m.auth.On("Login", mock.Anything, "admin", "pw").Return("signed-token", nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/admin/login", map[string]string{
			"username": "admin",
			"password": "pw",
		}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var sessionCookie *http.Cookie
		for _, ck := range resp.Cookies() {
			if ck.Name == "admin_token" {
				sessionCookie = ck
			}
		}
		require.NotNil(t, sessionCookie)
		assert.Equal(t, "signed-token", sessionCookie.Value)
		assert.True(t, sessionCookie.HttpOnly)

		// The token never appears in the body
		body, _ := io.ReadAll(resp.Body)
		assert.NotContains(t, string(body), "signed-token")
	})

	t.Run("bad credentials", func(t *testing.T) {
		m.auth.On("Login", mock.Anything, "admin", "wrong").Return("", service.ErrInvalidCredentials).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/admin/login", map[string]string{
			"username": "admin",
			"password": "wrong",
		}))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_CREDENTIALS", res.Error.Code)
	})
}

func TestAdminLogout(t *testing.T) {
	h, _ := newAdminHandler()
	app := fiber.New()
	app.Post("/admin/logout", h.Logout)

	resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/admin/logout", nil))

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var sessionCookie *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == "admin_token" {
			sessionCookie = ck
		}
	}
	require.NotNil(t, sessionCookie)
	assert.True(t, sessionCookie.Expires.Before(time.Now()))
}

func TestAdminListContacts(t *testing.T) {
	h, m := newAdminHandler()
	app := fiber.New()
	app.Get("/admin/contacts", h.ListContacts)

	t.Run("success with search", func(t *testing.T) {
		m.contacts.On("List", mock.Anything, 5, 0, "jane").
			Return(&service.ListResult[model.ContactSubmission]{
				Items: []model.ContactSubmission{{ID: 1, Name: "Jane Doe"}},
				Total: 1,
			}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/contacts?search=jane", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.ListResult[model.ContactSubmission]
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, 1, result.Total)
		m.contacts.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/contacts?limit=abc", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAdminReviewContact(t *testing.T) {
	h, m := newAdminHandler()
	app := fiber.New()
	app.Post("/admin/contacts/:id/review", h.ReviewContact)

	t.Run("success", func(t *testing.T) {
		m.contacts.On("Review", mock.Anything, int64(1)).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/admin/contacts/1/review", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "REVIEWED", body["status"])
	})

	t.Run("repeat review is a no-op", func(t *testing.T) {
		m.contacts.On("Review", mock.Anything, int64(2)).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/admin/contacts/2/review", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("unknown id", func(t *testing.T) {
		m.contacts.On("Review", mock.Anything, int64(3)).Return(service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/admin/contacts/3/review", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/admin/contacts/abc/review", nil))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "INVALID_ID", res.Error.Code)
	})
}

func TestAdminDownloadResume(t *testing.T) {
	h, m := newAdminHandler()
	app := fiber.New()
	app.Get("/admin/careers/:id/resume", h.DownloadResume)

	t.Run("streams the stored file", func(t *testing.T) {
		content := "resume body"
		m.careers.On("OpenResume", mock.Anything, int64(1)).Return(service.ResumeFile{
			Body: io.NopCloser(strings.NewReader(content)),
			Name: "John-Smith.pdf",
			Info: storage.ObjectInfo{Size: int64(len(content)), ContentType: "application/pdf"},
		}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/careers/1/resume", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "John-Smith.pdf")

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, content, string(body))
	})

	t.Run("unknown application", func(t *testing.T) {
		m.careers.On("OpenResume", mock.Anything, int64(9)).
			Return(service.ResumeFile{}, service.ErrNotFound).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/careers/9/resume", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestAdminNewsCRUD(t *testing.T) {
	h, m := newAdminHandler()
	app := fiber.New()
	app.Post("/admin/news", h.CreateNews)
	app.Put("/admin/news/:id", h.UpdateNews)
	app.Delete("/admin/news/:id", h.DeleteNews)

	t.Run("create", func(t *testing.T) {
		in := service.NewsInput{Category: "Business", Title: "Budget highlights", URL: "https://news.example/budget"}
		m.news.On("Create", mock.Anything, in).Return(&model.NewsItem{ID: 1, Title: in.Title}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/admin/news", in))

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("create with invalid fields", func(t *testing.T) {
		m.news.On("Create", mock.Anything, mock.Anything).
			Return(nil, &service.ValidationError{Errors: map[string]string{"category": "bad"}}).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/admin/news", service.NewsInput{}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body struct {
			Errors map[string]string `json:"errors"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Contains(t, body.Errors, "category")
	})

	t.Run("update unknown id", func(t *testing.T) {
		m.news.On("Update", mock.Anything, int64(9), mock.Anything).Return(nil, service.ErrNotFound).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPut, "/admin/news/9", service.NewsInput{
			Category: "Business", Title: "xxx", URL: "https://x.example",
		}))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete", func(t *testing.T) {
		m.news.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodDelete, "/admin/news/1", nil))

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}

func TestAdminPostsList(t *testing.T) {
	h, m := newAdminHandler()
	app := fiber.New()
	app.Get("/admin/posts", h.ListPosts)

	t.Run("type filter", func(t *testing.T) {
		m.posts.On("List", mock.Anything, service.PostListQuery{Type: "BLOGS", Limit: 5}).
			Return(&service.ListResult[model.Post]{
				Items: []model.Post{{ID: 1, Type: model.PostTypeBlog}},
				Total: 1,
			}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/posts?type=BLOGS", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		m.posts.AssertExpectations(t)
	})

	t.Run("date window", func(t *testing.T) {
		from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
		m.posts.On("List", mock.Anything, service.PostListQuery{DateFrom: &from, DateTo: &to, Limit: 5}).
			Return(&service.ListResult[model.Post]{Items: []model.Post{}, Total: 0}, nil).Once()

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/posts?dateFrom=2025-01-01&dateTo=2025-03-31", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		m.posts.AssertExpectations(t)
	})

	t.Run("bad date", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/posts?dateFrom=January", nil))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
