package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/service"
	serviceMocks "github.com/Kavitha8494/ca/internal/service/mocks"
)

func testApp(t *testing.T) (*fiber.App, adminMocks, sqlmock.Sqlmock) {
	t.Helper()

	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	m := adminMocks{
		auth:     new(serviceMocks.MockAuthService),
		contacts: new(serviceMocks.MockContactService),
		careers:  new(serviceMocks.MockCareerService),
		queries:  new(serviceMocks.MockQueryService),
		news:     new(serviceMocks.MockNewsService),
		posts:    new(serviceMocks.MockPostService),
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	RegisterRoutes(app, db, Deps{
		Contacts: m.contacts,
		Careers:  m.careers,
		Queries:  m.queries,
		News:     m.news,
		Posts:    m.posts,
		Auth:     m.auth,
		AuthCfg:  testAuthConfig(),
	})
	return app, m, dbMock
}

func TestHealth(t *testing.T) {
	app, _, dbMock := testApp(t)

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "SERVICE_UNAVAILABLE", res.Error.Code)
	})
}

func TestLiveness(t *testing.T) {
	app, _, _ := testApp(t)

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRoutesRequireSession(t *testing.T) {
	app, m, _ := testApp(t)

	t.Run("no cookie", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/admin/contacts", nil))

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "UNAUTHORIZED", res.Error.Code)
	})

	t.Run("valid cookie passes through", func(t *testing.T) {
		m.auth.On("Verify", "good-token").Return("admin", nil).Once()
		m.contacts.On("List", mock.Anything, 5, 0, "").
			Return(&service.ListResult[model.ContactSubmission]{Items: []model.ContactSubmission{}, Total: 0}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/admin/contacts", nil)
		req.AddCookie(&http.Cookie{Name: "admin_token", Value: "good-token"})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("login itself is open", func(t *testing.T) {
		m.auth.On("Login", mock.Anything, "admin", "pw").Return("token", nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/admin/login", map[string]string{
			"username": "admin",
			"password": "pw",
		}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestPublicNewsListing(t *testing.T) {
	app, m, _ := testApp(t)

	m.news.On("List", mock.Anything, "Business", 5, 0, "").
		Return(&service.ListResult[model.NewsItem]{
			Items: []model.NewsItem{{ID: 1, Category: "Business"}},
			Total: 1,
		}, nil).Once()

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/api/news?category=Business", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	m.news.AssertExpectations(t)
}

func TestRouting(t *testing.T) {
	app, _, _ := testApp(t)

	t.Run("not found route", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/non-existent", nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := app.Test(httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "METHOD_NOT_ALLOWED", res.Error.Code)
	})
}
