package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/service"
	serviceMocks "github.com/Kavitha8494/ca/internal/service/mocks"
)

func jsonRequest(method, target string, payload any) *http.Request {
	b, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSubmitContact(t *testing.T) {
	mockSvc := new(serviceMocks.MockContactService)
	app := fiber.New()
	app.Post("/api/contact", SubmitContact(mockSvc))

	t.Run("accepted", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.Anything).
			Return(&model.ContactSubmission{ID: 1}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/contact", map[string]string{
			"name":    "Jane Doe",
			"email":   "jane@example.com",
			"phone":   "+12025550123",
			"message": "I would like to know more about your services.",
		}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, true, body["success"])
		assert.NotEmpty(t, body["message"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation failure returns the error map", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.Anything).
			Return(nil, &service.ValidationError{Errors: map[string]string{
				"email": "Enter a valid email address",
			}}).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/contact", map[string]string{"email": "nope"}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body struct {
			Success bool              `json:"success"`
			Errors  map[string]string `json:"errors"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.False(t, body.Success)
		assert.Equal(t, "Enter a valid email address", body.Errors["email"])
	})

	t.Run("persistence failure yields a generic message", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.Anything).
			Return(nil, errors.New("pq: connection refused")).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/contact", map[string]string{"name": "x"}))

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body map[string]any
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, false, body["success"])
		// The DB error must not leak
		assert.NotContains(t, body["message"], "pq:")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestSubmitCareer(t *testing.T) {
	mockSvc := new(serviceMocks.MockCareerService)
	app := fiber.New()
	app.Post("/api/careers", SubmitCareer(mockSvc))

	multipartRequest := func(fields map[string]string, filename string) *http.Request {
		body := &bytes.Buffer{}
		w := multipart.NewWriter(body)
		for k, v := range fields {
			w.WriteField(k, v)
		}
		if filename != "" {
			part, _ := w.CreateFormFile("resume", filename)
			part.Write([]byte("resume content"))
		}
		w.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/careers", body)
		req.Header.Set("Content-Type", w.FormDataContentType())
		return req
	}

	t.Run("accepted", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.MatchedBy(func(raw map[string]string) bool {
			return raw["firstName"] == "John"
		}), mock.Anything).Return(&model.CareerApplication{ID: 1}, nil).Once()

		resp, _ := app.Test(multipartRequest(map[string]string{"firstName": "John"}, "cv.pdf"))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("field and file errors arrive together", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &service.ValidationError{Errors: map[string]string{
				"firstName": "First name is required",
				"resume":    "Resume is required",
			}}).Once()

		resp, _ := app.Test(multipartRequest(map[string]string{}, ""))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body struct {
			Errors map[string]string `json:"errors"`
		}
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Len(t, body.Errors, 2)
	})

	t.Run("non-multipart body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/careers", strings.NewReader("plain"))
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestSubmitQuery(t *testing.T) {
	mockSvc := new(serviceMocks.MockQueryService)
	app := fiber.New()
	app.Post("/api/query", SubmitQuery(mockSvc))

	t.Run("accepted", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.Anything).
			Return(&model.Query{ID: 3}, nil).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/query", map[string]string{
			"name": "Jane Doe",
		}))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("validation failure", func(t *testing.T) {
		mockSvc.On("Submit", mock.Anything, mock.Anything).
			Return(nil, &service.ValidationError{Errors: map[string]string{
				"mobileNo": "Mobile number is required",
			}}).Once()

		resp, _ := app.Test(jsonRequest(http.MethodPost, "/api/query", map[string]string{}))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestFormRules(t *testing.T) {
	app := fiber.New()
	app.Get("/api/forms/rules", FormRules())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/forms/rules", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var rules map[string][]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rules))
	assert.Contains(t, rules, "contact")
	assert.Contains(t, rules, "career")
	assert.Contains(t, rules, "query")

	// The exported career table carries the file rule the browser mirrors.
	var hasResume bool
	for _, r := range rules["career"] {
		if r["field"] == "resume" {
			hasResume = true
			assert.Equal(t, "file", r["check"])
		}
	}
	assert.True(t, hasResume)
}
