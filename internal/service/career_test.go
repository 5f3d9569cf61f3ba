package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/repository/mocks"
	"github.com/Kavitha8494/ca/internal/storage"
	storagemocks "github.com/Kavitha8494/ca/internal/storage/mocks"
)

func validCareerForm() map[string]string {
	return map[string]string{
		"firstName":             "John",
		"lastName":              "Smith",
		"email":                 "john@example.com",
		"mobileNumber":          "9876543210",
		"gender":                "MALE",
		"position":              "Accountant",
		"dob":                   "1995-06-15",
		"qualification":         "B.Com",
		"lastCompanyName":       "Acme Corp",
		"yearOfExperienceYear":  "3",
		"yearOfExperienceMonth": "6",
	}
}

func resumeForm(t *testing.T, filename string) *multipart.Form {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("resume content"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm
}

func TestCareerService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("valid application stores resume then record", func(t *testing.T) {
		repo := new(mocks.MockCareerRepository)
		store := new(storagemocks.MockStorage)
		svc := NewCareerService(repo, store)

		store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "resumes/cv-") && strings.HasSuffix(key, ".pdf")
		}), mock.Anything, mock.Anything).Return(storage.ObjectInfo{Size: 14}, nil)

		stored := &model.CareerApplication{ID: 1}
		repo.On("Create", ctx, mock.MatchedBy(func(a *model.CareerApplication) bool {
			return a.FirstName == "John" &&
				a.ExperienceYears == 3 && a.ExperienceMonths == 6 &&
				strings.HasPrefix(a.ResumePath, "resumes/")
		})).Return(stored, nil)

		got, err := svc.Submit(ctx, validCareerForm(), resumeForm(t, "cv.pdf"))

		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		store.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("missing resume joins the field errors", func(t *testing.T) {
		repo := new(mocks.MockCareerRepository)
		store := new(storagemocks.MockStorage)
		svc := NewCareerService(repo, store)

		raw := validCareerForm()
		raw["firstName"] = ""

		got, err := svc.Submit(ctx, raw, nil)

		assert.Nil(t, got)
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Contains(t, vErr.Errors, "firstName")
		assert.Equal(t, "Resume is required", vErr.Errors["resume"])
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejected resume type blocks storage", func(t *testing.T) {
		repo := new(mocks.MockCareerRepository)
		store := new(storagemocks.MockStorage)
		svc := NewCareerService(repo, store)

		got, err := svc.Submit(ctx, validCareerForm(), resumeForm(t, "cv.exe"))

		assert.Nil(t, got)
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "Only PDF, DOC, and DOCX files are allowed", vErr.Errors["resume"])
		store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("db failure rolls back the stored resume", func(t *testing.T) {
		repo := new(mocks.MockCareerRepository)
		store := new(storagemocks.MockStorage)
		svc := NewCareerService(repo, store)

		var putKey string
		store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { putKey = args.String(1) }).
			Return(storage.ObjectInfo{}, nil)
		repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("insert failed"))
		store.On("Delete", ctx, mock.MatchedBy(func(key string) bool { return key == putKey })).Return(nil)

		got, err := svc.Submit(ctx, validCareerForm(), resumeForm(t, "cv.pdf"))

		assert.Nil(t, got)
		assert.ErrorContains(t, err, "db save failed")
		store.AssertCalled(t, "Delete", ctx, mock.Anything)
	})

	t.Run("storage failure surfaces without touching the db", func(t *testing.T) {
		repo := new(mocks.MockCareerRepository)
		store := new(storagemocks.MockStorage)
		svc := NewCareerService(repo, store)

		store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, errors.New("bucket gone"))

		_, err := svc.Submit(ctx, validCareerForm(), resumeForm(t, "cv.pdf"))

		assert.ErrorContains(t, err, "store resume")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestResumeKey(t *testing.T) {
	key := resumeKey("My Résumé (final).PDF")

	assert.True(t, strings.HasPrefix(key, "resumes/"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))
	assert.NotContains(t, key, " ")
	assert.NotContains(t, key, "(")

	// Two keys from the same filename never collide.
	assert.NotEqual(t, key, resumeKey("My Résumé (final).PDF"))
}
