package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Kavitha8494/ca/internal/form"
	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/repository"
	"github.com/Kavitha8494/ca/internal/storage"
	"github.com/Kavitha8494/ca/internal/upload"
)

// CareerService defines the use cases around career applications.
type CareerService interface {
	// Submit validates the form values and the attached resume together, then
	// stores the resume and persists the application. The resume is written
	// to storage only after every check passes; if the database insert fails
	// the stored file is deleted again so no orphan outlives the request.
	Submit(ctx context.Context, raw map[string]string, mf *multipart.Form) (*model.CareerApplication, error)

	// List returns applications using limit/offset and a total count.
	List(ctx context.Context, limit, offset int, search string) (*ListResult[model.CareerApplication], error)

	// Get returns a single application by its ID.
	Get(ctx context.Context, id int64) (*model.CareerApplication, error)

	// OpenResume returns a reader over the stored resume of an application
	// along with its object metadata. The caller must close the reader.
	OpenResume(ctx context.Context, id int64) (ResumeFile, error)
}

// ResumeFile is an open handle on a stored resume.
type ResumeFile struct {
	Body io.ReadCloser
	Name string
	Info storage.ObjectInfo
}

type careerService struct {
	repo  repository.CareerRepository
	store storage.Storage
}

// NewCareerService constructs a new CareerService.
func NewCareerService(repo repository.CareerRepository, store storage.Storage) CareerService {
	return &careerService{repo: repo, store: store}
}

func (s *careerService) Submit(ctx context.Context, raw map[string]string, mf *multipart.Form) (*model.CareerApplication, error) {
	p := form.SanitizeCareer(raw)
	res := form.Validate(form.KindCareer, p.Values())

	fh, err := upload.Resume(mf)
	if err != nil {
		var fe *upload.FieldError
		switch {
		case errors.Is(err, upload.ErrNoFile):
			res.Errors["resume"] = upload.RequiredMessage()
		case errors.As(err, &fe):
			res.Errors[fe.Field] = fe.Message
		default:
			return nil, err
		}
	}
	if len(res.Errors) > 0 {
		return nil, &ValidationError{Errors: res.Errors}
	}

	dob, err := time.Parse("2006-01-02", p.DateOfBirth)
	if err != nil {
		return nil, &ValidationError{Errors: map[string]string{"dob": "Date of birth is invalid"}}
	}
	years, _ := strconv.Atoi(p.ExperienceYears)
	months, _ := strconv.Atoi(p.ExperienceMonths)

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open resume: %w", err)
	}
	defer f.Close()

	key := resumeKey(fh.Filename)
	if _, err := s.store.Put(ctx, key, f, storage.PutOptions{
		Size:        fh.Size,
		ContentType: fh.Header.Get("Content-Type"),
		Metadata: map[string]string{
			"original-filename": fh.Filename,
		},
	}); err != nil {
		return nil, fmt.Errorf("store resume: %w", err)
	}

	app := &model.CareerApplication{
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Email:            p.Email,
		MobileNumber:     p.MobileNumber,
		Gender:           model.Gender(p.Gender),
		Position:         p.Position,
		DateOfBirth:      dob,
		Qualification:    p.Qualification,
		Website:          p.Website,
		LastCompanyName:  p.LastCompanyName,
		ExperienceYears:  years,
		ExperienceMonths: months,
		Reference:        p.Reference,
		ResumePath:       key,
	}
	stored, err := s.repo.Create(ctx, app)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *careerService) List(ctx context.Context, limit, offset int, search string) (*ListResult[model.CareerApplication], error) {
	limit, offset = normalizePage(limit, offset)
	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset, Search: search})
	if err != nil {
		return nil, err
	}
	return &ListResult[model.CareerApplication]{Items: res.Items, Total: res.Total}, nil
}

func (s *careerService) Get(ctx context.Context, id int64) (*model.CareerApplication, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *careerService) OpenResume(ctx context.Context, id int64) (ResumeFile, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return ResumeFile{}, err
	}
	body, info, err := s.store.Get(ctx, a.ResumePath)
	if err != nil {
		return ResumeFile{}, fmt.Errorf("open stored resume: %w", err)
	}
	name := fmt.Sprintf("%s-%s%s", a.FirstName, a.LastName, filepath.Ext(a.ResumePath))
	return ResumeFile{Body: body, Name: name, Info: info}, nil
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// resumeKey derives a collision-free storage key from the uploaded filename:
// resumes/<sanitized-basename>-<unix-millis>-<random><ext>.
func resumeKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = unsafeKeyChars.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "resume"
	}
	return fmt.Sprintf("resumes/%s-%d-%s%s", base, time.Now().UnixMilli(), uuid.New().String()[:8], ext)
}
