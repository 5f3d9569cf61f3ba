package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/repository"
)

var careerCols = []string{
	"id", "first_name", "last_name", "email", "mobile_number", "gender", "position",
	"date_of_birth", "qualification", "website", "last_company_name",
	"experience_years", "experience_months", "reference", "resume_path", "created_at",
}

func sampleApplication() *model.CareerApplication {
	return &model.CareerApplication{
		FirstName:        "John",
		LastName:         "Smith",
		Email:            "john@example.com",
		MobileNumber:     "9876543210",
		Gender:           model.GenderMale,
		Position:         "Accountant",
		DateOfBirth:      time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC),
		Qualification:    "B.Com",
		Website:          "https://johnsmith.example",
		LastCompanyName:  "Acme Corp",
		ExperienceYears:  3,
		ExperienceMonths: 6,
		Reference:        "LinkedIn",
		ResumePath:       "resumes/john-smith-1700000000000-abcd1234.pdf",
	}
}

func careerRow(a *model.CareerApplication, id int64) *sqlmock.Rows {
	return sqlmock.NewRows(careerCols).AddRow(
		id, a.FirstName, a.LastName, a.Email, a.MobileNumber, string(a.Gender), a.Position,
		a.DateOfBirth, a.Qualification, a.Website, a.LastCompanyName,
		a.ExperienceYears, a.ExperienceMonths, a.Reference, a.ResumePath, time.Now(),
	)
}

func TestCareerPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCareerPostgres(db)
	ctx := context.Background()

	in := sampleApplication()

	mock.ExpectQuery("INSERT INTO career_applications").
		WithArgs(
			in.FirstName, in.LastName, in.Email, in.MobileNumber, in.Gender, in.Position,
			in.DateOfBirth, in.Qualification, in.Website, in.LastCompanyName,
			in.ExperienceYears, in.ExperienceMonths, in.Reference, in.ResumePath,
		).
		WillReturnRows(careerRow(in, 1))

	got, err := repo.Create(ctx, in)

	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, in.ResumePath, got.ResumePath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCareerPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCareerPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM career_applications").
		WithArgs("smith", "%smith%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery("SELECT (.+) FROM career_applications(.+)ORDER BY").
		WithArgs("smith", "%smith%", 5, 0).
		WillReturnRows(careerRow(sampleApplication(), 1))

	res, err := repo.List(ctx, repository.PageQuery{Limit: 5, Offset: 0, Search: "smith"})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Len(t, res.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCareerPostgres_ResumePathExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewCareerPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("resumes/known.pdf").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ResumePathExists(ctx, "resumes/known.pdf")

	assert.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("resumes/orphan.pdf").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err = repo.ResumePathExists(ctx, "resumes/orphan.pdf")

	assert.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
