package postgres

import (
	"context"
	"database/sql"

	"github.com/Kavitha8494/ca/internal/model"
	"github.com/Kavitha8494/ca/internal/repository"
)

// CareerPostgres is a PostgreSQL implementation of repository.CareerRepository.
type CareerPostgres struct {
	db *sql.DB
}

// NewCareerPostgres creates a new CareerPostgres repository.
func NewCareerPostgres(db *sql.DB) *CareerPostgres {
	return &CareerPostgres{db: db}
}

var _ repository.CareerRepository = (*CareerPostgres)(nil)

const careerColumns = `id, first_name, last_name, email, mobile_number, gender, position,
		date_of_birth, qualification, website, last_company_name,
		experience_years, experience_months, reference, resume_path, created_at`

func scanCareer(row interface{ Scan(dest ...any) error }) (*model.CareerApplication, error) {
	var a model.CareerApplication
	if err := row.Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.Email,
		&a.MobileNumber,
		&a.Gender,
		&a.Position,
		&a.DateOfBirth,
		&a.Qualification,
		&a.Website,
		&a.LastCompanyName,
		&a.ExperienceYears,
		&a.ExperienceMonths,
		&a.Reference,
		&a.ResumePath,
		&a.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new application row and returns the stored record.
func (r *CareerPostgres) Create(ctx context.Context, a *model.CareerApplication) (*model.CareerApplication, error) {
	const q = `
		INSERT INTO career_applications (
			first_name, last_name, email, mobile_number, gender, position,
			date_of_birth, qualification, website, last_company_name,
			experience_years, experience_months, reference, resume_path
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + careerColumns
	return scanCareer(r.db.QueryRowContext(ctx, q,
		a.FirstName,
		a.LastName,
		a.Email,
		a.MobileNumber,
		a.Gender,
		a.Position,
		a.DateOfBirth,
		a.Qualification,
		a.Website,
		a.LastCompanyName,
		a.ExperienceYears,
		a.ExperienceMonths,
		a.Reference,
		a.ResumePath,
	))
}

// FindByID fetches a single application by its ID.
func (r *CareerPostgres) FindByID(ctx context.Context, id int64) (*model.CareerApplication, error) {
	const q = `
		SELECT ` + careerColumns + `
		FROM career_applications
		WHERE id = $1
	`
	return scanCareer(r.db.QueryRowContext(ctx, q, id))
}

// List returns applications using LIMIT/OFFSET pagination and a total count.
func (r *CareerPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.CareerApplication], error) {
	search := likePattern(pq.Search)

	const qCount = `
		SELECT COUNT(*) FROM career_applications
		WHERE ($1 = '' OR first_name ILIKE $2 OR last_name ILIKE $2 OR email ILIKE $2 OR position ILIKE $2)
	`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, pq.Search, search).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + careerColumns + `
		FROM career_applications
		WHERE ($1 = '' OR first_name ILIKE $2 OR last_name ILIKE $2 OR email ILIKE $2 OR position ILIKE $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Search, search, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.CareerApplication, 0)
	for rows.Next() {
		a, err := scanCareer(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.CareerApplication]{Items: items, Total: total}, nil
}

// ResumePathExists reports whether any application references the storage key.
func (r *CareerPostgres) ResumePathExists(ctx context.Context, path string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM career_applications WHERE resume_path = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, path).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
