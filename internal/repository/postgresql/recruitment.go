package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/recruitment"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type jobPostingRepositoryImpl struct {
	db *database.DB
}

func NewJobPostingRepository(db *database.DB) recruitment.JobPostingRepository {
	return &jobPostingRepositoryImpl{db: db}
}

const jobPostingSelect = `
	SELECT jp.id, jp.title, jp.department_id, d.name, jp.location, jp.employment_type,
		jp.description, jp.requirements, jp.salary_min, jp.salary_max, jp.is_active,
		(SELECT COUNT(*) FROM job_applications ja WHERE ja.job_posting_id = jp.id),
		jp.created_at, jp.updated_at
	FROM job_postings jp
	LEFT JOIN departments d ON d.id = jp.department_id
`

func scanJobPosting(row pgx.Row) (recruitment.JobPosting, error) {
	var jp recruitment.JobPosting
	err := row.Scan(
		&jp.ID, &jp.Title, &jp.DepartmentID, &jp.DepartmentName, &jp.Location, &jp.EmploymentType,
		&jp.Description, &jp.Requirements, &jp.SalaryMin, &jp.SalaryMax, &jp.IsActive,
		&jp.ApplicationCount, &jp.CreatedAt, &jp.UpdatedAt,
	)
	return jp, err
}

func (r *jobPostingRepositoryImpl) List(ctx context.Context) ([]recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, jobPostingSelect+` ORDER BY jp.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list job postings: %w", err)
	}
	defer rows.Close()

	var postings []recruitment.JobPosting
	for rows.Next() {
		jp, err := scanJobPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job posting: %w", err)
		}
		postings = append(postings, jp)
	}
	return postings, rows.Err()
}

func (r *jobPostingRepositoryImpl) GetByID(ctx context.Context, id string) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	jp, err := scanJobPosting(q.QueryRow(ctx, jobPostingSelect+` WHERE jp.id = $1`, id))
	if err != nil {
		return recruitment.JobPosting{}, notFound(err, recruitment.ErrJobPostingNotFound, "get job posting")
	}
	return jp, nil
}

func (r *jobPostingRepositoryImpl) Create(ctx context.Context, posting recruitment.JobPosting) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_postings (
			id, title, department_id, location, employment_type, description, requirements,
			salary_min, salary_max, is_active, created_at, updated_at
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id
	`
	var id string
	err := q.QueryRow(ctx, query,
		posting.Title, posting.DepartmentID, posting.Location, posting.EmploymentType,
		posting.Description, posting.Requirements, posting.SalaryMin, posting.SalaryMax, posting.IsActive,
	).Scan(&id)
	if err != nil {
		if pgErrorCode(err) == foreignKeyViolation {
			return recruitment.JobPosting{}, recruitment.ErrDepartmentNotFound
		}
		return recruitment.JobPosting{}, fmt.Errorf("create job posting: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *jobPostingRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE job_postings SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("update job posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrJobPostingNotFound
	}
	return nil
}

type jobApplicationRepositoryImpl struct {
	db *database.DB
}

func NewJobApplicationRepository(db *database.DB) recruitment.JobApplicationRepository {
	return &jobApplicationRepositoryImpl{db: db}
}

const jobApplicationSelect = `
	SELECT ja.id, ja.job_posting_id, ja.candidate_name, ja.candidate_email, ja.candidate_phone,
		ja.resume_url, ja.cover_letter, ja.status, ja.rating, ja.created_at, ja.updated_at,
		jp.title, d.name
	FROM job_applications ja
	JOIN job_postings jp ON jp.id = ja.job_posting_id
	LEFT JOIN departments d ON d.id = jp.department_id
`

func scanJobApplication(row pgx.Row) (recruitment.JobApplication, error) {
	var ja recruitment.JobApplication
	err := row.Scan(
		&ja.ID, &ja.JobPostingID, &ja.CandidateName, &ja.CandidateEmail, &ja.CandidatePhone,
		&ja.ResumeURL, &ja.CoverLetter, &ja.Status, &ja.Rating, &ja.CreatedAt, &ja.UpdatedAt,
		&ja.JobTitle, &ja.DepartmentName,
	)
	return ja, err
}

func (r *jobApplicationRepositoryImpl) List(ctx context.Context) ([]recruitment.JobApplication, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, jobApplicationSelect+` ORDER BY ja.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list job applications: %w", err)
	}
	defer rows.Close()

	var applications []recruitment.JobApplication
	for rows.Next() {
		ja, err := scanJobApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job application: %w", err)
		}
		applications = append(applications, ja)
	}
	return applications, rows.Err()
}

func (r *jobApplicationRepositoryImpl) GetByID(ctx context.Context, id string) (recruitment.JobApplication, error) {
	q := GetQuerier(ctx, r.db)

	ja, err := scanJobApplication(q.QueryRow(ctx, jobApplicationSelect+` WHERE ja.id = $1`, id))
	if err != nil {
		return recruitment.JobApplication{}, notFound(err, recruitment.ErrJobApplicationNotFound, "get job application")
	}
	return ja, nil
}

func (r *jobApplicationRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (recruitment.JobApplication, error) {
	q := GetQuerier(ctx, r.db)

	ja, err := scanJobApplication(q.QueryRow(ctx, jobApplicationSelect+` WHERE ja.id = $1 FOR UPDATE OF ja`, id))
	if err != nil {
		return recruitment.JobApplication{}, notFound(err, recruitment.ErrJobApplicationNotFound, "lock job application")
	}
	return ja, nil
}

func (r *jobApplicationRepositoryImpl) ExistsForCandidate(ctx context.Context, jobPostingID, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM job_applications WHERE job_posting_id = $1 AND LOWER(candidate_email) = LOWER($2))`
	var exists bool
	if err := q.QueryRow(ctx, query, jobPostingID, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check duplicate application: %w", err)
	}
	return exists, nil
}

func (r *jobApplicationRepositoryImpl) Create(ctx context.Context, application recruitment.JobApplication) (recruitment.JobApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_applications (
			id, job_posting_id, candidate_name, candidate_email, candidate_phone,
			resume_url, cover_letter, status, rating, created_at, updated_at
		) VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id
	`
	var id string
	err := q.QueryRow(ctx, query,
		application.JobPostingID, application.CandidateName, application.CandidateEmail, application.CandidatePhone,
		application.ResumeURL, application.CoverLetter, application.Status, application.Rating,
	).Scan(&id)
	if err != nil {
		switch pgErrorCode(err) {
		case uniqueViolation:
			return recruitment.JobApplication{}, recruitment.ErrDuplicateApplication
		case foreignKeyViolation:
			return recruitment.JobApplication{}, recruitment.ErrJobPostingNotFound
		}
		return recruitment.JobApplication{}, fmt.Errorf("create job application: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *jobApplicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, from, to recruitment.ApplicationStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE job_applications SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return fmt.Errorf("%w: no longer %s", recruitment.ErrInvalidStatusTransition, from)
	}
	return nil
}

func (r *jobApplicationRepositoryImpl) UpdateRating(ctx context.Context, id string, rating int) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE job_applications SET rating = $1, updated_at = NOW() WHERE id = $2`, rating, id)
	if err != nil {
		return fmt.Errorf("update application rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrJobApplicationNotFound
	}
	return nil
}
