package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (employer_id, title, description, requirements, location, salary_range, job_type, experience_years, status, posted_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW()) RETURNING id, posted_at`
	return r.db.QueryRow(ctx, query,
		job.EmployerID, job.Title, job.Description, job.Requirements, job.Location,
		job.SalaryRange, job.JobType, job.ExperienceYears, job.Status,
	).Scan(&job.ID, &job.PostedAt)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `SELECT id, employer_id, title, description, requirements, location, salary_range, job_type, experience_years, status, posted_at
	          FROM jobs WHERE id = $1`
	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Requirements, &job.Location,
		&job.SalaryRange, &job.JobType, &job.ExperienceYears, &job.Status, &job.PostedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) GetByEmployer(ctx context.Context, employerID int64) ([]domain.Job, error) {
	query := `SELECT id, employer_id, title, description, requirements, location, salary_range, job_type, experience_years, status, posted_at
	          FROM jobs WHERE employer_id = $1 ORDER BY posted_at DESC`

	rows, err := r.db.Query(ctx, query, employerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Requirements, &job.Location, &job.SalaryRange, &job.JobType, &job.ExperienceYears, &job.Status, &job.PostedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// buildJobSearchQuery composes the filtered search statement. Predicates
// and bound values are appended in lockstep: every condition that
// consumes a placeholder appends its value in the same step, so the
// final arg slice order always matches placeholder numbering.
func buildJobSearchQuery(filter domain.JobSearchFilter) (string, []interface{}) {
	conditions := []string{"j.status = 'OPEN'"}
	args := []interface{}{}
	argIndex := 1

	if filter.Keyword != "" {
		conditions = append(conditions,
			fmt.Sprintf("(j.title ILIKE $%d OR j.description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filter.Keyword+"%")
		argIndex++
	}

	if filter.Location != "" {
		conditions = append(conditions, fmt.Sprintf("j.location ILIKE $%d", argIndex))
		args = append(args, "%"+filter.Location+"%")
		argIndex++
	}

	if filter.JobType != "" {
		conditions = append(conditions, fmt.Sprintf("j.job_type ILIKE $%d", argIndex))
		args = append(args, "%"+filter.JobType+"%")
		argIndex++
	}

	if filter.MaxExperience != nil {
		conditions = append(conditions, fmt.Sprintf("j.experience_years <= $%d", argIndex))
		args = append(args, *filter.MaxExperience)
		argIndex++
	}

	if filter.CompanyName != "" {
		conditions = append(conditions, fmt.Sprintf("e.company_name ILIKE $%d", argIndex))
		args = append(args, "%"+filter.CompanyName+"%")
		argIndex++
	}

	query := `SELECT j.id, j.employer_id, j.title, j.description, j.requirements, j.location, j.salary_range, j.job_type, j.experience_years, j.status, j.posted_at
	          FROM jobs j
	          JOIN employers e ON j.employer_id = e.user_id
	          WHERE ` + strings.Join(conditions, " AND ") + `
	          ORDER BY j.posted_at DESC`

	return query, args
}

// Search returns open jobs matching every provided criterion. Absent
// criteria impose no constraint; an empty filter returns all open jobs.
func (r *jobRepo) Search(ctx context.Context, filter domain.JobSearchFilter) ([]domain.Job, error) {
	query, args := buildJobSearchQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Requirements, &job.Location, &job.SalaryRange, &job.JobType, &job.ExperienceYears, &job.Status, &job.PostedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Update rewrites every field except status; status changes go through
// UpdateStatus only.
func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		description = $3,
		requirements = $4,
		location = $5,
		salary_range = $6,
		job_type = $7,
		experience_years = $8
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.Requirements, job.Location,
		job.SalaryRange, job.JobType, job.ExperienceYears,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE jobs SET status = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM jobs WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
