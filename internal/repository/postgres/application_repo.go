package postgres

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

// Create inserts a new application. The unique constraint on
// (job_id, seeker_id) closes the gap between the usecase's duplicate
// pre-check and the insert: the loser of a concurrent race gets
// ErrDuplicateApplication instead of a second row.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (job_id, seeker_id, cover_letter, status, applied_at)
	          VALUES ($1, $2, $3, $4, NOW()) RETURNING id, applied_at`

	if app.Status == "" {
		app.Status = domain.ApplicationStatusApplied
	}

	err := r.db.QueryRow(ctx, query,
		app.JobID, app.SeekerID, app.CoverLetter, app.Status,
	).Scan(&app.ID, &app.AppliedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT id, job_id, seeker_id, cover_letter, status, applied_at
	          FROM applications WHERE id = $1`
	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.JobID, &app.SeekerID, &app.CoverLetter, &app.Status, &app.AppliedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetBySeeker lists a seeker's applications with the job title joined
// in. Jobs may have been hard-deleted, hence the LEFT JOIN and
// nullable title.
func (r *applicationRepo) GetBySeeker(ctx context.Context, seekerID int64) ([]domain.Application, error) {
	query := `SELECT a.id, a.job_id, a.seeker_id, a.cover_letter, a.status, a.applied_at, j.title
	          FROM applications a
	          LEFT JOIN jobs j ON a.job_id = j.id
	          WHERE a.seeker_id = $1
	          ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, seekerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(&app.ID, &app.JobID, &app.SeekerID, &app.CoverLetter, &app.Status, &app.AppliedAt, &app.JobTitle); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) GetByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `SELECT id, job_id, seeker_id, cover_letter, status, applied_at
	          FROM applications WHERE job_id = $1 ORDER BY applied_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(&app.ID, &app.JobID, &app.SeekerID, &app.CoverLetter, &app.Status, &app.AppliedAt); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// HasApplied scans all rows for the pair, withdrawn ones included. A
// previously withdrawn application therefore blocks reapplication.
func (r *applicationRepo) HasApplied(ctx context.Context, seekerID, jobID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE seeker_id = $1 AND job_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, seekerID, jobID).Scan(&exists)
	return exists, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE applications SET status = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
