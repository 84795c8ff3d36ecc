package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seekerRepo struct {
	db *pgxpool.Pool
}

func NewSeekerRepository(db *pgxpool.Pool) domain.SeekerRepository {
	return &seekerRepo{db: db}
}

// resumeChildTables lists every child table of the aggregate; update
// clears all of them before reinserting the in-memory collections.
var resumeChildTables = []string{
	"resume_objectives",
	"resume_education",
	"resume_experience",
	"resume_skills",
	"resume_projects",
}

func (r *seekerRepo) CreateProfile(ctx context.Context, profile *domain.SeekerProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `INSERT INTO job_seekers (user_id, phone) VALUES ($1, $2)`,
		profile.UserID, profile.Phone)
	if err != nil {
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	if err := insertResumeChildren(ctx, tx, profile); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// UpdateProfile replaces the whole aggregate: base row update, then
// delete-all-children plus reinsert. Diffing is deliberately avoided;
// resume collections are small and the full rewrite keeps the
// invariants trivial.
func (r *seekerRepo) UpdateProfile(ctx context.Context, profile *domain.SeekerProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `UPDATE job_seekers SET phone = $2 WHERE user_id = $1`,
		profile.UserID, profile.Phone)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	for _, table := range resumeChildTables {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE user_id = $1`, profile.UserID); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := insertResumeChildren(ctx, tx, profile); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertResumeChildren(ctx context.Context, tx pgx.Tx, p *domain.SeekerProfile) error {
	for _, obj := range p.Objectives {
		_, err := tx.Exec(ctx,
			`INSERT INTO resume_objectives (user_id, objective) VALUES ($1, $2)`,
			p.UserID, obj)
		if err != nil {
			return fmt.Errorf("failed to insert objective: %w", err)
		}
	}

	for _, edu := range p.Education {
		_, err := tx.Exec(ctx,
			`INSERT INTO resume_education (user_id, degree, institution, year) VALUES ($1, $2, $3, $4)`,
			p.UserID, edu.Degree, edu.Institution, edu.Year)
		if err != nil {
			return fmt.Errorf("failed to insert education: %w", err)
		}
	}

	for _, exp := range p.Experience {
		_, err := tx.Exec(ctx,
			`INSERT INTO resume_experience (user_id, company, role, duration, description) VALUES ($1, $2, $3, $4, $5)`,
			p.UserID, exp.Company, exp.Role, exp.Duration, exp.Description)
		if err != nil {
			return fmt.Errorf("failed to insert experience: %w", err)
		}
	}

	for _, s := range p.Skills {
		_, err := tx.Exec(ctx,
			`INSERT INTO resume_skills (user_id, skill_name) VALUES ($1, $2)`,
			p.UserID, s.Name)
		if err != nil {
			return fmt.Errorf("failed to insert skill: %w", err)
		}
	}

	for _, pr := range p.Projects {
		_, err := tx.Exec(ctx,
			`INSERT INTO resume_projects (user_id, title, description, role) VALUES ($1, $2, $3, $4)`,
			p.UserID, pr.Title, pr.Description, pr.Role)
		if err != nil {
			return fmt.Errorf("failed to insert project: %w", err)
		}
	}

	return nil
}

// GetByUserID reads the base row and assembles all five collections.
// Absent collections come back as empty slices, never nil; a missing
// base row returns (nil, nil).
func (r *seekerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.SeekerProfile, error) {
	var p domain.SeekerProfile
	err := r.db.QueryRow(ctx, `SELECT user_id, phone FROM job_seekers WHERE user_id = $1`, userID).
		Scan(&p.UserID, &p.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	rows, err := r.db.Query(ctx, `SELECT objective FROM resume_objectives WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch objectives: %w", err)
	}
	p.Objectives, err = pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to read objectives: %w", err)
	}

	rows, err = r.db.Query(ctx,
		`SELECT degree, institution, year FROM resume_education WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch education: %w", err)
	}
	p.Education, err = pgx.CollectRows(rows, pgx.RowToStructByPos[domain.EducationEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to read education: %w", err)
	}

	rows, err = r.db.Query(ctx,
		`SELECT company, role, duration, description FROM resume_experience WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experience: %w", err)
	}
	p.Experience, err = pgx.CollectRows(rows, pgx.RowToStructByPos[domain.ExperienceEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to read experience: %w", err)
	}

	rows, err = r.db.Query(ctx, `SELECT skill_name FROM resume_skills WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	p.Skills, err = pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Skill])
	if err != nil {
		return nil, fmt.Errorf("failed to read skills: %w", err)
	}

	rows, err = r.db.Query(ctx,
		`SELECT title, description, role FROM resume_projects WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	p.Projects, err = pgx.CollectRows(rows, pgx.RowToStructByPos[domain.Project])
	if err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	return &p, nil
}
