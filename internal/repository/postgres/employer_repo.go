package postgres

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employerRepo struct {
	db *pgxpool.Pool
}

func NewEmployerRepository(db *pgxpool.Pool) domain.EmployerRepository {
	return &employerRepo{db: db}
}

func (r *employerRepo) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `INSERT INTO employers (user_id, company_name, industry, description, location)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query,
		profile.UserID, profile.CompanyName, profile.Industry, profile.Description, profile.Location,
	)
	return err
}

func (r *employerRepo) Update(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `UPDATE employers SET company_name = $2, industry = $3, description = $4, location = $5
	          WHERE user_id = $1`
	result, err := r.db.Exec(ctx, query,
		profile.UserID, profile.CompanyName, profile.Industry, profile.Description, profile.Location,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *employerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.EmployerProfile, error) {
	query := `SELECT user_id, company_name, industry, description, location FROM employers WHERE user_id = $1`
	var p domain.EmployerProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.CompanyName, &p.Industry, &p.Description, &p.Location,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
