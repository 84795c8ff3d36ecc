package domain

import (
	"context"
	"time"
)

// Application status constants. APPLIED is the initial state; the
// other three are terminal. A seeker re-enters APPLIED only through a
// fresh application row, never by transition.
const (
	ApplicationStatusApplied     = "APPLIED"
	ApplicationStatusShortlisted = "SHORTLISTED"
	ApplicationStatusRejected    = "REJECTED"
	ApplicationStatusWithdrawn   = "WITHDRAWN"
)

type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	SeekerID    int64     `json:"seeker_id"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`

	// Joined data for list responses
	JobTitle *string `json:"job_title,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetBySeeker(ctx context.Context, seekerID int64) ([]Application, error)
	GetByJob(ctx context.Context, jobID int64) ([]Application, error)
	// HasApplied reports whether any application row exists for the
	// pair, regardless of status. Withdrawn rows count.
	HasApplied(ctx context.Context, seekerID, jobID int64) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID, seekerID int64, coverLetter string) (*Application, error)
	UpdateStatus(ctx context.Context, employerID, applicationID int64, status string) error
	Withdraw(ctx context.Context, seekerID, applicationID int64) error
	ListBySeeker(ctx context.Context, seekerID int64) ([]Application, error)
	ListByJob(ctx context.Context, employerID, jobID int64) ([]Application, error)
}
