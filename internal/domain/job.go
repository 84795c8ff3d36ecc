package domain

import (
	"context"
	"time"
)

// Job status constants
const (
	JobStatusOpen   = "OPEN"
	JobStatusClosed = "CLOSED"
)

type Job struct {
	ID              int64     `json:"id"`
	EmployerID      int64     `json:"employer_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    string    `json:"requirements"`
	Location        string    `json:"location"`
	SalaryRange     string    `json:"salary_range"`
	JobType         string    `json:"job_type"`
	ExperienceYears int       `json:"experience_years"`
	Status          string    `json:"status"`
	PostedAt        time.Time `json:"posted_at"`
}

// JobSearchFilter holds the optional search criteria. Nil / empty
// fields impose no constraint; all provided criteria are ANDed.
type JobSearchFilter struct {
	Keyword       string
	Location      string
	JobType       string
	MaxExperience *int
	CompanyName   string
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByEmployer(ctx context.Context, employerID int64) ([]Job, error)
	Search(ctx context.Context, filter JobSearchFilter) ([]Job, error)
	Update(ctx context.Context, job *Job) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	PostJob(ctx context.Context, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	ListByEmployer(ctx context.Context, employerID int64) ([]Job, error)
	Search(ctx context.Context, filter JobSearchFilter) ([]Job, error)
	UpdateJob(ctx context.Context, job *Job) error
	CloseJob(ctx context.Context, employerID, jobID int64) error
	ReopenJob(ctx context.Context, employerID, jobID int64) error
	DeleteJob(ctx context.Context, employerID, jobID int64) error
}
