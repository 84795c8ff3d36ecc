package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	notificationUC  domain.NotificationUsecase
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	notificationUC domain.NotificationUsecase,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		jobRepo:         jobRepo,
		notificationUC:  notificationUC,
	}
}

// Apply creates an APPLIED application after the eligibility checks
// pass, then notifies the job's employer. The duplicate check counts
// every historical row, so a withdrawn application still blocks a new
// one for the same job.
func (uc *applicationUsecase) Apply(ctx context.Context, jobID, seekerID int64, coverLetter string) (*domain.Application, error) {
	// 1. Duplicate check (all historical rows, withdrawn included)
	applied, err := uc.applicationRepo.HasApplied(ctx, seekerID, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if applied {
		return nil, apperror.ConflictErr("You have already applied for this job", domain.ErrDuplicateApplication)
	}

	// 2. Job must exist
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFoundErr("Job not found", domain.ErrNotFound)
		}
		return nil, apperror.Internal(err)
	}

	// 3. Job must be open
	if job.Status == domain.JobStatusClosed {
		return nil, apperror.BadRequestErr("Job is closed", domain.ErrJobClosed)
	}

	// 4. Create application
	app := &domain.Application{
		JobID:       jobID,
		SeekerID:    seekerID,
		CoverLetter: coverLetter,
		Status:      domain.ApplicationStatusApplied,
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		// The unique constraint catches concurrent applies that both
		// passed the pre-check.
		if errors.Is(err, domain.ErrDuplicateApplication) {
			return nil, apperror.ConflictErr("You have already applied for this job", domain.ErrDuplicateApplication)
		}
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("Application submitted", "seeker_id", seekerID, "job_id", jobID)

	// 5. Notify the employer
	if err := uc.notificationUC.Send(ctx, job.EmployerID,
		"New application received for job: "+job.Title); err != nil {
		logger.Log.Warn("Failed to notify employer of new application", "job_id", jobID, "error", err)
	}

	return app, nil
}

// UpdateStatus persists an employer decision. Only SHORTLISTED and
// REJECTED may be requested here; the current state is deliberately
// not guarded, so any state, WITHDRAWN included, can be overwritten.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, employerID, applicationID int64, status string) error {
	if status != domain.ApplicationStatusShortlisted && status != domain.ApplicationStatusRejected {
		return apperror.BadRequest("Invalid status. Must be: SHORTLISTED or REJECTED")
	}

	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFoundErr("Application not found", domain.ErrNotFound)
		}
		return apperror.Internal(err)
	}

	// Ownership check against the job. Only a genuinely deleted job
	// skips the check and proceeds with a placeholder title; any other
	// lookup failure must not bypass it.
	jobTitle := "Unknown Job"
	job, err := uc.jobRepo.GetByID(ctx, app.JobID)
	switch {
	case err == nil:
		if job.EmployerID != employerID {
			return apperror.Forbidden("You do not own this job posting")
		}
		jobTitle = job.Title
	case errors.Is(err, domain.ErrNotFound):
		// deleted since applying
	default:
		return apperror.Internal(err)
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		return apperror.Internal(err)
	}
	logger.Log.Info("Application status updated", "application_id", applicationID, "status", status)
	// Notify the seeker; the job may have been deleted since applying.
	msg := fmt.Sprintf("Your application for %s has been updated to: %s", jobTitle, status)
	if err := uc.notificationUC.Send(ctx, app.SeekerID, msg); err != nil {
		logger.Log.Warn("Failed to notify seeker of status update", "application_id", applicationID, "error", err)
	}

	return nil
}

// Withdraw moves an application to WITHDRAWN and notifies the job's
// employer. Withdrawing twice is rejected, so the employer gets the
// notification at most once.
func (uc *applicationUsecase) Withdraw(ctx context.Context, seekerID, applicationID int64) error {
	app, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFoundErr("Application not found", domain.ErrNotFound)
		}
		return apperror.Internal(err)
	}
	if app.SeekerID != seekerID {
		return apperror.Forbidden("You do not own this application")
	}
	if app.Status == domain.ApplicationStatusWithdrawn {
		return apperror.BadRequestErr("Application already withdrawn", domain.ErrAlreadyWithdrawn)
	}

	if err := uc.applicationRepo.UpdateStatus(ctx, applicationID, domain.ApplicationStatusWithdrawn); err != nil {
		return apperror.Internal(err)
	}
	logger.Log.Info("Application withdrawn", "application_id", applicationID)

	// Skip the notification silently when the job was deleted.
	if job, err := uc.jobRepo.GetByID(ctx, app.JobID); err == nil {
		if err := uc.notificationUC.Send(ctx, job.EmployerID,
			"An applicant has withdrawn from job: "+job.Title); err != nil {
			logger.Log.Warn("Failed to notify employer of withdrawal", "application_id", applicationID, "error", err)
		}
	}

	return nil
}

func (uc *applicationUsecase) ListBySeeker(ctx context.Context, seekerID int64) ([]domain.Application, error) {
	return uc.applicationRepo.GetBySeeker(ctx, seekerID)
}

// ListByJob returns the applications for a job the employer owns.
func (uc *applicationUsecase) ListByJob(ctx context.Context, employerID, jobID int64) ([]domain.Application, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFoundErr("Job not found", domain.ErrNotFound)
		}
		return nil, apperror.Internal(err)
	}
	if job.EmployerID != employerID {
		return nil, apperror.Forbidden("You do not own this job posting")
	}
	return uc.applicationRepo.GetByJob(ctx, jobID)
}
