package usecase

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/logger"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

// PostJob inserts a new posting. Status is forced to OPEN regardless
// of what the caller set.
func (u *jobUsecase) PostJob(ctx context.Context, job *domain.Job) error {
	job.Status = domain.JobStatusOpen
	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	logger.Log.Info("Job posted", "job_id", job.ID, "employer_id", job.EmployerID, "title", job.Title)
	return nil
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFoundErr("Job not found", domain.ErrNotFound)
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) ListByEmployer(ctx context.Context, employerID int64) ([]domain.Job, error) {
	return u.jobRepo.GetByEmployer(ctx, employerID)
}

func (u *jobUsecase) Search(ctx context.Context, filter domain.JobSearchFilter) ([]domain.Job, error) {
	return u.jobRepo.Search(ctx, filter)
}

// UpdateJob rewrites the posting's fields; status is untouched. Only
// the owning employer may update.
func (u *jobUsecase) UpdateJob(ctx context.Context, job *domain.Job) error {
	existing, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFoundErr("Job not found", domain.ErrNotFound)
		}
		return apperror.Internal(err)
	}
	if existing.EmployerID != job.EmployerID {
		return apperror.Forbidden("You can only update your own jobs")
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	logger.Log.Info("Job updated", "job_id", job.ID)
	return nil
}

func (u *jobUsecase) CloseJob(ctx context.Context, employerID, jobID int64) error {
	return u.setStatus(ctx, employerID, jobID, domain.JobStatusClosed)
}

func (u *jobUsecase) ReopenJob(ctx context.Context, employerID, jobID int64) error {
	return u.setStatus(ctx, employerID, jobID, domain.JobStatusOpen)
}

// setStatus toggles OPEN/CLOSED. Setting the current status again is
// a no-op success.
func (u *jobUsecase) setStatus(ctx context.Context, employerID, jobID int64, status string) error {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFoundErr("Job not found", domain.ErrNotFound)
		}
		return apperror.Internal(err)
	}
	if job.EmployerID != employerID {
		return apperror.Forbidden("You can only manage your own jobs")
	}
	if job.Status == status {
		return nil
	}

	if err := u.jobRepo.UpdateStatus(ctx, jobID, status); err != nil {
		return apperror.Internal(err)
	}
	logger.Log.Info("Job status updated", "job_id", jobID, "status", status)
	return nil
}

// DeleteJob hard-deletes the posting. Applications referencing the
// job are left in place; the lifecycle engine tolerates the dangling
// job id.
func (u *jobUsecase) DeleteJob(ctx context.Context, employerID, jobID int64) error {
	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFoundErr("Job not found", domain.ErrNotFound)
		}
		return apperror.Internal(err)
	}
	if job.EmployerID != employerID {
		return apperror.Forbidden("You can only delete your own jobs")
	}

	if err := u.jobRepo.Delete(ctx, jobID); err != nil {
		return apperror.Internal(err)
	}
	logger.Log.Info("Job deleted", "job_id", jobID)
	return nil
}
