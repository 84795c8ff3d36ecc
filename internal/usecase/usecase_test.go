package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetBySeeker(ctx context.Context, seekerID int64) ([]domain.Application, error) {
	args := m.Called(ctx, seekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) GetByJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) HasApplied(ctx context.Context, seekerID, jobID int64) (bool, error) {
	args := m.Called(ctx, seekerID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) GetByEmployer(ctx context.Context, employerID int64) ([]domain.Job, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) Search(ctx context.Context, filter domain.JobSearchFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Job), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockNotificationUC struct {
	mock.Mock
}

func (m *MockNotificationUC) Send(ctx context.Context, userID int64, message string) error {
	return m.Called(ctx, userID, message).Error(0)
}

func (m *MockNotificationUC) ListUnread(ctx context.Context, userID int64) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationUC) MarkRead(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newApplicationUC() (domain.ApplicationUsecase, *MockApplicationRepo, *MockJobRepo, *MockNotificationUC) {
	appRepo := new(MockApplicationRepo)
	jobRepo := new(MockJobRepo)
	notifUC := new(MockNotificationUC)
	return usecase.NewApplicationUsecase(appRepo, jobRepo, notifUC), appRepo, jobRepo, notifUC
}

func openJob() *domain.Job {
	return &domain.Job{
		ID:         10,
		EmployerID: 2,
		Title:      "Backend Engineer",
		Status:     domain.JobStatusOpen,
	}
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create application and notify employer", func(t *testing.T) {
		uc, appRepo, jobRepo, notifUC := newApplicationUC()

		appRepo.On("HasApplied", ctx, int64(1), int64(10)).Return(false, nil)
		jobRepo.On("GetByID", ctx, int64(10)).Return(openJob(), nil)
		appRepo.On("Create", ctx, mock.AnythingOfType("*domain.Application")).Return(nil)
		notifUC.On("Send", ctx, int64(2), "New application received for job: Backend Engineer").Return(nil)

		app, err := uc.Apply(ctx, 10, 1, "cover letter")
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusApplied, app.Status)
		assert.Equal(t, int64(10), app.JobID)
		assert.Equal(t, int64(1), app.SeekerID)

		notifUC.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("Should reject duplicate even when previous application was withdrawn", func(t *testing.T) {
		uc, appRepo, _, notifUC := newApplicationUC()

		// HasApplied counts every historical row regardless of status
		appRepo.On("HasApplied", ctx, int64(1), int64(10)).Return(true, nil)

		_, err := uc.Apply(ctx, 10, 1, "")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDuplicateApplication))

		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		notifUC.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should fail when job does not exist", func(t *testing.T) {
		uc, appRepo, jobRepo, _ := newApplicationUC()

		appRepo.On("HasApplied", ctx, int64(1), int64(99)).Return(false, nil)
		jobRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound)

		_, err := uc.Apply(ctx, 99, 1, "")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("Should fail when job is closed", func(t *testing.T) {
		uc, appRepo, jobRepo, notifUC := newApplicationUC()

		job := openJob()
		job.Status = domain.JobStatusClosed
		appRepo.On("HasApplied", ctx, int64(1), int64(10)).Return(false, nil)
		jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)

		_, err := uc.Apply(ctx, 10, 1, "")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrJobClosed))

		appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		notifUC.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should map unique violation from concurrent apply to duplicate error", func(t *testing.T) {
		uc, appRepo, jobRepo, _ := newApplicationUC()

		appRepo.On("HasApplied", ctx, int64(1), int64(10)).Return(false, nil)
		jobRepo.On("GetByID", ctx, int64(10)).Return(openJob(), nil)
		appRepo.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicateApplication)

		_, err := uc.Apply(ctx, 10, 1, "")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDuplicateApplication))
	})

	t.Run("Should succeed even when the notification fails", func(t *testing.T) {
		uc, appRepo, jobRepo, notifUC := newApplicationUC()

		appRepo.On("HasApplied", ctx, int64(1), int64(10)).Return(false, nil)
		jobRepo.On("GetByID", ctx, int64(10)).Return(openJob(), nil)
		appRepo.On("Create", ctx, mock.Anything).Return(nil)
		notifUC.On("Send", ctx, int64(2), mock.Anything).Return(errors.New("sink down"))

		app, err := uc.Apply(ctx, 10, 1, "")
		assert.NoError(t, err)
		assert.NotNil(t, app)
	})
}

func TestUpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()

	applied := func() *domain.Application {
		return &domain.Application{
			ID:       5,
			JobID:    10,
			SeekerID: 1,
			Status:   domain.ApplicationStatusApplied,
		}
	}

	t.Run("Should reject statuses outside the employer decision set", func(t *testing.T) {
		uc, appRepo, _, _ := newApplicationUC()

		for _, status := range []string{domain.ApplicationStatusApplied, domain.ApplicationStatusWithdrawn, "HIRED", ""} {
			err := uc.UpdateStatus(ctx, 2, 5, status)
			assert.Error(t, err)
		}
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should shortlist and notify the seeker with the job title", func(t *testing.T) {
		uc, appRepo, jobRepo, notifUC := newApplicationUC()

		appRepo.On("GetByID", ctx, int64(5)).Return(applied(), nil)
		jobRepo.On("GetByID", ctx, int64(10)).Return(openJob(), nil)
		appRepo.On("UpdateStatus", ctx, int64(5), domain.ApplicationStatusShortlisted).Return(nil)
		notifUC.On("Send", ctx, int64(1), "Your application for Backend Engineer has been updated to: SHORTLISTED").Return(nil)

		err := uc.UpdateStatus(ctx, 2, 5, domain.ApplicationStatusShortlisted)
		assert.NoError(t, err)
		notifUC.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("Should use placeholder title when the job was deleted", func(t *testing.T) {
		uc, appRepo, jobRepo, notifUC := newApplicationUC()

		appRepo.On("GetByID", ctx, int64(5)).Return(applied(), nil)
		jobRepo.On("GetByID", ctx, int64(10)).Return(nil, domain.ErrNotFound)
		appRepo.On("UpdateStatus", ctx, int64(5), domain.ApplicationStatusRejected).Return(nil)
		notifUC.On("Send", ctx, int64(1), "Your application for Unknown Job has been updated to: REJECTED").Return(nil)

		err := uc.UpdateStatus(ctx, 2, 5, domain.ApplicationStatusRejected)
		assert.NoError(t, err)
		notifUC.AssertExpectations(t)
	})

	t.Run("Should fail closed when the job lookup errors for another reason", func(t *testing.T) {
		uc, appRepo, jobRepo, notifUC := newApplicationUC()

		appRepo.On("GetByID", ctx, int64(5)).Return(applied(), nil)
		// Transient failure, not a deleted job: ownership cannot be
		// verified, so nothing may be persisted.
		jobRepo.On("GetByID", ctx, int64(10)).Return(nil, errors.New("connection reset"))

		err := uc.UpdateStatus(ctx, 999, 5, domain.ApplicationStatusShortlisted)
		assert.Error(t, err)
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		notifUC.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should forbid updating an application on someone else's job", func(t *testing.T) {
		uc, appRepo, jobRepo, _ := newApplicationUC()

		appRepo.On("GetByID", ctx, int64(5)).Return(applied(), nil)
		jobRepo.On("GetByID", ctx, int64(10)).Return(openJob(), nil)

		err := uc.UpdateStatus(ctx, 999, 5, domain.ApplicationStatusShortlisted)
		assert.Error(t, err)
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should overwrite a withdrawn application", func(t *testing.T) {
		uc, appRepo, jobRepo, notifUC := newApplicationUC()

		withdrawn := applied()
		withdrawn.Status = domain.ApplicationStatusWithdrawn
		appRepo.On("GetByID", ctx, int64(5)).Return(withdrawn, nil)
		jobRepo.On("GetByID", ctx, int64(10)).Return(openJob(), nil)
		appRepo.On("UpdateStatus", ctx, int64(5), domain.ApplicationStatusShortlisted).Return(nil)
		notifUC.On("Send", ctx, int64(1), mock.Anything).Return(nil)

		// The current state is not guarded; the employer decision wins.
		err := uc.UpdateStatus(ctx, 2, 5, domain.ApplicationStatusShortlisted)
		assert.NoError(t, err)
	})
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	applied := func() *domain.Application {
		return &domain.Application{
			ID:       5,
			JobID:    10,
			SeekerID: 1,
			Status:   domain.ApplicationStatusApplied,
		}
	}

	t.Run("Should withdraw and notify the employer exactly once", func(t *testing.T) {
		uc, appRepo, jobRepo, notifUC := newApplicationUC()

		appRepo.On("GetByID", ctx, int64(5)).Return(applied(), nil)
		appRepo.On("UpdateStatus", ctx, int64(5), domain.ApplicationStatusWithdrawn).Return(nil)
		jobRepo.On("GetByID", ctx, int64(10)).Return(openJob(), nil)
		notifUC.On("Send", ctx, int64(2), "An applicant has withdrawn from job: Backend Engineer").Return(nil)

		err := uc.Withdraw(ctx, 1, 5)
		assert.NoError(t, err)
		notifUC.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("Should reject a second withdrawal without notifying again", func(t *testing.T) {
		uc, appRepo, _, notifUC := newApplicationUC()

		withdrawn := applied()
		withdrawn.Status = domain.ApplicationStatusWithdrawn
		appRepo.On("GetByID", ctx, int64(5)).Return(withdrawn, nil)

		err := uc.Withdraw(ctx, 1, 5)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrAlreadyWithdrawn))

		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		notifUC.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should forbid withdrawing someone else's application", func(t *testing.T) {
		uc, appRepo, _, _ := newApplicationUC()

		appRepo.On("GetByID", ctx, int64(5)).Return(applied(), nil)

		err := uc.Withdraw(ctx, 999, 5)
		assert.Error(t, err)
		appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should still withdraw when the job was deleted, skipping the notification", func(t *testing.T) {
		uc, appRepo, jobRepo, notifUC := newApplicationUC()

		appRepo.On("GetByID", ctx, int64(5)).Return(applied(), nil)
		appRepo.On("UpdateStatus", ctx, int64(5), domain.ApplicationStatusWithdrawn).Return(nil)
		jobRepo.On("GetByID", ctx, int64(10)).Return(nil, domain.ErrNotFound)

		err := uc.Withdraw(ctx, 1, 5)
		assert.NoError(t, err)
		notifUC.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListJobApplications(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return applications for the owning employer", func(t *testing.T) {
		uc, appRepo, jobRepo, _ := newApplicationUC()

		jobRepo.On("GetByID", ctx, int64(10)).Return(openJob(), nil)
		appRepo.On("GetByJob", ctx, int64(10)).Return([]domain.Application{{ID: 5, JobID: 10}}, nil)

		apps, err := uc.ListByJob(ctx, 2, 10)
		assert.NoError(t, err)
		assert.Len(t, apps, 1)
	})

	t.Run("Should forbid listing applications for someone else's job", func(t *testing.T) {
		uc, appRepo, jobRepo, _ := newApplicationUC()

		jobRepo.On("GetByID", ctx, int64(10)).Return(openJob(), nil)

		_, err := uc.ListByJob(ctx, 999, 10)
		assert.Error(t, err)
		appRepo.AssertNotCalled(t, "GetByJob", mock.Anything, mock.Anything)
	})
}

func TestJobOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("Should forbid closing someone else's job", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		jobRepo.On("GetByID", ctx, int64(10)).Return(openJob(), nil)

		err := uc.CloseJob(ctx, 999, 10)
		assert.Error(t, err)
		jobRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should treat closing an already closed job as a no-op", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		job := openJob()
		job.Status = domain.JobStatusClosed
		jobRepo.On("GetByID", ctx, int64(10)).Return(job, nil)

		err := uc.CloseJob(ctx, 2, 10)
		assert.NoError(t, err)
		jobRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should force new postings to OPEN", func(t *testing.T) {
		jobRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(jobRepo)

		job := &domain.Job{EmployerID: 2, Title: "Backend Engineer", Status: "CLOSED"}
		jobRepo.On("Create", ctx, mock.Anything).Return(nil)

		err := uc.PostJob(ctx, job)
		assert.NoError(t, err)
		assert.Equal(t, domain.JobStatusOpen, job.Status)
	})
}
