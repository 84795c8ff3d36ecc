package usecase

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type employerUsecase struct {
	employerRepo domain.EmployerRepository
}

func NewEmployerUsecase(employerRepo domain.EmployerRepository) domain.EmployerUsecase {
	return &employerUsecase{employerRepo: employerRepo}
}

func (u *employerUsecase) GetProfile(ctx context.Context, userID int64) (*domain.EmployerProfile, error) {
	profile, err := u.employerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFoundErr("Employer profile not found", domain.ErrNotFound)
	}
	return profile, nil
}

func (u *employerUsecase) UpdateProfile(ctx context.Context, profile *domain.EmployerProfile) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || ctxUserID == 0 {
		return apperror.Unauthorized("User not authenticated")
	}
	profile.UserID = ctxUserID

	if err := u.employerRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFoundErr("Employer profile not found", domain.ErrNotFound)
		}
		return apperror.Internal(err)
	}
	return nil
}
