package usecase

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type seekerUsecase struct {
	seekerRepo domain.SeekerRepository
}

func NewSeekerUsecase(seekerRepo domain.SeekerRepository) domain.SeekerUsecase {
	return &seekerUsecase{seekerRepo: seekerRepo}
}

func (u *seekerUsecase) GetProfile(ctx context.Context, userID int64) (*domain.SeekerProfile, error) {
	profile, err := u.seekerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFoundErr("Profile not found", domain.ErrNotFound)
	}
	return profile, nil
}

// UpdateProfile replaces the whole resume aggregate. Ownership check:
// the context identity must match the profile owner.
func (u *seekerUsecase) UpdateProfile(ctx context.Context, profile *domain.SeekerProfile) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || ctxUserID == 0 {
		return apperror.Unauthorized("User not authenticated")
	}
	// Force ownership: the aggregate is always written under the
	// authenticated user's id.
	profile.UserID = ctxUserID

	if err := u.seekerRepo.UpdateProfile(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFoundErr("Profile not found", domain.ErrNotFound)
		}
		return apperror.Internal(err)
	}
	return nil
}
