package usecase_test

import (
	"context"
	"testing"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSeekerProfileUpdate(t *testing.T) {
	t.Run("Should fail safely when no user is authenticated", func(t *testing.T) {
		mockRepo := new(MockSeekerRepo)
		uc := usecase.NewSeekerUsecase(mockRepo)

		err := uc.UpdateProfile(context.Background(), &domain.SeekerProfile{})
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything)
	})

	t.Run("Should overwrite the payload's UserID with the authenticated one", func(t *testing.T) {
		mockRepo := new(MockSeekerRepo)
		uc := usecase.NewSeekerUsecase(mockRepo)

		ctx := context.WithValue(context.Background(), domain.KeyUserID, int64(7))
		mockRepo.On("UpdateProfile", ctx, mock.MatchedBy(func(p *domain.SeekerProfile) bool {
			return p.UserID == 7
		})).Return(nil)

		// Payload claims to be someone else
		profile := &domain.SeekerProfile{UserID: 999, Phone: "123"}
		err := uc.UpdateProfile(ctx, profile)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should report a missing profile on fetch", func(t *testing.T) {
		mockRepo := new(MockSeekerRepo)
		uc := usecase.NewSeekerUsecase(mockRepo)

		mockRepo.On("GetByUserID", mock.Anything, int64(7)).Return(nil, nil)

		_, err := uc.GetProfile(context.Background(), 7)
		assert.Error(t, err)
	})
}
