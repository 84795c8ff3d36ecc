package usecase

import (
	"context"
	"errors"
	"strings"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/auth"
	"go-jobportal-backend/pkg/logger"
	"go-jobportal-backend/pkg/validation"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo     domain.UserRepository
	seekerRepo   domain.SeekerRepository
	employerRepo domain.EmployerRepository
	tokens       *auth.TokenIssuer
	bcryptCost   int
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	seekerRepo domain.SeekerRepository,
	employerRepo domain.EmployerRepository,
	tokens *auth.TokenIssuer,
	bcryptCost int,
) domain.AuthUsecase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &authUsecase{
		userRepo:     userRepo,
		seekerRepo:   seekerRepo,
		employerRepo: employerRepo,
		tokens:       tokens,
		bcryptCost:   bcryptCost,
	}
}

func (u *authUsecase) register(ctx context.Context, user *domain.User, password string) error {
	if !validation.IsValidEmail(user.Email) {
		return apperror.BadRequest("Invalid email format")
	}
	if !validation.IsValidPassword(password) {
		return apperror.BadRequest("Password must be at least 8 characters with upper, lower, digit and special character")
	}

	existing, err := u.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return apperror.Internal(err)
	}
	if existing != nil {
		logger.Log.Warn("Registration attempt with existing email", "email", user.Email)
		return apperror.ConflictErr("Email already exists", domain.ErrEmailTaken)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), u.bcryptCost)
	if err != nil {
		return apperror.Internal(err)
	}
	user.PasswordHash = string(hash)

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return apperror.ConflictErr("Email already exists", domain.ErrEmailTaken)
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) RegisterSeeker(ctx context.Context, user *domain.User, password string, profile *domain.SeekerProfile) (*domain.User, error) {
	user.Role = domain.RoleJobSeeker
	if err := u.register(ctx, user, password); err != nil {
		return nil, err
	}

	profile.UserID = user.ID
	if err := u.seekerRepo.CreateProfile(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	logger.Log.Info("Job seeker registered", "user_id", user.ID)
	return user, nil
}

func (u *authUsecase) RegisterEmployer(ctx context.Context, user *domain.User, password string, profile *domain.EmployerProfile) (*domain.User, error) {
	user.Role = domain.RoleEmployer
	if err := u.register(ctx, user, password); err != nil {
		return nil, err
	}

	profile.UserID = user.ID
	if err := u.employerRepo.Create(ctx, profile); err != nil {
		return nil, apperror.Internal(err)
	}
	logger.Log.Info("Employer registered", "user_id", user.ID)
	return user, nil
}

// Login verifies credentials and issues a session token. The same
// message covers unknown email and wrong password.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	if user == nil {
		logger.Log.Warn("Login attempt for non-existent email", "email", email)
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warn("Invalid password", "email", email)
		return nil, "", apperror.Unauthorized("Invalid email or password")
	}

	token, err := u.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	logger.Log.Info("User logged in", "email", email)
	return user, token, nil
}

func (u *authUsecase) UpdatePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	if !validation.IsValidPassword(newPassword) {
		return apperror.BadRequest("Password must be at least 8 characters with upper, lower, digit and special character")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return apperror.Internal(err)
	}
	if user == nil {
		return apperror.Unauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		logger.Log.Warn("Password update failed", "email", email)
		return apperror.Unauthorized("Invalid email or password")
	}

	return u.setPassword(ctx, email, newPassword)
}

// RecoverPassword resets the password after a case-insensitive match
// of the security answer.
func (u *authUsecase) RecoverPassword(ctx context.Context, email, securityAnswer, newPassword string) error {
	if !validation.IsValidPassword(newPassword) {
		return apperror.BadRequest("Password must be at least 8 characters with upper, lower, digit and special character")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return apperror.Internal(err)
	}
	if user == nil {
		logger.Log.Warn("Recovery failed: email not found", "email", email)
		return apperror.Unauthorized("Recovery failed")
	}
	if !strings.EqualFold(user.SecurityAnswer, securityAnswer) {
		logger.Log.Warn("Recovery failed: wrong security answer", "email", email)
		return apperror.Unauthorized("Recovery failed")
	}

	return u.setPassword(ctx, email, newPassword)
}

func (u *authUsecase) setPassword(ctx context.Context, email, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), u.bcryptCost)
	if err != nil {
		return apperror.Internal(err)
	}
	if err := u.userRepo.UpdatePassword(ctx, email, string(hash)); err != nil {
		return apperror.Internal(err)
	}
	logger.Log.Info("Password updated", "email", email)
	return nil
}

func (u *authUsecase) GetSecurityQuestion(ctx context.Context, email string) (string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", apperror.Internal(err)
	}
	if user == nil {
		return "", apperror.NotFoundErr("User not found", domain.ErrNotFound)
	}
	return user.SecurityQuestion, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFoundErr("User not found", domain.ErrNotFound)
	}
	return user, nil
}
