package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleJobSeeker = "JOB_SEEKER"
	RoleEmployer  = "EMPLOYER"
)

type User struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Role             string    `json:"role"`
	SecurityQuestion string    `json:"security_question,omitempty"`
	SecurityAnswer   string    `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

type AuthUsecase interface {
	RegisterSeeker(ctx context.Context, user *User, password string, profile *SeekerProfile) (*User, error)
	RegisterEmployer(ctx context.Context, user *User, password string, profile *EmployerProfile) (*User, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	UpdatePassword(ctx context.Context, email, currentPassword, newPassword string) error
	RecoverPassword(ctx context.Context, email, securityAnswer, newPassword string) error
	GetSecurityQuestion(ctx context.Context, email string) (string, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
