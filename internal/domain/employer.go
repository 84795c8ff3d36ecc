package domain

import "context"

// EmployerProfile is the 1:1 company profile for an EMPLOYER user.
type EmployerProfile struct {
	UserID      int64  `json:"user_id"`
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type EmployerRepository interface {
	Create(ctx context.Context, profile *EmployerProfile) error
	Update(ctx context.Context, profile *EmployerProfile) error
	GetByUserID(ctx context.Context, userID int64) (*EmployerProfile, error)
}

type EmployerUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*EmployerProfile, error)
	UpdateProfile(ctx context.Context, profile *EmployerProfile) error
}
