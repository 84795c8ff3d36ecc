package domain

import "context"

// SeekerProfile is the resume aggregate: the base row plus five child
// collections owned exclusively by the profile. The collections are
// persisted and replaced as one transactional unit; order is not part
// of the contract.
type SeekerProfile struct {
	UserID     int64             `json:"user_id"`
	Phone      string            `json:"phone"`
	Objectives []string          `json:"objectives"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Skills     []Skill           `json:"skills"`
	Projects   []Project         `json:"projects"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

type ExperienceEntry struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Skill struct {
	Name string `json:"name"`
}

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Role        string `json:"role"`
}

type SeekerRepository interface {
	// CreateProfile inserts the base row and all child collections in
	// one transaction; any failure rolls back the whole aggregate.
	CreateProfile(ctx context.Context, profile *SeekerProfile) error
	// UpdateProfile replaces the aggregate: base row update, then
	// delete-all-children plus reinsert, in one transaction.
	UpdateProfile(ctx context.Context, profile *SeekerProfile) error
	// GetByUserID returns the profile with all collections populated,
	// or nil when no profile exists for the user.
	GetByUserID(ctx context.Context, userID int64) (*SeekerProfile, error)
}

type SeekerUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*SeekerProfile, error)
	UpdateProfile(ctx context.Context, profile *SeekerProfile) error
}
