package domain

import (
	"context"
	"time"
)

// Portal roles. Role checks go through the capability table in pkg/auth,
// not ad-hoc string comparisons in handlers.
const (
	RoleEmployee   = "employee"
	RoleSupervisor = "supervisor"
	RoleManager    = "manager"
	RoleHR         = "hr"
)

// ValidRoles returns all portal roles
func ValidRoles() []string {
	return []string{RoleEmployee, RoleSupervisor, RoleManager, RoleHR}
}

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	ProgramType  string     `json:"program_type"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	// OnboardingProgress mirrors onboarding_progress.progress for fast reads
	// on user lists. It is written transactionally with the source of truth.
	OnboardingProgress int       `json:"onboarding_progress"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UserSummary is the subset of user fields embedded in progress responses.
type UserSummary struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	ProgramType string     `json:"program_type"`
	StartDate   *time.Time `json:"start_date,omitempty"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Fetch(ctx context.Context, limit, offset int) ([]User, int64, error)
	Update(ctx context.Context, user *User) error
}

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (string, *User, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}

type UserUsecase interface {
	CreateUser(ctx context.Context, user *User, password string) error
	GetUser(ctx context.Context, id string) (*User, error)
	ListUsers(ctx context.Context, page, pageSize int) ([]User, int64, error)
}
