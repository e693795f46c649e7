package domain

import (
	"context"
	"time"
)

// OnboardingProgress is the single per-user record tracking the current
// stage, completion percentage and key dates. It is created on first template
// application and mutated only through the onboarding usecase.
type OnboardingProgress struct {
	UserID                  string    `json:"user_id"`
	Stage                   Stage     `json:"stage"`
	Progress                int       `json:"progress"`
	StageStartDate          time.Time `json:"stage_start_date"`
	EstimatedCompletionDate time.Time `json:"estimated_completion_date"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`

	// User carries the owning user's summary fields when the record is
	// fetched joined with the users table.
	User *UserSummary `json:"user,omitempty"`
}

// ProgressUpdateRequest is the payload for updating a user's progress record.
// Both fields are optional; pointer types distinguish "absent" from zero
// values so progress=0 is a valid update.
type ProgressUpdateRequest struct {
	Stage    *Stage `json:"stage,omitempty"`
	Progress *int   `json:"progress,omitempty" validate:"omitempty,min=0,max=100"`
}

// ProgressDetails is the response for fetching a user's onboarding state:
// the progress record plus the user's onboarding-tagged tasks grouped into
// fixed stage buckets.
type ProgressDetails struct {
	OnboardingProgress
	TasksByStage map[Stage][]Task `json:"tasks_by_stage"`
}

type OnboardingRepository interface {
	GetByUserID(ctx context.Context, userID string) (*OnboardingProgress, error)
	// GetWithUser returns the progress record joined with the owning user's
	// summary fields.
	GetWithUser(ctx context.Context, userID string) (*OnboardingProgress, error)
	// Update persists the progress record. When mirrorUserProgress is true the
	// denormalized users.onboarding_progress column is written in the same
	// transaction.
	Update(ctx context.Context, progress *OnboardingProgress, mirrorUserProgress bool) error
	// CreateWithTasks atomically creates the progress record (when
	// createProgress is true) and inserts the given tasks. Either everything
	// is committed or nothing is.
	CreateWithTasks(ctx context.Context, progress *OnboardingProgress, createProgress bool, tasks []Task) error
}

type OnboardingUsecase interface {
	GetProgress(ctx context.Context, userID string) (*ProgressDetails, error)
	UpdateProgress(ctx context.Context, userID string, req *ProgressUpdateRequest) (*OnboardingProgress, error)
}
