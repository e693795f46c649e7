package domain

import (
	"context"
	"time"
)

// Program types a template can target. "all" applies to every program.
const (
	ProgramEngineering = "engineering"
	ProgramProduct     = "product"
	ProgramSales       = "sales"
	ProgramOperations  = "operations"
	ProgramAll         = "all"
)

// ValidProgramTypes returns all template program targets
func ValidProgramTypes() []string {
	return []string{ProgramEngineering, ProgramProduct, ProgramSales, ProgramOperations, ProgramAll}
}

// IsValidProgramType checks if the program type is a known value
func IsValidProgramType(p string) bool {
	for _, valid := range ValidProgramTypes() {
		if p == valid {
			return true
		}
	}
	return false
}

// TemplateTask is the blueprint for a single task inside a phase.
type TemplateTask struct {
	Title          string       `json:"title" validate:"required"`
	Description    string       `json:"description"`
	DaysToComplete int          `json:"days_to_complete" validate:"min=0"`
	Priority       Priority     `json:"priority"`
	ControlledBy   ControlledBy `json:"controlled_by"`
}

// TemplatePhase is an ordered slice of the onboarding plan. The phase name
// doubles as the onboarding stage tag on materialized tasks.
type TemplatePhase struct {
	Name     Stage          `json:"name" validate:"required"`
	Duration int            `json:"duration" validate:"min=0"`
	Tasks    []TemplateTask `json:"tasks"`
}

// OnboardingTemplate is an HR-authored blueprint of phases and tasks that can
// be instantiated for a specific employee. Applying it copies tasks; there is
// no persisted link from the copies back to the template.
type OnboardingTemplate struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ProgramType string          `json:"program_type"`
	Phases      []TemplatePhase `json:"phases"`
	CreatedBy   string          `json:"created_by"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type TemplateRepository interface {
	Create(ctx context.Context, tmpl *OnboardingTemplate) error
	GetByID(ctx context.Context, id int64) (*OnboardingTemplate, error)
	Fetch(ctx context.Context, limit, offset int) ([]OnboardingTemplate, int64, error)
	Update(ctx context.Context, tmpl *OnboardingTemplate) error
	Delete(ctx context.Context, id int64) error
}

// ApplyResult is returned by the template applicator. Created tasks are not
// included; only the (possibly pre-existing) progress record.
type ApplyResult struct {
	Message            string              `json:"message"`
	OnboardingProgress *OnboardingProgress `json:"onboarding_progress"`
}

type TemplateUsecase interface {
	CreateTemplate(ctx context.Context, tmpl *OnboardingTemplate) error
	GetTemplate(ctx context.Context, id int64) (*OnboardingTemplate, error)
	ListTemplates(ctx context.Context, page, pageSize int) ([]OnboardingTemplate, int64, error)
	UpdateTemplate(ctx context.Context, tmpl *OnboardingTemplate) error
	DeleteTemplate(ctx context.Context, id int64) error
	ApplyTemplate(ctx context.Context, templateID int64, userID string) (*ApplyResult, error)
}
