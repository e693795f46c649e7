package usecase

import (
	"context"
	"errors"
	"go-onboarding-backend/internal/domain"
	"go-onboarding-backend/pkg/apperror"
	"go-onboarding-backend/pkg/auth"
	"time"
)

type templateUsecase struct {
	repo           domain.TemplateRepository
	userRepo       domain.UserRepository
	onboardingRepo domain.OnboardingRepository
}

func NewTemplateUsecase(repo domain.TemplateRepository, userRepo domain.UserRepository, onboardingRepo domain.OnboardingRepository) domain.TemplateUsecase {
	return &templateUsecase{
		repo:           repo,
		userRepo:       userRepo,
		onboardingRepo: onboardingRepo,
	}
}

func (u *templateUsecase) CreateTemplate(ctx context.Context, tmpl *domain.OnboardingTemplate) error {
	callerID, role, err := callerFromContext(ctx)
	if err != nil {
		return err
	}
	if !auth.Allowed(role, auth.CapTemplateManage) {
		return apperror.Forbidden("Only HR can manage onboarding templates")
	}

	if err := validateTemplate(tmpl); err != nil {
		return err
	}

	tmpl.CreatedBy = callerID
	tmpl.CreatedAt = time.Now()
	tmpl.UpdatedAt = time.Now()

	if err := u.repo.Create(ctx, tmpl); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *templateUsecase) GetTemplate(ctx context.Context, id int64) (*domain.OnboardingTemplate, error) {
	_, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !auth.Allowed(role, auth.CapTemplateManage) {
		return nil, apperror.Forbidden("Only HR can view onboarding templates")
	}

	tmpl, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Template not found")
		}
		return nil, apperror.Internal(err)
	}
	return tmpl, nil
}

func (u *templateUsecase) ListTemplates(ctx context.Context, page, pageSize int) ([]domain.OnboardingTemplate, int64, error) {
	_, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}
	if !auth.Allowed(role, auth.CapTemplateManage) {
		return nil, 0, apperror.Forbidden("Only HR can view onboarding templates")
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	templates, total, err := u.repo.Fetch(ctx, pageSize, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return templates, total, nil
}

func (u *templateUsecase) UpdateTemplate(ctx context.Context, tmpl *domain.OnboardingTemplate) error {
	_, role, err := callerFromContext(ctx)
	if err != nil {
		return err
	}
	if !auth.Allowed(role, auth.CapTemplateManage) {
		return apperror.Forbidden("Only HR can manage onboarding templates")
	}

	if err := validateTemplate(tmpl); err != nil {
		return err
	}

	tmpl.UpdatedAt = time.Now()

	if err := u.repo.Update(ctx, tmpl); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Template not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *templateUsecase) DeleteTemplate(ctx context.Context, id int64) error {
	_, role, err := callerFromContext(ctx)
	if err != nil {
		return err
	}
	if !auth.Allowed(role, auth.CapTemplateManage) {
		return apperror.Forbidden("Only HR can manage onboarding templates")
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Template not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

// ApplyTemplate materializes a template into a concrete onboarding plan for
// one user: find-or-create the progress record, then copy every phase task.
// Task creation is additive by design; applying the same template twice
// duplicates its tasks. The whole application runs in one transaction.
func (u *templateUsecase) ApplyTemplate(ctx context.Context, templateID int64, userID string) (*domain.ApplyResult, error) {
	_, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !auth.Allowed(role, auth.CapTemplateApply) {
		return nil, apperror.Forbidden("Only HR can apply onboarding templates")
	}

	tmpl, err := u.repo.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Template not found")
		}
		return nil, apperror.Internal(err)
	}

	if _, err := u.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	now := time.Now()

	// Re-applying never resets existing progress.
	createProgress := false
	progress, err := u.onboardingRepo.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		createProgress = true
		firstPhaseDays := 0
		if len(tmpl.Phases) > 0 {
			firstPhaseDays = tmpl.Phases[0].Duration
		}
		progress = &domain.OnboardingProgress{
			UserID:                  userID,
			Stage:                   domain.StagePrepare,
			Progress:                0,
			StageStartDate:          now,
			EstimatedCompletionDate: now.AddDate(0, 0, firstPhaseDays),
			CreatedAt:               now,
			UpdatedAt:               now,
		}
	} else if err != nil {
		return nil, apperror.Internal(err)
	}

	var tasks []domain.Task
	for _, phase := range tmpl.Phases {
		for _, tt := range phase.Tasks {
			priority := tt.Priority
			if priority == "" {
				priority = domain.PriorityMedium
			}
			controlledBy := tt.ControlledBy
			if controlledBy == "" {
				controlledBy = domain.ControlledByHR
			}
			dueDate := now.AddDate(0, 0, tt.DaysToComplete)
			stage := phase.Name

			tasks = append(tasks, domain.Task{
				UserID:          userID,
				Title:           tt.Title,
				Description:     tt.Description,
				DueDate:         &dueDate,
				Priority:        priority,
				IsCompleted:     false,
				OnboardingStage: &stage,
				ControlledBy:    controlledBy,
				CreatedAt:       now,
				UpdatedAt:       now,
			})
		}
	}

	if err := u.onboardingRepo.CreateWithTasks(ctx, progress, createProgress, tasks); err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.ApplyResult{
		Message:            "Template applied successfully",
		OnboardingProgress: progress,
	}, nil
}

// validateTemplate enforces structural rules on a template before it is
// persisted: valid program type, phase names drawn from the stage enum, and
// non-empty task titles.
func validateTemplate(tmpl *domain.OnboardingTemplate) error {
	if tmpl.Name == "" {
		return apperror.BadRequest("Name is required")
	}
	if tmpl.ProgramType == "" {
		tmpl.ProgramType = domain.ProgramAll
	}
	if !domain.IsValidProgramType(tmpl.ProgramType) {
		return apperror.BadRequest("Invalid program type: " + tmpl.ProgramType)
	}
	for _, phase := range tmpl.Phases {
		if !phase.Name.IsValid() {
			return apperror.BadRequest("Invalid phase name: " + string(phase.Name))
		}
		if phase.Duration < 0 {
			return apperror.BadRequest("Phase duration cannot be negative")
		}
		for _, task := range phase.Tasks {
			if task.Title == "" {
				return apperror.BadRequest("Task title is required in phase: " + string(phase.Name))
			}
			if task.Priority != "" && !task.Priority.IsValid() {
				return apperror.BadRequest("Invalid task priority: " + string(task.Priority))
			}
			if task.ControlledBy != "" && !task.ControlledBy.IsValid() {
				return apperror.BadRequest("Invalid task controller: " + string(task.ControlledBy))
			}
			if task.DaysToComplete < 0 {
				return apperror.BadRequest("Task daysToComplete cannot be negative")
			}
		}
	}
	return nil
}
