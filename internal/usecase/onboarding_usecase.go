package usecase

import (
	"context"
	"errors"
	"go-onboarding-backend/internal/domain"
	"go-onboarding-backend/pkg/apperror"
	"go-onboarding-backend/pkg/auth"
	"go-onboarding-backend/pkg/validation"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type onboardingUsecase struct {
	repo     domain.OnboardingRepository
	taskRepo domain.TaskRepository
	validate *validator.Validate
}

func NewOnboardingUsecase(repo domain.OnboardingRepository, taskRepo domain.TaskRepository, validate *validator.Validate) domain.OnboardingUsecase {
	return &onboardingUsecase{
		repo:     repo,
		taskRepo: taskRepo,
		validate: validate,
	}
}

func (u *onboardingUsecase) GetProgress(ctx context.Context, userID string) (*domain.ProgressDetails, error) {
	callerID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !auth.AllowedOrSelf(role, callerID, userID, auth.CapProgressRead) {
		return nil, apperror.Forbidden("You cannot view this onboarding record")
	}

	progress, err := u.repo.GetWithUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Onboarding record not found")
		}
		return nil, apperror.Internal(err)
	}

	tasks, err := u.taskRepo.FetchOnboardingByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	// Fixed five-key grouping: every stage bucket is present even when empty.
	byStage := make(map[domain.Stage][]domain.Task, len(domain.ValidStages()))
	for _, stage := range domain.ValidStages() {
		byStage[stage] = []domain.Task{}
	}
	for _, task := range tasks {
		if task.OnboardingStage == nil {
			continue
		}
		stage := *task.OnboardingStage
		byStage[stage] = append(byStage[stage], task)
	}

	return &domain.ProgressDetails{
		OnboardingProgress: *progress,
		TasksByStage:       byStage,
	}, nil
}

func (u *onboardingUsecase) UpdateProgress(ctx context.Context, userID string, req *domain.ProgressUpdateRequest) (*domain.OnboardingProgress, error) {
	callerID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !auth.AllowedOrSelf(role, callerID, userID, auth.CapProgressUpdate) {
		return nil, apperror.Forbidden("You cannot update this onboarding record")
	}

	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}
	if req.Stage != nil && !req.Stage.IsValid() {
		return nil, apperror.BadRequest("Invalid stage: " + string(*req.Stage))
	}

	progress, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Onboarding record not found")
		}
		return nil, apperror.Internal(err)
	}

	now := time.Now()

	// A stage change resets the stage clock and re-derives the completion
	// estimate. Setting the same stage again leaves both dates untouched.
	// Transitions are free: regressions are allowed for manual correction.
	if req.Stage != nil && *req.Stage != progress.Stage {
		progress.Stage = *req.Stage
		progress.StageStartDate = now
		progress.EstimatedCompletionDate = now.AddDate(0, 0, domain.EstimatedDays(*req.Stage))
	}

	mirror := false
	if req.Progress != nil {
		progress.Progress = *req.Progress
		mirror = true
	}
	progress.UpdatedAt = now

	if err := u.repo.Update(ctx, progress, mirror); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Onboarding record not found")
		}
		return nil, apperror.Internal(err)
	}

	refreshed, err := u.repo.GetWithUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return refreshed, nil
}
