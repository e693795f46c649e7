package usecase

import (
	"context"
	"errors"
	"go-onboarding-backend/internal/domain"
	"go-onboarding-backend/pkg/apperror"
	"go-onboarding-backend/pkg/auth"
	"time"
)

type taskUsecase struct {
	taskRepo domain.TaskRepository
	userRepo domain.UserRepository
}

func NewTaskUsecase(taskRepo domain.TaskRepository, userRepo domain.UserRepository) domain.TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

func (u *taskUsecase) CreateTask(ctx context.Context, task *domain.Task) error {
	_, role, err := callerFromContext(ctx)
	if err != nil {
		return err
	}
	if !auth.Allowed(role, auth.CapTaskCreate) {
		return apperror.Forbidden("Insufficient role to create tasks")
	}

	if task.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if !task.Priority.IsValid() {
		return apperror.BadRequest("Invalid priority: " + string(task.Priority))
	}
	if task.ControlledBy == "" {
		task.ControlledBy = domain.ControlledByHR
	}
	if !task.ControlledBy.IsValid() {
		return apperror.BadRequest("Invalid controller: " + string(task.ControlledBy))
	}
	if task.OnboardingStage != nil && !task.OnboardingStage.IsValid() {
		return apperror.BadRequest("Invalid onboarding stage: " + string(*task.OnboardingStage))
	}

	// The task owner must exist
	if _, err := u.userRepo.GetByID(ctx, task.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("User not found")
		}
		return apperror.Internal(err)
	}

	task.IsCompleted = false
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()

	if err := u.taskRepo.Create(ctx, task); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *taskUsecase) ListUserTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	callerID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !auth.AllowedOrSelf(role, callerID, userID, auth.CapTaskList) {
		return nil, apperror.Forbidden("You can only view your own tasks")
	}

	tasks, err := u.taskRepo.FetchByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return tasks, nil
}

func (u *taskUsecase) ToggleTask(ctx context.Context, id int64) (*domain.Task, error) {
	callerID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}

	task, err := u.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Task not found")
		}
		return nil, apperror.Internal(err)
	}

	if !auth.AllowedOrSelf(role, callerID, task.UserID, auth.CapTaskToggle) {
		return nil, apperror.Forbidden("You can only complete your own tasks")
	}

	task.IsCompleted = !task.IsCompleted
	task.UpdatedAt = time.Now()

	if err := u.taskRepo.Update(ctx, task); err != nil {
		return nil, apperror.Internal(err)
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(ctx context.Context, id int64) error {
	_, role, err := callerFromContext(ctx)
	if err != nil {
		return err
	}
	if !auth.Allowed(role, auth.CapTaskDelete) {
		return apperror.Forbidden("Insufficient role to delete tasks")
	}

	if err := u.taskRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Task not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
