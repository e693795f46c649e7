package domain

import (
	"context"
	"time"
)

// Priority represents task urgency
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid checks if the priority is a known value
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ControlledBy identifies which role owns the follow-up on a task
type ControlledBy string

const (
	ControlledByHR         ControlledBy = "hr"
	ControlledBySupervisor ControlledBy = "supervisor"
	ControlledByManager    ControlledBy = "manager"
)

// IsValid checks if the controller is a known value
func (c ControlledBy) IsValid() bool {
	switch c {
	case ControlledByHR, ControlledBySupervisor, ControlledByManager:
		return true
	}
	return false
}

type Task struct {
	ID          int64      `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    Priority   `json:"priority"`
	IsCompleted bool       `json:"is_completed"`
	// OnboardingStage tags the task to a stage bucket for progress display.
	// Nil means the task is not onboarding-related.
	OnboardingStage *Stage       `json:"onboarding_stage,omitempty"`
	ControlledBy    ControlledBy `json:"controlled_by"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id int64) (*Task, error)
	FetchByUser(ctx context.Context, userID string) ([]Task, error)
	// FetchOnboardingByUser returns only tasks with a non-null onboarding stage.
	FetchOnboardingByUser(ctx context.Context, userID string) ([]Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id int64) error
}

type TaskUsecase interface {
	CreateTask(ctx context.Context, task *Task) error
	ListUserTasks(ctx context.Context, userID string) ([]Task, error)
	ToggleTask(ctx context.Context, id int64) (*Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
