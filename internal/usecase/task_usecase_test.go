package usecase_test

import (
	"testing"

	"go-onboarding-backend/internal/domain"
	"go-onboarding-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateTask(t *testing.T) {
	t.Run("Employee cannot create tasks", func(t *testing.T) {
		uc := usecase.NewTaskUsecase(new(MockTaskRepo), new(MockUserRepo))
		ctx := authedCtx("user1", domain.RoleEmployee)
		err := uc.CreateTask(ctx, &domain.Task{UserID: "user1", Title: "Do a thing"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Insufficient role")
	})

	t.Run("Defaults fill in priority and controller", func(t *testing.T) {
		mockTasks := new(MockTaskRepo)
		mockUsers := new(MockUserRepo)
		uc := usecase.NewTaskUsecase(mockTasks, mockUsers)
		ctx := authedCtx("hr1", domain.RoleHR)

		mockUsers.On("GetByID", mock.Anything, "user1").Return(&domain.User{ID: "user1"}, nil)
		mockTasks.On("Create", mock.Anything, mock.AnythingOfType("*domain.Task")).Return(nil)

		task := &domain.Task{UserID: "user1", Title: "Collect laptop"}
		err := uc.CreateTask(ctx, task)
		assert.NoError(t, err)
		assert.Equal(t, domain.PriorityMedium, task.Priority)
		assert.Equal(t, domain.ControlledByHR, task.ControlledBy)
		assert.False(t, task.IsCompleted)
	})

	t.Run("Unknown owner maps to not found", func(t *testing.T) {
		mockTasks := new(MockTaskRepo)
		mockUsers := new(MockUserRepo)
		uc := usecase.NewTaskUsecase(mockTasks, mockUsers)
		ctx := authedCtx("hr1", domain.RoleHR)

		mockUsers.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

		err := uc.CreateTask(ctx, &domain.Task{UserID: "ghost", Title: "Orphan task"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not found")
	})

	t.Run("Invalid enum values are rejected", func(t *testing.T) {
		uc := usecase.NewTaskUsecase(new(MockTaskRepo), new(MockUserRepo))
		ctx := authedCtx("hr1", domain.RoleHR)

		err := uc.CreateTask(ctx, &domain.Task{UserID: "user1", Title: "t", Priority: "urgent"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid priority")

		bad := domain.Stage("warmup")
		err = uc.CreateTask(ctx, &domain.Task{UserID: "user1", Title: "t", OnboardingStage: &bad})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid onboarding stage")
	})
}

func TestListUserTasks(t *testing.T) {
	t.Run("Employee cannot list another user's tasks", func(t *testing.T) {
		uc := usecase.NewTaskUsecase(new(MockTaskRepo), new(MockUserRepo))
		ctx := authedCtx("user1", domain.RoleEmployee)
		_, err := uc.ListUserTasks(ctx, "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only view your own tasks")
	})

	t.Run("Employee can list their own tasks", func(t *testing.T) {
		mockTasks := new(MockTaskRepo)
		uc := usecase.NewTaskUsecase(mockTasks, new(MockUserRepo))
		ctx := authedCtx("user1", domain.RoleEmployee)
		mockTasks.On("FetchByUser", mock.Anything, "user1").Return([]domain.Task{{ID: 1, UserID: "user1"}}, nil)

		tasks, err := uc.ListUserTasks(ctx, "user1")
		assert.NoError(t, err)
		assert.Len(t, tasks, 1)
	})
}

func TestToggleTask(t *testing.T) {
	t.Run("Toggling flips completion both ways", func(t *testing.T) {
		mockTasks := new(MockTaskRepo)
		uc := usecase.NewTaskUsecase(mockTasks, new(MockUserRepo))
		ctx := authedCtx("user1", domain.RoleEmployee)

		stored := &domain.Task{ID: 1, UserID: "user1", IsCompleted: false}
		mockTasks.On("GetByID", mock.Anything, int64(1)).Return(stored, nil)
		mockTasks.On("Update", mock.Anything, stored).Return(nil)

		task, err := uc.ToggleTask(ctx, 1)
		assert.NoError(t, err)
		assert.True(t, task.IsCompleted)

		task, err = uc.ToggleTask(ctx, 1)
		assert.NoError(t, err)
		assert.False(t, task.IsCompleted)
	})

	t.Run("Employee cannot toggle someone else's task", func(t *testing.T) {
		mockTasks := new(MockTaskRepo)
		uc := usecase.NewTaskUsecase(mockTasks, new(MockUserRepo))
		ctx := authedCtx("user1", domain.RoleEmployee)

		mockTasks.On("GetByID", mock.Anything, int64(2)).Return(&domain.Task{ID: 2, UserID: "user2"}, nil)

		_, err := uc.ToggleTask(ctx, 2)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only complete your own tasks")
	})

	t.Run("Missing task maps to not found", func(t *testing.T) {
		mockTasks := new(MockTaskRepo)
		uc := usecase.NewTaskUsecase(mockTasks, new(MockUserRepo))
		ctx := authedCtx("user1", domain.RoleEmployee)

		mockTasks.On("GetByID", mock.Anything, int64(9)).Return(nil, domain.ErrNotFound)

		_, err := uc.ToggleTask(ctx, 9)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Task not found")
	})
}

func TestDeleteTask(t *testing.T) {
	t.Run("Employee cannot delete tasks", func(t *testing.T) {
		uc := usecase.NewTaskUsecase(new(MockTaskRepo), new(MockUserRepo))
		ctx := authedCtx("user1", domain.RoleEmployee)
		err := uc.DeleteTask(ctx, 1)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Insufficient role")
	})

	t.Run("Supervisor can delete a task", func(t *testing.T) {
		mockTasks := new(MockTaskRepo)
		uc := usecase.NewTaskUsecase(mockTasks, new(MockUserRepo))
		ctx := authedCtx("sup1", domain.RoleSupervisor)
		mockTasks.On("Delete", mock.Anything, int64(1)).Return(nil)

		assert.NoError(t, uc.DeleteTask(ctx, 1))
	})
}
