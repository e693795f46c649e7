package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-onboarding-backend/internal/domain"
	"go-onboarding-backend/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func intPtr(v int) *int { return &v }

func stagePtr(s domain.Stage) *domain.Stage { return &s }

func TestGetProgressGrouping(t *testing.T) {
	mockRepo := new(MockOnboardingRepo)
	mockTasks := new(MockTaskRepo)
	uc := usecase.NewOnboardingUsecase(mockRepo, mockTasks, validator.New())

	ctx := authedCtx("user1", domain.RoleEmployee)
	land := domain.StageLand
	orient := domain.StageOrient

	mockRepo.On("GetWithUser", mock.Anything, "user1").Return(&domain.OnboardingProgress{
		UserID: "user1",
		Stage:  domain.StageLand,
	}, nil)
	mockTasks.On("FetchOnboardingByUser", mock.Anything, "user1").Return([]domain.Task{
		{ID: 1, UserID: "user1", Title: "Badge photo", OnboardingStage: &orient},
		{ID: 2, UserID: "user1", Title: "Meet the team", OnboardingStage: &land},
		{ID: 3, UserID: "user1", Title: "Shadow a standup", OnboardingStage: &land},
	}, nil)

	details, err := uc.GetProgress(ctx, "user1")
	assert.NoError(t, err)

	t.Run("All five stage buckets are always present", func(t *testing.T) {
		assert.Len(t, details.TasksByStage, 5)
		for _, stage := range domain.ValidStages() {
			bucket, ok := details.TasksByStage[stage]
			assert.True(t, ok, "missing bucket for stage %s", stage)
			assert.NotNil(t, bucket)
		}
	})

	t.Run("Tasks land in their stage bucket", func(t *testing.T) {
		assert.Len(t, details.TasksByStage[domain.StageOrient], 1)
		assert.Len(t, details.TasksByStage[domain.StageLand], 2)
		assert.Empty(t, details.TasksByStage[domain.StageExcel])
	})
}

func TestGetProgressAccess(t *testing.T) {
	mockRepo := new(MockOnboardingRepo)
	mockTasks := new(MockTaskRepo)
	uc := usecase.NewOnboardingUsecase(mockRepo, mockTasks, validator.New())

	t.Run("Should fail safe when context carries no identity", func(t *testing.T) {
		_, err := uc.GetProgress(context.Background(), "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})

	t.Run("Missing record maps to not found", func(t *testing.T) {
		ctx := authedCtx("user1", domain.RoleEmployee)
		mockRepo.On("GetWithUser", mock.Anything, "user1").Return(nil, domain.ErrNotFound)

		_, err := uc.GetProgress(ctx, "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Onboarding record not found")
	})
}

func TestUpdateProgressAuthorization(t *testing.T) {
	mockRepo := new(MockOnboardingRepo)
	mockTasks := new(MockTaskRepo)
	uc := usecase.NewOnboardingUsecase(mockRepo, mockTasks, validator.New())

	t.Run("Employee cannot update another user's record", func(t *testing.T) {
		ctx := authedCtx("user1", domain.RoleEmployee)
		_, err := uc.UpdateProgress(ctx, "user2", &domain.ProgressUpdateRequest{Progress: intPtr(50)})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot update")
	})

	t.Run("Employee can update their own record", func(t *testing.T) {
		ctx := authedCtx("user1", domain.RoleEmployee)
		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(&domain.OnboardingProgress{
			UserID: "user1",
			Stage:  domain.StagePrepare,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.Anything, true).Return(nil)
		mockRepo.On("GetWithUser", mock.Anything, "user1").Return(&domain.OnboardingProgress{UserID: "user1"}, nil)

		_, err := uc.UpdateProgress(ctx, "user1", &domain.ProgressUpdateRequest{Progress: intPtr(50)})
		assert.NoError(t, err)
	})

	t.Run("Supervisor can update any record", func(t *testing.T) {
		mockRepo := new(MockOnboardingRepo)
		uc := usecase.NewOnboardingUsecase(mockRepo, mockTasks, validator.New())
		ctx := authedCtx("sup1", domain.RoleSupervisor)
		mockRepo.On("GetByUserID", mock.Anything, "user2").Return(&domain.OnboardingProgress{
			UserID: "user2",
			Stage:  domain.StagePrepare,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.Anything, true).Return(nil)
		mockRepo.On("GetWithUser", mock.Anything, "user2").Return(&domain.OnboardingProgress{UserID: "user2"}, nil)

		_, err := uc.UpdateProgress(ctx, "user2", &domain.ProgressUpdateRequest{Progress: intPtr(10)})
		assert.NoError(t, err)
	})
}

func TestUpdateProgressStageDates(t *testing.T) {
	ctx := authedCtx("hr1", domain.RoleHR)

	t.Run("Stage change resets stage start and completion estimate", func(t *testing.T) {
		mockRepo := new(MockOnboardingRepo)
		uc := usecase.NewOnboardingUsecase(mockRepo, new(MockTaskRepo), validator.New())

		oldStart := time.Now().AddDate(0, 0, -10)
		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(&domain.OnboardingProgress{
			UserID:         "user1",
			Stage:          domain.StagePrepare,
			StageStartDate: oldStart,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.OnboardingProgress"), false).
			Return(nil).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*domain.OnboardingProgress)
				assert.Equal(t, domain.StageLand, p.Stage)
				assert.WithinDuration(t, time.Now(), p.StageStartDate, time.Minute)
				// land is estimated at 5 days
				assert.WithinDuration(t, time.Now().AddDate(0, 0, 5), p.EstimatedCompletionDate, time.Minute)
			})
		mockRepo.On("GetWithUser", mock.Anything, "user1").Return(&domain.OnboardingProgress{UserID: "user1"}, nil)

		_, err := uc.UpdateProgress(ctx, "user1", &domain.ProgressUpdateRequest{Stage: stagePtr(domain.StageLand)})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Setting the same stage leaves dates untouched", func(t *testing.T) {
		mockRepo := new(MockOnboardingRepo)
		uc := usecase.NewOnboardingUsecase(mockRepo, new(MockTaskRepo), validator.New())

		oldStart := time.Now().AddDate(0, 0, -10)
		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(&domain.OnboardingProgress{
			UserID:         "user1",
			Stage:          domain.StageLand,
			StageStartDate: oldStart,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.OnboardingProgress"), false).
			Return(nil).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*domain.OnboardingProgress)
				assert.Equal(t, oldStart, p.StageStartDate)
			})
		mockRepo.On("GetWithUser", mock.Anything, "user1").Return(&domain.OnboardingProgress{UserID: "user1"}, nil)

		_, err := uc.UpdateProgress(ctx, "user1", &domain.ProgressUpdateRequest{Stage: stagePtr(domain.StageLand)})
		assert.NoError(t, err)
	})

	t.Run("Backward transitions are allowed", func(t *testing.T) {
		mockRepo := new(MockOnboardingRepo)
		uc := usecase.NewOnboardingUsecase(mockRepo, new(MockTaskRepo), validator.New())

		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(&domain.OnboardingProgress{
			UserID: "user1",
			Stage:  domain.StageExcel,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.OnboardingProgress"), false).
			Return(nil).
			Run(func(args mock.Arguments) {
				p := args.Get(1).(*domain.OnboardingProgress)
				assert.Equal(t, domain.StagePrepare, p.Stage)
			})
		mockRepo.On("GetWithUser", mock.Anything, "user1").Return(&domain.OnboardingProgress{UserID: "user1"}, nil)

		_, err := uc.UpdateProgress(ctx, "user1", &domain.ProgressUpdateRequest{Stage: stagePtr(domain.StagePrepare)})
		assert.NoError(t, err)
	})
}

func TestUpdateProgressMirror(t *testing.T) {
	ctx := authedCtx("hr1", domain.RoleHR)

	t.Run("Progress change mirrors to the user row", func(t *testing.T) {
		mockRepo := new(MockOnboardingRepo)
		uc := usecase.NewOnboardingUsecase(mockRepo, new(MockTaskRepo), validator.New())

		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(&domain.OnboardingProgress{
			UserID: "user1",
			Stage:  domain.StagePrepare,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.Anything, true).Return(nil)
		mockRepo.On("GetWithUser", mock.Anything, "user1").Return(&domain.OnboardingProgress{UserID: "user1"}, nil)

		_, err := uc.UpdateProgress(ctx, "user1", &domain.ProgressUpdateRequest{Progress: intPtr(0)})
		assert.NoError(t, err)
		mockRepo.AssertCalled(t, "Update", mock.Anything, mock.Anything, true)
	})

	t.Run("Stage-only change does not touch the user row", func(t *testing.T) {
		mockRepo := new(MockOnboardingRepo)
		uc := usecase.NewOnboardingUsecase(mockRepo, new(MockTaskRepo), validator.New())

		mockRepo.On("GetByUserID", mock.Anything, "user1").Return(&domain.OnboardingProgress{
			UserID: "user1",
			Stage:  domain.StagePrepare,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.Anything, false).Return(nil)
		mockRepo.On("GetWithUser", mock.Anything, "user1").Return(&domain.OnboardingProgress{UserID: "user1"}, nil)

		_, err := uc.UpdateProgress(ctx, "user1", &domain.ProgressUpdateRequest{Stage: stagePtr(domain.StageOrient)})
		assert.NoError(t, err)
		mockRepo.AssertCalled(t, "Update", mock.Anything, mock.Anything, false)
	})
}

func TestUpdateProgressValidation(t *testing.T) {
	mockRepo := new(MockOnboardingRepo)
	uc := usecase.NewOnboardingUsecase(mockRepo, new(MockTaskRepo), validator.New())
	ctx := authedCtx("hr1", domain.RoleHR)

	t.Run("Progress above 100 is rejected", func(t *testing.T) {
		_, err := uc.UpdateProgress(ctx, "user1", &domain.ProgressUpdateRequest{Progress: intPtr(101)})
		assert.Error(t, err)
	})

	t.Run("Negative progress is rejected", func(t *testing.T) {
		_, err := uc.UpdateProgress(ctx, "user1", &domain.ProgressUpdateRequest{Progress: intPtr(-1)})
		assert.Error(t, err)
	})

	t.Run("Unknown stage is rejected", func(t *testing.T) {
		bad := domain.Stage("launch")
		_, err := uc.UpdateProgress(ctx, "user1", &domain.ProgressUpdateRequest{Stage: &bad})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid stage")
	})

	t.Run("Missing record maps to not found", func(t *testing.T) {
		mockRepo.On("GetByUserID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)
		_, err := uc.UpdateProgress(ctx, "ghost", &domain.ProgressUpdateRequest{Progress: intPtr(10)})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Onboarding record not found")
	})
}
