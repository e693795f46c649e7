package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-onboarding-backend/internal/domain"
	"go-onboarding-backend/internal/usecase"
	"go-onboarding-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testSecret = "test-secret"

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	assert.NoError(t, err)

	stored := &domain.User{
		ID:           "user1",
		Email:        "dana@example.com",
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
	}

	t.Run("Valid credentials return a parseable token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testSecret, time.Hour)
		mockRepo.On("GetByEmail", mock.Anything, "dana@example.com").Return(stored, nil)

		token, user, err := uc.Login(context.Background(), "dana@example.com", "correct-horse")
		assert.NoError(t, err)
		assert.Equal(t, "user1", user.ID)

		claims, err := auth.ParseToken(token, testSecret)
		assert.NoError(t, err)
		assert.Equal(t, "user1", claims.UserID)
		assert.Equal(t, domain.RoleEmployee, claims.Role)
	})

	t.Run("Wrong password and unknown email return the same message", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testSecret, time.Hour)
		mockRepo.On("GetByEmail", mock.Anything, "dana@example.com").Return(stored, nil)
		mockRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

		_, _, errWrongPass := uc.Login(context.Background(), "dana@example.com", "wrong")
		_, _, errNoUser := uc.Login(context.Background(), "nobody@example.com", "wrong")

		assert.Error(t, errWrongPass)
		assert.Error(t, errNoUser)
		assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
	})
}

func TestGetCurrentUser(t *testing.T) {
	mockRepo := new(MockUserRepo)
	uc := usecase.NewAuthUsecase(mockRepo, testSecret, time.Hour)

	t.Run("Missing user maps to not found", func(t *testing.T) {
		mockRepo.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)
		_, err := uc.GetCurrentUser(context.Background(), "ghost")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not found")
	})
}
