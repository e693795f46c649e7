package usecase_test

import (
	"context"

	"go-onboarding-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

type MockTaskRepo struct {
	mock.Mock
}

func (m *MockTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}
func (m *MockTaskRepo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockTaskRepo) FetchByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}
func (m *MockTaskRepo) FetchOnboardingByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}
func (m *MockTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	return m.Called(ctx, task).Error(0)
}
func (m *MockTaskRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockOnboardingRepo struct {
	mock.Mock
}

func (m *MockOnboardingRepo) GetByUserID(ctx context.Context, userID string) (*domain.OnboardingProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OnboardingProgress), args.Error(1)
}
func (m *MockOnboardingRepo) GetWithUser(ctx context.Context, userID string) (*domain.OnboardingProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OnboardingProgress), args.Error(1)
}
func (m *MockOnboardingRepo) Update(ctx context.Context, progress *domain.OnboardingProgress, mirrorUserProgress bool) error {
	return m.Called(ctx, progress, mirrorUserProgress).Error(0)
}
func (m *MockOnboardingRepo) CreateWithTasks(ctx context.Context, progress *domain.OnboardingProgress, createProgress bool, tasks []domain.Task) error {
	return m.Called(ctx, progress, createProgress, tasks).Error(0)
}

type MockTemplateRepo struct {
	mock.Mock
}

func (m *MockTemplateRepo) Create(ctx context.Context, tmpl *domain.OnboardingTemplate) error {
	return m.Called(ctx, tmpl).Error(0)
}
func (m *MockTemplateRepo) GetByID(ctx context.Context, id int64) (*domain.OnboardingTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OnboardingTemplate), args.Error(1)
}
func (m *MockTemplateRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.OnboardingTemplate, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.OnboardingTemplate), args.Get(1).(int64), args.Error(2)
}
func (m *MockTemplateRepo) Update(ctx context.Context, tmpl *domain.OnboardingTemplate) error {
	return m.Called(ctx, tmpl).Error(0)
}
func (m *MockTemplateRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// authedCtx builds a context carrying the identity the auth middleware would set.
func authedCtx(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	return context.WithValue(ctx, domain.KeyUserRole, role)
}
