package usecase

import (
	"context"
	"errors"
	"go-onboarding-backend/internal/domain"
	"go-onboarding-backend/pkg/apperror"
	"go-onboarding-backend/pkg/auth"
	"time"

	"github.com/google/uuid"
)

type userUsecase struct {
	userRepo domain.UserRepository
}

func NewUserUsecase(userRepo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) CreateUser(ctx context.Context, user *domain.User, password string) error {
	_, role, err := callerFromContext(ctx)
	if err != nil {
		return err
	}
	if !auth.Allowed(role, auth.CapUserCreate) {
		return apperror.Forbidden("Only HR can create users")
	}

	if err := auth.ValidatePassword(password); err != nil {
		return apperror.BadRequest(err.Error())
	}

	if user.Role == "" {
		user.Role = domain.RoleEmployee
	}
	if user.ProgramType == "" {
		user.ProgramType = domain.ProgramAll
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return apperror.Internal(err)
	}

	user.ID = uuid.NewString()
	user.PasswordHash = hash
	user.OnboardingProgress = 0
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	return u.userRepo.Create(ctx, user)
}

func (u *userUsecase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	callerID, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !auth.AllowedOrSelf(role, callerID, id, auth.CapUserRead) {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *userUsecase) ListUsers(ctx context.Context, page, pageSize int) ([]domain.User, int64, error) {
	_, role, err := callerFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}
	if !auth.Allowed(role, auth.CapUserList) {
		return nil, 0, apperror.Forbidden("Insufficient role to list users")
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	users, total, err := u.userRepo.Fetch(ctx, pageSize, offset)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return users, total, nil
}
