package usecase

import (
	"context"
	"errors"
	"go-onboarding-backend/internal/domain"
	"go-onboarding-backend/pkg/apperror"
	"go-onboarding-backend/pkg/auth"
	"time"
)

type authUsecase struct {
	userRepo domain.UserRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthUsecase(userRepo domain.UserRepository, secret string, tokenTTL time.Duration) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Same message as a wrong password so accounts cannot be enumerated
			return "", nil, apperror.Unauthorized("Invalid email or password")
		}
		return "", nil, apperror.Internal(err)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, apperror.Unauthorized("Invalid email or password")
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role, u.secret, u.tokenTTL)
	if err != nil {
		return "", nil, apperror.Internal(err)
	}

	return token, user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
