package usecase

import (
	"context"
	"go-onboarding-backend/internal/domain"
	"go-onboarding-backend/pkg/apperror"
)

// callerFromContext extracts the authenticated caller's identity from the
// request context. Fails safe: missing or malformed values are treated as
// unauthenticated.
func callerFromContext(ctx context.Context) (string, string, error) {
	id, _ := ctx.Value(domain.KeyUserID).(string)
	if id == "" {
		return "", "", apperror.Unauthorized("User not authenticated")
	}
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	return id, role, nil
}
