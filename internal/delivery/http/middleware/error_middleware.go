package middleware

import (
	"errors"
	"go-onboarding-backend/internal/delivery/http/response"
	"go-onboarding-backend/pkg/apperror"
	"go-onboarding-backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side and send a generic message.
				logger.Log.Error("Internal server error",
					"error", err,
					"path", c.FullPath(),
					"request_id", c.GetString("RequestID"),
				)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
