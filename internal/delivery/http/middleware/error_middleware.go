package middleware

import (
	"errors"
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/delivery/http/response"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns errors attached via c.Error into the JSON envelope.
// Unknown errors are logged server-side and masked with a generic message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
