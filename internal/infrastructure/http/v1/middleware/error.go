package middleware

import (
	"github.com/gin-gonic/gin"

	"salespoint/internal/core/apperror"
	"salespoint/pkg/logger"
)

// ErrorHandler middleware transforms errors into consistent JSON
// responses. Every failure answers {"error": message}; only store
// errors carry their cause verbatim, everything unknown stays generic.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			// Log internal error if present
			if appErr.Err != nil {
				logger.Error(c.Request.Context(), "request error",
					"code", appErr.Code,
					"cause", appErr.Err,
				)
			}

			c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
			return
		}

		// Unknown error - log and return generic message
		logger.Error(c.Request.Context(), "unhandled error",
			"error", err,
		)
		c.JSON(500, gin.H{"error": "Internal server error"})
	}
}
