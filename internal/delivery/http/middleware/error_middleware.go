package middleware

import (
	"net/http"

	"goals-project-backend/internal/delivery/http/response"
	"goals-project-backend/internal/domain"
	"goals-project-backend/pkg/apperror"
	"goals-project-backend/pkg/logger"
	"goals-project-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if appErr, ok := apperror.As(err); ok {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed",
					"request_id", c.GetString(string(domain.KeyRequestID)), "path", c.FullPath(), "error", appErr.Err)
				response.Error(c, appErr.Code, appErr.Message, nil)
				return
			}
			var details interface{}
			if appErr.Err != nil {
				if msgs := validation.FormatValidationErrors(appErr.Err); len(msgs) > 1 {
					details = msgs
				}
			}
			response.Error(c, appErr.Code, appErr.Message, details)
			return
		}

		// SECURITY: Never expose internal error details to clients.
		logger.Log.Error("Internal server error",
			"request_id", c.GetString(string(domain.KeyRequestID)), "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "Ha ocurrido un error inesperado. Inténtalo de nuevo más tarde.", nil)
	}
}
