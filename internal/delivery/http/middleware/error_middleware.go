package middleware

import (
	"errors"
	"net/http"

	"go-contact-backend/internal/delivery/http/response"
	"go-contact-backend/pkg/apperror"
	"go-contact-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the safety net for errors handlers attach to the context.
// Internal detail is logged server-side only; the caller receives a generic
// code so transport internals never leak over the wire.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			requestID := c.GetString("RequestID")

			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("request failed", "request_id", requestID, "status", appErr.Code, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message)
				return
			}

			logger.Log.Error("unhandled error", "request_id", requestID, "error", err)
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
	}
}
