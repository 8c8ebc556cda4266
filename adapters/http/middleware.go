package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/dynamic-profile/pkg/apperror"
	"github.com/khoahotran/dynamic-profile/pkg/logger"
)

// ErrorMiddleware renders the last error a handler attached with c.Error.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status := apperror.ToHTTPStatus(err)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if status >= http.StatusInternalServerError {
				log.Error("Request failed", err, zap.String("path", c.FullPath()))
			}
			c.AbortWithStatusJSON(status, appErr.ToJSON())
			return
		}

		log.Error("Unhandled request error", err, zap.String("path", c.FullPath()))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":   apperror.ErrInternal.Error(),
			"message": "An unexpected error occurred. Please try again later.",
		})
	}
}

func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
