package middleware

import (
	"log/slog"
	"net/http"

	"booking-console/internal/handler/httperr"
	"booking-console/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler records every error a handler attached and writes the last public one when
// the handler left the response empty.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			attrs := []any{
				slog.String("request_id", GetRequestID(c)),
				slog.String("kind", errs.Kind(e.Err)),
				slog.String("error", e.Err.Error()),
			}
			if resp, ok := e.Meta.(httperr.Response); ok && resp.Status >= http.StatusInternalServerError {
				logger.Error("Handler failed", append(attrs, slog.Any("stack", errs.ExtractStackLines(e.Err, 5)))...)
				continue
			}
			logger.Debug("Handler error", attrs...)
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
		}
	}
}

// CustomRecovery answers a panic with a 500 notice.
func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("Recovered from panic",
					slog.Any("panic", rec),
					slog.String("path", c.Request.URL.Path),
					slog.String("request_id", GetRequestID(c)),
				)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"
				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
