package middleware

import (
	"log/slog"
	"net/http"
	"slices"

	"booking-console/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// consoleHeaders must stay readable by a browser renderer: redirects travel in Location,
// the loading view in Retry-After.
var consoleHeaders = []string{"Location", "Retry-After", headerRequestID}

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range consoleHeaders {
		if !slices.ContainsFunc(expose, func(e string) bool { return http.CanonicalHeaderKey(e) == http.CanonicalHeaderKey(h) }) {
			expose = append(expose, h)
		}
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     append(slices.Clone(cfg.AllowHeaders), headerRequestID),
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	logger.Info("CORS middleware initialized", slog.Any("allow_origins", cfg.AllowOrigins), slog.Any("expose_headers", expose))
	return cors.New(corsCfg)
}
