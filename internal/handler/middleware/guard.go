package middleware

import (
	"net/http"

	"booking-console/internal/domain/session"
	"booking-console/internal/handler/httperr"
	"booking-console/internal/pkg/config"
	"booking-console/internal/usecase"

	"github.com/gin-gonic/gin"
)

type GuardMiddleware struct {
	guard   usecase.AccessGuard
	console config.ConsoleConfig
}

const ctxSessionKey = "session"

// retryAfterSeconds is how long a client should wait before asking again while the
// session is still being restored.
const retryAfterSeconds = "1"

func NewGuardMiddleware(guard usecase.AccessGuard, cfg config.Config) *GuardMiddleware {
	return &GuardMiddleware{
		guard:   guard,
		console: cfg.Console,
	}
}

func (m *GuardMiddleware) RequireAuth() gin.HandlerFunc {
	return m.require(usecase.RequireAuthenticated)
}

func (m *GuardMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.require(usecase.RequireAdmin)
}

func (m *GuardMiddleware) require(req usecase.Requirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, current := m.guard.Check(c.Request.Context(), req)
		c.Set(ctxSessionKey, current)

		switch decision {
		case usecase.DecisionRender:
			c.Next()
		case usecase.DecisionWait:
			c.Header("Retry-After", retryAfterSeconds)
			c.AbortWithStatusJSON(http.StatusAccepted, gin.H{"view": "loading"})
		case usecase.DecisionRedirectLanding:
			httperr.AbortWithRedirect(c, m.console.LandingPath)
		default:
			httperr.AbortWithRedirect(c, m.console.LoginPath)
		}
	}
}

// CurrentSession returns the session snapshot the guard authorized the request with.
func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(ctxSessionKey)
	if !exists {
		return session.Session{}, false
	}

	s, ok := v.(session.Session)
	return s, ok
}
