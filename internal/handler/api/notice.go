package api

import (
	"errors"
	"net/http"

	"booking-console/internal/handler/httperr"
	"booking-console/internal/pkg/config"
	"booking-console/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithNotice answers a failed action with a view-scoped message. A rejected token is
// never shown as a notice: the session is already gone, so the client goes to login.
func abortWithNotice(c *gin.Context, console config.ConsoleConfig, err error, fallback string) {
	if errors.Is(err, errs.ErrUnauthorized) {
		httperr.AbortWithRedirect(c, console.LoginPath)
		return
	}
	httperr.AbortWithError(c, httperr.StatusOf(err), err, errs.Message(err, fallback), nil)
}

func abortRender(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
