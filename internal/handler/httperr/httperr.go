package httperr

import (
	"errors"
	"net/http"

	"booking-console/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithRedirect sends the client to another console view. The body repeats the
// Location header for clients that do not follow redirects.
func AbortWithRedirect(c *gin.Context, location string) {
	c.Header("Location", location)
	c.AbortWithStatusJSON(http.StatusFound, gin.H{"redirect": location})
}

// StatusOf maps the error taxonomy to the status of the console response.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrValidationFailed), errors.Is(err, errs.ErrIncompleteSelection):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrTransport), errors.Is(err, errs.ErrUnknown):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
