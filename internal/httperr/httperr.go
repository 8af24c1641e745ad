package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/washerhq/carwash-api/internal/apperr"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// From translates the error taxonomy raised by the use cases into the
// matching HTTP response.
func From(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		BadRequest(c, "validation_error", ve.Error())
		return
	}

	var nf *apperr.NotFoundError
	if errors.As(err, &nf) {
		NotFound(c, "not_found", nf.Error())
		return
	}

	var is *apperr.InvalidStateError
	if errors.As(err, &is) {
		Conflict(c, "invalid_state", is.Error())
		return
	}

	Internal(c, "internal_error", "unexpected error")
}
