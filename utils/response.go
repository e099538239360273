package utils

import (
	"errors"
	"net/http"

	"secondbrain/apperr"

	"github.com/gin-gonic/gin"
)

// Error writes the minimal error body. Multi-field validation failures
// go through ValidationErrors instead.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func ValidationErrors(c *gin.Context, fields []apperr.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": fields})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// FromError translates a typed failure into its HTTP response. Untyped
// errors surface as an opaque 500.
func FromError(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		InternalError(c, "internal server error")
		return
	}

	switch e.Kind {
	case apperr.KindValidation:
		if len(e.Fields) > 0 {
			ValidationErrors(c, e.Fields)
			return
		}
		BadRequest(c, e.Message)
	case apperr.KindAuth:
		Unauthorized(c, e.Message)
	case apperr.KindConflict:
		// Duplicate unique fields map to 400, matching the signup
		// contract ("Email already exists").
		BadRequest(c, e.Message)
	case apperr.KindNotFound:
		NotFound(c, e.Message)
	default:
		InternalError(c, "internal server error")
	}
}
