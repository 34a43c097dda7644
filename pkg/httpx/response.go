package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hooknest/craftstock-service/pkg/apperrors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

// RespondError maps the error kinds to HTTP statuses: NotFound → 404,
// Validation → 400, Conflict → 409, anything else → 500.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "internal"
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
		code = "not_found"
	case errors.Is(err, apperrors.ErrValidation):
		status = http.StatusBadRequest
		code = "validation"
	case errors.Is(err, apperrors.ErrConflict):
		status = http.StatusConflict
		code = "conflict"
	}
	c.JSON(status, ErrorEnvelope{Error: APIError{Message: err.Error(), Code: code}})
}
