package handlers

import (
	"errors"
	"net/http"
	"time"

	"user-service/internal/domain/user"
	"user-service/pkg/validator"

	"github.com/gin-gonic/gin"
)

const (
	errorCodeNotFound       = "UserNotFound"
	errorCodeDataDuplicated = "UserDataDuplicated"
	errorCodeBadRequest     = "BadRequest"
	errorCodeInternal       = "InternalServerError"

	msgDataDuplicated = "The username and/or email informed already exists."
)

// ErrorResponse is the error body returned on every failure. Errors is
// populated only for field-validation failures and marshals as null
// otherwise.
type ErrorResponse struct {
	Timestamp time.Time                   `json:"timestamp"`
	Status    int                         `json:"status"`
	Error     string                      `json:"error"`
	Message   string                      `json:"message"`
	Path      string                      `json:"path"`
	ErrorCode string                      `json:"errorCode"`
	Errors    []validator.ValidationError `json:"errors"`
}

func writeError(c *gin.Context, status int, errorCode, message string, details []validator.ValidationError) {
	c.JSON(status, ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      c.Request.URL.Path,
		ErrorCode: errorCode,
		Errors:    details,
	})
}

// writeServiceError translates a rule-engine failure to a status code and
// error body. The service layer itself never sees HTTP.
func writeServiceError(c *gin.Context, err error) {
	var notFound *user.NotFoundError
	switch {
	case errors.As(err, &notFound):
		writeError(c, http.StatusNotFound, errorCodeNotFound, notFound.Error(), nil)
	case errors.Is(err, user.ErrDataDuplicated):
		writeError(c, http.StatusConflict, errorCodeDataDuplicated, msgDataDuplicated, nil)
	default:
		writeError(c, http.StatusInternalServerError, errorCodeInternal, err.Error(), nil)
	}
}
