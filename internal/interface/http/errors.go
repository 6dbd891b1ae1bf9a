package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/student-marks-dashboard/internal/application"
	"github.com/oksasatya/student-marks-dashboard/internal/domain/entity"
	repo "github.com/oksasatya/student-marks-dashboard/internal/domain/repository"
	"github.com/oksasatya/student-marks-dashboard/pkg/response"
	"github.com/oksasatya/student-marks-dashboard/pkg/validation"
)

const (
	msgFieldsRequired     = "All fields are required"
	msgInvalidCredentials = "Invalid username or password"
	msgInternal           = "internal error"
)

// classify maps a service error to a status and a user-facing message.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, application.ErrMissingFields):
		return http.StatusBadRequest, msgFieldsRequired
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusUnauthorized, msgInvalidCredentials
	case errors.Is(err, entity.ErrInvalidMarks):
		return http.StatusBadRequest, "invalid marks"
	case errors.Is(err, repo.ErrInvalidKey):
		return http.StatusBadRequest, "invalid username"
	case errors.Is(err, application.ErrMarksNotFound):
		return http.StatusNotFound, "marks not found"
	default:
		return http.StatusInternalServerError, msgInternal
	}
}

// writeError renders err as an API error envelope. Only 5xx are logged.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	status, msg := classify(err)
	var detail any
	if status >= http.StatusInternalServerError {
		if logger != nil {
			logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		}
	} else if errors.Is(err, entity.ErrInvalidMarks) {
		detail = err.Error()
	}
	response.Error[any](c, status, msg, detail)
}

// writeBindError reports a binding failure, using the fixed required-field
// message when any required field is empty.
func writeBindError(c *gin.Context, err error) {
	msg := "invalid payload"
	if validation.MissingFields(err) {
		msg = msgFieldsRequired
	}
	response.Error[any](c, http.StatusBadRequest, msg, validation.ToDetails(err))
}
