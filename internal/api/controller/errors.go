package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"whlin31/CarHub/internal/api/response"
	"whlin31/CarHub/internal/api/service"

	"github.com/gin-gonic/gin"
)

// statusForError maps each service sentinel to its HTTP status. Bad
// credentials are deliberately 400, not 401, and an unowned record maps to
// the same 404 as a missing one.
var statusForError = map[error]int{
	service.ErrMissingFields:      http.StatusBadRequest,
	service.ErrInvalidEmail:       http.StatusBadRequest,
	service.ErrDuplicateEmail:     http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusBadRequest,
	service.ErrInvalidTags:        http.StatusBadRequest,
	service.ErrTooManyImages:      http.StatusBadRequest,
	service.ErrUserNotFound:       http.StatusNotFound,
	service.ErrCarNotFound:        http.StatusNotFound,
}

// serviceErrorResponse writes the response for a failed service call.
// Unrecognized errors are persistence or programming failures: log the
// detail, answer with a generic 500.
func serviceErrorResponse(c *gin.Context, err error) {
	for sentinel, status := range statusForError {
		if errors.Is(err, sentinel) {
			response.ErrorResponse(c, status, sentinel.Error())
			return
		}
	}
	slog.Error("unexpected service error", "path", c.FullPath(), "error", err)
	response.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
}
