package httpserver

import (
	"errors"
	"net/http"

	"facilityhub/internal/models"
)

// ErrorMessage maps domain errors to HTTP status + message. Unknown errors
// come back as 500 with the provided fallback so internals never leak.
func ErrorMessage(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "Record not found."
	case errors.Is(err, models.ErrDuplicateID):
		return http.StatusConflict, "A record with this id already exists."
	case errors.Is(err, models.ErrPermissionDenied):
		return http.StatusForbidden, "Permission denied."
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials."
	default:
		return http.StatusInternalServerError, fallback
	}
}

// Error writes the mapped error as a JSON body.
func Error(w http.ResponseWriter, err error, fallback string) {
	status, msg := ErrorMessage(err, fallback)
	JSON(w, status, map[string]string{"error": msg})
}
