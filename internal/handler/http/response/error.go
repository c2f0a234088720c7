package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/session"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/specialday"
	"github.com/cmlabs-hris/worktime-backend-go/internal/domain/summary"
	"github.com/cmlabs-hris/worktime-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Not found
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, session.ErrSessionNotFound):
		NotFound(w, "Work session not found")
	case errors.Is(err, summary.ErrDailySummaryNotFound):
		NotFound(w, "Daily summary not found")
	case errors.Is(err, specialday.ErrSpecialDayTypeNotFound):
		NotFound(w, "Special day type not found")
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave record not found")

	// Session calculation
	case errors.Is(err, session.ErrInvalidInterval):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, session.ErrIncomplete):
		BadRequest(w, err.Error(), nil)

	// Special days
	case errors.Is(err, specialday.ErrNotEligible):
		Forbidden(w, err.Error())

	// Conflicts
	case errors.Is(err, session.ErrAlreadyClockedIn),
		errors.Is(err, session.ErrNotClockedIn),
		errors.Is(err, session.ErrSessionCancelled),
		errors.Is(err, session.ErrSessionNotClosed),
		errors.Is(err, employee.ErrEmployeeInactive),
		errors.Is(err, specialday.ErrSpecialDayTypeInactive),
		errors.Is(err, leave.ErrLeaveAlreadyCancelled):
		Conflict(w, err.Error())

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
