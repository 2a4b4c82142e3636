package attendanceerrors

import (
	"net/http"

	"github.com/ninoyerbas/JHRIS/internal/shared/apperror"
)

var (
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"already clocked in today or invalid data",
		http.StatusConflict,
	)
	ErrAlreadyMarked = apperror.New(
		apperror.CodeConflict,
		"attendance already marked for this date or invalid data",
		http.StatusConflict,
	)
	ErrNoActiveClockIn = apperror.New(
		apperror.CodeNotFound,
		"no active clock-in found for today",
		http.StatusNotFound,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
)
