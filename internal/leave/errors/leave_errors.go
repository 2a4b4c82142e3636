package leaveerrors

import (
	"net/http"

	"github.com/ninoyerbas/JHRIS/internal/shared/apperror"
)

var (
	ErrInvalidLeaveRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave request id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrLeaveRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	// ErrLeaveRequestNotDecidable covers both the missing row and the
	// already-decided row: a second decision cannot tell them apart.
	ErrLeaveRequestNotDecidable = apperror.New(
		apperror.CodeNotFound,
		"leave request not found or already processed",
		http.StatusNotFound,
	)
	ErrLeaveRequestCreateFailed = apperror.New(
		apperror.CodeInvalidInput,
		"failed to create leave request",
		http.StatusBadRequest,
	)
	ErrBalanceAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"leave balance already exists or invalid data",
		http.StatusConflict,
	)
)
