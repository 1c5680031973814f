package http

import (
	"errors"
	"net/http"

	"github.com/lcnogueira/plataforma-sabia/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error codes exposed to API clients.
const (
	codeResourceNotFound   = "RESOURCE_NOT_FOUND"
	codeStatusNotAllowed   = "STATUS_NO_ALLOWED_FOR_OPERATION"
	codeResourceDeleted    = "RESOURCE_DELETED_ERROR"
	codeValidationError    = "VALIDATION_ERROR"
	codeUnauthorizedAccess = "UNAUTHORIZED_ACCESS"
	codeInternalError      = "INTERNAL_SERVER_ERROR"
)

type errorBody struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// writeError maps domain and application errors onto the API error contract.
// Unrecognized errors become opaque 500s so internals never leak to clients.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeErrorCode(ctx, http.StatusBadRequest, codeResourceNotFound, err)
	case errors.Is(err, errs.ErrStatusNotAllowed):
		return writeErrorCode(ctx, http.StatusBadRequest, codeStatusNotAllowed, err)
	case errors.Is(err, errs.ErrResourceNotDeleted):
		return writeErrorCode(ctx, http.StatusBadRequest, codeResourceDeleted, err)
	case errors.Is(err, errs.ErrUnauthorizedAccess):
		return writeErrorCode(ctx, http.StatusForbidden, codeUnauthorizedAccess, err)
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeErrorCode(ctx, http.StatusBadRequest, codeValidationError, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Error: errorBody{
				ErrorCode: codeInternalError,
				Message:   "an unexpected error occurred",
			},
		})
	}
}

func writeErrorCode(ctx echo.Context, status int, code string, err error) error {
	return ctx.JSON(status, errorResponse{
		Error: errorBody{
			ErrorCode: code,
			Message:   err.Error(),
		},
	})
}

// writeValidationError reports malformed request input that never reached a
// command or query constructor.
func writeValidationError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Error: errorBody{
			ErrorCode: codeValidationError,
			Message:   message,
		},
	})
}
