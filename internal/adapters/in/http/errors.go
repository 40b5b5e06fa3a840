package http

import (
	"errors"
	"net/http"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a domain error to the HTTP status contract:
//
//	400 invalid input (bad line items, unknown status, malformed ids)
//	401 authentication required
//	403 permission denied
//	404 object genuinely absent
//	409 illegal lifecycle transition
//	500 everything else
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrAuthenticationRequired):
		return writeUnauthorized(c, "Authentication required")
	case errors.Is(err, errs.ErrPermissionDenied):
		return c.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Permission denied",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Not found",
		})
	case errors.Is(err, errs.ErrIllegalTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrNoLineItems):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func writeUnauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}

func writeBadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
