package http

import (
	"errors"
	"log/slog"
	"net/http"

	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/domain/model/parcel"
	"parcellocker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps application errors to HTTP status codes. Integrity faults
// are checked before not-found because a missing compartment matches both.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrDataIntegrityFault):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, commands.ErrNoLockerInRange),
		errors.Is(err, commands.ErrNoAvailableSlot),
		errors.Is(err, parcel.ErrAlreadyReceived),
		errors.Is(err, errs.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, errs.ErrResourceUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Stable client messages for failures whose error text carries driver details.
const (
	msgUnexpected  = "An unexpected error occurred"
	msgConflict    = "The request conflicts with existing data"
	msgUnavailable = "The service is temporarily unavailable, retry later"
)

// writeError answers with the mapped status. Server-side failures and
// storage-level rejections are logged, and their details withheld from the
// client.
func (s *Server) writeError(c echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	switch {
	case status == http.StatusServiceUnavailable:
		s.logFailure(c, slog.LevelWarn, err)
		message = msgUnavailable
	case status >= http.StatusInternalServerError:
		s.logFailure(c, slog.LevelError, err)
		message = msgUnexpected
	case errors.Is(err, errs.ErrConstraintViolation):
		s.logFailure(c, slog.LevelWarn, err)
		message = msgConflict
	}
	return c.JSON(status, Error{Code: status, Message: message})
}

func (s *Server) logFailure(c echo.Context, level slog.Level, err error) {
	s.logger.Log(c.Request().Context(), level, "Request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		"error", err)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
