package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// mapError translates core errors to a status code and a client message.
// Anything unrecognised is a 500 with a generic message.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, commands.ErrRoleNotPermitted),
		errors.Is(err, commands.ErrNotOrderOwner),
		errors.Is(err, order.ErrNotAssignedToCaller):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict, "order was changed concurrently, retry"
	case errors.Is(err, commands.ErrNoRiderAvailable):
		return http.StatusConflict, err.Error()
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrAlreadyPaid),
		errors.Is(err, order.ErrAlreadyAccepted),
		errors.Is(err, order.ErrRiderRequired),
		errors.Is(err, order.ErrNotHomeDelivery),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

func (s *Server) fail(c echo.Context, err error) error {
	status, message := mapError(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.Any("error", err))
	}
	return c.JSON(status, servers.Error{Code: status, Message: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// errorHandler renders echo's own errors (bad path parameters, unknown
// routes) in the API error shape.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, servers.Error{Code: code, Message: message})
}
