package http

import (
	"errors"
	"net/http"

	"catering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// writeError maps a domain error to its HTTP status code and writes the
// JSON error body. Unclassified errors become 500 with a generic message
// so internals never leak to callers.
func writeError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// statusCodeFor classifies an error by its sentinel. Event-date locks are
// checked before state conflicts because clients distinguish "too early"
// (retry later) from "wrong state" (give up).
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrEventDateLocked):
		return http.StatusLocked
	case errors.Is(err, errs.ErrStateConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
