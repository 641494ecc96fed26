package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Salamjean/kksExpress-backend/internal/pkg/errs"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorResponse converts an application error into the matching HTTP
// status. Unknown errors become a 500 without leaking their message.
func errorResponse(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return ctx.JSON(httpErr.Code, ErrorResponse{
			Code:    httpErr.Code,
			Message: httpErrMessage(httpErr),
		})
	}

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrExternalService):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func httpErrMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}

	return http.StatusText(httpErr.Code)
}
