package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP maps an error chain onto an HTTP status/code pair. Unknown errors
// collapse to a generic 500 so internals never leak to clients.
func ToHTTP(err error) *HTTPError {
	if err == nil {
		return &HTTPError{Status: http.StatusOK}
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return &HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "internal server error",
	}
}
