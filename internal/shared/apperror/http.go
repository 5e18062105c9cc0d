package apperror

import (
	"errors"
	"net/http"
	"strconv"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
	Headers map[string]string
}

// ToHTTP projects any error onto the wire. Unknown errors become a generic 500.
func ToHTTP(err error) HTTPError {
	var rl *RateLimitedError
	if errors.As(err, &rl) {
		h := HTTPError{
			Status:  rl.HTTPStatus(),
			Code:    CodeRateLimited,
			Message: rl.Error(),
		}
		if rl.RetryAfter > 0 {
			h.Headers = map[string]string{
				"Retry-After": strconv.Itoa(int(rl.RetryAfter.Seconds())),
			}
		}
		return h
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		h := HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
		if appErr.Err != nil && appErr.HTTPStatus < http.StatusInternalServerError {
			h.Details = appErr.Err.Error()
		}
		return h
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: "Internal server error",
	}
}
