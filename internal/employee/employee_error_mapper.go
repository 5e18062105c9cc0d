package employee

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	employeeerrors "go-employee-directory/internal/employee/errors"
	"go-employee-directory/internal/shared/apperror"
)

// mapUpstreamStatus turns a non-2xx upstream answer into the error taxonomy.
func mapUpstreamStatus(resp *http.Response, body []byte) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return employeeerrors.ErrEmployeeNotFound
	case http.StatusTooManyRequests:
		return &apperror.RateLimitedError{
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
		}
	}

	detail := strings.TrimSpace(string(body))
	if env, err := decodeEnvelope(body); err == nil && env.Error != "" {
		detail = env.Error
	}
	return apperror.Wrap(
		fmt.Errorf("upstream responded %d: %s", resp.StatusCode, detail),
		apperror.CodeUpstreamError,
		apperror.ErrUpstream.Message,
		apperror.ErrUpstream.HTTPStatus,
	)
}

func transportError(err error) error {
	return apperror.Wrap(err,
		apperror.CodeUpstreamError,
		apperror.ErrUpstream.Message,
		apperror.ErrUpstream.HTTPStatus,
	)
}

// parseRetryAfter accepts delta-seconds or an HTTP date. Unparseable values yield 0.
func parseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := at.Sub(now); d > 0 {
			return d.Round(time.Second)
		}
	}
	return 0
}
