package employee

import (
	"bytes"
	"encoding/json"
	"fmt"

	employeeerrors "go-employee-directory/internal/employee/errors"
	"go-employee-directory/internal/shared/apperror"
)

// envelope is the upstream wire wrapper. Data may hold a single object or a list.
type envelope struct {
	Data       json.RawMessage `json:"data"`
	Status     string          `json:"status"`
	StatusCode any             `json:"statusCode,omitempty"`
	Error      string          `json:"error,omitempty"`
}

func decodeEnvelope(body []byte) (envelope, error) {
	var env envelope
	if len(bytes.TrimSpace(body)) == 0 {
		return env, nil
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return env, malformed(err)
	}
	return env, nil
}

// hasData reports whether the payload is present and not null.
func (e envelope) hasData() bool {
	d := bytes.TrimSpace(e.Data)
	return len(d) > 0 && !bytes.Equal(d, []byte("null"))
}

// employees normalizes the payload to a list. A missing payload yields nil.
func (e envelope) employees() ([]Employee, error) {
	if !e.hasData() {
		return nil, nil
	}

	d := bytes.TrimSpace(e.Data)
	switch d[0] {
	case '[':
		var list []Employee
		if err := json.Unmarshal(d, &list); err != nil {
			return nil, malformed(err)
		}
		return list, nil
	case '{':
		var one Employee
		if err := json.Unmarshal(d, &one); err != nil {
			return nil, malformed(err)
		}
		return []Employee{one}, nil
	default:
		return nil, malformed(fmt.Errorf("unexpected payload %.32q", string(d)))
	}
}

// truthy treats false, null, zero, empty strings and empty collections as no result.
func (e envelope) truthy() bool {
	if !e.hasData() {
		return false
	}
	var v any
	if err := json.Unmarshal(e.Data, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	case float64:
		return t != 0
	default:
		return true
	}
}

func malformed(err error) error {
	return apperror.Wrap(err,
		employeeerrors.ErrMalformedEnvelope.Code,
		employeeerrors.ErrMalformedEnvelope.Message,
		employeeerrors.ErrMalformedEnvelope.HTTPStatus,
	)
}
