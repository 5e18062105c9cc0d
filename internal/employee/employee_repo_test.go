package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-employee-directory/internal/employee"
	employeeerrors "go-employee-directory/internal/employee/errors"
	"go-employee-directory/internal/shared/apperror"
	"go-employee-directory/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method    string
	Path      string
	Body      string
	RequestID string
}

func setupUpstream(t *testing.T, status int, body string, headers map[string]string) (employee.Repository, *[]recordedRequest) {
	t.Helper()
	var seen []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		seen = append(seen, recordedRequest{
			Method:    r.Method,
			Path:      r.URL.Path,
			Body:      string(raw),
			RequestID: r.Header.Get(contextutil.HeaderRequestID),
		})
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return employee.NewRepository(srv.URL+"/api/v1/employee/", srv.Client()), &seen
}

func TestEmployeeRepository_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("list payload", func(t *testing.T) {
		repo, seen := setupUpstream(t, http.StatusOK, `{
			"data":[
				{"id":"1","employee_name":"John Doe","employee_salary":100000,"employee_age":30,"employee_title":"Developer","employee_email":"john@company.com"},
				{"id":"2","employee_name":"Jane Smith","employee_salary":150000,"employee_age":35,"employee_title":"Manager","employee_email":"jane@company.com"}
			],
			"status":"Successfully processed request."
		}`, nil)

		got, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, sampleEmployees()[:2], got)
		require.Len(t, *seen, 1)
		assert.Equal(t, http.MethodGet, (*seen)[0].Method)
		assert.Equal(t, "/api/v1/employee", (*seen)[0].Path)
	})

	t.Run("single object payload is normalized to a list", func(t *testing.T) {
		repo, _ := setupUpstream(t, http.StatusOK, `{"data":{"id":"1","employee_name":"John Doe"},"status":"ok"}`, nil)

		got, err := repo.FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "John Doe", got[0].Name)
	})

	t.Run("missing payload", func(t *testing.T) {
		repo, _ := setupUpstream(t, http.StatusOK, `{"status":"ok"}`, nil)

		got, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("rate limited with retry hint", func(t *testing.T) {
		repo, _ := setupUpstream(t, http.StatusTooManyRequests, `{"status":"Failed to process request.","error":"Too many requests"}`,
			map[string]string{"Retry-After": "7"})

		_, err := repo.FindAll(ctx)

		var rl *apperror.RateLimitedError
		require.True(t, errors.As(err, &rl))
		assert.Equal(t, 7*time.Second, rl.RetryAfter)
	})

	t.Run("server error", func(t *testing.T) {
		repo, _ := setupUpstream(t, http.StatusInternalServerError, `{"status":"Failed to process request.","error":"boom"}`, nil)

		_, err := repo.FindAll(ctx)

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeUpstreamError, appErr.Code)
		assert.Equal(t, http.StatusBadGateway, appErr.HTTPStatus)
		assert.Contains(t, appErr.Err.Error(), "boom")
	})

	t.Run("malformed envelope", func(t *testing.T) {
		repo, _ := setupUpstream(t, http.StatusOK, `{"data":[`, nil)

		_, err := repo.FindAll(ctx)

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeContractViolation, appErr.Code)
	})

	t.Run("transport failure", func(t *testing.T) {
		repo := employee.NewRepository("http://127.0.0.1:1/api/v1/employee", &http.Client{Timeout: time.Second})

		_, err := repo.FindAll(ctx)

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeUpstreamError, appErr.Code)
	})
}

func TestEmployeeRepository_FindByID(t *testing.T) {
	t.Run("forwards request id", func(t *testing.T) {
		repo, seen := setupUpstream(t, http.StatusOK, `{"data":{"id":"abc","employee_name":"John Doe"},"status":"ok"}`, nil)
		ctx := contextutil.WithRequestID(context.Background(), "req-42")

		got, err := repo.FindByID(ctx, "abc")

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "abc", got.ID)
		assert.Equal(t, "/api/v1/employee/abc", (*seen)[0].Path)
		assert.Equal(t, "req-42", (*seen)[0].RequestID)
	})

	t.Run("upstream 404", func(t *testing.T) {
		repo, _ := setupUpstream(t, http.StatusNotFound, `{"data":null,"status":"ok"}`, nil)

		got, err := repo.FindByID(context.Background(), "missing")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("null payload", func(t *testing.T) {
		repo, _ := setupUpstream(t, http.StatusOK, `{"data":null,"status":"ok"}`, nil)

		got, err := repo.FindByID(context.Background(), "abc")

		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestEmployeeRepository_Create(t *testing.T) {
	t.Run("sends the creation payload", func(t *testing.T) {
		repo, seen := setupUpstream(t, http.StatusOK, `{"data":{"id":"n1","employee_name":"John Doe","employee_salary":90000,"employee_age":30,"employee_title":"Engineer","employee_email":"jd@company.com"},"status":"ok"}`, nil)

		got, err := repo.Create(context.Background(), employee.CreateEmployeeRequest{
			Name: "John Doe", Salary: intPtr(90000), Age: intPtr(30), Title: "Engineer",
		})

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "jd@company.com", got.Email)

		var sent map[string]any
		require.NoError(t, json.Unmarshal([]byte((*seen)[0].Body), &sent))
		assert.Equal(t, map[string]any{"name": "John Doe", "salary": float64(90000), "age": float64(30), "title": "Engineer"}, sent)
	})

	t.Run("empty payload", func(t *testing.T) {
		repo, _ := setupUpstream(t, http.StatusOK, `{"status":"ok"}`, nil)

		got, err := repo.Create(context.Background(), employee.CreateEmployeeRequest{})

		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestEmployeeRepository_DeleteByName(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "true", body: `{"data":true,"status":"ok"}`, want: true},
		{name: "name echoed", body: `{"data":"John Doe","status":"ok"}`, want: true},
		{name: "false", body: `{"data":false,"status":"ok"}`, want: false},
		{name: "null", body: `{"data":null,"status":"ok"}`, want: false},
		{name: "zero", body: `{"data":0,"status":"ok"}`, want: false},
		{name: "count", body: `{"data":1,"status":"ok"}`, want: true},
		{name: "absent", body: `{"status":"ok"}`, want: false},
		{name: "empty string", body: `{"data":"","status":"ok"}`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, seen := setupUpstream(t, http.StatusOK, tt.body, nil)

			got, err := repo.DeleteByName(context.Background(), "John Doe")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, http.MethodDelete, (*seen)[0].Method)
			assert.JSONEq(t, `{"name":"John Doe"}`, (*seen)[0].Body)
		})
	}
}
