package employee

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go-employee-directory/internal/shared/contextutil"

	"go.uber.org/zap"
)

const maxUpstreamBody = 4 << 20

// Repository is the facade's only data source: the upstream store over HTTP.
//
//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	// FindAll returns nil when the upstream sent no payload.
	FindAll(ctx context.Context) ([]Employee, error)
	// FindByID returns employeeerrors.ErrEmployeeNotFound on an upstream 404
	// and (nil, nil) when the upstream answered without a payload.
	FindByID(ctx context.Context, id string) (*Employee, error)
	// Create returns (nil, nil) when the upstream answered without a record.
	Create(ctx context.Context, req CreateEmployeeRequest) (*Employee, error)
	// DeleteByName reports whether the upstream answered with a non-empty payload.
	DeleteByName(ctx context.Context, name string) (bool, error)
}

type repository struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewRepository(baseURL string, client *http.Client, logger ...*zap.Logger) Repository {
	l := zap.L().Named("employee.repository")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.repository")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &repository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  l,
	}
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	env, err := r.do(ctx, http.MethodGet, "", nil)
	if err != nil {
		return nil, err
	}
	return env.employees()
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	env, err := r.do(ctx, http.MethodGet, "/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	list, err := env.employees()
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

func (r *repository) Create(ctx context.Context, req CreateEmployeeRequest) (*Employee, error) {
	env, err := r.do(ctx, http.MethodPost, "", req)
	if err != nil {
		return nil, err
	}
	list, err := env.employees()
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

func (r *repository) DeleteByName(ctx context.Context, name string) (bool, error) {
	env, err := r.do(ctx, http.MethodDelete, "", deleteByNameRequest{Name: name})
	if err != nil {
		return false, err
	}
	return env.truthy(), nil
}

func (r *repository) do(ctx context.Context, method, path string, body any) (envelope, error) {
	log := contextutil.GetLogger(ctx, r.logger).With(
		zap.String("method", method),
		zap.String("upstream_path", path),
	)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return envelope{}, fmt.Errorf("encode upstream request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return envelope{}, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		req.Header.Set(contextutil.HeaderRequestID, rid)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		log.Error("upstream request failed", zap.Error(err))
		return envelope{}, transportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		log.Error("upstream response read failed", zap.Error(err))
		return envelope{}, transportError(err)
	}

	log.Debug("upstream responded", zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		mapped := mapUpstreamStatus(resp, raw)
		log.Warn("upstream returned error status",
			zap.Int("status", resp.StatusCode),
			zap.Error(mapped),
		)
		return envelope{}, mapped
	}

	return decodeEnvelope(raw)
}
