package employee

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	employeeerrors "go-employee-directory/internal/employee/errors"
	"go-employee-directory/internal/shared/apperror"
	"go-employee-directory/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// TopEarnersLimit is how many names the top earners query returns.
const TopEarnersLimit = 10

const fetchAllKey = "employees:all"

type Service interface {
	GetAll(ctx context.Context) []Employee
	SearchByName(ctx context.Context, fragment string) []Employee
	GetByID(ctx context.Context, id string) (*Employee, error)
	HighestSalary(ctx context.Context) int
	TopTenHighestEarningNames(ctx context.Context) []string
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	DeleteByID(ctx context.Context, id string) (DeleteResult, error)
}

// service recomputes every query from a fresh upstream fetch. Concurrent fetches
// of the full list share one in-flight request; nothing is kept between requests.
type service struct {
	repo   Repository
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

// fetchAll returns a slice owned by the caller. The shared upstream call runs
// detached from any single caller's cancellation; each caller stops waiting
// only when its own ctx is done.
func (s *service) fetchAll(ctx context.Context) ([]Employee, error) {
	detached := context.WithoutCancel(ctx)
	ch := s.sf.DoChan(fetchAllKey, func() (interface{}, error) {
		return s.repo.FindAll(detached)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Shared {
		s.log(ctx).Debug("upstream list fetch shared with concurrent request")
	}
	list, _ := res.Val.([]Employee)
	out := make([]Employee, len(list))
	copy(out, list)
	return out, nil
}

// GetAll degrades to an empty list on any upstream failure.
func (s *service) GetAll(ctx context.Context) []Employee {
	log := s.log(ctx)
	log.Debug("get all employees requested")

	employees, err := s.fetchAll(ctx)
	if err != nil {
		var rl *apperror.RateLimitedError
		if errors.As(err, &rl) {
			log.Warn("get all employees rate limited, returning empty list",
				zap.Duration("retry_after", rl.RetryAfter),
			)
		} else {
			log.Error("get all employees failed, returning empty list", zap.Error(err))
		}
		return []Employee{}
	}
	if len(employees) == 0 {
		log.Warn("no employees found or upstream payload empty")
		return []Employee{}
	}
	return employees
}

func (s *service) SearchByName(ctx context.Context, fragment string) []Employee {
	s.log(ctx).Debug("search employees requested", zap.String("fragment", fragment))
	return filterByName(s.GetAll(ctx), fragment)
}

func (s *service) GetByID(ctx context.Context, id string) (*Employee, error) {
	log := s.log(ctx).With(zap.String("employee_id", id))
	if strings.TrimSpace(id) == "" {
		log.Warn("employee id was blank")
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	log.Debug("get employee by id requested")
	empl, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
		log.Debug("employee not found upstream")
		return nil, nil
	}
	if err != nil {
		log.Error("get employee by id failed", zap.Error(err))
		return nil, fmt.Errorf("get employee %s: %w", id, err)
	}
	if empl == nil {
		log.Warn("upstream returned no employee payload")
	}
	return empl, nil
}

func (s *service) HighestSalary(ctx context.Context) int {
	s.log(ctx).Debug("highest salary requested")
	return highestSalary(s.GetAll(ctx))
}

func (s *service) TopTenHighestEarningNames(ctx context.Context) []string {
	s.log(ctx).Debug("top earners requested")
	return topEarnerNames(s.GetAll(ctx), TopEarnersLimit)
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error) {
	log := s.log(ctx)
	if err := apperror.ValidateStruct(req); err != nil {
		log.Warn("create employee validation failed", zap.Error(err))
		return Employee{}, err
	}

	log.Debug("create employee requested", zap.String("employee_name", req.Name))
	created, err := s.repo.Create(ctx, req)
	if err != nil {
		log.Error("create employee failed", zap.Error(err))
		return Employee{}, fmt.Errorf("create employee: %w", err)
	}
	if created == nil {
		log.Error("create employee: upstream returned no record")
		return Employee{}, employeeerrors.ErrEmptyCreateResponse
	}

	log.Info("create employee success", zap.String("employee_id", created.ID))
	return *created, nil
}

func (s *service) DeleteByID(ctx context.Context, id string) (DeleteResult, error) {
	d := &deletion{
		repo: s.repo,
		id:   id,
		log:  s.log(ctx).With(zap.String("employee_id", id)),
	}
	return d.run(ctx)
}

// filterByName keeps employees whose name contains fragment, ignoring case.
// An empty fragment keeps everything.
func filterByName(employees []Employee, fragment string) []Employee {
	needle := strings.ToLower(fragment)
	out := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}

func highestSalary(employees []Employee) int {
	highest := 0
	for _, e := range employees {
		if e.Salary > highest {
			highest = e.Salary
		}
	}
	return highest
}

// topEarnerNames sorts by salary descending (stable on ties) and keeps the first n names.
func topEarnerNames(employees []Employee, n int) []string {
	sorted := make([]Employee, len(employees))
	copy(sorted, employees)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Salary > sorted[j].Salary
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	names := make([]string, 0, n)
	for _, e := range sorted[:n] {
		names = append(names, e.Name)
	}
	return names
}
