package employeestore

import (
	"context"
	"fmt"
	"sort"
	"strings"

	employeestoreerrors "go-employee-directory/internal/employeestore/errors"
	"go-employee-directory/internal/shared/apperror"
	"go-employee-directory/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TopEarnersLimit is the n used by the top earners endpoint.
const TopEarnersLimit = 10

type Service interface {
	ListAll(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	SearchByNameFragment(ctx context.Context, fragment string) ([]Employee, error)
	HighestSalary(ctx context.Context) (int, error)
	TopNByEarnings(ctx context.Context, n int) ([]string, error)
	Create(ctx context.Context, input CreateEmployeeInput) (Employee, error)
	DeleteByName(ctx context.Context, name string) (bool, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type service struct {
	repo      Repository
	usernames UsernameGenerator
	logger    *zap.Logger
}

func NewService(repo Repository, usernames UsernameGenerator, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeestore.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeestore.service")
	}
	return &service{
		repo:      repo,
		usernames: usernames,
		logger:    l,
	}
}

func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) ListAll(ctx context.Context) ([]Employee, error) {
	s.log(ctx).Debug("list employees requested")
	return s.repo.FindAll(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (Employee, error) {
	log := s.log(ctx).With(zap.String("employee_id", id))
	log.Debug("get employee by id requested")

	uid, err := uuid.Parse(id)
	if err != nil {
		log.Debug("get employee by id: id is not a uuid")
		return Employee{}, employeestoreerrors.ErrEmployeeNotFound
	}

	empl, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		log.Error("get employee by id failed", zap.Error(err))
		return Employee{}, err
	}
	if empl == nil {
		return Employee{}, employeestoreerrors.ErrEmployeeNotFound
	}

	log.Info("found the employee", zap.String("employee_name", empl.Name))
	return *empl, nil
}

func (s *service) SearchByNameFragment(ctx context.Context, fragment string) ([]Employee, error) {
	s.log(ctx).Debug("search employees requested", zap.String("fragment", fragment))
	return s.repo.FindByNameFragment(ctx, fragment)
}

func (s *service) HighestSalary(ctx context.Context) (int, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	return highestSalary(employees), nil
}

func (s *service) TopNByEarnings(ctx context.Context, n int) ([]string, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return topNByEarnings(employees, n), nil
}

func (s *service) Create(ctx context.Context, input CreateEmployeeInput) (Employee, error) {
	log := s.log(ctx)
	if err := apperror.ValidateStruct(input); err != nil {
		log.Warn("create employee validation failed", zap.Error(err))
		return Employee{}, err
	}

	empl := Employee{
		ID:     uuid.New(),
		Name:   input.Name,
		Salary: *input.Salary,
		Age:    *input.Age,
		Title:  input.Title,
		Email:  formatEmail(s.usernames.Username()),
	}

	if err := s.repo.Create(ctx, &empl); err != nil {
		log.Error("create employee persist failed", zap.Error(err))
		return Employee{}, err
	}

	log.Info("create employee success",
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_email", empl.Email),
	)
	return empl, nil
}

// DeleteByName removes the first record whose name matches ignoring case.
// Callers that need a specific record among duplicates must resolve it themselves.
func (s *service) DeleteByName(ctx context.Context, name string) (bool, error) {
	log := s.log(ctx).With(zap.String("employee_name", name))
	if strings.TrimSpace(name) == "" {
		return false, employeestoreerrors.ErrInvalidEmployeeName
	}

	removed, err := s.repo.DeleteFirstByName(ctx, name)
	if err != nil {
		log.Error("delete employee by name failed", zap.Error(err))
		return false, err
	}
	if removed == nil {
		log.Debug("delete employee by name: no match")
		return false, nil
	}

	log.Info("removed employee", zap.String("employee_id", removed.ID.String()))
	return true, nil
}

func (s *service) DeleteByID(ctx context.Context, id string) (bool, error) {
	log := s.log(ctx).With(zap.String("employee_id", id))

	removed, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		log.Error("delete employee by id failed", zap.Error(err))
		return false, err
	}
	if removed == nil {
		log.Debug("delete employee by id: no match")
		return false, nil
	}

	log.Info("removed employee", zap.String("employee_name", removed.Name))
	return true, nil
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

// topNByEarnings sorts by salary descending, keeping insertion order on ties.
func topNByEarnings(employees []Employee, n int) []string {
	sorted := make([]Employee, len(employees))
	copy(sorted, employees)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Salary > sorted[j].Salary
	})

	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	names := make([]string, 0, n)
	for _, e := range sorted[:n] {
		names = append(names, e.Name)
	}
	return names
}

func formatEmail(username string) string {
	return fmt.Sprintf(EmailTemplate, username)
}
