package employeestore

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type Repository interface {
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Employee, error)
	FindByNameFragment(ctx context.Context, fragment string) ([]Employee, error)
	Create(ctx context.Context, empl *Employee) error
	DeleteFirstByName(ctx context.Context, name string) (*Employee, error)
	DeleteByID(ctx context.Context, id string) (*Employee, error)
}

// repository keeps the whole collection behind a single lock.
// Reads return copies so callers never observe later mutations.
type repository struct {
	mu        sync.RWMutex
	employees []Employee
}

func NewRepository(seed ...Employee) Repository {
	employees := make([]Employee, len(seed))
	copy(employees, seed)
	return &repository{employees: employees}
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Employee, len(r.employees))
	copy(out, r.employees)
	return out, nil
}

// FindByID returns (nil, nil) when no record matches.
func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if e.ID == id {
			empl := e
			return &empl, nil
		}
	}
	return nil, nil
}

func (r *repository) FindByNameFragment(ctx context.Context, fragment string) ([]Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(fragment)
	out := make([]Employee, 0)
	for _, e := range r.employees {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.employees = append(r.employees, *empl)
	return nil
}

// DeleteFirstByName removes the first record whose name equals name ignoring case.
// Only one record is removed even if several share the name.
func (r *repository) DeleteFirstByName(ctx context.Context, name string) (*Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.removeFirst(func(e Employee) bool {
		return strings.EqualFold(e.Name, name)
	}), nil
}

func (r *repository) DeleteByID(ctx context.Context, id string) (*Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.removeFirst(func(e Employee) bool {
		return strings.EqualFold(e.ID.String(), id)
	}), nil
}

// removeFirst must be called with mu held.
func (r *repository) removeFirst(match func(Employee) bool) *Employee {
	for i, e := range r.employees {
		if match(e) {
			removed := e
			r.employees = append(r.employees[:i], r.employees[i+1:]...)
			return &removed
		}
	}
	return nil
}
