package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	employeeerrors "go-employee-directory/internal/employee/errors"

	"go.uber.org/zap"
)

// DeleteState is a step of the delete-by-id protocol. The upstream only deletes
// by name (first match), so the id is resolved to a name and refused when
// another record shares it.
type DeleteState string

const (
	DeleteValidating        DeleteState = "VALIDATING"
	DeleteFetching          DeleteState = "FETCHING"
	DeleteResolving         DeleteState = "RESOLVING"
	DeleteDeleting          DeleteState = "DELETING"
	DeleteRejectedAmbiguous DeleteState = "REJECTED_AMBIGUOUS"
	DeleteNotFound          DeleteState = "NOT_FOUND"
	DeleteSucceeded         DeleteState = "SUCCESS"
	DeleteFailed            DeleteState = "FAILED"
)

func (s DeleteState) Terminal() bool {
	switch s {
	case DeleteRejectedAmbiguous, DeleteNotFound, DeleteSucceeded, DeleteFailed:
		return true
	}
	return false
}

type deletion struct {
	repo Repository
	id   string
	log  *zap.Logger

	employees []Employee
	target    Employee
	result    DeleteResult
}

// run drives the state machine to a terminal state. The only error it returns
// is the validation failure for a blank id; every other outcome is a DeleteResult.
func (d *deletion) run(ctx context.Context) (DeleteResult, error) {
	state := DeleteValidating
	for !state.Terminal() {
		var (
			next DeleteState
			err  error
		)
		switch state {
		case DeleteValidating:
			next, err = d.validate()
		case DeleteFetching:
			next = d.fetch(ctx)
		case DeleteResolving:
			next = d.resolve()
		case DeleteDeleting:
			next = d.delete(ctx)
		default:
			return DeleteResult{}, fmt.Errorf("delete employee: unknown state %q", state)
		}
		if err != nil {
			return DeleteResult{}, err
		}
		d.log.Debug("delete employee transition",
			zap.String("from", string(state)),
			zap.String("to", string(next)),
		)
		state = next
	}

	d.log.Info("delete employee finished",
		zap.String("state", string(d.result.State)),
		zap.String("message", d.result.Message),
	)
	return d.result, nil
}

func (d *deletion) validate() (DeleteState, error) {
	if strings.TrimSpace(d.id) == "" {
		d.log.Warn("employee id was blank")
		return DeleteValidating, employeeerrors.ErrInvalidEmployeeID
	}
	return DeleteFetching, nil
}

func (d *deletion) fetch(ctx context.Context) DeleteState {
	employees, err := d.repo.FindAll(ctx)
	if err != nil {
		d.log.Error("delete employee fetch failed", zap.Error(err))
		return d.finish(DeleteFailed, errorMessage(d.id, err))
	}
	if len(employees) == 0 {
		return d.finish(DeleteNotFound, "No employees found to delete.")
	}
	d.employees = employees
	return DeleteResolving
}

func (d *deletion) resolve() DeleteState {
	found := false
	for _, e := range d.employees {
		if e.ID == d.id {
			d.target = e
			found = true
			break
		}
	}
	if !found {
		return d.finish(DeleteNotFound, notFoundMessage(d.id))
	}

	// The upstream matches names ignoring case, so collisions do too.
	others := 0
	for _, e := range d.employees {
		if e.ID != d.target.ID && strings.EqualFold(e.Name, d.target.Name) {
			others++
		}
	}
	if others > 0 {
		d.log.Warn("delete employee refused, name is shared",
			zap.String("employee_name", d.target.Name),
			zap.Int("others", others),
		)
		return d.finish(DeleteRejectedAmbiguous, fmt.Sprintf(
			"Cannot delete employee with id: %s. Found %d other employee(s) with the same name: %s",
			d.id, others, d.target.Name,
		))
	}
	return DeleteDeleting
}

func (d *deletion) delete(ctx context.Context) DeleteState {
	deleted, err := d.repo.DeleteByName(ctx, d.target.Name)
	switch {
	case errors.Is(err, employeeerrors.ErrEmployeeNotFound):
		return d.finish(DeleteNotFound, notFoundMessage(d.id))
	case err != nil:
		d.log.Error("delete employee upstream call failed", zap.Error(err))
		return d.finish(DeleteFailed, errorMessage(d.id, err))
	case deleted:
		return d.finish(DeleteSucceeded, "Successfully deleted employee with id: "+d.id)
	default:
		return d.finish(DeleteFailed, "Failed to delete employee with id: "+d.id)
	}
}

func (d *deletion) finish(state DeleteState, message string) DeleteState {
	d.result = DeleteResult{State: state, Message: message}
	return state
}

func notFoundMessage(id string) string {
	return "Employee not found with id: " + id
}

func errorMessage(id string, err error) string {
	return fmt.Sprintf("Error deleting employee with id: %s. Error: %s", id, err.Error())
}
