package employee_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"go-employee-directory/internal/employee"
	"go-employee-directory/internal/employeestore"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T, seed ...employeestore.Employee) employee.Service {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storeRepo := employeestore.NewRepository(seed...)
	storeService := employeestore.NewService(storeRepo, employeestore.NewFaker(7))
	router := gin.New()
	employeestore.RegisterRoutes(router.Group("/api/v1"), employeestore.NewHandler(storeService), employeestore.RateLimit{})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	repo := employee.NewRepository(srv.URL+"/api/v1/employee", srv.Client())
	return employee.NewService(repo)
}

func storeEmployee(name string, salary int) employeestore.Employee {
	return employeestore.Employee{
		ID:     uuid.New(),
		Name:   name,
		Salary: salary,
		Age:    30,
		Title:  "Engineer",
		Email:  "x@company.com",
	}
}

func TestEmployeeIntegration_CreateThenRead(t *testing.T) {
	ctx := context.Background()
	svc := setupStore(t)

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name: "Ada Lovelace", Salary: intPtr(250000), Age: intPtr(36), Title: "Mathematician",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Contains(t, created.Email, "@company.com")

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, *got)

	assert.Equal(t, 250000, svc.HighestSalary(ctx))
	assert.Equal(t, []string{"Ada Lovelace"}, svc.TopTenHighestEarningNames(ctx))
	assert.Len(t, svc.SearchByName(ctx, "love"), 1)
}

func TestEmployeeIntegration_GetByIDUnknown(t *testing.T) {
	svc := setupStore(t, storeEmployee("John Doe", 100000))

	got, err := svc.GetByID(context.Background(), uuid.NewString())

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestEmployeeIntegration_DeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("unique name is deleted", func(t *testing.T) {
		john := storeEmployee("John Doe", 100000)
		jane := storeEmployee("Jane Smith", 150000)
		svc := setupStore(t, john, jane)

		result, err := svc.DeleteByID(ctx, john.ID.String())

		require.NoError(t, err)
		assert.Equal(t, employee.DeleteSucceeded, result.State)
		assert.Equal(t, "Successfully deleted employee with id: "+john.ID.String(), result.Message)

		remaining := svc.GetAll(ctx)
		require.Len(t, remaining, 1)
		assert.Equal(t, jane.ID.String(), remaining[0].ID)
	})

	t.Run("shared name leaves the collection unchanged", func(t *testing.T) {
		first := storeEmployee("John Doe", 100000)
		second := storeEmployee("john doe", 90000)
		svc := setupStore(t, first, second)

		result, err := svc.DeleteByID(ctx, second.ID.String())

		require.NoError(t, err)
		assert.Equal(t, employee.DeleteRejectedAmbiguous, result.State)
		assert.Len(t, svc.GetAll(ctx), 2)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := setupStore(t, storeEmployee("John Doe", 100000))
		id := uuid.NewString()

		result, err := svc.DeleteByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, employee.DeleteNotFound, result.State)
		assert.Equal(t, "Employee not found with id: "+id, result.Message)
	})
}
