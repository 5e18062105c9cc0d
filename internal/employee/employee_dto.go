package employee

// Employee is the facade's view of an upstream record.
type Employee struct {
	ID     string `json:"id"`
	Name   string `json:"employee_name"`
	Title  string `json:"employee_title"`
	Salary int    `json:"employee_salary"`
	Age    int    `json:"employee_age"`
	Email  string `json:"employee_email"`
}

type CreateEmployeeRequest struct {
	Name   string `json:"name" binding:"required,notblank"`
	Salary *int   `json:"salary" binding:"required,gt=0"`
	Age    *int   `json:"age" binding:"required,gte=16,lte=75"`
	Title  string `json:"title" binding:"required,notblank"`
}

type deleteByNameRequest struct {
	Name string `json:"name"`
}

// DeleteResult is the terminal outcome of a delete-by-id run. Message is what
// the API returns to the caller.
type DeleteResult struct {
	State   DeleteState
	Message string
}
