package employeestore

type CreateEmployeeInput struct {
	Name   string `json:"name" binding:"required,notblank"`
	Salary *int   `json:"salary" binding:"required,gt=0"`
	Age    *int   `json:"age" binding:"required,gte=16,lte=75"`
	Title  string `json:"title" binding:"required,notblank"`
}

type DeleteEmployeeInput struct {
	Name string `json:"name" binding:"required,notblank"`
}
