package employeestore

import "github.com/google/uuid"

// Employee is the authoritative record held by the store.
// Records are created and removed, never updated in place.
type Employee struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"employee_name"`
	Salary int       `json:"employee_salary"`
	Age    int       `json:"employee_age"`
	Title  string    `json:"employee_title"`
	Email  string    `json:"employee_email"`
}
