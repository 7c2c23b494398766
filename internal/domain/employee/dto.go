package employee

import "time"

type CreateEmployeeInput struct {
	UserID       uint       `json:"user_id" binding:"required"`
	EmployeeCode string     `json:"employee_code" binding:"required"`
	Designation  *string    `json:"designation"`
	Department   *string    `json:"department"`
	Phone        *string    `json:"phone"`
	JoiningDate  *time.Time `json:"joining_date"`
}

type UpdateEmployeeInput struct {
	Designation *string    `json:"designation"`
	Department  *string    `json:"department"`
	Phone       *string    `json:"phone"`
	JoiningDate *time.Time `json:"joining_date"`
}

type SetFormDisabledInput struct {
	Disabled *bool `json:"disabled" binding:"required"`
}
