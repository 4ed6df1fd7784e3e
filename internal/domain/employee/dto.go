package employee

import (
	"github.com/shopspring/decimal"

	"github.com/talentindo/hris-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	UserID           int64           `json:"user_id"`
	EmployeeCode     string          `json:"employee_code"`
	Position         string          `json:"position"`
	Department       string          `json:"department"`
	JoinDate         string          `json:"join_date"`
	EmploymentStatus string          `json:"employment_status"`
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	Contact          *string         `json:"contact,omitempty"`
	ManagerID        *int64          `json:"manager_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UserID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "must match EMP0000 format"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "must be in YYYY-MM-DD format"})
	}
	if !EmploymentStatus(r.EmploymentStatus).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "employment_status", Message: "must be permanent, contract, intern or resigned"})
	}
	if !r.BasicSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               int64            `json:"-"`
	Position         *string          `json:"position,omitempty"`
	Department       *string          `json:"department,omitempty"`
	EmploymentStatus *string          `json:"employment_status,omitempty"`
	BasicSalary      *decimal.Decimal `json:"basic_salary,omitempty"`
	Contact          *string          `json:"contact,omitempty"`
	ManagerID        *int64           `json:"manager_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmploymentStatus != nil && !EmploymentStatus(*r.EmploymentStatus).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "employment_status", Message: "must be permanent, contract, intern or resigned"})
	}
	if r.BasicSalary != nil && !r.BasicSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListEmployeeFilter struct {
	Department *string
	Status     *EmploymentStatus
	ManagerID  *int64
	Search     *string
	Page       int
	Limit      int
}

type EmployeeResponse struct {
	ID               int64           `json:"id"`
	UserID           int64           `json:"user_id"`
	Name             string          `json:"name,omitempty"`
	Email            string          `json:"email,omitempty"`
	EmployeeCode     string          `json:"employee_code"`
	Position         string          `json:"position"`
	Department       string          `json:"department"`
	JoinDate         string          `json:"join_date"`
	EmploymentStatus string          `json:"employment_status"`
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	Contact          *string         `json:"contact,omitempty"`
	ManagerID        *int64          `json:"manager_id,omitempty"`
}

type ListEmployeeResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}
