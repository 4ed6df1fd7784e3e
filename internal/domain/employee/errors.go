package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrEmployeeCodeExists      = errors.New("employee code already exists")
	ErrUserAlreadyHasEmployee  = errors.New("user already has an employee profile")
	ErrInvalidEmploymentStatus = errors.New("employment status must be permanent, contract, intern or resigned")
	ErrInvalidBasicSalary      = errors.New("basic salary must be positive")
)
