package salaryslip

import (
	"errors"
	"fmt"
)

var (
	ErrSlipNotFound          = errors.New("salary slip not found")
	ErrSlipAlreadyExists     = errors.New("salary slip already exists for this period")
	ErrNoAttendanceForPeriod = errors.New("no attendance records found for this period")
	ErrInvalidPeriod         = errors.New("period must be in YYYY-MM format")
	ErrInvalidBasicSalary    = errors.New("basic salary must be positive")
)

// AlreadyExistsError carries the pre-existing slip so callers can show it
// instead of retrying blindly. It unwraps to ErrSlipAlreadyExists, which
// is what bulk-mode partitioning matches on.
type AlreadyExistsError struct {
	Slip SalarySlip
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("salary slip already exists for employee %d in period %s", e.Slip.EmployeeID, e.Slip.PeriodMonth)
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrSlipAlreadyExists
}
