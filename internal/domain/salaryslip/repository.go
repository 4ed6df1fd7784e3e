package salaryslip

import "context"

// Repository defines data access for salary slips. The salary_slips table
// carries a unique index on (employee_id, period_month); Create must map
// a violation of that index to ErrSlipAlreadyExists so the application
// pre-check is only ever a fast path, never the authoritative guard.
type Repository interface {
	Create(ctx context.Context, slip SalarySlip) (SalarySlip, error)
	GetByID(ctx context.Context, id int64) (SalarySlip, error)
	GetByEmployeeAndPeriod(ctx context.Context, employeeID int64, period string) (SalarySlip, error)
	List(ctx context.Context, filter ListSlipFilter) ([]SalarySlip, int64, error)
	ListByEmployee(ctx context.Context, employeeID int64, period *string) ([]SalarySlip, error)
	Update(ctx context.Context, slip SalarySlip) error
	Delete(ctx context.Context, id int64) error
}
