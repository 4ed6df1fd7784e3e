package salaryslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// Value bounds for manually entered slips, matching the salary_slips
// decimal(12,2) columns.
var (
	BasicSalaryMin = decimal.NewFromInt(1_000_000)
	BasicSalaryMax = decimal.RequireFromString("99999999999.99")
	AllowanceMax   = decimal.RequireFromString("99999999999.99")
	DeductionMax   = decimal.RequireFromString("99999999999.99")
)

// SalarySlip is one pay computation for one employee for one YYYY-MM
// period. BasicSalary holds the prorated computed amount when the slip
// comes from the attendance-driven generator, or the entered amount on
// the manual path.
type SalarySlip struct {
	ID          int64
	EmployeeID  int64
	CreatedBy   int64
	PeriodMonth string
	BasicSalary decimal.Decimal
	Allowance   decimal.Decimal
	Deduction   decimal.Decimal
	TotalSalary decimal.Decimal
	Remarks     string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// ComputeTotalSalary recomputes total_salary from the financial fields.
// Every mutation that touches BasicSalary, Allowance or Deduction must
// call this before persisting; the stored total is never trusted to stay
// consistent on its own.
func (s *SalarySlip) ComputeTotalSalary() {
	s.TotalSalary = s.BasicSalary.Add(s.Allowance).Sub(s.Deduction)
}
