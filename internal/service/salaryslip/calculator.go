package salaryslip

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/talentindo/hris-backend-go/internal/config"
	"github.com/talentindo/hris-backend-go/internal/domain/salaryslip"
)

var oneHundred = decimal.NewFromInt(100)

// Calculator turns a monthly base salary and a total of real work hours
// into a full salary breakdown. It is pure: no storage access, no clock,
// and the same inputs always produce the same breakdown.
//
// The formula, in order:
//
//	hourly_rate      = base_salary / standard_monthly_hours
//	calculated_basic = hourly_rate * real_work_hours
//	gross            = calculated_basic + static_allowance
//	deduction        = gross * deduction_percentage / 100
//	total            = gross - deduction
//
// All intermediate values keep full precision; rounding to 2 decimals
// happens once, on the reported figures.
type Calculator struct {
	policy config.SalaryPolicy
}

func NewCalculator(policy config.SalaryPolicy) *Calculator {
	return &Calculator{policy: policy}
}

// Calculate computes the breakdown for the given base salary and hours.
// Zero hours is a valid input and yields a slip of allowance minus its
// deduction; rejecting an employee with no attendance is the caller's
// decision, not the calculator's.
func (c *Calculator) Calculate(employeeBasicSalary, realWorkHours decimal.Decimal) (salaryslip.Breakdown, error) {
	if !employeeBasicSalary.IsPositive() {
		return salaryslip.Breakdown{}, salaryslip.ErrInvalidBasicSalary
	}
	if realWorkHours.IsNegative() {
		return salaryslip.Breakdown{}, fmt.Errorf("work hours must not be negative, got %s", realWorkHours)
	}

	hourlyRate := employeeBasicSalary.Div(c.policy.StandardMonthlyHours)
	calculatedBasic := hourlyRate.Mul(realWorkHours)
	allowance := c.policy.StaticAllowance
	gross := calculatedBasic.Add(allowance)
	deduction := gross.Mul(c.policy.DeductionPercentage).Div(oneHundred)
	total := gross.Sub(deduction)

	b := salaryslip.Breakdown{
		EmployeeBasicSalary:   employeeBasicSalary.Round(2),
		StandardHours:         c.policy.StandardMonthlyHours,
		RealWorkHours:         realWorkHours.Round(2),
		HourlyRate:            hourlyRate.Round(2),
		CalculatedBasicSalary: calculatedBasic.Round(2),
		Allowance:             allowance.Round(2),
		GrossSalary:           gross.Round(2),
		DeductionPercentage:   c.policy.DeductionPercentage,
		Deduction:             deduction.Round(2),
		TotalSalary:           total.Round(2),
	}
	b.Remarks = c.buildRemarks(employeeBasicSalary, hourlyRate, realWorkHours, calculatedBasic, allowance, gross, deduction)

	return b, nil
}

// buildRemarks renders the human-readable calculation trace stored on
// the slip. Amounts use Indonesian grouping (dot thousands, comma
// decimals); whole-rupiah figures drop the decimals, the hourly rate
// keeps two.
func (c *Calculator) buildRemarks(base, rate, hours, basic, allowance, gross, deduction decimal.Decimal) string {
	return fmt.Sprintf(
		"Kalkulasi: Base Salary Rp %s | Hourly Rate Rp %s | Work Hours: %s jam | "+
			"Calculated Basic: Rp %s | Allowance: Rp %s | Gross: Rp %s | Deduction %s%%: Rp %s",
		formatRupiah(base, 0),
		formatRupiah(rate, 2),
		hours.StringFixed(2),
		formatRupiah(basic, 0),
		formatRupiah(allowance, 0),
		formatRupiah(gross, 0),
		c.policy.DeductionPercentage.String(),
		formatRupiah(deduction, 0),
	)
}

// formatRupiah formats d rounded to the given number of decimals with a
// dot as the thousands separator and a comma as the decimal separator,
// e.g. 1234567.89 with 2 decimals renders as "1.234.567,89".
func formatRupiah(d decimal.Decimal, decimals int32) string {
	s := d.StringFixed(decimals)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart, fracPart = s[:idx], s[idx+1:]
	}

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}
	if fracPart != "" {
		sb.WriteByte(',')
		sb.WriteString(fracPart)
	}

	return sb.String()
}
