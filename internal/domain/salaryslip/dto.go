package salaryslip

import (
	"github.com/shopspring/decimal"

	"github.com/talentindo/hris-backend-go/internal/pkg/validator"
)

// ========== GENERATION DTOs ==========

type GenerateSlipRequest struct {
	EmployeeID int64  `json:"employee_id"`
	Period     string `json:"period"`
}

func (r *GenerateSlipRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, err := ParsePeriod(r.Period); err != nil {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateBulkRequest struct {
	Period string `json:"period"`
}

func (r *GenerateBulkRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, err := ParsePeriod(r.Period); err != nil {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Breakdown is the full calculation trace returned alongside generated
// slips and by the preview endpoint.
type Breakdown struct {
	EmployeeBasicSalary   decimal.Decimal `json:"employee_basic_salary"`
	StandardHours         decimal.Decimal `json:"standard_hours"`
	RealWorkHours         decimal.Decimal `json:"real_work_hours"`
	HourlyRate            decimal.Decimal `json:"hourly_rate"`
	CalculatedBasicSalary decimal.Decimal `json:"calculated_basic_salary"`
	Allowance             decimal.Decimal `json:"allowance"`
	GrossSalary           decimal.Decimal `json:"gross_salary"`
	DeductionPercentage   decimal.Decimal `json:"deduction_percentage"`
	Deduction             decimal.Decimal `json:"deduction"`
	TotalSalary           decimal.Decimal `json:"total_salary"`
	Remarks               string          `json:"remarks"`
}

type GenerateResult struct {
	Slip        SlipResponse `json:"slip"`
	Calculation Breakdown    `json:"calculation_details"`
}

type PreviewResult struct {
	EmployeeID   int64     `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	Period       string    `json:"period"`
	Calculation  Breakdown `json:"calculation"`
}

// ========== BULK REPORT ==========

type BulkItem struct {
	EmployeeID   int64            `json:"employee_id"`
	EmployeeName string           `json:"employee_name"`
	TotalSalary  *decimal.Decimal `json:"total_salary,omitempty"`
	Reason       string           `json:"reason,omitempty"`
}

// BulkReport partitions one generation attempt per candidate employee
// into succeeded / skipped (slip already existed) / failed.
type BulkReport struct {
	Period         string     `json:"period"`
	TotalEmployees int        `json:"total_employees"`
	SucceededCount int        `json:"success_count"`
	SkippedCount   int        `json:"skipped_count"`
	FailedCount    int        `json:"failed_count"`
	Succeeded      []BulkItem `json:"succeeded"`
	Skipped        []BulkItem `json:"skipped"`
	Failed         []BulkItem `json:"failed"`
}

// ========== MANUAL CRUD DTOs ==========

type CreateSlipRequest struct {
	EmployeeID  int64           `json:"employee_id"`
	Period      string          `json:"period"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	Allowance   decimal.Decimal `json:"allowance"`
	Deduction   decimal.Decimal `json:"deduction"`
	Remarks     *string         `json:"remarks,omitempty"`
}

func (r *CreateSlipRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, err := ParsePeriod(r.Period); err != nil {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be in YYYY-MM format"})
	}
	if r.BasicSalary.LessThan(BasicSalaryMin) || r.BasicSalary.GreaterThan(BasicSalaryMax) {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be between 1000000 and 99999999999.99"})
	}
	if r.Allowance.IsNegative() || r.Allowance.GreaterThan(AllowanceMax) {
		errs = append(errs, validator.ValidationError{Field: "allowance", Message: "must be between 0 and 99999999999.99"})
	}
	if r.Deduction.IsNegative() || r.Deduction.GreaterThan(DeductionMax) {
		errs = append(errs, validator.ValidationError{Field: "deduction", Message: "must be between 0 and 99999999999.99"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSlipRequest struct {
	ID          int64            `json:"-"`
	BasicSalary *decimal.Decimal `json:"basic_salary,omitempty"`
	Allowance   *decimal.Decimal `json:"allowance,omitempty"`
	Deduction   *decimal.Decimal `json:"deduction,omitempty"`
	Remarks     *string          `json:"remarks,omitempty"`
}

func (r *UpdateSlipRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BasicSalary != nil && (r.BasicSalary.LessThan(BasicSalaryMin) || r.BasicSalary.GreaterThan(BasicSalaryMax)) {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be between 1000000 and 99999999999.99"})
	}
	if r.Allowance != nil && (r.Allowance.IsNegative() || r.Allowance.GreaterThan(AllowanceMax)) {
		errs = append(errs, validator.ValidationError{Field: "allowance", Message: "must be between 0 and 99999999999.99"})
	}
	if r.Deduction != nil && (r.Deduction.IsNegative() || r.Deduction.GreaterThan(DeductionMax)) {
		errs = append(errs, validator.ValidationError{Field: "deduction", Message: "must be between 0 and 99999999999.99"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListSlipFilter struct {
	Period     *string
	EmployeeID *int64
	Page       int
	Limit      int
}

// ========== RESPONSES ==========

type SlipResponse struct {
	ID           int64           `json:"id"`
	EmployeeID   int64           `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	EmployeeCode string          `json:"employee_code,omitempty"`
	PeriodMonth  string          `json:"period_month"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	Allowance    decimal.Decimal `json:"allowance"`
	Deduction    decimal.Decimal `json:"deduction"`
	TotalSalary  decimal.Decimal `json:"total_salary"`
	Remarks      string          `json:"remarks"`
	CreatedBy    int64           `json:"created_by"`
	CreatedAt    string          `json:"created_at"`
}

type ListSlipResponse struct {
	Data       []SlipResponse `json:"data"`
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
}
