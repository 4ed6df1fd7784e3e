package salaryslip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/talentindo/hris-backend-go/internal/domain/attendance"
	"github.com/talentindo/hris-backend-go/internal/domain/employee"
	"github.com/talentindo/hris-backend-go/internal/domain/notification"
	"github.com/talentindo/hris-backend-go/internal/domain/salaryslip"
	"github.com/talentindo/hris-backend-go/internal/pkg/pdf"
)

type ServiceImpl struct {
	slipRepo       salaryslip.Repository
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	calculator     *Calculator
	notifier       notification.Service
	logger         *slog.Logger
}

func NewService(
	slipRepo salaryslip.Repository,
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	calculator *Calculator,
	notifier notification.Service,
	logger *slog.Logger,
) salaryslip.Service {
	return &ServiceImpl{
		slipRepo:       slipRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		calculator:     calculator,
		notifier:       notifier,
		logger:         logger,
	}
}

// ========== GENERATION ==========

func (s *ServiceImpl) Generate(ctx context.Context, req salaryslip.GenerateSlipRequest, actorID int64) (salaryslip.GenerateResult, error) {
	if err := req.Validate(); err != nil {
		return salaryslip.GenerateResult{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			s.logStorageFault(ctx, "generate", req.EmployeeID, actorID, req.Period, err)
		}
		return salaryslip.GenerateResult{}, err
	}

	// Fast path only. The unique index on (employee_id, period_month)
	// remains the authoritative guard; a concurrent insert between this
	// check and Create still surfaces as ErrSlipAlreadyExists below.
	existing, err := s.slipRepo.GetByEmployeeAndPeriod(ctx, req.EmployeeID, req.Period)
	if err == nil {
		return salaryslip.GenerateResult{}, &salaryslip.AlreadyExistsError{Slip: existing}
	}
	if !errors.Is(err, salaryslip.ErrSlipNotFound) {
		s.logStorageFault(ctx, "generate", req.EmployeeID, actorID, req.Period, err)
		return salaryslip.GenerateResult{}, err
	}

	breakdown, err := s.computeForPeriod(ctx, emp, req.Period)
	if err != nil {
		if !errors.Is(err, salaryslip.ErrInvalidBasicSalary) {
			s.logStorageFault(ctx, "generate", req.EmployeeID, actorID, req.Period, err)
		}
		return salaryslip.GenerateResult{}, err
	}
	if breakdown.RealWorkHours.IsZero() {
		return salaryslip.GenerateResult{}, salaryslip.ErrNoAttendanceForPeriod
	}

	slip := salaryslip.SalarySlip{
		EmployeeID:  emp.ID,
		CreatedBy:   actorID,
		PeriodMonth: req.Period,
		BasicSalary: breakdown.CalculatedBasicSalary,
		Allowance:   breakdown.Allowance,
		Deduction:   breakdown.Deduction,
		TotalSalary: breakdown.TotalSalary,
		Remarks:     breakdown.Remarks,
	}

	created, err := s.slipRepo.Create(ctx, slip)
	if err != nil {
		if errors.Is(err, salaryslip.ErrSlipAlreadyExists) {
			if winner, getErr := s.slipRepo.GetByEmployeeAndPeriod(ctx, req.EmployeeID, req.Period); getErr == nil {
				return salaryslip.GenerateResult{}, &salaryslip.AlreadyExistsError{Slip: winner}
			}
		}
		s.logStorageFault(ctx, "generate", req.EmployeeID, actorID, req.Period, err)
		return salaryslip.GenerateResult{}, err
	}
	created.EmployeeName = emp.Name
	created.EmployeeCode = &emp.EmployeeCode

	s.notifySlipGenerated(ctx, emp, created)

	return salaryslip.GenerateResult{
		Slip:        toSlipResponse(created),
		Calculation: breakdown,
	}, nil
}

func (s *ServiceImpl) GenerateBulk(ctx context.Context, req salaryslip.GenerateBulkRequest, actorID int64) (salaryslip.BulkReport, error) {
	if err := req.Validate(); err != nil {
		return salaryslip.BulkReport{}, err
	}

	employees, err := s.employeeRepo.ListByEmploymentStatus(ctx, employee.PayrollEligibleStatuses())
	if err != nil {
		return salaryslip.BulkReport{}, err
	}

	report := salaryslip.BulkReport{
		Period:         req.Period,
		TotalEmployees: len(employees),
		Succeeded:      []salaryslip.BulkItem{},
		Skipped:        []salaryslip.BulkItem{},
		Failed:         []salaryslip.BulkItem{},
	}

	for _, emp := range employees {
		item := salaryslip.BulkItem{EmployeeID: emp.ID}
		if emp.Name != nil {
			item.EmployeeName = *emp.Name
		}

		result, err := s.Generate(ctx, salaryslip.GenerateSlipRequest{
			EmployeeID: emp.ID,
			Period:     req.Period,
		}, actorID)

		switch {
		case err == nil:
			total := result.Slip.TotalSalary
			item.TotalSalary = &total
			report.Succeeded = append(report.Succeeded, item)
			report.SucceededCount++
		case errors.Is(err, salaryslip.ErrSlipAlreadyExists):
			item.Reason = "salary slip already exists for this period"
			report.Skipped = append(report.Skipped, item)
			report.SkippedCount++
		default:
			item.Reason = err.Error()
			report.Failed = append(report.Failed, item)
			report.FailedCount++
			s.logger.WarnContext(ctx, "bulk salary generation failed for employee",
				slog.Int64("employee_id", emp.ID),
				slog.String("period", req.Period),
				slog.String("error", err.Error()),
			)
		}
	}

	return report, nil
}

// Preview runs the same aggregation and calculation as Generate but
// never checks for an existing slip and never writes. Zero worked hours
// is previewable; it shows what the allowance-only slip would look like.
func (s *ServiceImpl) Preview(ctx context.Context, req salaryslip.GenerateSlipRequest) (salaryslip.PreviewResult, error) {
	if err := req.Validate(); err != nil {
		return salaryslip.PreviewResult{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return salaryslip.PreviewResult{}, err
	}

	breakdown, err := s.computeForPeriod(ctx, emp, req.Period)
	if err != nil {
		return salaryslip.PreviewResult{}, err
	}

	result := salaryslip.PreviewResult{
		EmployeeID:  emp.ID,
		Period:      req.Period,
		Calculation: breakdown,
	}
	if emp.Name != nil {
		result.EmployeeName = *emp.Name
	}

	return result, nil
}

// computeForPeriod aggregates the employee's work hours over the period
// and runs the calculator on them.
func (s *ServiceImpl) computeForPeriod(ctx context.Context, emp employee.Employee, periodStr string) (salaryslip.Breakdown, error) {
	period, err := salaryslip.ParsePeriod(periodStr)
	if err != nil {
		return salaryslip.Breakdown{}, err
	}

	from, to := period.Bounds()
	hours, err := s.attendanceRepo.SumWorkHours(ctx, emp.ID, from, to)
	if err != nil {
		return salaryslip.Breakdown{}, err
	}

	return s.calculator.Calculate(emp.BasicSalary, hours)
}

// logStorageFault records an unexpected persistence failure with the
// acting user and the request inputs so a 500 can be traced back.
func (s *ServiceImpl) logStorageFault(ctx context.Context, operation string, employeeID, actorID int64, period string, err error) {
	s.logger.ErrorContext(ctx, "salary slip storage fault",
		slog.String("operation", operation),
		slog.Int64("employee_id", employeeID),
		slog.Int64("actor_id", actorID),
		slog.String("period", period),
		slog.String("error", err.Error()),
	)
}

func (s *ServiceImpl) notifySlipGenerated(ctx context.Context, emp employee.Employee, slip salaryslip.SalarySlip) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifySlipGenerated(ctx, emp.UserID, slip.PeriodMonth, slip.TotalSalary.StringFixed(2)); err != nil {
		s.logger.WarnContext(ctx, "failed to send slip notification",
			slog.Int64("employee_id", emp.ID),
			slog.String("period", slip.PeriodMonth),
			slog.String("error", err.Error()),
		)
	}
}

// ========== MANUAL CRUD ==========

func (s *ServiceImpl) Create(ctx context.Context, req salaryslip.CreateSlipRequest, actorID int64) (salaryslip.SlipResponse, error) {
	if err := req.Validate(); err != nil {
		return salaryslip.SlipResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			s.logStorageFault(ctx, "create", req.EmployeeID, actorID, req.Period, err)
		}
		return salaryslip.SlipResponse{}, err
	}

	slip := salaryslip.SalarySlip{
		EmployeeID:  emp.ID,
		CreatedBy:   actorID,
		PeriodMonth: req.Period,
		BasicSalary: req.BasicSalary,
		Allowance:   req.Allowance,
		Deduction:   req.Deduction,
	}
	if req.Remarks != nil {
		slip.Remarks = *req.Remarks
	}
	slip.ComputeTotalSalary()

	created, err := s.slipRepo.Create(ctx, slip)
	if err != nil {
		if errors.Is(err, salaryslip.ErrSlipAlreadyExists) {
			if winner, getErr := s.slipRepo.GetByEmployeeAndPeriod(ctx, req.EmployeeID, req.Period); getErr == nil {
				return salaryslip.SlipResponse{}, &salaryslip.AlreadyExistsError{Slip: winner}
			}
		}
		s.logStorageFault(ctx, "create", req.EmployeeID, actorID, req.Period, err)
		return salaryslip.SlipResponse{}, err
	}
	created.EmployeeName = emp.Name
	created.EmployeeCode = &emp.EmployeeCode

	s.notifySlipGenerated(ctx, emp, created)

	return toSlipResponse(created), nil
}

func (s *ServiceImpl) GetByID(ctx context.Context, id int64) (salaryslip.SlipResponse, error) {
	slip, err := s.slipRepo.GetByID(ctx, id)
	if err != nil {
		return salaryslip.SlipResponse{}, err
	}
	return toSlipResponse(slip), nil
}

func (s *ServiceImpl) List(ctx context.Context, filter salaryslip.ListSlipFilter) (salaryslip.ListSlipResponse, error) {
	if filter.Period != nil {
		if _, err := salaryslip.ParsePeriod(*filter.Period); err != nil {
			return salaryslip.ListSlipResponse{}, err
		}
	}

	slips, total, err := s.slipRepo.List(ctx, filter)
	if err != nil {
		return salaryslip.ListSlipResponse{}, err
	}

	resp := salaryslip.ListSlipResponse{
		Data:       make([]salaryslip.SlipResponse, 0, len(slips)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	if resp.Page <= 0 {
		resp.Page = 1
	}
	if resp.Limit <= 0 {
		resp.Limit = 20
	}
	for _, slip := range slips {
		resp.Data = append(resp.Data, toSlipResponse(slip))
	}

	return resp, nil
}

// ListByUser resolves the caller's employee profile and returns only
// that employee's slips; employees can never read anyone else's pay.
func (s *ServiceImpl) ListByUser(ctx context.Context, userID int64, period *string) ([]salaryslip.SlipResponse, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	slips, err := s.slipRepo.ListByEmployee(ctx, emp.ID, period)
	if err != nil {
		return nil, err
	}

	responses := make([]salaryslip.SlipResponse, 0, len(slips))
	for _, slip := range slips {
		responses = append(responses, toSlipResponse(slip))
	}

	return responses, nil
}

func (s *ServiceImpl) Update(ctx context.Context, req salaryslip.UpdateSlipRequest) (salaryslip.SlipResponse, error) {
	if err := req.Validate(); err != nil {
		return salaryslip.SlipResponse{}, err
	}

	slip, err := s.slipRepo.GetByID(ctx, req.ID)
	if err != nil {
		return salaryslip.SlipResponse{}, err
	}

	if req.BasicSalary != nil {
		slip.BasicSalary = *req.BasicSalary
	}
	if req.Allowance != nil {
		slip.Allowance = *req.Allowance
	}
	if req.Deduction != nil {
		slip.Deduction = *req.Deduction
	}
	if req.Remarks != nil {
		slip.Remarks = *req.Remarks
	}
	slip.ComputeTotalSalary()

	if err := s.slipRepo.Update(ctx, slip); err != nil {
		return salaryslip.SlipResponse{}, err
	}
	slip.UpdatedAt = time.Now()

	return toSlipResponse(slip), nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.slipRepo.Delete(ctx, id)
}

// ========== PDF ==========

func (s *ServiceImpl) RenderPDF(ctx context.Context, id int64) ([]byte, string, error) {
	slip, err := s.slipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	doc, err := pdf.RenderPayslip(slip)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render payslip: %w", err)
	}

	code := "slip"
	if slip.EmployeeCode != nil {
		code = *slip.EmployeeCode
	}
	filename := fmt.Sprintf("salary-slip-%s-%s.pdf", code, slip.PeriodMonth)

	return doc, filename, nil
}

func toSlipResponse(slip salaryslip.SalarySlip) salaryslip.SlipResponse {
	resp := salaryslip.SlipResponse{
		ID:          slip.ID,
		EmployeeID:  slip.EmployeeID,
		PeriodMonth: slip.PeriodMonth,
		BasicSalary: slip.BasicSalary,
		Allowance:   slip.Allowance,
		Deduction:   slip.Deduction,
		TotalSalary: slip.TotalSalary,
		Remarks:     slip.Remarks,
		CreatedBy:   slip.CreatedBy,
		CreatedAt:   slip.CreatedAt.Format(time.RFC3339),
	}
	if slip.EmployeeName != nil {
		resp.EmployeeName = *slip.EmployeeName
	}
	if slip.EmployeeCode != nil {
		resp.EmployeeCode = *slip.EmployeeCode
	}
	return resp
}
