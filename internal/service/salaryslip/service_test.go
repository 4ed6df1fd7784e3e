package salaryslip

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentindo/hris-backend-go/internal/domain/attendance"
	"github.com/talentindo/hris-backend-go/internal/domain/employee"
	"github.com/talentindo/hris-backend-go/internal/domain/notification"
	"github.com/talentindo/hris-backend-go/internal/domain/salaryslip"
	"github.com/talentindo/hris-backend-go/internal/pkg/validator"
)

// ========== FAKES ==========

type fakeSlipRepo struct {
	slips  []salaryslip.SalarySlip
	nextID int64
	// getMisses makes GetByEmployeeAndPeriod report not-found for the
	// first N calls even when the slip exists, to simulate a concurrent
	// insert landing between the fast-path check and Create.
	getMisses int
	createErr error
}

func (r *fakeSlipRepo) find(employeeID int64, period string) (int, bool) {
	for i, s := range r.slips {
		if s.EmployeeID == employeeID && s.PeriodMonth == period {
			return i, true
		}
	}
	return 0, false
}

func (r *fakeSlipRepo) Create(_ context.Context, slip salaryslip.SalarySlip) (salaryslip.SalarySlip, error) {
	if r.createErr != nil {
		return salaryslip.SalarySlip{}, r.createErr
	}
	if _, ok := r.find(slip.EmployeeID, slip.PeriodMonth); ok {
		return salaryslip.SalarySlip{}, salaryslip.ErrSlipAlreadyExists
	}
	r.nextID++
	slip.ID = r.nextID
	slip.CreatedAt = time.Now()
	slip.UpdatedAt = slip.CreatedAt
	r.slips = append(r.slips, slip)
	return slip, nil
}

func (r *fakeSlipRepo) GetByID(_ context.Context, id int64) (salaryslip.SalarySlip, error) {
	for _, s := range r.slips {
		if s.ID == id {
			return s, nil
		}
	}
	return salaryslip.SalarySlip{}, salaryslip.ErrSlipNotFound
}

func (r *fakeSlipRepo) GetByEmployeeAndPeriod(_ context.Context, employeeID int64, period string) (salaryslip.SalarySlip, error) {
	if r.getMisses > 0 {
		r.getMisses--
		return salaryslip.SalarySlip{}, salaryslip.ErrSlipNotFound
	}
	if i, ok := r.find(employeeID, period); ok {
		return r.slips[i], nil
	}
	return salaryslip.SalarySlip{}, salaryslip.ErrSlipNotFound
}

func (r *fakeSlipRepo) List(_ context.Context, filter salaryslip.ListSlipFilter) ([]salaryslip.SalarySlip, int64, error) {
	var out []salaryslip.SalarySlip
	for _, s := range r.slips {
		if filter.Period != nil && s.PeriodMonth != *filter.Period {
			continue
		}
		if filter.EmployeeID != nil && s.EmployeeID != *filter.EmployeeID {
			continue
		}
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSlipRepo) ListByEmployee(_ context.Context, employeeID int64, period *string) ([]salaryslip.SalarySlip, error) {
	var out []salaryslip.SalarySlip
	for _, s := range r.slips {
		if s.EmployeeID != employeeID {
			continue
		}
		if period != nil && s.PeriodMonth != *period {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSlipRepo) Update(_ context.Context, slip salaryslip.SalarySlip) error {
	for i, s := range r.slips {
		if s.ID == slip.ID {
			r.slips[i] = slip
			return nil
		}
	}
	return salaryslip.ErrSlipNotFound
}

func (r *fakeSlipRepo) Delete(_ context.Context, id int64) error {
	for i, s := range r.slips {
		if s.ID == id {
			r.slips = append(r.slips[:i], r.slips[i+1:]...)
			return nil
		}
	}
	return salaryslip.ErrSlipNotFound
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByUserID(_ context.Context, userID int64) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees = append(r.employees, e)
	return e, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, _ employee.ListEmployeeFilter) ([]employee.Employee, int64, error) {
	return r.employees, int64(len(r.employees)), nil
}

func (r *fakeEmployeeRepo) ListByEmploymentStatus(_ context.Context, statuses []employee.EmploymentStatus) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		for _, status := range statuses {
			if e.EmploymentStatus == status {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

type fakeAttendanceRepo struct {
	hours    map[int64]decimal.Decimal
	sumErrs  map[int64]error
	sumCalls int
}

func (r *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, _ int64, _ time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) Update(_ context.Context, _ attendance.Attendance) error {
	return nil
}

func (r *fakeAttendanceRepo) ListByEmployee(_ context.Context, _ int64, _ *string) ([]attendance.Attendance, error) {
	return nil, nil
}

func (r *fakeAttendanceRepo) List(_ context.Context, _ attendance.ListAttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (r *fakeAttendanceRepo) SumWorkHours(_ context.Context, employeeID int64, _, _ time.Time) (decimal.Decimal, error) {
	r.sumCalls++
	if err := r.sumErrs[employeeID]; err != nil {
		return decimal.Decimal{}, err
	}
	return r.hours[employeeID], nil
}

type fakeNotifier struct {
	slipNotices []string
	notifyErr   error
}

func (n *fakeNotifier) Notify(_ context.Context, req notification.CreateNotificationRequest, _ *int64) (notification.NotificationResponse, error) {
	return notification.NotificationResponse{}, nil
}

func (n *fakeNotifier) Broadcast(_ context.Context, _ notification.BroadcastRequest, _ int64) (int, error) {
	return 0, nil
}

func (n *fakeNotifier) NotifySlipGenerated(_ context.Context, _ int64, period string, totalSalary string) error {
	if n.notifyErr != nil {
		return n.notifyErr
	}
	n.slipNotices = append(n.slipNotices, period+"/"+totalSalary)
	return nil
}

func (n *fakeNotifier) ListMine(_ context.Context, _ int64, _ bool) ([]notification.NotificationResponse, error) {
	return nil, nil
}

func (n *fakeNotifier) UnreadCount(_ context.Context, _ int64) (int, error) { return 0, nil }

func (n *fakeNotifier) MarkAsRead(_ context.Context, _ string, _ int64) error { return nil }

func (n *fakeNotifier) MarkAllAsRead(_ context.Context, _ int64) error { return nil }

func (n *fakeNotifier) Delete(_ context.Context, _ string, _ int64) error { return nil }

// recordingHandler captures log records so tests can assert on what the
// service reported.
type recordingHandler struct {
	records []slog.Record
}

func (h *recordingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *recordingHandler) WithGroup(_ string) slog.Handler { return h }

func (h *recordingHandler) attrs(i int) map[string]string {
	out := make(map[string]string)
	h.records[i].Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value.String()
		return true
	})
	return out
}

// ========== SETUP ==========

type testEnv struct {
	slipRepo       *fakeSlipRepo
	employeeRepo   *fakeEmployeeRepo
	attendanceRepo *fakeAttendanceRepo
	notifier       *fakeNotifier
	service        salaryslip.Service
}

func newTestEnv() *testEnv {
	return newTestEnvWithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestEnvWithLogger(logger *slog.Logger) *testEnv {
	env := &testEnv{
		slipRepo:       &fakeSlipRepo{},
		employeeRepo:   &fakeEmployeeRepo{},
		attendanceRepo: &fakeAttendanceRepo{hours: map[int64]decimal.Decimal{}, sumErrs: map[int64]error{}},
		notifier:       &fakeNotifier{},
	}
	env.service = NewService(
		env.slipRepo,
		env.employeeRepo,
		env.attendanceRepo,
		NewCalculator(testPolicy()),
		env.notifier,
		logger,
	)
	return env
}

func (e *testEnv) addEmployee(id, userID int64, name string, status employee.EmploymentStatus, basicSalary int64) {
	e.employeeRepo.employees = append(e.employeeRepo.employees, employee.Employee{
		ID:               id,
		UserID:           userID,
		EmployeeCode:     "EMP0001",
		EmploymentStatus: status,
		BasicSalary:      decimal.NewFromInt(basicSalary),
		Name:             &name,
	})
}

// ========== GENERATION ==========

func TestGenerate_CreatesSlipFromAttendance(t *testing.T) {
	env := newTestEnv()
	env.addEmployee(1, 10, "Budi", employee.StatusPermanent, 11_000_000)
	env.attendanceRepo.hours[1] = decimal.NewFromInt(160)

	result, err := env.service.Generate(context.Background(), salaryslip.GenerateSlipRequest{
		EmployeeID: 1,
		Period:     "2025-07",
	}, 99)
	require.NoError(t, err)

	assertDecimal(t, "10000000", result.Slip.BasicSalary)
	assertDecimal(t, "1000000", result.Slip.Allowance)
	assertDecimal(t, "1320000", result.Slip.Deduction)
	assertDecimal(t, "9680000", result.Slip.TotalSalary)
	assert.Equal(t, "2025-07", result.Slip.PeriodMonth)
	assert.Equal(t, int64(99), result.Slip.CreatedBy)
	assert.Contains(t, result.Slip.Remarks, "Kalkulasi:")
	assertDecimal(t, "160", result.Calculation.RealWorkHours)

	require.Len(t, env.slipRepo.slips, 1)
	require.Len(t, env.notifier.slipNotices, 1)
	assert.Equal(t, "2025-07/9680000.00", env.notifier.slipNotices[0])
}

func TestGenerate_SecondCallReturnsExistingSlip(t *testing.T) {
	env := newTestEnv()
	env.addEmployee(1, 10, "Budi", employee.StatusPermanent, 11_000_000)
	env.attendanceRepo.hours[1] = decimal.NewFromInt(160)

	req := salaryslip.GenerateSlipRequest{EmployeeID: 1, Period: "2025-07"}

	first, err := env.service.Generate(context.Background(), req, 99)
	require.NoError(t, err)

	_, err = env.service.Generate(context.Background(), req, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, salaryslip.ErrSlipAlreadyExists)

	var exists *salaryslip.AlreadyExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, first.Slip.ID, exists.Slip.ID)

	assert.Len(t, env.slipRepo.slips, 1)
	assert.Len(t, env.notifier.slipNotices, 1)
}

// A concurrent insert can land between the fast-path existence check and
// Create; the unique-index violation must resolve to the winner's slip.
func TestGenerate_ConcurrentInsertWinsRace(t *testing.T) {
	env := newTestEnv()
	env.addEmployee(1, 10, "Budi", employee.StatusPermanent, 11_000_000)
	env.attendanceRepo.hours[1] = decimal.NewFromInt(160)

	winner, err := env.slipRepo.Create(context.Background(), salaryslip.SalarySlip{
		EmployeeID:  1,
		PeriodMonth: "2025-07",
		TotalSalary: decimal.NewFromInt(9_680_000),
	})
	require.NoError(t, err)
	env.slipRepo.getMisses = 1

	_, err = env.service.Generate(context.Background(), salaryslip.GenerateSlipRequest{
		EmployeeID: 1,
		Period:     "2025-07",
	}, 99)
	require.Error(t, err)

	var exists *salaryslip.AlreadyExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, winner.ID, exists.Slip.ID)
	assert.Len(t, env.slipRepo.slips, 1)
}

func TestGenerate_NoAttendanceForPeriod(t *testing.T) {
	env := newTestEnv()
	env.addEmployee(1, 10, "Budi", employee.StatusPermanent, 11_000_000)

	_, err := env.service.Generate(context.Background(), salaryslip.GenerateSlipRequest{
		EmployeeID: 1,
		Period:     "2025-07",
	}, 99)
	assert.ErrorIs(t, err, salaryslip.ErrNoAttendanceForPeriod)
	assert.Empty(t, env.slipRepo.slips)
}

func TestGenerate_EmployeeNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.Generate(context.Background(), salaryslip.GenerateSlipRequest{
		EmployeeID: 42,
		Period:     "2025-07",
	}, 99)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

// Period validation must fail before any attendance is read.
func TestGenerate_InvalidPeriod(t *testing.T) {
	env := newTestEnv()
	env.addEmployee(1, 10, "Budi", employee.StatusPermanent, 11_000_000)

	for _, period := range []string{"2025-13", "2025-1", "July 2025", ""} {
		_, err := env.service.Generate(context.Background(), salaryslip.GenerateSlipRequest{
			EmployeeID: 1,
			Period:     period,
		}, 99)

		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs, "period %q", period)
	}
	assert.Zero(t, env.attendanceRepo.sumCalls)
}

// Notification failure must never fail the generation itself.
func TestGenerate_NotificationFailureIsIgnored(t *testing.T) {
	env := newTestEnv()
	env.addEmployee(1, 10, "Budi", employee.StatusPermanent, 11_000_000)
	env.attendanceRepo.hours[1] = decimal.NewFromInt(160)
	env.notifier.notifyErr = errors.New("notification channel down")

	_, err := env.service.Generate(context.Background(), salaryslip.GenerateSlipRequest{
		EmployeeID: 1,
		Period:     "2025-07",
	}, 99)
	assert.NoError(t, err)
	assert.Len(t, env.slipRepo.slips, 1)
}

// A storage fault on the single-slip path must be logged with the acting
// user and the request inputs, not just surfaced as a bare 500.
func TestGenerate_StorageFaultLogsActorAndInputs(t *testing.T) {
	handler := &recordingHandler{}
	env := newTestEnvWithLogger(slog.New(handler))
	env.addEmployee(1, 10, "Budi", employee.StatusPermanent, 11_000_000)
	env.attendanceRepo.hours[1] = decimal.NewFromInt(160)
	env.slipRepo.createErr = errors.New("connection reset")

	_, err := env.service.Generate(context.Background(), salaryslip.GenerateSlipRequest{
		EmployeeID: 1,
		Period:     "2025-07",
	}, 99)
	require.Error(t, err)

	require.Len(t, handler.records, 1)
	assert.Equal(t, slog.LevelError, handler.records[0].Level)
	attrs := handler.attrs(0)
	assert.Equal(t, "99", attrs["actor_id"])
	assert.Equal(t, "1", attrs["employee_id"])
	assert.Equal(t, "2025-07", attrs["period"])
	assert.Contains(t, attrs["error"], "connection reset")
}

func TestGenerate_AttendanceFaultLogsActorAndInputs(t *testing.T) {
	handler := &recordingHandler{}
	env := newTestEnvWithLogger(slog.New(handler))
	env.addEmployee(1, 10, "Budi", employee.StatusPermanent, 11_000_000)
	env.attendanceRepo.sumErrs[1] = errors.New("attendance store unavailable")

	_, err := env.service.Generate(context.Background(), salaryslip.GenerateSlipRequest{
		EmployeeID: 1,
		Period:     "2025-07",
	}, 99)
	require.Error(t, err)

	require.Len(t, handler.records, 1)
	assert.Equal(t, slog.LevelError, handler.records[0].Level)
	attrs := handler.attrs(0)
	assert.Equal(t, "99", attrs["actor_id"])
	assert.Contains(t, attrs["error"], "attendance store unavailable")
}

// Domain outcomes are not storage faults; nothing gets logged for them.
func TestGenerate_DomainErrorsAreNotLogged(t *testing.T) {
	handler := &recordingHandler{}
	env := newTestEnvWithLogger(slog.New(handler))
	env.addEmployee(1, 10, "Budi", employee.StatusPermanent, 11_000_000)

	_, err := env.service.Generate(context.Background(), salaryslip.GenerateSlipRequest{
		EmployeeID: 1,
		Period:     "2025-07",
	}, 99)
	assert.ErrorIs(t, err, salaryslip.ErrNoAttendanceForPeriod)

	_, err = env.service.Generate(context.Background(), salaryslip.GenerateSlipRequest{
		EmployeeID: 42,
		Period:     "2025-07",
	}, 99)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	assert.Empty(t, handler.records)
}

func TestGenerateBulk_PartitionsOutcomes(t *testing.T) {
	env := newTestEnv()
	env.addEmployee(1, 10, "Budi", employee.StatusPermanent, 11_000_000)
	env.addEmployee(2, 20, "Sari", employee.StatusContract, 8_000_000)
	env.addEmployee(3, 30, "Agus", employee.StatusPermanent, 9_000_000)
	env.addEmployee(4, 40, "Rina", employee.StatusIntern, 3_000_000)

	env.attendanceRepo.hours[1] = decimal.NewFromInt(160)
	env.attendanceRepo.hours[2] = decimal.NewFromInt(150)
	env.attendanceRepo.sumErrs[3] = errors.New("attendance store unavailable")

	// Sari already has a slip for the period.
	_, err := env.slipRepo.Create(context.Background(), salaryslip.SalarySlip{
		EmployeeID:  2,
		PeriodMonth: "2025-07",
	})
	require.NoError(t, err)

	report, err := env.service.GenerateBulk(context.Background(), salaryslip.GenerateBulkRequest{
		Period: "2025-07",
	}, 99)
	require.NoError(t, err)

	// Interns are not in the batch at all.
	assert.Equal(t, 3, report.TotalEmployees)
	assert.Equal(t, 1, report.SucceededCount)
	assert.Equal(t, 1, report.SkippedCount)
	assert.Equal(t, 1, report.FailedCount)

	require.Len(t, report.Succeeded, 1)
	assert.Equal(t, int64(1), report.Succeeded[0].EmployeeID)
	require.NotNil(t, report.Succeeded[0].TotalSalary)

	require.Len(t, report.Skipped, 1)
	assert.Equal(t, int64(2), report.Skipped[0].EmployeeID)
	assert.Equal(t, "salary slip already exists for this period", report.Skipped[0].Reason)

	require.Len(t, report.Failed, 1)
	assert.Equal(t, int64(3), report.Failed[0].EmployeeID)
	assert.Contains(t, report.Failed[0].Reason, "attendance store unavailable")

	// Budi's new slip plus Sari's pre-existing one.
	assert.Len(t, env.slipRepo.slips, 2)
}

// Interns are excluded from the batch but not from targeted generation.
func TestGenerate_InternAllowedIndividually(t *testing.T) {
	env := newTestEnv()
	env.addEmployee(4, 40, "Rina", employee.StatusIntern, 3_000_000)
	env.attendanceRepo.hours[4] = decimal.NewFromInt(80)

	_, err := env.service.Generate(context.Background(), salaryslip.GenerateSlipRequest{
		EmployeeID: 4,
		Period:     "2025-07",
	}, 99)
	assert.NoError(t, err)
	assert.Len(t, env.slipRepo.slips, 1)
}

func TestPreview_DoesNotWrite(t *testing.T) {
	env := newTestEnv()
	env.addEmployee(1, 10, "Budi", employee.StatusPermanent, 11_000_000)
	env.attendanceRepo.hours[1] = decimal.NewFromInt(160)

	result, err := env.service.Preview(context.Background(), salaryslip.GenerateSlipRequest{
		EmployeeID: 1,
		Period:     "2025-07",
	})
	require.NoError(t, err)

	assertDecimal(t, "9680000", result.Calculation.TotalSalary)
	assert.Equal(t, "Budi", result.EmployeeName)
	assert.Empty(t, env.slipRepo.slips)
	assert.Empty(t, env.notifier.slipNotices)
}

// Preview skips the existence check and tolerates zero worked hours.
func TestPreview_ZeroHoursAndExistingSlip(t *testing.T) {
	env := newTestEnv()
	env.addEmployee(1, 10, "Budi", employee.StatusPermanent, 11_000_000)

	_, err := env.slipRepo.Create(context.Background(), salaryslip.SalarySlip{
		EmployeeID:  1,
		PeriodMonth: "2025-07",
	})
	require.NoError(t, err)

	result, err := env.service.Preview(context.Background(), salaryslip.GenerateSlipRequest{
		EmployeeID: 1,
		Period:     "2025-07",
	})
	require.NoError(t, err)
	assertDecimal(t, "880000", result.Calculation.TotalSalary)
	assert.Len(t, env.slipRepo.slips, 1)
}

// ========== MANUAL CRUD ==========

func TestCreate_ComputesTotalSalary(t *testing.T) {
	env := newTestEnv()
	env.addEmployee(1, 10, "Budi", employee.StatusPermanent, 11_000_000)

	resp, err := env.service.Create(context.Background(), salaryslip.CreateSlipRequest{
		EmployeeID:  1,
		Period:      "2025-07",
		BasicSalary: decimal.NewFromInt(11_000_000),
		Allowance:   decimal.NewFromInt(500_000),
		Deduction:   decimal.NewFromInt(250_000),
	}, 99)
	require.NoError(t, err)

	assertDecimal(t, "11250000", resp.TotalSalary)
}

func TestCreate_ConflictCarriesExistingSlip(t *testing.T) {
	env := newTestEnv()
	env.addEmployee(1, 10, "Budi", employee.StatusPermanent, 11_000_000)
	env.attendanceRepo.hours[1] = decimal.NewFromInt(160)

	generated, err := env.service.Generate(context.Background(), salaryslip.GenerateSlipRequest{
		EmployeeID: 1,
		Period:     "2025-07",
	}, 99)
	require.NoError(t, err)

	_, err = env.service.Create(context.Background(), salaryslip.CreateSlipRequest{
		EmployeeID:  1,
		Period:      "2025-07",
		BasicSalary: decimal.NewFromInt(11_000_000),
		Allowance:   decimal.Zero,
		Deduction:   decimal.Zero,
	}, 99)
	require.Error(t, err)

	var exists *salaryslip.AlreadyExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, generated.Slip.ID, exists.Slip.ID)
}

func TestUpdate_RecomputesTotal(t *testing.T) {
	env := newTestEnv()
	env.addEmployee(1, 10, "Budi", employee.StatusPermanent, 11_000_000)
	env.attendanceRepo.hours[1] = decimal.NewFromInt(160)

	generated, err := env.service.Generate(context.Background(), salaryslip.GenerateSlipRequest{
		EmployeeID: 1,
		Period:     "2025-07",
	}, 99)
	require.NoError(t, err)

	newDeduction := decimal.NewFromInt(2_000_000)
	updated, err := env.service.Update(context.Background(), salaryslip.UpdateSlipRequest{
		ID:        generated.Slip.ID,
		Deduction: &newDeduction,
	})
	require.NoError(t, err)

	// 10,000,000 basic + 1,000,000 allowance - 2,000,000 deduction.
	assertDecimal(t, "9000000", updated.TotalSalary)
}

func TestListByUser_ResolvesEmployeeProfile(t *testing.T) {
	env := newTestEnv()
	env.addEmployee(1, 10, "Budi", employee.StatusPermanent, 11_000_000)
	env.attendanceRepo.hours[1] = decimal.NewFromInt(160)

	_, err := env.service.Generate(context.Background(), salaryslip.GenerateSlipRequest{
		EmployeeID: 1,
		Period:     "2025-07",
	}, 99)
	require.NoError(t, err)

	slips, err := env.service.ListByUser(context.Background(), 10, nil)
	require.NoError(t, err)
	assert.Len(t, slips, 1)

	_, err = env.service.ListByUser(context.Background(), 777, nil)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
