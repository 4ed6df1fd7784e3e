package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentindo/hris-backend-go/internal/domain/attendance"
	"github.com/talentindo/hris-backend-go/internal/domain/employee"
)

type fakeAttendanceRepo struct {
	records []attendance.Attendance
	nextID  int64
}

func (r *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	r.nextID++
	a.ID = r.nextID
	r.records = append(r.records, a)
	return a, nil
}

func (r *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID int64, date time.Time) (*attendance.Attendance, error) {
	for i, rec := range r.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			copied := r.records[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) Update(_ context.Context, a attendance.Attendance) error {
	for i, rec := range r.records {
		if rec.ID == a.ID {
			r.records[i] = a
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (r *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID int64, _ *string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range r.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) List(_ context.Context, _ attendance.ListAttendanceFilter) ([]attendance.Attendance, int64, error) {
	return r.records, int64(len(r.records)), nil
}

func (r *fakeAttendanceRepo) SumWorkHours(_ context.Context, _ int64, _, _ time.Time) (decimal.Decimal, error) {
	return decimal.Decimal{}, nil
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

func (r *fakeEmployeeRepo) ListByEmploymentStatus(_ context.Context, _ []employee.EmploymentStatus) ([]employee.Employee, error) {
	return r.employees, nil
}

func newAttendanceTestService(at time.Time) (*ServiceImpl, *fakeAttendanceRepo) {
	attendanceRepo := &fakeAttendanceRepo{}
	employeeRepo := &fakeEmployeeRepo{
		employees: []employee.Employee{{ID: 1, UserID: 10, EmployeeCode: "EMP0001"}},
	}

	svc := NewService(attendanceRepo, employeeRepo)
	svc.now = func() time.Time { return at }

	return svc, attendanceRepo
}

func TestCheckIn(t *testing.T) {
	morning := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	svc, repo := newAttendanceTestService(morning)

	resp, err := svc.CheckIn(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-02", resp.Date)
	require.NotNil(t, resp.CheckInTime)
	assert.Nil(t, resp.CheckOutTime)
	assert.Nil(t, resp.WorkHour)
	assert.Len(t, repo.records, 1)
}

func TestCheckIn_TwiceSameDay(t *testing.T) {
	morning := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	svc, repo := newAttendanceTestService(morning)

	_, err := svc.CheckIn(context.Background(), 10)
	require.NoError(t, err)

	_, err = svc.CheckIn(context.Background(), 10)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	assert.Len(t, repo.records, 1)
}

func TestCheckIn_UnknownUser(t *testing.T) {
	svc, _ := newAttendanceTestService(time.Now())

	_, err := svc.CheckIn(context.Background(), 777)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckOut_DeductsBreak(t *testing.T) {
	morning := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	svc, repo := newAttendanceTestService(morning)

	_, err := svc.CheckIn(context.Background(), 10)
	require.NoError(t, err)

	// Nine hours on the clock, one hour unpaid break.
	svc.now = func() time.Time { return morning.Add(9 * time.Hour) }

	resp, err := svc.CheckOut(context.Background(), 10)
	require.NoError(t, err)

	require.NotNil(t, resp.WorkHour)
	assert.Equal(t, "8", resp.WorkHour.String())
	require.NotNil(t, repo.records[0].WorkHour)
	assert.Equal(t, "8", repo.records[0].WorkHour.String())
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	svc, _ := newAttendanceTestService(time.Date(2025, time.June, 2, 18, 0, 0, 0, time.UTC))

	_, err := svc.CheckOut(context.Background(), 10)
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_Twice(t *testing.T) {
	morning := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	svc, _ := newAttendanceTestService(morning)

	_, err := svc.CheckIn(context.Background(), 10)
	require.NoError(t, err)

	svc.now = func() time.Time { return morning.Add(9 * time.Hour) }
	_, err = svc.CheckOut(context.Background(), 10)
	require.NoError(t, err)

	_, err = svc.CheckOut(context.Background(), 10)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

// A check-in yesterday does not block today's.
func TestCheckIn_NewDay(t *testing.T) {
	monday := time.Date(2025, time.June, 2, 9, 0, 0, 0, time.UTC)
	svc, repo := newAttendanceTestService(monday)

	_, err := svc.CheckIn(context.Background(), 10)
	require.NoError(t, err)

	svc.now = func() time.Time { return monday.AddDate(0, 0, 1) }
	_, err = svc.CheckIn(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, repo.records, 2)
}
