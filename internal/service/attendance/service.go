package attendance

import (
	"context"
	"time"

	"github.com/talentindo/hris-backend-go/internal/domain/attendance"
	"github.com/talentindo/hris-backend-go/internal/domain/employee"
)

type Service interface {
	// CheckIn opens today's attendance record for the employee linked to
	// userID. At most one record per employee per day.
	CheckIn(ctx context.Context, userID int64) (attendance.AttendanceResponse, error)
	// CheckOut closes today's record and derives the worked hours.
	CheckOut(ctx context.Context, userID int64) (attendance.AttendanceResponse, error)
	ListMine(ctx context.Context, userID int64, month *string) ([]attendance.AttendanceResponse, error)
	List(ctx context.Context, filter attendance.ListAttendanceFilter) (attendance.ListAttendanceResponse, error)
}

type ServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	// now is swapped out in tests to pin the clock.
	now func() time.Time
}

func NewService(attendanceRepo attendance.Repository, employeeRepo employee.Repository) *ServiceImpl {
	return &ServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

func (s *ServiceImpl) CheckIn(ctx context.Context, userID int64) (attendance.AttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	today := truncateToDay(now)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID:  emp.ID,
		Date:        today,
		CheckInTime: &now,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(created), nil
}

func (s *ServiceImpl) CheckOut(ctx context.Context, userID int64) (attendance.AttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	today := truncateToDay(now)

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record == nil || record.CheckInTime == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOutTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	record.CheckOutTime = &now
	record.ComputeWorkHour()

	if err := s.attendanceRepo.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(*record), nil
}

func (s *ServiceImpl) ListMine(ctx context.Context, userID int64, month *string) ([]attendance.AttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployee(ctx, emp.ID, month)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toAttendanceResponse(record))
	}

	return responses, nil
}

func (s *ServiceImpl) List(ctx context.Context, filter attendance.ListAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	resp := attendance.ListAttendanceResponse{
		Data:       make([]attendance.AttendanceResponse, 0, len(records)),
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
	for _, record := range records {
		resp.Data = append(resp.Data, toAttendanceResponse(record))
	}

	return resp, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		WorkHour:   a.WorkHour,
	}
	if a.EmployeeName != nil {
		resp.EmployeeName = *a.EmployeeName
	}
	if a.CheckInTime != nil {
		checkIn := a.CheckInTime.Format(time.RFC3339)
		resp.CheckInTime = &checkIn
	}
	if a.CheckOutTime != nil {
		checkOut := a.CheckOutTime.Format(time.RFC3339)
		resp.CheckOutTime = &checkOut
	}
	return resp
}
