package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/talentindo/hris-backend-go/internal/domain/attendance"
	"github.com/talentindo/hris-backend-go/internal/domain/dashboard"
	"github.com/talentindo/hris-backend-go/internal/domain/employee"
)

// hiresChartMonths is the span of the new-hires-per-month chart,
// current month included.
const hiresChartMonths = 12

type Service interface {
	// AdminOverview composes the admin HR dashboard for the current month.
	AdminOverview(ctx context.Context) (dashboard.AdminOverview, error)
	// EmployeeOverview composes the caller's personal dashboard for the
	// current month.
	EmployeeOverview(ctx context.Context, userID int64) (dashboard.EmployeeSummary, error)
}

type ServiceImpl struct {
	dashboardRepo  dashboard.Repository
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository

	now func() time.Time
}

func NewService(dashboardRepo dashboard.Repository, employeeRepo employee.Repository, attendanceRepo attendance.Repository) Service {
	return &ServiceImpl{
		dashboardRepo:  dashboardRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

func (s *ServiceImpl) AdminOverview(ctx context.Context) (dashboard.AdminOverview, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)
	chartSince := monthStart.AddDate(0, -(hiresChartMonths - 1), 0)

	headcount, err := s.dashboardRepo.GetHeadcount(ctx)
	if err != nil {
		return dashboard.AdminOverview{}, err
	}

	hires, err := s.dashboardRepo.ListMonthlyHires(ctx, chartSince)
	if err != nil {
		return dashboard.AdminOverview{}, err
	}

	recordsToday, err := s.dashboardRepo.CountAttendanceOnDate(ctx, today)
	if err != nil {
		return dashboard.AdminOverview{}, err
	}

	avgWorkHours, err := s.dashboardRepo.AverageWorkHours(ctx, monthStart, nextMonth)
	if err != nil {
		return dashboard.AdminOverview{}, err
	}

	daily, err := s.dashboardRepo.ListDailyAttendance(ctx, monthStart, nextMonth)
	if err != nil {
		return dashboard.AdminOverview{}, err
	}

	perDay := make([]dashboard.DailyAttendanceItem, 0, len(daily))
	for _, d := range daily {
		perDay = append(perDay, dashboard.DailyAttendanceItem{
			Date:         d.Date.Format("2006-01-02"),
			DayName:      d.Date.Format("Mon"),
			Count:        d.Count,
			AvgWorkHours: d.AvgWorkHours.Round(2),
		})
	}
	if hires == nil {
		hires = []dashboard.MonthlyHireCount{}
	}

	return dashboard.AdminOverview{
		EmployeeOverview: dashboard.EmployeeOverview{
			TotalEmployees:   headcount.TotalEmployees,
			ActiveUsers:      headcount.ActiveUsers,
			NewHiresPerMonth: hires,
		},
		AttendanceOverview: dashboard.AttendanceOverview{
			RecordsToday:              recordsToday,
			AverageWorkHoursThisMonth: avgWorkHours.Round(2),
			AttendancePerDay:          perDay,
		},
		PeriodInfo: dashboard.PeriodInfo{
			CurrentMonth: now.Format("January 2006"),
			YearMonth:    now.Format("2006-01"),
			Today:        today.Format("2006-01-02"),
		},
	}, nil
}

func (s *ServiceImpl) EmployeeOverview(ctx context.Context, userID int64) (dashboard.EmployeeSummary, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return dashboard.EmployeeSummary{}, err
	}

	department := emp.Department
	if department == "" {
		department = "Not Assigned"
	}
	manager := "No Manager Assigned"
	if emp.ManagerID != nil {
		mgr, err := s.employeeRepo.GetByID(ctx, *emp.ManagerID)
		if err == nil && mgr.Name != nil {
			manager = *mgr.Name
		}
	}

	now := s.now().UTC()
	month := now.Format("2006-01")
	records, err := s.attendanceRepo.ListByEmployee(ctx, emp.ID, &month)
	if err != nil {
		return dashboard.EmployeeSummary{}, err
	}

	totalWorkHours := decimal.Zero
	daysPresent := 0
	daily := make([]dashboard.DailyWorkHourItem, 0, len(records))
	for _, record := range records {
		item := dashboard.DailyWorkHourItem{
			Date:      record.Date.Format("2006-01-02"),
			DayName:   record.Date.Format("Mon"),
			WorkHours: decimal.Zero,
			Status:    "absent",
		}
		if record.CheckInTime != nil {
			daysPresent++
			item.Status = "present"
		}
		if record.WorkHour != nil {
			item.WorkHours = *record.WorkHour
			totalWorkHours = totalWorkHours.Add(*record.WorkHour)
		}
		daily = append(daily, item)
	}

	return dashboard.EmployeeSummary{
		PersonalInfo: dashboard.PersonalInfo{
			Department: department,
			Manager:    manager,
		},
		AttendanceSummary: dashboard.AttendanceSummary{
			TotalWorkHours: totalWorkHours,
			DaysPresent:    daysPresent,
			DailyWorkHours: daily,
		},
		PeriodInfo: dashboard.PeriodInfo{
			CurrentMonth: now.Format("January 2006"),
			YearMonth:    month,
		},
	}, nil
}
