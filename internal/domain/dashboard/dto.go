package dashboard

import "github.com/shopspring/decimal"

// AdminOverview is the admin HR dashboard: headcount cards, a new-hires
// chart over the last 12 months, and this month's attendance summary.
type AdminOverview struct {
	EmployeeOverview   EmployeeOverview   `json:"employee_overview"`
	AttendanceOverview AttendanceOverview `json:"attendance_overview"`
	PeriodInfo         PeriodInfo         `json:"period_info"`
}

type EmployeeOverview struct {
	TotalEmployees   int64              `json:"total_employees"`
	ActiveUsers      int64              `json:"active_users"`
	NewHiresPerMonth []MonthlyHireCount `json:"new_hires_per_month"`
}

type MonthlyHireCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int64  `json:"count"`
}

type AttendanceOverview struct {
	RecordsToday              int64                 `json:"records_today"`
	AverageWorkHoursThisMonth decimal.Decimal       `json:"average_work_hours_this_month"`
	AttendancePerDay          []DailyAttendanceItem `json:"attendance_per_day"`
}

type DailyAttendanceItem struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	DayName      string          `json:"day_name"`
	Count        int64           `json:"count"`
	AvgWorkHours decimal.Decimal `json:"avg_work_hours"`
}

type PeriodInfo struct {
	CurrentMonth string `json:"current_month"` // e.g. "July 2025"
	YearMonth    string `json:"year_month"`    // YYYY-MM
	Today        string `json:"today,omitempty"`
}

// EmployeeSummary is the employee self-service dashboard: personal info
// cards plus this month's attendance summary and daily work-hour trend.
type EmployeeSummary struct {
	PersonalInfo      PersonalInfo      `json:"personal_info"`
	AttendanceSummary AttendanceSummary `json:"attendance_summary"`
	PeriodInfo        PeriodInfo        `json:"period_info"`
}

type PersonalInfo struct {
	Department string `json:"department"`
	Manager    string `json:"manager"`
}

type AttendanceSummary struct {
	TotalWorkHours decimal.Decimal     `json:"total_work_hours"`
	DaysPresent    int                 `json:"days_present"`
	DailyWorkHours []DailyWorkHourItem `json:"daily_work_hours"`
}

type DailyWorkHourItem struct {
	Date      string          `json:"date"` // YYYY-MM-DD
	DayName   string          `json:"day_name"`
	WorkHours decimal.Decimal `json:"work_hours"`
	Status    string          `json:"status"` // "present" or "absent"
}
