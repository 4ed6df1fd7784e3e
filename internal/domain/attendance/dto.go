package attendance

import "github.com/shopspring/decimal"

type ListAttendanceFilter struct {
	EmployeeID *int64
	Month      *string // YYYY-MM
	Page       int
	Limit      int
}

type AttendanceResponse struct {
	ID           int64            `json:"id"`
	EmployeeID   int64            `json:"employee_id"`
	EmployeeName string           `json:"employee_name,omitempty"`
	Date         string           `json:"date"`
	CheckInTime  *string          `json:"check_in_time,omitempty"`
	CheckOutTime *string          `json:"check_out_time,omitempty"`
	WorkHour     *decimal.Decimal `json:"work_hour,omitempty"`
}

type ListAttendanceResponse struct {
	Data       []AttendanceResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}
