package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// breakMinutes is the fixed unpaid break deducted from every completed
// work day.
const breakMinutes = 60

var sixty = decimal.NewFromInt(60)

// Attendance is one check-in/check-out record; at most one exists per
// employee per calendar date.
type Attendance struct {
	ID           int64
	EmployeeID   int64
	Date         time.Time
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	// WorkHour is derived from the check times, net of the break
	// deduction. Nil until check-out.
	WorkHour  *decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}

// ComputeWorkHour derives WorkHour from the check times: whole minutes
// between check-in and check-out, minus the break, floored at zero,
// expressed in hours rounded to 2 decimals. No-op while either timestamp
// is missing.
func (a *Attendance) ComputeWorkHour() {
	if a.CheckInTime == nil || a.CheckOutTime == nil {
		return
	}

	totalMinutes := int64(a.CheckOutTime.Sub(*a.CheckInTime).Minutes())
	workMinutes := totalMinutes - breakMinutes
	if workMinutes < 0 {
		workMinutes = 0
	}

	hours := decimal.NewFromInt(workMinutes).Div(sixty).Round(2)
	a.WorkHour = &hours
}
