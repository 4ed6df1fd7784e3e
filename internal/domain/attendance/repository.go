package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Repository defines data access for attendance records. The attendances
// table has a unique index on (employee_id, date).
type Repository interface {
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists for that day;
	// used to prevent double check-in.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Attendance, error)

	Update(ctx context.Context, attendance Attendance) error

	ListByEmployee(ctx context.Context, employeeID int64, month *string) ([]Attendance, error)

	List(ctx context.Context, filter ListAttendanceFilter) ([]Attendance, int64, error)

	// SumWorkHours totals work_hour over [from, to); rows with a null
	// work_hour contribute zero. A zero total is a meaningful result and
	// distinct from the employee not existing, which this method does not
	// check.
	SumWorkHours(ctx context.Context, employeeID int64, from, to time.Time) (decimal.Decimal, error)
}
