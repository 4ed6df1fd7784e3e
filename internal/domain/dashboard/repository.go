package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// HeadcountStats combines the employee-overview card counts in one query.
type HeadcountStats struct {
	TotalEmployees int64
	// ActiveUsers counts users holding a non-resigned employee profile.
	ActiveUsers int64
}

type DailyAttendanceStats struct {
	Date         time.Time
	Count        int64
	AvgWorkHours decimal.Decimal
}

// Repository provides the aggregate queries behind the admin dashboard.
// The employee dashboard reads through the attendance and employee
// repositories instead.
type Repository interface {
	GetHeadcount(ctx context.Context) (HeadcountStats, error)

	// ListMonthlyHires groups employee creations by month from `since`
	// onward, ordered ascending; months with no hires are absent.
	ListMonthlyHires(ctx context.Context, since time.Time) ([]MonthlyHireCount, error)

	CountAttendanceOnDate(ctx context.Context, date time.Time) (int64, error)

	// AverageWorkHours averages work_hour over [from, to); 0 when the
	// range holds no completed records.
	AverageWorkHours(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	ListDailyAttendance(ctx context.Context, from, to time.Time) ([]DailyAttendanceStats, error)
}
