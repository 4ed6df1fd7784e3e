package performance

import "time"

// PerformanceReview is a periodic score and written feedback for one
// employee, authored by a manager or admin HR.
type PerformanceReview struct {
	ID          int64
	EmployeeID  int64
	ReviewerID  int64
	PeriodMonth string // YYYY-MM
	Score       int    // 1..100
	Feedback    string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	ReviewerName *string
}
