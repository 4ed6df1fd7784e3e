package notification

import "time"

// Type represents the type of notification
type Type string

const (
	TypeSalarySlipGenerated Type = "salary_slip_generated"
	TypeLeaveReviewed       Type = "leave_reviewed"
	TypePerformanceReview   Type = "performance_review"
	TypeBroadcast           Type = "broadcast"
)

// Notification is an in-app message for one recipient user. IDs are
// app-generated UUID strings.
type Notification struct {
	ID          string
	RecipientID int64
	SenderID    *int64
	Type        Type
	Title       string
	Message     string
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
