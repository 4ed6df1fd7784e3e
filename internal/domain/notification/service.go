package notification

import "context"

// Service is consumed by other services (salary generation, leave review)
// for fan-out, and by the notification handler for the read API.
type Service interface {
	Notify(ctx context.Context, req CreateNotificationRequest, senderID *int64) (NotificationResponse, error)
	Broadcast(ctx context.Context, req BroadcastRequest, senderID int64) (int, error)

	// NotifySlipGenerated is best-effort: callers must be able to ignore
	// its error without affecting the slip that was just written.
	NotifySlipGenerated(ctx context.Context, recipientUserID int64, period string, totalSalary string) error

	ListMine(ctx context.Context, userID int64, unreadOnly bool) ([]NotificationResponse, error)
	UnreadCount(ctx context.Context, userID int64) (int, error)
	MarkAsRead(ctx context.Context, id string, userID int64) error
	MarkAllAsRead(ctx context.Context, userID int64) error
	Delete(ctx context.Context, id string, userID int64) error
}
