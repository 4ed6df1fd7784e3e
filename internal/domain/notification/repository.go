package notification

import "context"

type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	CreateBatch(ctx context.Context, notifications []*Notification) error
	GetByID(ctx context.Context, id string) (*Notification, error)
	ListByRecipient(ctx context.Context, recipientID int64, unreadOnly bool) ([]*Notification, error)
	UnreadCount(ctx context.Context, recipientID int64) (int, error)
	MarkAsRead(ctx context.Context, id string, recipientID int64) error
	MarkAllAsRead(ctx context.Context, recipientID int64) error
	Delete(ctx context.Context, id string, recipientID int64) error
	// AllRecipientIDs returns every user id, for broadcast fan-out.
	AllRecipientIDs(ctx context.Context) ([]int64, error)
}
