package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/talentindo/hris-backend-go/internal/domain/notification"
)

type ServiceImpl struct {
	notificationRepo notification.Repository
}

func NewService(notificationRepo notification.Repository) notification.Service {
	return &ServiceImpl{notificationRepo: notificationRepo}
}

func (s *ServiceImpl) Notify(ctx context.Context, req notification.CreateNotificationRequest, senderID *int64) (notification.NotificationResponse, error) {
	if err := req.Validate(); err != nil {
		return notification.NotificationResponse{}, err
	}

	n := &notification.Notification{
		ID:          uuid.NewString(),
		RecipientID: req.RecipientID,
		SenderID:    senderID,
		Type:        notification.Type(req.Type),
		Title:       req.Title,
		Message:     req.Message,
	}
	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return notification.NotificationResponse{}, err
	}

	return toNotificationResponse(n), nil
}

func (s *ServiceImpl) Broadcast(ctx context.Context, req notification.BroadcastRequest, senderID int64) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	recipients, err := s.notificationRepo.AllRecipientIDs(ctx)
	if err != nil {
		return 0, err
	}

	notifications := make([]*notification.Notification, 0, len(recipients))
	for _, recipientID := range recipients {
		if recipientID == senderID {
			continue
		}
		notifications = append(notifications, &notification.Notification{
			ID:          uuid.NewString(),
			RecipientID: recipientID,
			SenderID:    &senderID,
			Type:        notification.TypeBroadcast,
			Title:       req.Title,
			Message:     req.Message,
		})
	}

	if err := s.notificationRepo.CreateBatch(ctx, notifications); err != nil {
		return 0, err
	}

	return len(notifications), nil
}

func (s *ServiceImpl) NotifySlipGenerated(ctx context.Context, recipientUserID int64, period string, totalSalary string) error {
	n := &notification.Notification{
		ID:          uuid.NewString(),
		RecipientID: recipientUserID,
		Type:        notification.TypeSalarySlipGenerated,
		Title:       "Salary slip available",
		Message:     fmt.Sprintf("Your salary slip for %s has been generated. Total salary: Rp %s.", period, totalSalary),
	}
	return s.notificationRepo.Create(ctx, n)
}

func (s *ServiceImpl) ListMine(ctx context.Context, userID int64, unreadOnly bool) ([]notification.NotificationResponse, error) {
	notifications, err := s.notificationRepo.ListByRecipient(ctx, userID, unreadOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, toNotificationResponse(n))
	}

	return responses, nil
}

func (s *ServiceImpl) UnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.notificationRepo.UnreadCount(ctx, userID)
}

func (s *ServiceImpl) MarkAsRead(ctx context.Context, id string, userID int64) error {
	return s.notificationRepo.MarkAsRead(ctx, id, userID)
}

func (s *ServiceImpl) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.notificationRepo.MarkAllAsRead(ctx, userID)
}

func (s *ServiceImpl) Delete(ctx context.Context, id string, userID int64) error {
	return s.notificationRepo.Delete(ctx, id, userID)
}

func toNotificationResponse(n *notification.Notification) notification.NotificationResponse {
	resp := notification.NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		readAt := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &readAt
	}
	return resp
}
