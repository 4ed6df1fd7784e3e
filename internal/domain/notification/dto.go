package notification

import (
	"github.com/talentindo/hris-backend-go/internal/pkg/validator"
)

type CreateNotificationRequest struct {
	RecipientID int64  `json:"recipient_id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Message     string `json:"message"`
}

func (r *CreateNotificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.RecipientID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "recipient_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BroadcastRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (r *BroadcastRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NotificationResponse struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	IsRead    bool    `json:"is_read"`
	ReadAt    *string `json:"read_at,omitempty"`
	CreatedAt string  `json:"created_at"`
}
