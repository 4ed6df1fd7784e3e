package performance

import (
	"time"

	"github.com/talentindo/hris-backend-go/internal/pkg/validator"
)

type CreateReviewRequest struct {
	EmployeeID  int64  `json:"employee_id"`
	PeriodMonth string `json:"period_month"`
	Score       int    `json:"score"`
	Feedback    string `json:"feedback"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, err := time.Parse("2006-01", r.PeriodMonth); err != nil {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be in YYYY-MM format"})
	}
	if r.Score < 1 || r.Score > 100 {
		errs = append(errs, validator.ValidationError{Field: "score", Message: "must be between 1 and 100"})
	}
	if validator.IsEmpty(r.Feedback) {
		errs = append(errs, validator.ValidationError{Field: "feedback", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateReviewRequest struct {
	ID       int64   `json:"-"`
	Score    *int    `json:"score,omitempty"`
	Feedback *string `json:"feedback,omitempty"`
}

func (r *UpdateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Score != nil && (*r.Score < 1 || *r.Score > 100) {
		errs = append(errs, validator.ValidationError{Field: "score", Message: "must be between 1 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListReviewFilter struct {
	EmployeeID *int64
	Period     *string
	Page       int
	Limit      int
}

type ReviewResponse struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	ReviewerID   int64  `json:"reviewer_id"`
	ReviewerName string `json:"reviewer_name,omitempty"`
	PeriodMonth  string `json:"period_month"`
	Score        int    `json:"score"`
	Feedback     string `json:"feedback"`
	CreatedAt    string `json:"created_at"`
}

type ListReviewResponse struct {
	Data       []ReviewResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}
