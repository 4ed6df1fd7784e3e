package performance

import (
	"context"
	"time"

	"github.com/talentindo/hris-backend-go/internal/domain/employee"
	"github.com/talentindo/hris-backend-go/internal/domain/performance"
)

type Service interface {
	Create(ctx context.Context, req performance.CreateReviewRequest, reviewerID int64) (performance.ReviewResponse, error)
	GetByID(ctx context.Context, id int64) (performance.ReviewResponse, error)
	List(ctx context.Context, filter performance.ListReviewFilter) (performance.ListReviewResponse, error)
	ListMine(ctx context.Context, userID int64) ([]performance.ReviewResponse, error)
	Update(ctx context.Context, req performance.UpdateReviewRequest) (performance.ReviewResponse, error)
	Delete(ctx context.Context, id int64) error
}

type ServiceImpl struct {
	reviewRepo   performance.Repository
	employeeRepo employee.Repository
}

func NewService(reviewRepo performance.Repository, employeeRepo employee.Repository) Service {
	return &ServiceImpl{
		reviewRepo:   reviewRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *ServiceImpl) Create(ctx context.Context, req performance.CreateReviewRequest, reviewerID int64) (performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return performance.ReviewResponse{}, err
	}

	created, err := s.reviewRepo.Create(ctx, performance.PerformanceReview{
		EmployeeID:  req.EmployeeID,
		ReviewerID:  reviewerID,
		PeriodMonth: req.PeriodMonth,
		Score:       req.Score,
		Feedback:    req.Feedback,
	})
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	return toReviewResponse(created), nil
}

func (s *ServiceImpl) GetByID(ctx context.Context, id int64) (performance.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	return toReviewResponse(review), nil
}

func (s *ServiceImpl) List(ctx context.Context, filter performance.ListReviewFilter) (performance.ListReviewResponse, error) {
	reviews, total, err := s.reviewRepo.List(ctx, filter)
	if err != nil {
		return performance.ListReviewResponse{}, err
	}

	resp := performance.ListReviewResponse{
		Data:       make([]performance.ReviewResponse, 0, len(reviews)),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}
	if resp.Page <= 0 {
		resp.Page = 1
	}
	if resp.Limit <= 0 {
		resp.Limit = 20
	}
	for _, review := range reviews {
		resp.Data = append(resp.Data, toReviewResponse(review))
	}

	return resp, nil
}

func (s *ServiceImpl) ListMine(ctx context.Context, userID int64) ([]performance.ReviewResponse, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]performance.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, toReviewResponse(review))
	}

	return responses, nil
}

func (s *ServiceImpl) Update(ctx context.Context, req performance.UpdateReviewRequest) (performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}

	if err := s.reviewRepo.Update(ctx, req); err != nil {
		return performance.ReviewResponse{}, err
	}

	updated, err := s.reviewRepo.GetByID(ctx, req.ID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	return toReviewResponse(updated), nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.reviewRepo.Delete(ctx, id)
}

func toReviewResponse(review performance.PerformanceReview) performance.ReviewResponse {
	resp := performance.ReviewResponse{
		ID:          review.ID,
		EmployeeID:  review.EmployeeID,
		ReviewerID:  review.ReviewerID,
		PeriodMonth: review.PeriodMonth,
		Score:       review.Score,
		Feedback:    review.Feedback,
		CreatedAt:   review.CreatedAt.Format(time.RFC3339),
	}
	if review.EmployeeName != nil {
		resp.EmployeeName = *review.EmployeeName
	}
	if review.ReviewerName != nil {
		resp.ReviewerName = *review.ReviewerName
	}
	return resp
}
