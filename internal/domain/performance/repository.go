package performance

import "context"

type Repository interface {
	Create(ctx context.Context, review PerformanceReview) (PerformanceReview, error)
	GetByID(ctx context.Context, id int64) (PerformanceReview, error)
	List(ctx context.Context, filter ListReviewFilter) ([]PerformanceReview, int64, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]PerformanceReview, error)
	Update(ctx context.Context, req UpdateReviewRequest) error
	Delete(ctx context.Context, id int64) error
}
