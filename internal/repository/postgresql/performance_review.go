package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/talentindo/hris-backend-go/internal/domain/performance"
	"github.com/talentindo/hris-backend-go/internal/pkg/database"
)

type performanceReviewRepository struct {
	db *database.DB
}

func NewPerformanceReviewRepository(db *database.DB) performance.Repository {
	return &performanceReviewRepository{db: db}
}

func (r *performanceReviewRepository) Create(ctx context.Context, review performance.PerformanceReview) (performance.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (employee_id, reviewer_id, period_month, score, feedback)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	p := review
	err := q.QueryRow(ctx, query,
		p.EmployeeID, p.ReviewerID, p.PeriodMonth, p.Score, p.Feedback,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return performance.PerformanceReview{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return p, nil
}

func (r *performanceReviewRepository) GetByID(ctx context.Context, id int64) (performance.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.employee_id, pr.reviewer_id, pr.period_month, pr.score, pr.feedback,
			   pr.created_at, pr.updated_at, eu.name, ru.name
		FROM performance_reviews pr
		JOIN employees e ON pr.employee_id = e.id
		JOIN users eu ON e.user_id = eu.id
		JOIN users ru ON pr.reviewer_id = ru.id
		WHERE pr.id = $1
	`

	var p performance.PerformanceReview
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.ReviewerID, &p.PeriodMonth, &p.Score, &p.Feedback,
		&p.CreatedAt, &p.UpdatedAt, &p.EmployeeName, &p.ReviewerName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.PerformanceReview{}, performance.ErrReviewNotFound
		}
		return performance.PerformanceReview{}, fmt.Errorf("failed to get performance review: %w", err)
	}

	return p, nil
}

func (r *performanceReviewRepository) List(ctx context.Context, filter performance.ListReviewFilter) ([]performance.PerformanceReview, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM performance_reviews pr
		JOIN employees e ON pr.employee_id = e.id
		JOIN users eu ON e.user_id = eu.id
		JOIN users ru ON pr.reviewer_id = ru.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND pr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Period != nil {
		baseQuery += fmt.Sprintf(" AND pr.period_month = $%d", argIdx)
		args = append(args, *filter.Period)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count performance reviews: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT pr.id, pr.employee_id, pr.reviewer_id, pr.period_month, pr.score, pr.feedback,
			   pr.created_at, pr.updated_at, eu.name, ru.name
		%s
		ORDER BY pr.period_month DESC, pr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []performance.PerformanceReview
	for rows.Next() {
		var p performance.PerformanceReview
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.ReviewerID, &p.PeriodMonth, &p.Score, &p.Feedback,
			&p.CreatedAt, &p.UpdatedAt, &p.EmployeeName, &p.ReviewerName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, p)
	}

	return reviews, totalCount, nil
}

func (r *performanceReviewRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]performance.PerformanceReview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.employee_id, pr.reviewer_id, pr.period_month, pr.score, pr.feedback,
			   pr.created_at, pr.updated_at, ru.name
		FROM performance_reviews pr
		JOIN users ru ON pr.reviewer_id = ru.id
		WHERE pr.employee_id = $1
		ORDER BY pr.period_month DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []performance.PerformanceReview
	for rows.Next() {
		var p performance.PerformanceReview
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.ReviewerID, &p.PeriodMonth, &p.Score, &p.Feedback,
			&p.CreatedAt, &p.UpdatedAt, &p.ReviewerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, p)
	}

	return reviews, nil
}

func (r *performanceReviewRepository) Update(ctx context.Context, req performance.UpdateReviewRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Score != nil {
		setParts = append(setParts, fmt.Sprintf("score = $%d", argIdx))
		args = append(args, *req.Score)
		argIdx++
	}
	if req.Feedback != nil {
		setParts = append(setParts, fmt.Sprintf("feedback = $%d", argIdx))
		args = append(args, *req.Feedback)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE performance_reviews
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID int64
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.ErrReviewNotFound
		}
		return fmt.Errorf("failed to update performance review: %w", err)
	}

	return nil
}

func (r *performanceReviewRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM performance_reviews WHERE id = $1 RETURNING id`

	var deletedID int64
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.ErrReviewNotFound
		}
		return fmt.Errorf("failed to delete performance review: %w", err)
	}

	return nil
}
