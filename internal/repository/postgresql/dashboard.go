package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/talentindo/hris-backend-go/internal/domain/dashboard"
	"github.com/talentindo/hris-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) GetHeadcount(ctx context.Context) (dashboard.HeadcountStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM users u
			 WHERE EXISTS (
				SELECT 1 FROM employees e
				WHERE e.user_id = u.id AND e.employment_status <> 'resigned'
			 ))
	`

	var stats dashboard.HeadcountStats
	if err := q.QueryRow(ctx, query).Scan(&stats.TotalEmployees, &stats.ActiveUsers); err != nil {
		return dashboard.HeadcountStats{}, fmt.Errorf("failed to get headcount stats: %w", err)
	}

	return stats, nil
}

func (r *dashboardRepository) ListMonthlyHires(ctx context.Context, since time.Time) ([]dashboard.MonthlyHireCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month, COUNT(*)
		FROM employees
		WHERE created_at >= $1
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly hires: %w", err)
	}
	defer rows.Close()

	var hires []dashboard.MonthlyHireCount
	for rows.Next() {
		var h dashboard.MonthlyHireCount
		if err := rows.Scan(&h.Month, &h.Count); err != nil {
			return nil, fmt.Errorf("failed to scan monthly hires: %w", err)
		}
		hires = append(hires, h)
	}

	return hires, nil
}

func (r *dashboardRepository) CountAttendanceOnDate(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances WHERE date = $1`, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	return count, nil
}

func (r *dashboardRepository) AverageWorkHours(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(AVG(work_hour), 0)
		FROM attendances
		WHERE date >= $1 AND date < $2
	`

	var avg decimal.Decimal
	if err := q.QueryRow(ctx, query, from, to).Scan(&avg); err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to average work hours: %w", err)
	}

	return avg, nil
}

func (r *dashboardRepository) ListDailyAttendance(ctx context.Context, from, to time.Time) ([]dashboard.DailyAttendanceStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, COUNT(*), COALESCE(AVG(work_hour), 0)
		FROM attendances
		WHERE date >= $1 AND date < $2
		GROUP BY date
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily attendance: %w", err)
	}
	defer rows.Close()

	var stats []dashboard.DailyAttendanceStats
	for rows.Next() {
		var s dashboard.DailyAttendanceStats
		if err := rows.Scan(&s.Date, &s.Count, &s.AvgWorkHours); err != nil {
			return nil, fmt.Errorf("failed to scan daily attendance: %w", err)
		}
		stats = append(stats, s)
	}

	return stats, nil
}
