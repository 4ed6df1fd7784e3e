package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/talentindo/hris-backend-go/internal/domain/salaryslip"
	"github.com/talentindo/hris-backend-go/internal/pkg/database"
)

const slipColumns = `
	s.id, s.employee_id, s.created_by, s.period_month,
	s.basic_salary, s.allowance, s.deduction, s.total_salary, s.remarks,
	s.created_at, s.updated_at,
	u.name, e.employee_code
`

type salarySlipRepository struct {
	db *database.DB
}

func NewSalarySlipRepository(db *database.DB) salaryslip.Repository {
	return &salarySlipRepository{db: db}
}

func scanSlip(row pgx.Row) (salaryslip.SalarySlip, error) {
	var s salaryslip.SalarySlip
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.CreatedBy, &s.PeriodMonth,
		&s.BasicSalary, &s.Allowance, &s.Deduction, &s.TotalSalary, &s.Remarks,
		&s.CreatedAt, &s.UpdatedAt,
		&s.EmployeeName, &s.EmployeeCode,
	)
	return s, err
}

// Create inserts the slip. The unique index on (employee_id,
// period_month) is the authoritative idempotency guard; a violation maps
// to ErrSlipAlreadyExists regardless of any application pre-check.
func (r *salarySlipRepository) Create(ctx context.Context, slip salaryslip.SalarySlip) (salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_slips (
			employee_id, created_by, period_month,
			basic_salary, allowance, deduction, total_salary, remarks
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	s := slip
	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.CreatedBy, s.PeriodMonth,
		s.BasicSalary, s.Allowance, s.Deduction, s.TotalSalary, s.Remarks,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return salaryslip.SalarySlip{}, salaryslip.ErrSlipAlreadyExists
		}
		return salaryslip.SalarySlip{}, fmt.Errorf("failed to create salary slip: %w", err)
	}

	return s, nil
}

func (r *salarySlipRepository) GetByID(ctx context.Context, id int64) (salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM salary_slips s
		JOIN employees e ON s.employee_id = e.id
		JOIN users u ON e.user_id = u.id
		WHERE s.id = $1
	`, slipColumns)

	s, err := scanSlip(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salaryslip.SalarySlip{}, salaryslip.ErrSlipNotFound
		}
		return salaryslip.SalarySlip{}, fmt.Errorf("failed to get salary slip: %w", err)
	}

	return s, nil
}

func (r *salarySlipRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID int64, period string) (salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM salary_slips s
		JOIN employees e ON s.employee_id = e.id
		JOIN users u ON e.user_id = u.id
		WHERE s.employee_id = $1 AND s.period_month = $2
	`, slipColumns)

	s, err := scanSlip(q.QueryRow(ctx, query, employeeID, period))
	if err != nil {
		if err == pgx.ErrNoRows {
			return salaryslip.SalarySlip{}, salaryslip.ErrSlipNotFound
		}
		return salaryslip.SalarySlip{}, fmt.Errorf("failed to get salary slip by period: %w", err)
	}

	return s, nil
}

func (r *salarySlipRepository) List(ctx context.Context, filter salaryslip.ListSlipFilter) ([]salaryslip.SalarySlip, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM salary_slips s
		JOIN employees e ON s.employee_id = e.id
		JOIN users u ON e.user_id = u.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.Period != nil {
		baseQuery += fmt.Sprintf(" AND s.period_month = $%d", argIdx)
		args = append(args, *filter.Period)
		argIdx++
	}
	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND s.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary slips: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(`
		SELECT %s
		%s
		ORDER BY s.period_month DESC, e.employee_code
		LIMIT $%d OFFSET $%d
	`, slipColumns, baseQuery, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salary slips: %w", err)
	}
	defer rows.Close()

	var slips []salaryslip.SalarySlip
	for rows.Next() {
		s, err := scanSlip(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan salary slip: %w", err)
		}
		slips = append(slips, s)
	}

	return slips, totalCount, nil
}

func (r *salarySlipRepository) ListByEmployee(ctx context.Context, employeeID int64, period *string) ([]salaryslip.SalarySlip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM salary_slips s
		JOIN employees e ON s.employee_id = e.id
		JOIN users u ON e.user_id = u.id
		WHERE s.employee_id = $1
	`, slipColumns)
	args := []interface{}{employeeID}

	if period != nil {
		query += " AND s.period_month = $2"
		args = append(args, *period)
	}
	query += " ORDER BY s.period_month DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary slips for employee: %w", err)
	}
	defer rows.Close()

	var slips []salaryslip.SalarySlip
	for rows.Next() {
		s, err := scanSlip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary slip: %w", err)
		}
		slips = append(slips, s)
	}

	return slips, nil
}

func (r *salarySlipRepository) Update(ctx context.Context, slip salaryslip.SalarySlip) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE salary_slips
		SET basic_salary = $2, allowance = $3, deduction = $4,
			total_salary = $5, remarks = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID int64
	err := q.QueryRow(ctx, query,
		slip.ID, slip.BasicSalary, slip.Allowance, slip.Deduction,
		slip.TotalSalary, slip.Remarks,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salaryslip.ErrSlipNotFound
		}
		return fmt.Errorf("failed to update salary slip: %w", err)
	}

	return nil
}

func (r *salarySlipRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM salary_slips WHERE id = $1 RETURNING id`

	var deletedID int64
	err := q.QueryRow(ctx, query, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return salaryslip.ErrSlipNotFound
		}
		return fmt.Errorf("failed to delete salary slip: %w", err)
	}

	return nil
}
