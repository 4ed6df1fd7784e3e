package employee

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (Employee, error)
	GetByUserID(ctx context.Context, userID int64) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	List(ctx context.Context, filter ListEmployeeFilter) ([]Employee, int64, error)
	// ListByEmploymentStatus returns every employee whose status is in the
	// given set, without pagination; used by bulk salary generation.
	ListByEmploymentStatus(ctx context.Context, statuses []EmploymentStatus) ([]Employee, error)
}
