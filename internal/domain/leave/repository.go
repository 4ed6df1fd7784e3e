package leave

import "context"

type Repository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]LeaveRequest, error)
	List(ctx context.Context, filter ListLeaveFilter) ([]LeaveRequest, int64, error)
	UpdateStatus(ctx context.Context, request LeaveRequest) error
}
