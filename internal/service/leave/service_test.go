package leave

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentindo/hris-backend-go/internal/domain/employee"
	"github.com/talentindo/hris-backend-go/internal/domain/leave"
	"github.com/talentindo/hris-backend-go/internal/domain/notification"
	"github.com/talentindo/hris-backend-go/internal/pkg/validator"
)

type fakeLeaveRepo struct {
	requests []leave.LeaveRequest
	nextID   int64
}

func (r *fakeLeaveRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.nextID++
	request.ID = r.nextID
	r.requests = append(r.requests, request)
	return request, nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id int64) (leave.LeaveRequest, error) {
	for _, request := range r.requests {
		if request.ID == id {
			return request, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (r *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID int64) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, request := range r.requests {
		if request.EmployeeID == employeeID {
			out = append(out, request)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) List(_ context.Context, _ leave.ListLeaveFilter) ([]leave.LeaveRequest, int64, error) {
	return r.requests, int64(len(r.requests)), nil
}

func (r *fakeLeaveRepo) UpdateStatus(_ context.Context, request leave.LeaveRequest) error {
	for i, existing := range r.requests {
		if existing.ID == request.ID {
			if existing.Status != leave.StatusPending {
				return leave.ErrLeaveRequestAlreadyProcessed
			}
			r.requests[i] = request
			return nil
		}
	}
	return leave.ErrLeaveRequestNotFound
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByUserID(_ context.Context, userID int64) (employee.Employee, error) {
	for _, e := range r.employees {
		if e.UserID == userID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	r.employees = append(r.employees, e)
	return e, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, _ employee.ListEmployeeFilter) ([]employee.Employee, int64, error) {
	return r.employees, int64(len(r.employees)), nil
}

func (r *fakeEmployeeRepo) ListByEmploymentStatus(_ context.Context, _ []employee.EmploymentStatus) ([]employee.Employee, error) {
	return r.employees, nil
}

type fakeNotifier struct {
	notifications []notification.CreateNotificationRequest
}

func (n *fakeNotifier) Notify(_ context.Context, req notification.CreateNotificationRequest, _ *int64) (notification.NotificationResponse, error) {
	n.notifications = append(n.notifications, req)
	return notification.NotificationResponse{}, nil
}

func (n *fakeNotifier) Broadcast(_ context.Context, _ notification.BroadcastRequest, _ int64) (int, error) {
	return 0, nil
}

func (n *fakeNotifier) NotifySlipGenerated(_ context.Context, _ int64, _ string, _ string) error {
	return nil
}

func (n *fakeNotifier) ListMine(_ context.Context, _ int64, _ bool) ([]notification.NotificationResponse, error) {
	return nil, nil
}

func (n *fakeNotifier) UnreadCount(_ context.Context, _ int64) (int, error) { return 0, nil }

func (n *fakeNotifier) MarkAsRead(_ context.Context, _ string, _ int64) error { return nil }

func (n *fakeNotifier) MarkAllAsRead(_ context.Context, _ int64) error { return nil }

func (n *fakeNotifier) Delete(_ context.Context, _ string, _ int64) error { return nil }

func newLeaveTestService() (Service, *fakeLeaveRepo, *fakeNotifier) {
	leaveRepo := &fakeLeaveRepo{}
	employeeRepo := &fakeEmployeeRepo{
		employees: []employee.Employee{{ID: 1, UserID: 10, EmployeeCode: "EMP0001"}},
	}
	notifier := &fakeNotifier{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewService(leaveRepo, employeeRepo, notifier, logger), leaveRepo, notifier
}

func TestSubmit(t *testing.T) {
	svc, repo, _ := newLeaveTestService()

	resp, err := svc.Submit(context.Background(), 10, leave.SubmitLeaveRequest{
		StartDate: "2025-07-01",
		EndDate:   "2025-07-03",
		Reason:    "family event",
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, int64(1), resp.EmployeeID)
	assert.Equal(t, "2025-07-01", resp.StartDate)
	assert.Equal(t, "2025-07-03", resp.EndDate)

	// The persisted range comes from the validated parse.
	require.Len(t, repo.requests, 1)
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), repo.requests[0].StartDate)
	assert.Equal(t, time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC), repo.requests[0].EndDate)
}

func TestSubmit_RejectsInvertedDateRange(t *testing.T) {
	svc, repo, _ := newLeaveTestService()

	_, err := svc.Submit(context.Background(), 10, leave.SubmitLeaveRequest{
		StartDate: "2025-07-03",
		EndDate:   "2025-07-01",
		Reason:    "family event",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Empty(t, repo.requests)
}

func TestReview_ApprovesAndNotifies(t *testing.T) {
	svc, _, notifier := newLeaveTestService()

	submitted, err := svc.Submit(context.Background(), 10, leave.SubmitLeaveRequest{
		StartDate: "2025-07-01",
		EndDate:   "2025-07-03",
		Reason:    "family event",
	})
	require.NoError(t, err)

	reviewed, err := svc.Review(context.Background(), leave.ReviewLeaveRequest{
		ID:     submitted.ID,
		Status: "approved",
	}, 99)
	require.NoError(t, err)

	assert.Equal(t, "approved", reviewed.Status)
	require.NotNil(t, reviewed.ReviewedBy)
	assert.Equal(t, int64(99), *reviewed.ReviewedBy)
	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, int64(10), notifier.notifications[0].RecipientID)
}

func TestReview_AlreadyProcessed(t *testing.T) {
	svc, _, _ := newLeaveTestService()

	submitted, err := svc.Submit(context.Background(), 10, leave.SubmitLeaveRequest{
		StartDate: "2025-07-01",
		EndDate:   "2025-07-03",
		Reason:    "family event",
	})
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), leave.ReviewLeaveRequest{ID: submitted.ID, Status: "approved"}, 99)
	require.NoError(t, err)

	_, err = svc.Review(context.Background(), leave.ReviewLeaveRequest{ID: submitted.ID, Status: "rejected"}, 99)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}

func TestReview_InvalidStatus(t *testing.T) {
	svc, _, _ := newLeaveTestService()

	_, err := svc.Review(context.Background(), leave.ReviewLeaveRequest{ID: 1, Status: "maybe"}, 99)

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
