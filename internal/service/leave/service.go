package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/talentindo/hris-backend-go/internal/domain/employee"
	"github.com/talentindo/hris-backend-go/internal/domain/leave"
	"github.com/talentindo/hris-backend-go/internal/domain/notification"
)

type Service interface {
	Submit(ctx context.Context, userID int64, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error)
	// Review approves or rejects a pending request; a processed request
	// can never be re-reviewed.
	Review(ctx context.Context, req leave.ReviewLeaveRequest, reviewerID int64) (leave.LeaveResponse, error)
	GetByID(ctx context.Context, id int64) (leave.LeaveResponse, error)
	ListMine(ctx context.Context, userID int64) ([]leave.LeaveResponse, error)
	List(ctx context.Context, filter leave.ListLeaveFilter) (leave.ListLeaveResponse, error)
}

type ServiceImpl struct {
	leaveRepo    leave.Repository
	employeeRepo employee.Repository
	notifier     notification.Service
	logger       *slog.Logger
}

func NewService(leaveRepo leave.Repository, employeeRepo employee.Repository, notifier notification.Service, logger *slog.Logger) Service {
	return &ServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

func (s *ServiceImpl) Submit(ctx context.Context, userID int64, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, endDate := req.Dates()

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toLeaveResponse(created), nil
}

func (s *ServiceImpl) Review(ctx context.Context, req leave.ReviewLeaveRequest, reviewerID int64) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	now := time.Now()
	request.Status = leave.Status(req.Status)
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &now
	request.ReviewNote = req.Note

	if err := s.leaveRepo.UpdateStatus(ctx, request); err != nil {
		return leave.LeaveResponse{}, err
	}

	s.notifyReviewed(ctx, request)

	return toLeaveResponse(request), nil
}

func (s *ServiceImpl) notifyReviewed(ctx context.Context, request leave.LeaveRequest) {
	if s.notifier == nil {
		return
	}

	emp, err := s.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to resolve employee for leave notification",
			slog.Int64("employee_id", request.EmployeeID),
			slog.String("error", err.Error()),
		)
		return
	}

	_, err = s.notifier.Notify(ctx, notification.CreateNotificationRequest{
		RecipientID: emp.UserID,
		Type:        string(notification.TypeLeaveReviewed),
		Title:       "Leave request reviewed",
		Message: fmt.Sprintf("Your leave request for %s to %s has been %s.",
			request.StartDate.Format("2006-01-02"), request.EndDate.Format("2006-01-02"), request.Status),
	}, request.ReviewedBy)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to send leave notification",
			slog.Int64("employee_id", request.EmployeeID),
			slog.String("error", err.Error()),
		)
	}
}

func (s *ServiceImpl) GetByID(ctx context.Context, id int64) (leave.LeaveResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return toLeaveResponse(request), nil
}

func (s *ServiceImpl) ListMine(ctx context.Context, userID int64) ([]leave.LeaveResponse, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	requests, err := s.leaveRepo.ListByEmployee(ctx, emp.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toLeaveResponse(request))
	}

	return responses, nil
}

func (s *ServiceImpl) List(ctx context.Context, filter leave.ListLeaveFilter) (leave.ListLeaveResponse, error) {
	requests, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	resp := leave.ListLeaveResponse{
		Data:       make([]leave.LeaveResponse, 0, len(requests)),
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
	for _, request := range requests {
		resp.Data = append(resp.Data, toLeaveResponse(request))
	}

	return resp, nil
}

func toLeaveResponse(request leave.LeaveRequest) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:         request.ID,
		EmployeeID: request.EmployeeID,
		StartDate:  request.StartDate.Format("2006-01-02"),
		EndDate:    request.EndDate.Format("2006-01-02"),
		Reason:     request.Reason,
		Status:     string(request.Status),
		ReviewedBy: request.ReviewedBy,
		ReviewNote: request.ReviewNote,
	}
	if request.EmployeeName != nil {
		resp.EmployeeName = *request.EmployeeName
	}
	if request.ReviewedAt != nil {
		reviewedAt := request.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}
