package employee

import (
	"context"
	"time"

	"github.com/talentindo/hris-backend-go/internal/domain/employee"
	"github.com/talentindo/hris-backend-go/internal/domain/user"
)

type Service interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (employee.EmployeeResponse, error)
	GetByUserID(ctx context.Context, userID int64) (employee.EmployeeResponse, error)
	List(ctx context.Context, filter employee.ListEmployeeFilter) (employee.ListEmployeeResponse, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
}

type ServiceImpl struct {
	employeeRepo employee.Repository
	userRepo     user.Repository
}

func NewService(employeeRepo employee.Repository, userRepo user.Repository) Service {
	return &ServiceImpl{
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
	}
}

func (s *ServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	// The linked account must exist before a profile can reference it.
	u, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.ManagerID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.ManagerID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		UserID:           req.UserID,
		EmployeeCode:     req.EmployeeCode,
		Position:         req.Position,
		Department:       req.Department,
		JoinDate:         joinDate,
		EmploymentStatus: employee.EmploymentStatus(req.EmploymentStatus),
		BasicSalary:      req.BasicSalary,
		Contact:          req.Contact,
		ManagerID:        req.ManagerID,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	created.Name = &u.Name
	created.Email = &u.Email

	return toEmployeeResponse(created), nil
}

func (s *ServiceImpl) GetByID(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

func (s *ServiceImpl) GetByUserID(ctx context.Context, userID int64) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

func (s *ServiceImpl) List(ctx context.Context, filter employee.ListEmployeeFilter) (employee.ListEmployeeResponse, error) {
	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	resp := employee.ListEmployeeResponse{
		Data:       make([]employee.EmployeeResponse, 0, len(employees)),
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
	for _, emp := range employees {
		resp.Data = append(resp.Data, toEmployeeResponse(emp))
	}

	return resp, nil
}

func (s *ServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.ManagerID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *req.ManagerID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:               emp.ID,
		UserID:           emp.UserID,
		EmployeeCode:     emp.EmployeeCode,
		Position:         emp.Position,
		Department:       emp.Department,
		JoinDate:         emp.JoinDate.Format("2006-01-02"),
		EmploymentStatus: string(emp.EmploymentStatus),
		BasicSalary:      emp.BasicSalary,
		Contact:          emp.Contact,
		ManagerID:        emp.ManagerID,
	}
	if emp.Name != nil {
		resp.Name = *emp.Name
	}
	if emp.Email != nil {
		resp.Email = *emp.Email
	}
	return resp
}
