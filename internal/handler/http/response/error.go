package response

import (
	"errors"
	"net/http"
	"time"

	"github.com/talentindo/hris-backend-go/internal/domain/attendance"
	"github.com/talentindo/hris-backend-go/internal/domain/auth"
	"github.com/talentindo/hris-backend-go/internal/domain/employee"
	"github.com/talentindo/hris-backend-go/internal/domain/leave"
	"github.com/talentindo/hris-backend-go/internal/domain/notification"
	"github.com/talentindo/hris-backend-go/internal/domain/performance"
	"github.com/talentindo/hris-backend-go/internal/domain/salaryslip"
	"github.com/talentindo/hris-backend-go/internal/domain/user"
	"github.com/talentindo/hris-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A slip conflict carries the winning slip back to the caller.
	var existsErr *salaryslip.AlreadyExistsError
	if errors.As(err, &existsErr) {
		ConflictWithData(w, "Salary slip already exists for this period", slipConflictPayload(existsErr.Slip))
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenRequired):
		Unauthorized(w, "Refresh token is required")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminHRAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrEmployeeProfileMissing):
		Forbidden(w, "No employee profile linked to this account")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrUserAlreadyHasEmployee):
		Conflict(w, "User already has an employee profile")
	case errors.Is(err, employee.ErrInvalidEmploymentStatus),
		errors.Is(err, employee.ErrInvalidBasicSalary):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "Not checked in yet", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Salary slip domain errors
	case errors.Is(err, salaryslip.ErrSlipNotFound):
		NotFound(w, "Salary slip not found")
	case errors.Is(err, salaryslip.ErrSlipAlreadyExists):
		Conflict(w, "Salary slip already exists for this period")
	case errors.Is(err, salaryslip.ErrNoAttendanceForPeriod):
		BadRequest(w, "No attendance records found for this period", nil)
	case errors.Is(err, salaryslip.ErrInvalidPeriod):
		BadRequest(w, "Period must be in YYYY-MM format", nil)
	case errors.Is(err, salaryslip.ErrInvalidBasicSalary):
		BadRequest(w, err.Error(), nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Performance domain errors
	case errors.Is(err, performance.ErrReviewNotFound):
		NotFound(w, "Performance review not found")
	case errors.Is(err, performance.ErrInvalidScore):
		BadRequest(w, err.Error(), nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

func slipConflictPayload(slip salaryslip.SalarySlip) map[string]interface{} {
	payload := map[string]interface{}{
		"id":           slip.ID,
		"employee_id":  slip.EmployeeID,
		"period_month": slip.PeriodMonth,
		"basic_salary": slip.BasicSalary,
		"allowance":    slip.Allowance,
		"deduction":    slip.Deduction,
		"total_salary": slip.TotalSalary,
		"created_at":   slip.CreatedAt.Format(time.RFC3339),
	}
	if slip.EmployeeName != nil {
		payload["employee_name"] = *slip.EmployeeName
	}
	return payload
}
