package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/talentindo/hris-backend-go/internal/domain/salaryslip"
	"github.com/talentindo/hris-backend-go/internal/domain/user"
	"github.com/talentindo/hris-backend-go/internal/handler/http/response"
)

type SalarySlipHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	GenerateBulk(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type salarySlipHandlerImpl struct {
	slipService salaryslip.Service
}

func NewSalarySlipHandler(slipService salaryslip.Service) SalarySlipHandler {
	return &salarySlipHandlerImpl{slipService: slipService}
}

func (h *salarySlipHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	actorID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req salaryslip.GenerateSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.slipService.Generate(r.Context(), req, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary slip generated successfully", result)
}

func (h *salarySlipHandlerImpl) GenerateBulk(w http.ResponseWriter, r *http.Request) {
	actorID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req salaryslip.GenerateBulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	report, err := h.slipService.GenerateBulk(r.Context(), req, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w,
		fmt.Sprintf("Bulk generation completed: %d succeeded, %d skipped, %d failed",
			report.SucceededCount, report.SkippedCount, report.FailedCount),
		report,
	)
}

func (h *salarySlipHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req salaryslip.GenerateSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.slipService.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salarySlipHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actorID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req salaryslip.CreateSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.slipService.Create(r.Context(), req, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary slip created", result)
}

func (h *salarySlipHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Salary slip ID must be an integer", nil)
		return
	}

	result, err := h.slipService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salarySlipHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	filter := salaryslip.ListSlipFilter{
		Period: optionalQuery(r, "period"),
		Page:   page,
		Limit:  limit,
	}
	if emp := r.URL.Query().Get("employee_id"); emp != "" {
		id, err := strconv.ParseInt(emp, 10, 64)
		if err != nil {
			response.BadRequest(w, "employee_id must be an integer", nil)
			return
		}
		filter.EmployeeID = &id
	}

	result, err := h.slipService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages(result.TotalCount, result.Limit),
	})
}

// ListMine serves the employee self-service view; it only ever exposes
// the caller's own slips.
func (h *salarySlipHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.slipService.ListByUser(r.Context(), userID, optionalQuery(r, "period"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salarySlipHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Salary slip ID must be an integer", nil)
		return
	}

	var req salaryslip.UpdateSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.slipService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary slip updated", result)
}

func (h *salarySlipHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Salary slip ID must be an integer", nil)
		return
	}

	if err := h.slipService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary slip deleted", nil)
}

// Download streams the slip as a PDF attachment. Employees may only
// download their own slips; admins may download any.
func (h *salarySlipHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Salary slip ID must be an integer", nil)
		return
	}

	role, err := currentRole(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}
	if role == user.RoleEmployee {
		slip, err := h.slipService.GetByID(r.Context(), id)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		employeeID, err := currentEmployeeID(r)
		if err != nil || slip.EmployeeID != employeeID {
			response.Forbidden(w, "You may only download your own salary slips")
			return
		}
	}

	doc, filename, err := h.slipService.RenderPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	_, _ = w.Write(doc)
}
