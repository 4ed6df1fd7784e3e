package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/talentindo/hris-backend-go/internal/domain/performance"
	"github.com/talentindo/hris-backend-go/internal/handler/http/response"
	performanceservice "github.com/talentindo/hris-backend-go/internal/service/performance"
)

type PerformanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type performanceHandlerImpl struct {
	performanceService performanceservice.Service
}

func NewPerformanceHandler(performanceService performanceservice.Service) PerformanceHandler {
	return &performanceHandlerImpl{performanceService: performanceService}
}

func (h *performanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	reviewerID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req performance.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.performanceService.Create(r.Context(), req, reviewerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance review created", result)
}

func (h *performanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Review ID must be an integer", nil)
		return
	}

	result, err := h.performanceService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *performanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	filter := performance.ListReviewFilter{
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

	result, err := h.performanceService.List(r.Context(), filter)
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

func (h *performanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.performanceService.ListMine(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *performanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Review ID must be an integer", nil)
		return
	}

	var req performance.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.performanceService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review updated", result)
}

func (h *performanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Review ID must be an integer", nil)
		return
	}

	if err := h.performanceService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review deleted", nil)
}
