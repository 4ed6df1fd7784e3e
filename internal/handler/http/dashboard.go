package http

import (
	"net/http"

	"github.com/talentindo/hris-backend-go/internal/handler/http/response"
	dashboardservice "github.com/talentindo/hris-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	AdminOverview(w http.ResponseWriter, r *http.Request)
	EmployeeOverview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboardservice.Service
}

func NewDashboardHandler(dashboardService dashboardservice.Service) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

func (h *dashboardHandlerImpl) AdminOverview(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.AdminOverview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *dashboardHandlerImpl) EmployeeOverview(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUserID(r)
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.dashboardService.EmployeeOverview(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
