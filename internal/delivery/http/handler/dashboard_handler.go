package handler

import (
	"net/http"

	"vita-server/internal/delivery/http/middleware"
	"vita-server/internal/usecase"
	"vita-server/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "User information not found")
		return
	}

	stats, err := h.dashboardUsecase.GetStats(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to load dashboard statistics")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard statistics retrieved successfully", stats)
}
