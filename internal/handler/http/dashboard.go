package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hr-admin-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hr-admin-go/internal/pkg/validator"
)

type DashboardHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
	GetLeaveTrend(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetStats implements DashboardHandler.
func (h *DashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// GetLeaveTrend implements DashboardHandler. Without ?year the current year
// is used.
func (h *DashboardHandlerImpl) GetLeaveTrend(w http.ResponseWriter, r *http.Request) {
	year := 0
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1970 || y > 9999 {
			response.HandleError(w, validator.ValidationErrors{{Field: "year", Message: "year must be a four digit year"}})
			return
		}
		year = y
	}

	trend, err := h.dashboardService.GetLeaveTrend(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, trend)
}
