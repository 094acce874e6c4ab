package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

// DashboardHandler serves the aggregated landing-page stats.
type DashboardHandler struct {
	dashboardUC usecasecontract.IDashboardUseCase
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardUC usecasecontract.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// GetStats returns the dashboard aggregates.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardUC.GetStats(c.Request.Context())
	if err != nil {
		RespondAPIError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, stats)
}
