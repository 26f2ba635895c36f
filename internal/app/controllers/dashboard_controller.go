package controllers

import (
	"net/http"

	"github.com/emre/grievancehub/internal/app/models/dto"
	"github.com/emre/grievancehub/internal/app/services"
	"github.com/gin-gonic/gin"
)

// DashboardController serves the combined board view
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns both board sections in one response
// @Summary Dashboard reload
// @Description Fetches the recent list and the weekly summary independently; a section that fails carries its own error while the other still renders
// @Tags dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard sections"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	dashboard := c.dashboardService.Load(ctx)

	response := dto.DashboardResponse{}

	if dashboard.RecentErr != nil {
		response.Recent.Error = dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Failed to load recent grievances")
	} else {
		response.Recent.Data = dashboard.Recent
	}

	if dashboard.WeeklyErr != nil {
		response.Weekly.Error = dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Failed to load weekly summary")
	} else {
		response.Weekly.Data = dashboard.Weekly
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(response))
}
