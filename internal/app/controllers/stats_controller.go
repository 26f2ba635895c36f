package controllers

import (
	"net/http"

	"github.com/emre/grievancehub/internal/app/models/dto"
	"github.com/emre/grievancehub/internal/app/services"
	"github.com/emre/grievancehub/internal/middleware"
	"github.com/gin-gonic/gin"
)

// StatsController serves the weekly aggregate
type StatsController struct {
	grievanceService *services.GrievanceService
}

// NewStatsController creates a new StatsController
func NewStatsController(grievanceService *services.GrievanceService) *StatsController {
	return &StatsController{
		grievanceService: grievanceService,
	}
}

// GetWeeklyStats returns the current week's per-student summary
// @Summary Weekly grievance summary
// @Description Aggregates the current week's grievances per student, sorted descending by count; students at or above the repeat threshold are flagged
// @Tags stats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.WeeklyStatsResponse} "Weekly summary"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats/weekly [get]
func (c *StatsController) GetWeeklyStats(ctx *gin.Context) {
	weekly, err := c.grievanceService.WeeklyStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	start, end := c.grievanceService.WeekWindow()

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.WeeklyStatsResponse{
		WeekStart: start,
		WeekEnd:   end,
		Stats:     weekly,
	}))
}
