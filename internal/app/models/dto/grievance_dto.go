package dto

import (
	"time"

	"github.com/emre/grievancehub/internal/app/models"
	"github.com/emre/grievancehub/internal/app/stats"
	"github.com/google/uuid"
)

// CreateGrievanceRequest is the submission payload. Date is optional and
// defaults to today; the format is YYYY-MM-DD.
type CreateGrievanceRequest struct {
	StudentID   uuid.UUID `json:"studentId" binding:"required"`
	Type        string    `json:"type" binding:"required" example:"Uniform"`
	Description *string   `json:"description,omitempty" example:"Missing tie"`
	Date        string    `json:"date,omitempty" example:"2025-04-16"`
}

// GrievanceTypesResponse lists the valid grievance types for form rendering
type GrievanceTypesResponse struct {
	Types []models.GrievanceType `json:"types"`
}

// WeeklyStatsResponse carries the weekly aggregate plus its window
type WeeklyStatsResponse struct {
	WeekStart time.Time          `json:"weekStart"`
	WeekEnd   time.Time          `json:"weekEnd"`
	Stats     []stats.WeeklyStat `json:"stats"`
}

// DashboardSection is one independently fetched dashboard block. Error is
// set when that block's fetch failed; the other block may still carry data.
type DashboardSection struct {
	Data  interface{}  `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// DashboardResponse bundles the recent list and weekly summary sections
type DashboardResponse struct {
	Recent DashboardSection `json:"recent"`
	Weekly DashboardSection `json:"weekly"`
}
