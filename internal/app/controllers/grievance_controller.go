package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/emre/grievancehub/internal/app/models"
	"github.com/emre/grievancehub/internal/app/models/dto"
	"github.com/emre/grievancehub/internal/app/services"
	"github.com/emre/grievancehub/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dateLayout is the wire format for occurrence dates
const dateLayout = "2006-01-02"

// GrievanceController handles grievance recording and queries
type GrievanceController struct {
	grievanceService *services.GrievanceService
}

// NewGrievanceController creates a new GrievanceController
func NewGrievanceController(grievanceService *services.GrievanceService) *GrievanceController {
	return &GrievanceController{
		grievanceService: grievanceService,
	}
}

// CreateGrievance records a grievance for the acting staff member
// @Summary Record a grievance
// @Description Persists one grievance; created_by is bound to the authenticated staff member and enforced by the row policy
// @Tags grievances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGrievanceRequest true "Grievance information"
// @Success 201 {object} dto.APIResponse{data=models.Grievance} "Grievance recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Rejected by access policy"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "A submission is already in flight"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grievances [post]
func (c *GrievanceController) CreateGrievance(ctx *gin.Context) {
	var req dto.CreateGrievanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grievance data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	actorID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	input := services.RecordInput{
		StudentID:   req.StudentID,
		Type:        models.GrievanceType(req.Type),
		Description: req.Description,
	}

	if req.Date != "" {
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid date").WithField("date")
			errorDetail = errorDetail.WithDetails("Date must be formatted YYYY-MM-DD")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		input.Date = date
	}

	grievance, err := c.grievanceService.Record(ctx, actorID, input)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(grievance))
}

// GetRecentGrievances lists the newest grievances
// @Summary List recent grievances
// @Description Returns the newest grievances with their student projection, ordered by creation time descending
// @Tags grievances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rows (default 10, max 50)"
// @Success 200 {object} dto.APIResponse{data=[]models.Grievance} "Recent grievances"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grievances/recent [get]
func (c *GrievanceController) GetRecentGrievances(ctx *gin.Context) {
	limit := 0
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid limit").WithField("limit")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		limit = parsed
	}

	grievances, err := c.grievanceService.Recent(ctx, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grievances))
}

// GetGrievancesInRange lists grievances by occurrence date
// @Summary List grievances in a date range
// @Description Returns all grievances whose occurrence date falls within [from, to], both inclusive
// @Tags grievances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=[]models.Grievance} "Grievances in range"
// @Failure 400 {object} dto.ErrorResponse "Invalid range"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grievances [get]
func (c *GrievanceController) GetGrievancesInRange(ctx *gin.Context) {
	from, err := time.Parse(dateLayout, ctx.Query("from"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid range start").WithField("from")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	to, err := time.Parse(dateLayout, ctx.Query("to"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid range end").WithField("to")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	grievances, err := c.grievanceService.InRange(ctx, from, to)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grievances))
}

// GetGrievanceTypes lists the valid grievance types
// @Summary List grievance types
// @Description Returns the fixed set of grievance types for form rendering
// @Tags grievances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.GrievanceTypesResponse} "Grievance types"
// @Router /grievances/types [get]
func (c *GrievanceController) GetGrievanceTypes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.GrievanceTypesResponse{
		Types: models.GrievanceTypes,
	}))
}
