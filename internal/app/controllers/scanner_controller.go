package controllers

import (
	"errors"
	"net/http"

	"github.com/emre/grievancehub/internal/app/models"
	"github.com/emre/grievancehub/internal/app/models/dto"
	"github.com/emre/grievancehub/internal/app/scanner"
	"github.com/emre/grievancehub/internal/app/services"
	"github.com/emre/grievancehub/internal/middleware"
	"github.com/emre/grievancehub/internal/pkg/apperrors"
	"github.com/emre/grievancehub/internal/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ScanResult pairs the ended session with the resolved student, when the
// decoded code matched exactly one roster entry.
type ScanResult struct {
	Session scanner.Session `json:"session"`
	Student *models.Student `json:"student,omitempty"`
}

// ScannerController manages kiosk scan sessions
type ScannerController struct {
	manager        *scanner.Manager
	studentService *services.StudentService
}

// NewScannerController creates a new ScannerController
func NewScannerController(manager *scanner.Manager, studentService *services.StudentService) *ScannerController {
	return &ScannerController{
		manager:        manager,
		studentService: studentService,
	}
}

// StartSession opens a scan session
// @Summary Start a scan session
// @Description Acquires the camera for a kiosk device. Starting while a session is active is a no-op that returns the existing session.
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StartScanRequest true "Device information"
// @Success 200 {object} dto.APIResponse{data=scanner.Session} "Existing session returned"
// @Success 201 {object} dto.APIResponse{data=scanner.Session} "Session started"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /scanner/sessions [post]
func (c *ScannerController) StartSession(ctx *gin.Context) {
	var req dto.StartScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid scan request")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, started := c.manager.Start(req.DeviceID)

	status := http.StatusOK
	if started {
		status = http.StatusCreated
		logger.Info().Str("deviceId", req.DeviceID).Str("sessionId", session.ID.String()).Msg("Scan session started")
	}

	ctx.JSON(status, dto.NewAPIResponse(session))
}

// DecodeSession reports a decoded code and resolves the student
// @Summary Report a decoded code
// @Description Ends the session, releases the camera and resolves the decoded code to a student. The session emits exactly once.
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session id"
// @Param request body dto.DecodeScanRequest true "Decoded text"
// @Success 200 {object} dto.APIResponse{data=ScanResult} "Student resolved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session or student not found"
// @Failure 409 {object} dto.ErrorResponse "Session already closed"
// @Router /scanner/sessions/{id}/decode [post]
func (c *ScannerController) DecodeSession(ctx *gin.Context) {
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	var req dto.DecodeScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid decode payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.manager.Decode(sessionID, req.Text)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// The camera is released either way; a failed lookup only affects the
	// response, never the session lifecycle.
	student, err := c.studentService.FindByCode(ctx, req.Text)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) || errors.Is(err, apperrors.ErrValidationFailed) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")
			errorDetail = errorDetail.WithDetails(ScanResult{Session: session})
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(ScanResult{
		Session: session,
		Student: student,
	}))
}

// FailSession reports a camera failure
// @Summary Report a camera failure
// @Description Ends the session with an error and releases the camera; the device may start a new session to retry
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session id"
// @Param request body dto.FailScanRequest true "Failure reason"
// @Success 200 {object} dto.APIResponse{data=scanner.Session} "Session ended"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session already closed"
// @Router /scanner/sessions/{id}/error [post]
func (c *ScannerController) FailSession(ctx *gin.Context) {
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	var req dto.FailScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid failure payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	session, err := c.manager.Fail(sessionID, req.Reason)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Warn().Str("sessionId", session.ID.String()).Str("reason", req.Reason).Msg("Scan session failed")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(session))
}

// CancelSession cancels an active session
// @Summary Cancel a scan session
// @Description Ends the session without a decode and releases the camera
// @Tags scanner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Session id"
// @Success 200 {object} dto.APIResponse{data=scanner.Session} "Session cancelled"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session already closed"
// @Router /scanner/sessions/{id} [delete]
func (c *ScannerController) CancelSession(ctx *gin.Context) {
	sessionID, ok := parseSessionID(ctx)
	if !ok {
		return
	}

	session, err := c.manager.Cancel(sessionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(session))
}

// parseSessionID reads the session id path parameter
func parseSessionID(ctx *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid session id").WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return uuid.Nil, false
	}
	return sessionID, true
}
