package controllers

import (
	"net/http"

	"github.com/emre/grievancehub/internal/app/models/dto"
	"github.com/emre/grievancehub/internal/app/services"
	"github.com/emre/grievancehub/internal/middleware"
	"github.com/gin-gonic/gin"
)

// StudentController handles student lookups
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetStudentByCode resolves a scanned code to a student
// @Summary Look up a student by external code
// @Description Resolves the code printed on a student ID card to the student record
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "External student code"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student found"
// @Failure 400 {object} dto.ErrorResponse "Malformed code"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/code/{code} [get]
func (c *StudentController) GetStudentByCode(ctx *gin.Context) {
	code := ctx.Param("code")

	student, err := c.studentService.FindByCode(ctx, code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}
