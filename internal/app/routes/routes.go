package routes

import (
	"github.com/emre/grievancehub/internal/app/controllers"
	"github.com/emre/grievancehub/internal/app/models/dto"
	"github.com/emre/grievancehub/internal/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	grievanceController *controllers.GrievanceController,
	statsController *controllers.StatsController,
	dashboardController *controllers.DashboardController,
	scannerController *controllers.ScannerController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Student lookup for the scan flow
		students := authenticated.Group("/students")
		{
			students.GET("/code/:code", studentController.GetStudentByCode)
		}

		// Grievance recording and queries
		grievances := authenticated.Group("/grievances")
		{
			grievances.GET("", grievanceController.GetGrievancesInRange)
			grievances.GET("/recent", grievanceController.GetRecentGrievances)
			grievances.GET("/types", grievanceController.GetGrievanceTypes)
			grievances.POST("", grievanceController.CreateGrievance)
		}

		// Weekly summary
		statsGroup := authenticated.Group("/stats")
		{
			statsGroup.GET("/weekly", statsController.GetWeeklyStats)
		}

		// Combined board reload
		authenticated.GET("/dashboard", dashboardController.GetDashboard)

		// Kiosk scan sessions
		scannerGroup := authenticated.Group("/scanner")
		{
			scannerGroup.POST("/sessions", scannerController.StartSession)
			scannerGroup.POST("/sessions/:id/decode", scannerController.DecodeSession)
			scannerGroup.POST("/sessions/:id/error", scannerController.FailSession)
			scannerGroup.DELETE("/sessions/:id", scannerController.CancelSession)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
