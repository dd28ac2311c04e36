package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"asg-backend-V2.0/internal/service"
)

func RegisterRoutes(
	r *gin.Engine,
	authService service.AuthService,
	projectService service.ProjectService,
	evaluationService service.EvaluationService,
	reportService service.ReportService,
	dashboardService service.DashboardService,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes.
	authCtrl := NewAuthController(authService)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authCtrl.Register)
		authRoutes.POST("/login", authCtrl.Login)
		authRoutes.POST("/refresh", authCtrl.Refresh)
	}

	// Project routes.
	projectCtrl := NewProjectController(projectService)
	projectRoutes := r.Group("/projects")
	{
		projectRoutes.GET("/", projectCtrl.GetProjects)
		projectRoutes.POST("/", projectCtrl.CreateProject)
		projectRoutes.GET("/:id", projectCtrl.GetProject)
		projectRoutes.GET("/:id/score", projectCtrl.GetProjectScore)
		projectRoutes.GET("/:id/risks", projectCtrl.GetRisks)
		projectRoutes.GET("/:id/history", projectCtrl.GetHistory)
	}

	// Evaluation routes.
	evaluationCtrl := NewEvaluationController(evaluationService)
	evaluationRoutes := r.Group("/evaluations")
	{
		evaluationRoutes.POST("/", evaluationCtrl.SubmitEvaluation)
		evaluationRoutes.POST("/quick", evaluationCtrl.QuickEvaluation)
		evaluationRoutes.GET("/:project_id", evaluationCtrl.GetEvaluations)
	}
	r.GET("/questions", evaluationCtrl.GetQuestions)

	// Report routes.
	reportCtrl := NewReportController(reportService)
	r.GET("/reports/:project_id/download", reportCtrl.DownloadScorecard)

	// Dashboard routes.
	dashboardCtrl := NewDashboardController(dashboardService)
	r.GET("/dashboard/stats", dashboardCtrl.GetStats)
}
