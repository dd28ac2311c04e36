package main

import (
	"fmt"
	"log"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"asg-backend-V2.0/internal/catalog"
	"asg-backend-V2.0/internal/config"
	"asg-backend-V2.0/internal/controller"
	"asg-backend-V2.0/internal/db"
	"asg-backend-V2.0/internal/model"
	"asg-backend-V2.0/internal/repository"
	"asg-backend-V2.0/internal/service"
	"asg-backend-V2.0/pkg/logging"
	"asg-backend-V2.0/pkg/middleware"
	"asg-backend-V2.0/utilities"
)

func main() {
	printStartUpBanner()

	// Optional .env for secrets (DB password, JWT keys).
	_ = godotenv.Load()

	// Load XML configuration from file.
	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logging.Init("logs"); err != nil {
		log.Fatalf("failed to initialize logging: %v", err)
	}

	// Load the question catalog; this is trusted configuration and any
	// problem (unknown response type, bad weight table) is fatal here
	// rather than surfacing as skewed scores later.
	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			log.Fatalf("failed to load catalog: %v", err)
		}
	}
	logging.Info("Catalog loaded with %d questions", len(cat.Questions))

	// Initialize DB using the loaded config and run migrations.
	if err := db.InitDBFromConfig(cfg); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	err = db.GetDB().AutoMigrate(
		&model.User{}, &model.Project{}, &model.Question{},
		&model.Evaluation{}, &model.RiskItem{}, &model.ProjectHistory{},
	)
	if err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Create repositories.
	userRepo := repository.NewUserRepository()
	projectRepo := repository.NewProjectRepository()
	evaluationRepo := repository.NewEvaluationRepository()

	if cfg.DB.Initialize {
		seedQuestions(cat, evaluationRepo)
	}

	// Create services.
	authService := service.NewAuthService(userRepo)
	projectService := service.NewProjectService(projectRepo, evaluationRepo, cat)
	evaluationService := service.NewEvaluationService(evaluationRepo, projectRepo, cat)
	reportService := service.NewReportService(projectService, cfg.Reports.OutputDir)
	dashboardService := service.NewDashboardService(db.NewQueryExecutor(db.GetDB()))

	// Saved evaluations refresh the project score snapshot via the bus.
	service.InitScoreEventListeners(projectService, projectRepo)

	// Initialize Gin router.
	r := gin.Default()

	// CORS configuration.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RateLimitMiddleware(50, 100))
	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}
	if cfg.Authentication.EnableTokenAuth {
		r.Use(utilities.AuthMiddleware())
	}

	controller.RegisterRoutes(r, authService, projectService, evaluationService, reportService, dashboardService)

	// Start server on the host and port specified in the XML config.
	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("ASG", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("ASG ASSESSMENT API (v%s)\n\n", "2.0.0")
}
