package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/launchpadhq/launchpad-api/config"
	"github.com/launchpadhq/launchpad-api/database"
	_ "github.com/launchpadhq/launchpad-api/docs" // Swagger docs
	usrctrl "github.com/launchpadhq/launchpad-api/internal/controller/user"
	wrkctrl "github.com/launchpadhq/launchpad-api/internal/controller/worker"
	"github.com/launchpadhq/launchpad-api/internal/logger"
	"github.com/launchpadhq/launchpad-api/internal/middleware"
	"github.com/launchpadhq/launchpad-api/internal/model"
	"github.com/launchpadhq/launchpad-api/internal/repository"
	"github.com/launchpadhq/launchpad-api/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Launchpad API
// @version 1.0
// @description Backend for the Launchpad internship-readiness program: self-assessment engine and CV analysis pipeline.
// @contact.name API Support
// @contact.email support@launchpadhq.dev
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewAnswerRepository,
			repository.NewAnalysisJobRepository,
			repository.NewUserRepository,
		),

		// Services layer
		fx.Provide(
			service.NewReadinessBandService,
			service.NewAssessmentService,
			service.NewAnalyzerClient,
			service.NewAnalysisService,
			service.NewProfileService,
		),

		// API controllers layer
		fx.Provide(
			usrctrl.NewAssessmentController,
			usrctrl.NewAnalysisController,
			usrctrl.NewProfileController,
			wrkctrl.NewWorkerController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedQuestions),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Analysis-Secret"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	assessmentCtrl *usrctrl.AssessmentController,
	analysisCtrl *usrctrl.AnalysisController,
	profileCtrl *usrctrl.ProfileController,
	workerCtrl *wrkctrl.WorkerController,
) {
	api := router.Group("/api/v1")

	// Public share view, no auth: the token is the capability.
	api.GET("/assessment/results/:share_token", assessmentCtrl.GetPublicResult)

	// Analyzer-facing endpoints, guarded by the shared secret in the service.
	internalGroup := api.Group("/internal/analysis")
	{
		internalGroup.GET("/jobs/:job_id/cv", workerCtrl.ServeSourceFile)
		internalGroup.POST("/callback", workerCtrl.Callback)
	}

	// Authenticated user surface.
	authed := api.Group("")
	authed.Use(middleware.RequireAuth(cfg.Auth.JWTSecret))
	{
		authed.GET("/assessment/questions", assessmentCtrl.ListQuestions)
		authed.POST("/assessment/attempts", assessmentCtrl.StartAttempt)
		authed.DELETE("/assessment/attempts/current", assessmentCtrl.DiscardAttempt)
		authed.PUT("/assessment/attempts/:attempt_id/answers", assessmentCtrl.SaveAnswer)
		authed.POST("/assessment/attempts/:attempt_id/complete", assessmentCtrl.CompleteAttempt)
		authed.GET("/assessment/attempts/:attempt_id/result", assessmentCtrl.GetResult)

		authed.POST("/analysis/jobs", analysisCtrl.SubmitJob)
		authed.GET("/analysis/jobs", analysisCtrl.ListJobs)
		authed.GET("/analysis/jobs/:job_id", analysisCtrl.GetJob)

		authed.GET("/me", profileCtrl.GetProfile)
		authed.PUT("/me", profileCtrl.UpdateProfile)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Launchpad API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.AssessmentQuestion{},
		&model.AssessmentAttempt{},
		&model.AssessmentAnswer{},
		&model.AnalysisJob{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func SeedQuestions(questionRepo repository.QuestionRepository) error {
	return service.SeedQuestionBank(questionRepo)
}
