package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Compass/config"
	"github.com/lshigami/Compass/database"
	_ "github.com/lshigami/Compass/docs" // Swagger docs - auto-generated
	adminctrl "github.com/lshigami/Compass/internal/controller/admin"
	userctrl "github.com/lshigami/Compass/internal/controller/user"
	"github.com/lshigami/Compass/internal/logger"
	"github.com/lshigami/Compass/internal/model"
	"github.com/lshigami/Compass/internal/repository"
	"github.com/lshigami/Compass/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Career Assessment API
// @version 1.0
// @description API for career assessment sessions: tests with typed questions, graded answers, cluster scoring and pathway recommendations.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewClusterRepository,
			repository.NewSessionRepository,
			repository.NewAnswerRepository,
			repository.NewScoreRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAnswerKeyStore,
			service.NewPathwayStore,
			service.NewScoringService,
			service.NewAdminTestService,
			service.NewAssessmentService,
			service.NewPathwayService,
			// SessionService needs *gorm.DB for its transaction boundaries.
			func(
				sessionRepo repository.SessionRepository,
				answerRepo repository.AnswerRepository,
				questionRepo repository.QuestionRepository,
				clusterRepo repository.ClusterRepository,
				scoreRepo repository.ScoreRepository,
				testRepo repository.TestRepository,
				answerKey service.AnswerKeyStore,
				scoring service.ScoringService,
				db *gorm.DB,
			) service.SessionService {
				return service.NewSessionService(sessionRepo, answerRepo, questionRepo, clusterRepo, scoreRepo, testRepo, answerKey, scoring, db)
			},
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminTestController,
			userctrl.NewAssessmentController,
			userctrl.NewSessionController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	// Route every request through zerolog instead of Gin's default logger.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminTestCtrl *adminctrl.AdminTestController,
	assessmentCtrl *userctrl.AssessmentController,
	sessionCtrl *userctrl.SessionController,
) {
	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		testsAdminGroup := adminAPIGroup.Group("/tests")
		testsAdminGroup.POST("", adminTestCtrl.CreateTest)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		// Test catalog
		userAPIGroup.GET("/tests", assessmentCtrl.ListTests)
		userAPIGroup.GET("/tests/:test_id", assessmentCtrl.GetTestDetails)

		// Session lifecycle
		userAPIGroup.POST("/sessions", sessionCtrl.CreateSession)
		userAPIGroup.POST("/sessions/submit", sessionCtrl.BulkSubmit)
		userAPIGroup.POST("/sessions/:session_id/answers", sessionCtrl.SubmitAnswer)
		userAPIGroup.POST("/sessions/:session_id/complete", sessionCtrl.CompleteSession)
		userAPIGroup.GET("/sessions/:session_id", sessionCtrl.GetSession)
		userAPIGroup.DELETE("/sessions/:session_id", sessionCtrl.DeleteSession)
		userAPIGroup.GET("/sessions/:session_id/pathways", sessionCtrl.GetPathways)
		userAPIGroup.GET("/users/:user_id/sessions", sessionCtrl.GetUserSessions)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Career Assessment API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
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
		&model.Cluster{},
		&model.Test{},
		&model.Question{},
		&model.ListOption{},
		&model.TestSession{},
		&model.Answer{},
		&model.ScoreRecord{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
