package main

import (
	"context"
	"net/http"
	"time"

	"github.com/celebra-rh/assessment-gateway/config"
	_ "github.com/celebra-rh/assessment-gateway/docs" // Swagger docs
	"github.com/celebra-rh/assessment-gateway/internal/apiclient"
	"github.com/celebra-rh/assessment-gateway/internal/clipboard"
	adminctrl "github.com/celebra-rh/assessment-gateway/internal/controller/admin"
	userctrl "github.com/celebra-rh/assessment-gateway/internal/controller/user"
	"github.com/celebra-rh/assessment-gateway/internal/logger"
	"github.com/celebra-rh/assessment-gateway/internal/middleware"
	"github.com/celebra-rh/assessment-gateway/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title CelebraRH Assessment Gateway API
// @version 1.0
// @description Gateway for the CelebraRH behavioral assessments: DISC and Love Languages quiz sessions, result rendering and the recruiter dashboard.
// @contact.name API Support
// @contact.email suporte@celebrarh.com.br
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			NewGinEngine,
			NewUpstreamClient, // Provides apiclient.Provider
			clipboard.NewSystemWriter,
		),

		// Services layer
		fx.Provide(
			service.NewSessionService,
			service.NewResultService,
			service.NewAdminService,
			service.NewLinkService,
			service.NewResumeService,
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewQuizController,
			adminctrl.NewDashboardController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewUpstreamClient builds the client for the assessment API from config.
func NewUpstreamClient(cfg *config.Config) apiclient.Provider {
	return apiclient.NewClient(cfg.Upstream.BaseURL, nil)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Request logging through the global zerolog logger
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
	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *userctrl.QuizController,
	dashboardCtrl *adminctrl.DashboardController,
) {
	api := router.Group("/api/v1")

	// Participant routes, scoped by test type (disc | love-languages)
	quiz := api.Group("/:test_type")
	{
		quiz.POST("/sessions", quizCtrl.StartSession)
		quiz.GET("/sessions/:token", quizCtrl.GetSession)
		quiz.POST("/sessions/:token/participant", quizCtrl.SubmitParticipantInfo)
		quiz.PUT("/sessions/:token/answers", quizCtrl.RecordAnswer)
		quiz.POST("/sessions/:token/next", quizCtrl.Advance)
		quiz.POST("/sessions/:token/previous", quizCtrl.Retreat)
		quiz.GET("/results/:result_id", quizCtrl.GetResult)
	}

	admin := api.Group("/admin")
	{
		admin.GET("/metrics", dashboardCtrl.Metrics)
		admin.POST("/resume/enhance", dashboardCtrl.EnhanceResume)

		adminQuiz := admin.Group("/:test_type")
		adminQuiz.POST("/links", dashboardCtrl.CreateLink)
		adminQuiz.GET("/results", dashboardCtrl.ListResults)
		adminQuiz.GET("/results/:result_id/report", dashboardCtrl.DownloadReport)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Assessment gateway starting on port %s", cfg.Server.Port)
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
