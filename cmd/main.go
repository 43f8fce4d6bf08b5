package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/qazfinance/academy/config"
	"github.com/qazfinance/academy/database"
	_ "github.com/qazfinance/academy/docs" // Swagger docs - auto-generated
	adminctrl "github.com/qazfinance/academy/internal/controller/admin"
	userctrl "github.com/qazfinance/academy/internal/controller/user"
	"github.com/qazfinance/academy/internal/logger"
	"github.com/qazfinance/academy/internal/model"
	"github.com/qazfinance/academy/internal/repository"
	"github.com/qazfinance/academy/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Academy API
// @version 1.0
// @description E-learning platform API: course catalog, enrollments, lesson quizzes with scoring, progress tracking and user ratings.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewCourseRepository,
			repository.NewLessonRepository,
			repository.NewEnrollmentRepository,
			repository.NewAttemptRepository,
			repository.NewProgressRepository,
			repository.NewUserRepository,
		),

		// Services
		fx.Provide(
			service.NewScoringService,
			service.NewRatingService,
			service.NewCourseService,
			service.NewEnrollmentService,
			service.NewAdminCourseService,
			service.NewQuizSubmissionService,
		),

		// Controllers
		fx.Provide(
			userctrl.NewCourseController,
			userctrl.NewQuizController,
			adminctrl.NewAdminCourseController,
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
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	courseCtrl *userctrl.CourseController,
	quizCtrl *userctrl.QuizController,
	adminCourseCtrl *adminctrl.AdminCourseController,
) {
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		coursesAdminGroup := adminAPIGroup.Group("/courses")
		coursesAdminGroup.POST("", adminCourseCtrl.CreateCourse)
		coursesAdminGroup.DELETE("/:course_id", adminCourseCtrl.DeleteCourse)
	}

	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/courses", courseCtrl.GetAllCourses)
		userAPIGroup.GET("/courses/:slug", courseCtrl.GetCourseDetail)
		userAPIGroup.POST("/courses/:slug/enroll", courseCtrl.Enroll)

		userAPIGroup.GET("/lessons/:lesson_id", courseCtrl.GetLesson)
		userAPIGroup.POST("/lessons/:lesson_id/attempts", quizCtrl.SubmitQuiz)
		userAPIGroup.GET("/lessons/:lesson_id/my-attempts", quizCtrl.GetMyAttempts)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Academy API server starting on port %s", cfg.Server.Port)
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
		&model.Course{},
		&model.Unit{},
		&model.Lesson{},
		&model.Question{},
		&model.Choice{},
		&model.Enrollment{},
		&model.LessonAttempt{},
		&model.LessonProgress{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
