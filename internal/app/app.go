package app

import (
	"context"
	"learn_track_backend/internal/config"
	"learn_track_backend/internal/controller"
	"learn_track_backend/internal/repository"
	"learn_track_backend/internal/service"
	"learn_track_backend/pkg/logger"
	"learn_track_backend/pkg/monitoring"
	"learn_track_backend/pkg/security"
	"learn_track_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	repos  *repositories
}

// repositories are the in-memory history stores. They own all mutable state
// in the process; everything above them is stateless.
type repositories struct {
	learner   *repository.LearnerRepository
	activity  *repository.ActivityRepository
	dailyTest *repository.DailyTestRepository
	topic     *repository.TopicRepository
}

type services struct {
	auth      *service.AuthService
	activity  *service.ActivityService
	dailyTest *service.DailyTestService
	failure   *service.FailureService
	recovery  *service.RecoveryService
	dashboard *service.DashboardService
	topic     *service.TopicService
}

type controllers struct {
	auth    *controller.AuthController
	student *controller.StudentController
	trainer *controller.TrainerController
	health  *controller.HealthController
}

func (a *App) initRepositories(cfg *config.Config) *repositories {
	topicSeed := cfg.Topics
	if len(topicSeed) == 0 {
		topicSeed = repository.DefaultTopics
	}

	return &repositories{
		learner:   repository.NewLearnerRepository(),
		activity:  repository.NewActivityRepository(),
		dailyTest: repository.NewDailyTestRepository(),
		topic:     repository.NewTopicRepository(topicSeed),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.learner, cfg)
	s.topic = service.NewTopicService(repos.topic)
	s.activity = service.NewActivityService(repos.learner, repos.activity, repos.topic)
	s.dailyTest = service.NewDailyTestService(repos.learner, repos.dailyTest, repos.topic)
	s.failure = service.NewFailureService(repos.learner, repos.activity, repos.dailyTest)
	s.recovery = service.NewRecoveryService(s.failure, repos.learner, repos.activity, repos.dailyTest)
	s.dashboard = service.NewDashboardService(
		repos.learner,
		repos.activity,
		repos.dailyTest,
		repos.topic,
		s.failure,
		s.dailyTest,
		s.recovery,
	)

	return s
}

func (a *App) initControllers(s *services, repos *repositories) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth),
		student: controller.NewStudentController(s.dashboard, s.activity, s.dailyTest, s.topic),
		trainer: controller.NewTrainerController(s.dashboard, s.failure, s.recovery),
		health:  controller.NewHealthController(repos.learner),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized successfully")

	app := &App{Config: cfg}

	repos := app.initRepositories(cfg)
	app.repos = repos
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, repos)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("learn-track", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)
	app.serveClient(router, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
