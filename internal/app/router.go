package app

import (
	"learn_track_backend/docs"
	"learn_track_backend/internal/config"
	"learn_track_backend/internal/middleware"
	"learn_track_backend/internal/model"
	"learn_track_backend/pkg/monitoring"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)
	}

	// Authorized routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/auth/user/:id", c.auth.GetUser)

		student := authGroup.Group("/student")
		{
			student.GET("/dashboard/:learnerId", c.student.GetDashboard)
			student.POST("/activity/:learnerId", c.student.AddActivity)
			student.POST("/daily-test/:learnerId", c.student.SubmitDailyTest)
			student.GET("/can-take-test/:learnerId", c.student.CanTakeTest)
			student.GET("/test-history/:learnerId", c.student.GetTestHistory)
			student.GET("/activities/:learnerId", c.student.GetActivities)
			student.POST("/topic", c.student.AddTopic)
		}

		trainer := authGroup.Group("/trainer")
		trainer.Use(middleware.RoleMiddleware(model.Trainer))
		{
			trainer.GET("/dashboard", c.trainer.GetDashboard)
			trainer.GET("/student/:learnerId", c.trainer.GetStudentDetail)
			trainer.GET("/student/:learnerId/summary", c.trainer.GetStudentSummary)
			trainer.GET("/student/:learnerId/strategies", c.trainer.GetRecoveryStrategies)
		}
	}
}

// serveClient hosts the built SPA next to the API, with an index.html
// fallback for client-side routing.
func (a *App) serveClient(router *gin.Engine, cfg *config.Config) {
	staticDir := cfg.Client.StaticDir
	if staticDir == "" {
		return
	}

	router.Static("/assets", filepath.Join(staticDir, "assets"))
	router.StaticFile("/favicon.ico", filepath.Join(staticDir, "favicon.ico"))

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	})
}
