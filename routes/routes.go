package routes

import (
	"TimeTrackGo/config"
	"TimeTrackGo/controllers"
	"TimeTrackGo/middleware"
	"TimeTrackGo/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the services to the HTTP surface.
func RegisterRoutes(r *gin.Engine) {
	registries := services.NewGormRegistries(config.DB)
	notifier := services.NewRedisNotifier(config.RedisClient)
	timers := services.NewTimerService(config.DB, registries, notifier)
	entries := services.NewEntryService(config.DB, registries, notifier)
	billing := services.NewBillingService(config.DB, registries)

	timerController := controllers.NewTimerController(timers)
	entryController := controllers.NewEntryController(entries)
	billingController := controllers.NewBillingController(billing)
	subscribeController := controllers.NewSubscribeController(notifier)

	// Authenticated routes
	private := r.Group("/api/v1/timetrack")
	private.Use(middleware.AuthMiddleware())
	{
		private.POST("/timer/start", timerController.Start)
		private.POST("/timer/:id/stop", timerController.Stop)
		private.POST("/timer/:id/finalize", timerController.Finalize)
		private.GET("/timer/running", timerController.Running)

		private.POST("/entries", entryController.Create)
		private.PUT("/entries/:id", entryController.Update)
		private.GET("/entries", entryController.List)

		private.GET("/projects/:id/financials", billingController.ProjectFinancials)

		private.GET("/subscribe", subscribeController.Subscribe)
	}

	// Health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
