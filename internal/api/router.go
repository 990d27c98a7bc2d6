package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecorun/activity-backend-go/internal/config"
	"github.com/ecorun/activity-backend-go/internal/database"
	"github.com/ecorun/activity-backend-go/internal/handler"
	"github.com/ecorun/activity-backend-go/internal/middleware"
	"github.com/ecorun/activity-backend-go/internal/repository"
	"github.com/ecorun/activity-backend-go/internal/service"
)

// SetupRouter wires repositories, services and handlers onto the HTTP routes
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(300, time.Minute))

	// CORS for the mobile app's web build
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "EcoRun activity API is running",
		})
	})

	activityRepo := repository.NewActivityRepository(database.GetDB())
	activityService := service.NewActivityService(activityRepo)
	activityHandler := handler.NewActivityHandler(activityService)

	api := r.Group("/api/v1")
	api.Use(middleware.Auth(cfg.JWTSecret))
	{
		activities := api.Group("/activities")
		{
			activities.POST("", activityHandler.Create)
			activities.GET("", activityHandler.List)
			activities.GET("/summary", activityHandler.Summary)
			activities.GET("/:id", activityHandler.Get)
			activities.GET("/:id/track", activityHandler.Track)
			activities.GET("/:id/gpx", activityHandler.ExportGPX)
			activities.DELETE("/:id", activityHandler.Delete)
		}
	}

	return r
}
