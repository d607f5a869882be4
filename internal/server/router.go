package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/yungbote/eurojackpot-backend/internal/handlers"
)

type RouterConfig struct {
	StatusHandler     *handlers.StatusHandler
	DrawHandler       *handlers.DrawHandler
	PredictionHandler *handlers.PredictionHandler
	InsightsHandler   *handlers.InsightsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type", "X-Requested-With"},
	}))
	router.Use(otelgin.Middleware("eurojackpot-backend"))

	// ===============
	// || Liveness  ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.GET("/test", cfg.StatusHandler.Test)

	// ===============
	// || Draws     ||
	// ===============
	router.POST("/draws", cfg.DrawHandler.Create)
	router.GET("/draws", cfg.DrawHandler.List)
	router.PUT("/draws/:id", cfg.DrawHandler.Replace)
	router.DELETE("/draws/:id", cfg.DrawHandler.Delete)
	router.DELETE("/draws", cfg.DrawHandler.Clear)
	router.POST("/draws/bulk", cfg.DrawHandler.Bulk)

	// =================
	// || Predictions ||
	// =================
	router.POST("/predictions", cfg.PredictionHandler.Create)
	router.GET("/predictions", cfg.PredictionHandler.List)
	router.DELETE("/predictions", cfg.PredictionHandler.Clear)

	// ===============
	// || Insights  ||
	// ===============
	router.GET("/insights/latest", cfg.InsightsHandler.Latest)

	return router
}
