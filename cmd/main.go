package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/yungbote/eurojackpot-backend/internal/db"
	"github.com/yungbote/eurojackpot-backend/internal/handlers"
	"github.com/yungbote/eurojackpot-backend/internal/logger"
	"github.com/yungbote/eurojackpot-backend/internal/observability"
	"github.com/yungbote/eurojackpot-backend/internal/repos"
	"github.com/yungbote/eurojackpot-backend/internal/server"
	"github.com/yungbote/eurojackpot-backend/internal/services"
	"github.com/yungbote/eurojackpot-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing (no-op unless OTEL_ENABLED is set)
	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "eurojackpot-backend",
		Environment: logMode,
	})
	if otelShutdown != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(ctx)
		}()
	}

	// Mongo
	mongoService, err := db.NewMongoService(log)
	if err != nil {
		log.Error("Mongo init failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoService.Close(ctx); err != nil {
			log.Warn("Mongo disconnect failed", "error", err)
		}
	}()
	if err := mongoService.EnsureIndexes(context.Background()); err != nil {
		log.Warn("Mongo index setup failed", "error", err)
	}

	// Repos
	log.Info("Setting up repos from main...")
	store := repos.NewStore(mongoService.Database(), log)
	drawRepo := repos.NewDrawRepo(store, log)
	predictionRepo := repos.NewPredictionRepo(store, log)

	// Services
	log.Info("Setting up services from main...")
	drawService := services.NewDrawService(log, drawRepo)
	ingestionService := services.NewIngestionService(log, drawRepo)
	predictionService := services.NewPredictionService(log, predictionRepo, drawRepo)
	insightsService := services.NewInsightsService(log, drawRepo, predictionRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	statusHandler := handlers.NewStatusHandler(log, drawService, predictionService)
	drawHandler := handlers.NewDrawHandler(log, drawService, ingestionService)
	predictionHandler := handlers.NewPredictionHandler(log, predictionService)
	insightsHandler := handlers.NewInsightsHandler(log, insightsService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		StatusHandler:     statusHandler,
		DrawHandler:       drawHandler,
		PredictionHandler: predictionHandler,
		InsightsHandler:   insightsHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
