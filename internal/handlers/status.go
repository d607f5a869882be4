package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/eurojackpot-backend/internal/logger"
	"github.com/yungbote/eurojackpot-backend/internal/services"
)

type StatusHandler struct {
	log               *logger.Logger
	drawService       services.DrawService
	predictionService services.PredictionService
}

func NewStatusHandler(log *logger.Logger, drawService services.DrawService, predictionService services.PredictionService) *StatusHandler {
	return &StatusHandler{
		log:               log.With("handler", "StatusHandler"),
		drawService:       drawService,
		predictionService: predictionService,
	}
}

// Test reports basic connectivity plus per-collection document counts.
func (h *StatusHandler) Test(c *gin.Context) {
	ctx := c.Request.Context()

	draws, err := h.drawService.Count(ctx)
	if err != nil {
		h.log.Error("Count draws failed", "error", err)
		RespondFromError(c, err)
		return
	}
	predictions, err := h.predictionService.Count(ctx)
	if err != nil {
		h.log.Error("Count predictions failed", "error", err)
		RespondFromError(c, err)
		return
	}

	RespondOK(c, gin.H{
		"ok":          true,
		"draws":       draws,
		"predictions": predictions,
	})
}
