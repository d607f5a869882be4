package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/eurojackpot-backend/internal/logger"
	"github.com/yungbote/eurojackpot-backend/internal/services"
)

type InsightsHandler struct {
	log             *logger.Logger
	insightsService services.InsightsService
}

func NewInsightsHandler(log *logger.Logger, insightsService services.InsightsService) *InsightsHandler {
	return &InsightsHandler{
		log:             log.With("handler", "InsightsHandler"),
		insightsService: insightsService,
	}
}

func (h *InsightsHandler) Latest(c *gin.Context) {
	insights, err := h.insightsService.Latest(c.Request.Context())
	if err != nil {
		h.log.Error("Latest insights failed", "error", err)
		RespondFromError(c, err)
		return
	}
	if !insights.HasLatest {
		RespondOK(c, gin.H{"has_latest": false})
		return
	}
	RespondOK(c, insights)
}
