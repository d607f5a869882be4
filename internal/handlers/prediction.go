package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/eurojackpot-backend/internal/logger"
	"github.com/yungbote/eurojackpot-backend/internal/services"
	"github.com/yungbote/eurojackpot-backend/internal/types"
)

type PredictionHandler struct {
	log               *logger.Logger
	predictionService services.PredictionService
}

func NewPredictionHandler(log *logger.Logger, predictionService services.PredictionService) *PredictionHandler {
	return &PredictionHandler{
		log:               log.With("handler", "PredictionHandler"),
		predictionService: predictionService,
	}
}

func (h *PredictionHandler) Create(c *gin.Context) {
	var pred types.Prediction
	if err := c.ShouldBindJSON(&pred); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	stored, err := h.predictionService.Create(c.Request.Context(), pred)
	if err != nil {
		RespondFromError(c, err)
		return
	}
	RespondOK(c, stored)
}

func (h *PredictionHandler) List(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	preds, err := h.predictionService.List(c.Request.Context(), limit)
	if err != nil {
		h.log.Error("List predictions failed", "error", err)
		RespondFromError(c, err)
		return
	}
	RespondOK(c, preds)
}

func (h *PredictionHandler) Clear(c *gin.Context) {
	deleted, err := h.predictionService.DeleteAll(c.Request.Context())
	if err != nil {
		h.log.Error("Clear predictions failed", "error", err)
		RespondFromError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": deleted})
}
