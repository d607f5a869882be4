package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/eurojackpot-backend/internal/logger"
	"github.com/yungbote/eurojackpot-backend/internal/services"
	"github.com/yungbote/eurojackpot-backend/internal/types"
)

const defaultListLimit = 200

type DrawHandler struct {
	log              *logger.Logger
	drawService      services.DrawService
	ingestionService services.IngestionService
}

func NewDrawHandler(log *logger.Logger, drawService services.DrawService, ingestionService services.IngestionService) *DrawHandler {
	return &DrawHandler{
		log:              log.With("handler", "DrawHandler"),
		drawService:      drawService,
		ingestionService: ingestionService,
	}
}

func (h *DrawHandler) Create(c *gin.Context) {
	var draw types.Draw
	if err := c.ShouldBindJSON(&draw); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	stored, err := h.drawService.Create(c.Request.Context(), draw)
	if err != nil {
		RespondFromError(c, err)
		return
	}
	RespondOK(c, stored)
}

func (h *DrawHandler) List(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	draws, err := h.drawService.List(c.Request.Context(), limit)
	if err != nil {
		h.log.Error("List draws failed", "error", err)
		RespondFromError(c, err)
		return
	}
	RespondOK(c, draws)
}

func (h *DrawHandler) Replace(c *gin.Context) {
	var draw types.Draw
	if err := c.ShouldBindJSON(&draw); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	updated, err := h.drawService.Replace(c.Request.Context(), c.Param("id"), draw)
	if err != nil {
		RespondFromError(c, err)
		return
	}
	RespondOK(c, updated)
}

func (h *DrawHandler) Delete(c *gin.Context) {
	deleted, err := h.drawService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondFromError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": deleted})
}

func (h *DrawHandler) Clear(c *gin.Context) {
	deleted, err := h.drawService.DeleteAll(c.Request.Context())
	if err != nil {
		h.log.Error("Clear draws failed", "error", err)
		RespondFromError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": deleted})
}

// Bulk ingests draws in any mix of csv/json/text formats. Per-record
// failures land in the response body; the request itself succeeds as long
// as the payload decodes.
func (h *DrawHandler) Bulk(c *gin.Context) {
	var payload types.BulkDraws
	if err := c.ShouldBindJSON(&payload); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	RespondOK(c, h.ingestionService.IngestBulk(c.Request.Context(), payload))
}

// queryLimit parses ?limit=N, defaulting to 200. On a malformed value it
// writes the error response and reports false.
func queryLimit(c *gin.Context) (int64, bool) {
	raw := c.DefaultQuery("limit", strconv.Itoa(defaultListLimit))
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		RespondError(c, http.StatusBadRequest, "invalid_limit", fmt.Errorf("limit must be a non-negative integer, got %q", raw))
		return 0, false
	}
	return limit, true
}
