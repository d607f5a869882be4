package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck is the bare liveness probe; /test reports store counts.
func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
