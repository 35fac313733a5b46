package handlers

import (
	"net/http"

	"seven18/utils"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles GET /health. It reports the latest dependency
// snapshot; the endpoint itself returns 200 as long as the process is
// serving.
func HealthCheck(c *gin.Context) {
	status := utils.GetHealthStatus()
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"services": status,
	})
}
