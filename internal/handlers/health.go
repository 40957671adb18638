package handlers

import (
	"github.com/devyhq/devy-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports service and database health.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// CheckHealth returns the health status of the service and its database.
// GET /health
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	overall := "healthy"

	dbStatus := "ok"
	sqlDB, err := models.GetDB().DB()
	if err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
		overall = "unhealthy"
	}

	status := 200
	if overall != "healthy" {
		status = 503
	}

	c.JSON(status, gin.H{
		"status":  overall,
		"service": "devy-backend",
		"components": gin.H{
			"database": dbStatus,
		},
	})
}
