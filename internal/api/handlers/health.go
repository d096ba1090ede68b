package handlers

import (
	"assetmgr/internal/models"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// GetHealth reports backend and database status plus the migrated tables
func (h *HealthHandler) GetHealth(c *gin.Context) {
	tables, err := models.DB.Migrator().GetTables()
	if err != nil {
		c.JSON(200, gin.H{"backend": "ok", "database": "error: " + err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"backend":  "ok",
		"database": "ok",
		"tables":   tables,
	})
}
