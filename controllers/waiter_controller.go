package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafeteria-api/config"
	"cafeteria-api/models"
)

// ListWaiters handles GET /garcons - returns the full staff registry
func ListWaiters(c *gin.Context) {
	db := config.GetDB()

	var waiters []models.Waiter
	if err := db.Order("nome").Find(&waiters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load waiters",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    waiters,
	})
}
