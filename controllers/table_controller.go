package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafeteria-api/config"
	"cafeteria-api/models"
	"cafeteria-api/services"
)

// OccupyTableRequest represents the request body for PUT /mesas/:id/ocupar
type OccupyTableRequest struct {
	WaiterName   string `json:"garcomNome" binding:"required"`
	CustomerName string `json:"clienteNome"`
}

// ListTables handles GET /mesas - returns every table with its occupancy
func ListTables(c *gin.Context) {
	db := config.GetDB()

	var tables []models.Table
	if err := db.Order("nome").Find(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load tables",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    tables,
	})
}

// OccupyTable handles PUT /mesas/:id/ocupar - assigns a waiter to a free table
func OccupyTable(c *gin.Context) {
	var req OccupyTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	svc := services.NewTableService(config.GetDB())
	table, err := svc.Occupy(c.Param("id"), req.WaiterName, req.CustomerName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTableNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "TABLE_NOT_FOUND",
					"message": "Table not found",
				},
			})
		case errors.Is(err, services.ErrTableAlreadyOccupied):
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "TABLE_ALREADY_OCCUPIED",
					"message": "Table is already occupied",
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to occupy table",
				},
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    table,
	})
}

// ReleaseTable handles PUT /mesas/:id/liberar - frees an occupied table.
// Responds 204 with no body, matching what clients of this API expect.
func ReleaseTable(c *gin.Context) {
	svc := services.NewTableService(config.GetDB())
	if err := svc.Release(c.Param("id")); err != nil {
		switch {
		case errors.Is(err, services.ErrTableNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "TABLE_NOT_FOUND",
					"message": "Table not found",
				},
			})
		case errors.Is(err, services.ErrTableAlreadyFree):
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "TABLE_ALREADY_FREE",
					"message": "Table is already free",
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to release table",
				},
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
