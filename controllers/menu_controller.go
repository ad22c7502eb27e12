package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafeteria-api/config"
	"cafeteria-api/models"
)

// MenuCategory groups menu items under their category name, the shape the
// menu and stock screens consume.
type MenuCategory struct {
	Category string            `json:"categoria"`
	Items    []models.MenuItem `json:"itens"`
}

// AddStockRequest represents the request body for POST /estoque/adicionar
type AddStockRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	Quantity int    `json:"quantidade" binding:"required,gt=0"`
}

// GetMenu handles GET /cardapio - returns the catalog grouped by category
func GetMenu(c *gin.Context) {
	db := config.GetDB()

	var items []models.MenuItem
	if err := db.Order("categoria, nome").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load menu",
			},
		})
		return
	}

	categories := make([]MenuCategory, 0)
	for _, item := range items {
		if n := len(categories); n == 0 || categories[n-1].Category != item.Category {
			categories = append(categories, MenuCategory{Category: item.Category})
		}
		last := &categories[len(categories)-1]
		last.Items = append(last.Items, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    categories,
	})
}

// AddStock handles POST /estoque/adicionar - restocks a menu item by an
// operator-entered positive quantity
func AddStock(c *gin.Context) {
	var req AddStockRequest
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

	db := config.GetDB()
	var item models.MenuItem
	if err := db.First(&item, "id = ?", req.ItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ITEM_NOT_FOUND",
				"message": "Menu item not found",
			},
		})
		return
	}

	item.Stock += req.Quantity
	if err := db.Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update stock",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}
