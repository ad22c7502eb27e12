package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cafeteria-api/config"
	"cafeteria-api/services"
)

// CreateOrderRequest represents the request body for POST /pedidos. The
// server assigns the order id, timestamp, unit prices and total itself.
type CreateOrderRequest struct {
	TableID      string             `json:"mesaId" binding:"required"`
	CustomerName string             `json:"clienteNome"`
	WaiterName   string             `json:"garcomNome"`
	Items        []OrderLineRequest `json:"itens" binding:"dive"`
}

// OrderLineRequest is one requested line: item id and quantity.
type OrderLineRequest struct {
	ItemID   string `json:"id" binding:"required"`
	Quantity int    `json:"quantidade" binding:"required,gt=0"`
}

// CreateOrder handles POST /pedidos - finalizes a cart into a persisted
// order and decrements catalog stock
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
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

	lines := make([]services.OrderLineInput, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, services.OrderLineInput{
			ItemID:   item.ItemID,
			Quantity: item.Quantity,
		})
	}

	svc := services.NewOrderService(config.GetDB())
	order, err := svc.Finalize(req.TableID, req.CustomerName, req.WaiterName, lines)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "EMPTY_CART",
					"message": "Order must contain at least one item",
				},
			})
		case errors.Is(err, services.ErrUnknownItem):
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ITEM_NOT_FOUND",
					"message": "Order references an unknown menu item",
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "DATABASE_ERROR",
					"message": "Failed to save order",
				},
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// ListOrderHistory handles GET /historico - returns all past orders with
// their line items, newest first
func ListOrderHistory(c *gin.Context) {
	svc := services.NewOrderService(config.GetDB())
	orders, err := svc.History()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load order history",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    orders,
	})
}
