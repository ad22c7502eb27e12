package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafeteria-api/config"
	"cafeteria-api/models"
)

// LoginRequest represents the request body for POST /login
type LoginRequest struct {
	Name     string `json:"nome"`
	Password string `json:"senha"`
	Kind     string `json:"tipo" binding:"required,oneof=cliente garcom gerente"`
}

// defaultCustomerName is used when a customer logs in without a name.
const defaultCustomerName = "Cliente Anônimo"

// Login handles POST /login. Customers always get in with the name they
// provided (or a default). Waiters and managers must present the shared
// staff password and exist in the staff registry.
func Login(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
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

		if req.Kind == "cliente" {
			name := req.Name
			if name == "" {
				name = defaultCustomerName
			}
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data": gin.H{
					"nome": name,
					"tipo": "cliente",
				},
			})
			return
		}

		// Staff login: single shared passphrase, no per-user secrets.
		if req.Password != cfg.StaffPassword {
			unauthorized(c)
			return
		}

		db := config.GetDB()
		query := db.Where("cargo = ?", req.Kind)
		if req.Name != "" {
			query = query.Where("nome = ?", req.Name)
		}

		var staff models.Waiter
		if err := query.First(&staff).Error; err != nil {
			unauthorized(c)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"id":   staff.ID,
				"nome": staff.Name,
				"tipo": staff.Role,
			},
		})
	}
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "INVALID_CREDENTIALS",
			"message": "Invalid name or password",
		},
	})
}
