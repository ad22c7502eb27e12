package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cafeteria-api/config"
	"cafeteria-api/controllers"
)

func main() {
	log.Println("Starting Cafeteria API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	db := config.GetDB()
	if err := migrateDatabase(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	if err := seedDatabase(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Println("Database seed completed successfully")

	router := setupRouter(cfg)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter initializes the Gin router with all application routes.
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// The consumer is a mobile/web client served from another origin.
	router.Use(cors.Default())

	router.GET("/health", healthCheck)

	router.GET("/cardapio", controllers.GetMenu)
	router.GET("/garcons", controllers.ListWaiters)
	router.GET("/mesas", controllers.ListTables)
	router.GET("/historico", controllers.ListOrderHistory)

	router.POST("/login", controllers.Login(cfg))
	router.PUT("/mesas/:id/ocupar", controllers.OccupyTable)
	router.PUT("/mesas/:id/liberar", controllers.ReleaseTable)
	router.POST("/estoque/adicionar", controllers.AddStock)
	router.POST("/pedidos", controllers.CreateOrder)

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cafeteria API is running",
	})
}
