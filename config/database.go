package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase establishes a connection to the configured database.
// The café app runs on PostgreSQL in production and SQLite for local
// development, selected via DB_DRIVER.
func ConnectDatabase() error {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}

	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		databaseURL := os.Getenv("DATABASE_URL")
		if databaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_DRIVER is postgres")
		}
		dialector = postgres.Open(databaseURL)
	case "sqlite":
		path := os.Getenv("DATABASE_URL")
		if path == "" {
			path = "cafeteria.db"
			log.Println("DATABASE_URL not set, using default sqlite file:", path)
		}
		dialector = sqlite.Open(path)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB replaces the database instance. Used by tests to inject an
// in-memory database.
func SetDB(db *gorm.DB) {
	DB = db
}
