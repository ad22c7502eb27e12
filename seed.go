package main

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cafeteria-api/models"
)

var initialTables = []models.Table{
	{ID: "1", Name: "Mesa 01", Status: models.TableStatusFree},
	{ID: "2", Name: "Mesa 02", Status: models.TableStatusFree},
	{ID: "3", Name: "Mesa 03", Status: models.TableStatusFree},
	{ID: "4", Name: "Mesa 04", Status: models.TableStatusFree},
	{ID: "5", Name: "Mesa 05", Status: models.TableStatusFree},
	{ID: "6", Name: "Mesa 06", Status: models.TableStatusFree},
}

var initialStaff = []models.Waiter{
	{ID: "g1", Name: "Ana Silva", Role: models.RoleWaiter},
	{ID: "g2", Name: "Bruno Costa", Role: models.RoleWaiter},
	{ID: "g3", Name: "Carla Dias", Role: models.RoleWaiter},
	{ID: "admin", Name: "Administrador", Role: models.RoleManager},
}

var initialMenu = []models.MenuItem{
	{ID: "101", Category: "Cafés Quentes", Name: "Espresso", Price: 8.00, PriceText: "R$ 8,00", Description: "Café puro e intenso.", Stock: 100},
	{ID: "102", Category: "Cafés Quentes", Name: "Capuccino", Price: 12.00, PriceText: "R$ 12,00", Description: "Espresso, leite vaporizado e espuma.", Stock: 50},
	{ID: "104", Category: "Cafés Quentes", Name: "Mocha", Price: 14.00, PriceText: "R$ 14,00", Description: "Espresso, chocolate e leite vaporizado.", Stock: 40},
	{ID: "301", Category: "Salgados", Name: "Pão de Queijo", Price: 7.00, PriceText: "R$ 7,00", Description: "Porção com 3 unidades.", Stock: 60},
	{ID: "302", Category: "Salgados", Name: "Coxinha", Price: 9.00, PriceText: "R$ 9,00", Description: "Coxinha de frango tradicional.", Stock: 45},
	{ID: "403", Category: "Doces", Name: "Cookie", Price: 9.00, PriceText: "R$ 9,00", Description: "Cookie com gotas de chocolate.", Stock: 30},
	{ID: "404", Category: "Doces", Name: "Bolo de Cenoura", Price: 10.00, PriceText: "R$ 10,00", Description: "Fatia com cobertura de chocolate.", Stock: 20},
	{ID: "502", Category: "Bebidas Geladas", Name: "Refrigerante", Price: 7.00, PriceText: "R$ 7,00", Description: "Lata 350ml.", Stock: 80},
}

// migrateDatabase creates or updates the schema for all models.
func migrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Waiter{},
		&models.Table{},
		&models.MenuItem{},
		&models.Order{},
	)
}

// seedDatabase inserts the initial tables, staff and menu. Existing rows
// are left untouched, so running it on every startup is safe.
func seedDatabase(db *gorm.DB) error {
	ignoreExisting := clause.OnConflict{DoNothing: true}

	if err := db.Clauses(ignoreExisting).Create(&initialStaff).Error; err != nil {
		return fmt.Errorf("failed to seed staff: %w", err)
	}
	if err := db.Clauses(ignoreExisting).Create(&initialTables).Error; err != nil {
		return fmt.Errorf("failed to seed tables: %w", err)
	}
	if err := db.Clauses(ignoreExisting).Create(&initialMenu).Error; err != nil {
		return fmt.Errorf("failed to seed menu: %w", err)
	}
	return nil
}
