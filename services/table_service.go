package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cafeteria-api/models"
)

// TableService implements the table occupancy state machine. A table is
// either livre or ocupada; garcom_nome and cliente_nome are present exactly
// while it is ocupada.
type TableService struct {
	db *gorm.DB
}

// NewTableService creates a TableService backed by the given database
func NewTableService(db *gorm.DB) *TableService {
	return &TableService{db: db}
}

// Occupy transitions a free table to occupied and assigns the waiter
// (and optionally the customer) to it. Returns ErrTableAlreadyOccupied
// when the table is not free, leaving the existing assignment unchanged.
func (s *TableService) Occupy(tableID, waiterName, customerName string) (*models.Table, error) {
	var table models.Table
	if err := s.db.First(&table, "id = ?", tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to load table %s: %w", tableID, err)
	}

	if !table.IsFree() {
		return nil, ErrTableAlreadyOccupied
	}

	table.Status = models.TableStatusOccupied
	table.WaiterName = &waiterName
	table.CustomerName = nil
	if customerName != "" {
		table.CustomerName = &customerName
	}
	if err := s.db.Save(&table).Error; err != nil {
		return nil, fmt.Errorf("failed to occupy table %s: %w", tableID, err)
	}

	return &table, nil
}

// Release transitions an occupied table back to free and clears the waiter
// and customer assignment. Releasing an already-free table returns
// ErrTableAlreadyFree so callers can tell a double release from a success.
func (s *TableService) Release(tableID string) error {
	var table models.Table
	if err := s.db.First(&table, "id = ?", tableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTableNotFound
		}
		return fmt.Errorf("failed to load table %s: %w", tableID, err)
	}

	if table.IsFree() {
		return ErrTableAlreadyFree
	}

	table.Status = models.TableStatusFree
	table.WaiterName = nil
	table.CustomerName = nil
	if err := s.db.Save(&table).Error; err != nil {
		return fmt.Errorf("failed to release table %s: %w", tableID, err)
	}

	return nil
}
