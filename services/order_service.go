package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cafeteria-api/models"
)

// OrderLineInput is one requested line of an incoming order: which item
// and how many. Name, unit price and total are captured server-side from
// the catalog at finalize time.
type OrderLineInput struct {
	ItemID   string
	Quantity int
}

// OrderService finalizes carts into persisted orders and keeps the order
// history.
type OrderService struct {
	db *gorm.DB
}

// NewOrderService creates an OrderService backed by the given database
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Finalize converts the given cart lines into a persisted order and
// decrements catalog stock for every line. The order insert and the stock
// decrements run in a single transaction. Stock never goes below zero:
// when a concurrent order already consumed units, the decrement is clamped
// to zero and the order is still accepted.
func (s *OrderService) Finalize(tableID, customerName, waiterName string, lines []OrderLineInput) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("invalid quantity %d for item %s", line.Quantity, line.ItemID)
		}
	}

	order := models.Order{
		ID:           uuid.NewString(),
		TableID:      tableID,
		CustomerName: customerName,
		WaiterName:   waiterName,
		PlacedAt:     time.Now().UTC(),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		orderLines := make([]models.OrderLine, 0, len(lines))
		total := 0.0

		for _, line := range lines {
			var item models.MenuItem
			if err := tx.First(&item, "id = ?", line.ItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUnknownItem
				}
				return fmt.Errorf("failed to load item %s: %w", line.ItemID, err)
			}

			orderLines = append(orderLines, models.OrderLine{
				ItemID:    item.ID,
				Name:      item.Name,
				Quantity:  line.Quantity,
				UnitPrice: item.Price,
			})
			total += item.Price * float64(line.Quantity)

			item.Stock -= line.Quantity
			if item.Stock < 0 {
				item.Stock = 0
			}
			if err := tx.Save(&item).Error; err != nil {
				return fmt.Errorf("failed to update stock for item %s: %w", item.ID, err)
			}
		}

		order.Total = round2(total)
		if err := order.SetLines(orderLines); err != nil {
			return fmt.Errorf("failed to encode order lines: %w", err)
		}

		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// History returns all past orders, newest first, with line items decoded.
func (s *OrderService) History() ([]models.Order, error) {
	var orders []models.Order
	if err := s.db.Order("data DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to load order history: %w", err)
	}
	for i := range orders {
		if err := orders[i].DecodeLines(); err != nil {
			return nil, fmt.Errorf("failed to decode lines for order %s: %w", orders[i].ID, err)
		}
	}
	return orders, nil
}

// round2 rounds a monetary value to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
