package client

import "math"

// CartLine is one accumulated cart entry: an item and how many of it the
// customer wants.
type CartLine struct {
	Item     MenuItem
	Quantity int
}

// Cart accumulates requested quantities against live stock counts before an
// order is submitted. It never touches the catalog; stock is only checked
// against the snapshot the caller passes to Add. Lines keep their insertion
// order.
type Cart struct {
	lines []CartLine
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add increases the line for item by one. currentStock is the item's stock
// from the most recent catalog snapshot; when the cart already holds that
// many units, Add fails with ErrStockExceeded and the cart is unchanged.
func (c *Cart) Add(item MenuItem, currentStock int) error {
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			if c.lines[i].Quantity >= currentStock {
				return ErrStockExceeded
			}
			c.lines[i].Quantity++
			return nil
		}
	}

	if currentStock < 1 {
		return ErrStockExceeded
	}
	c.lines = append(c.lines, CartLine{Item: item, Quantity: 1})
	return nil
}

// Remove decreases the line for itemID by one, dropping the line entirely
// when its quantity reaches zero. Removing an absent item is a no-op.
func (c *Cart) Remove(itemID string) {
	for i := range c.lines {
		if c.lines[i].Item.ID != itemID {
			continue
		}
		if c.lines[i].Quantity <= 1 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity--
		}
		return
	}
}

// Total returns the sum of unit price times quantity over all lines,
// rounded to 2 decimal places.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, line := range c.lines {
		total += line.Item.Price * float64(line.Quantity)
	}
	return math.Round(total*100) / 100
}

// ItemCount returns the sum of quantities over all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Quantity returns the accumulated quantity for itemID, zero if absent.
func (c *Cart) Quantity(itemID string) int {
	for _, line := range c.lines {
		if line.Item.ID == itemID {
			return line.Quantity
		}
	}
	return 0
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Clear discards all lines.
func (c *Cart) Clear() {
	c.lines = nil
}
