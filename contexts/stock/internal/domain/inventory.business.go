// Package domain contains the inventory items that are saved to and loaded from a store.
package domain

import (
	"fmt"
	"time"
)

type ItemID int

// InventoryItem is persisted, so its fields carry explicit names for every store format.
type InventoryItem struct {
	ID        ItemID    `json:"id"         yaml:"id"`
	Name      string    `json:"name"       yaml:"name"       validate:"required"`
	Quantity  int       `json:"quantity"   yaml:"quantity"   validate:"gte=0"`
	DateAdded time.Time `json:"date_added" yaml:"date_added" validate:"required"`
}

func (i InventoryItem) Identity() ItemID     { return i.ID }
func (i InventoryItem) CurrentQuantity() int { return i.Quantity }

func (i InventoryItem) WithQuantity(quantity int) InventoryItem {
	i.Quantity = quantity

	return i
}

func (i InventoryItem) String() string {
	return fmt.Sprintf("[%d] %s: %d, added %s", i.ID, i.Name, i.Quantity, i.DateAdded.Format(time.DateOnly))
}

// TotalUnits sums up the quantity of all items.
func TotalUnits(items []InventoryItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}

	return total
}
