// Package domain contains the stock items of the warehouse.
package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidAmount = errors.New("invalid amount")

type ItemID int

// StockItem is implemented by all items the warehouse keeps in stock.
type StockItem[E any] interface {
	Identity() ItemID
	CurrentQuantity() int
	WithQuantity(quantity int) E
	fmt.Stringer
}

type ElectronicItem struct {
	ID             ItemID
	Name           string `validate:"required"`
	Quantity       int    `validate:"gte=0"`
	Brand          string `validate:"required"`
	WarrantyMonths int    `validate:"gte=0"`
}

func (i ElectronicItem) Identity() ItemID     { return i.ID }
func (i ElectronicItem) CurrentQuantity() int { return i.Quantity }

func (i ElectronicItem) WithQuantity(quantity int) ElectronicItem {
	i.Quantity = quantity

	return i
}

func (i ElectronicItem) String() string {
	return fmt.Sprintf("[%d] %s by %s, %d months warranty: %d in stock", i.ID, i.Name, i.Brand, i.WarrantyMonths, i.Quantity)
}

type GroceryItem struct {
	ID         ItemID
	Name       string    `validate:"required"`
	Quantity   int       `validate:"gte=0"`
	ExpiryDate time.Time `validate:"required"`
}

func (i GroceryItem) Identity() ItemID     { return i.ID }
func (i GroceryItem) CurrentQuantity() int { return i.Quantity }

func (i GroceryItem) WithQuantity(quantity int) GroceryItem {
	i.Quantity = quantity

	return i
}

func (i GroceryItem) String() string {
	return fmt.Sprintf("[%d] %s, expires %s: %d in stock", i.ID, i.Name, i.ExpiryDate.Format(time.DateOnly), i.Quantity)
}

// Expired reports whether the item can no longer be sold at now.
func (i GroceryItem) Expired(now time.Time) bool {
	return !now.Before(i.ExpiryDate)
}

// IncreaseStock returns the quantity after adding by units to current.
func IncreaseStock(current int, by int) (int, error) {
	if by <= 0 {
		return current, fmt.Errorf("%w: can only increase stock by a positive amount, got %d", ErrInvalidAmount, by)
	}

	return current + by, nil
}

// LowStock returns all items with less than threshold units, keeping their order.
func LowStock[E StockItem[E]](items []E, threshold int) []E {
	low := []E{}

	for _, item := range items {
		if item.CurrentQuantity() < threshold {
			low = append(low, item)
		}
	}

	return low
}
