// Package domain contains the transactions, payment methods, and accounts of the finance context.
// All amounts are in minor units of the currency, e.g. cents.
package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidAmount = errors.New("invalid amount")

type TransactionID int

// Transaction is a booked payment. The amount is its quantity.
type Transaction struct {
	ID       TransactionID
	Date     time.Time `validate:"required"`
	Amount   int       `validate:"gt=0"`
	Category string    `validate:"required"`

	// Reference is the confirmation of the payment method, if the transaction was paid with one.
	Reference uuid.UUID
}

func (t Transaction) Identity() TransactionID { return t.ID }
func (t Transaction) CurrentQuantity() int    { return t.Amount }

func (t Transaction) WithQuantity(amount int) Transaction {
	t.Amount = amount

	return t
}

// InCategory returns a predicate matching all transactions of category.
func InCategory(category string) func(Transaction) bool {
	return func(t Transaction) bool {
		return t.Category == category
	}
}

// Total sums up the amounts of all transactions.
func Total(transactions []Transaction) int {
	total := 0
	for _, t := range transactions {
		total += t.Amount
	}

	return total
}

func validAmount(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}

	return nil
}
