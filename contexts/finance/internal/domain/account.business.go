package domain

import (
	"errors"
	"fmt"
)

var ErrInsufficientFunds = errors.New("insufficient funds")

// Withdrawer is implemented by all accounts.
type Withdrawer interface {
	Deposit(amount int) error
	Withdraw(amount int) error
	CurrentBalance() int
}

var (
	_ Withdrawer = (*Account)(nil)
	_ Withdrawer = (*SavingsAccount)(nil)
)

// Account is a current account. It can be overdrawn.
type Account struct {
	Owner   string
	Balance int
}

func (a *Account) Deposit(amount int) error {
	if err := validAmount(amount); err != nil {
		return err
	}

	a.Balance += amount

	return nil
}

func (a *Account) Withdraw(amount int) error {
	if err := validAmount(amount); err != nil {
		return err
	}

	a.Balance -= amount

	return nil
}

func (a *Account) CurrentBalance() int { return a.Balance }

// SavingsAccount is an Account that can never be overdrawn.
type SavingsAccount struct {
	Account
}

func (s *SavingsAccount) Withdraw(amount int) error {
	if amount > s.Balance {
		return fmt.Errorf("%w: balance %d is less than %d", ErrInsufficientFunds, s.Balance, amount)
	}

	return s.Account.Withdraw(amount)
}
