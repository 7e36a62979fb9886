package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/go-arrower/typedrepo/secret"
)

var ErrUnauthorised = errors.New("unauthorised")

// PaymentMethod pays an amount and confirms it with a Receipt.
type PaymentMethod interface {
	Method() string
	Pay(amount int) (Receipt, error)
}

type Receipt struct {
	Method    string
	Amount    int
	Reference uuid.UUID
}

var (
	_ PaymentMethod = BankTransfer{}
	_ PaymentMethod = MobileMoney{}
	_ PaymentMethod = CryptoWallet{}
)

type BankTransfer struct {
	IBAN string
}

func (b BankTransfer) Method() string { return "bank transfer" }

func (b BankTransfer) Pay(amount int) (Receipt, error) {
	return pay(b, amount)
}

// MobileMoney pays only if the PIN the customer entered matches the PIN of the wallet.
type MobileMoney struct {
	Phone   string
	PIN     secret.Secret
	Entered string
}

func (m MobileMoney) Method() string { return "mobile money" }

func (m MobileMoney) Pay(amount int) (Receipt, error) {
	if !m.PIN.Matches(m.Entered) {
		return Receipt{}, fmt.Errorf("%w: wrong pin for %s", ErrUnauthorised, m.Phone)
	}

	return pay(m, amount)
}

type CryptoWallet struct {
	Address string
}

func (c CryptoWallet) Method() string { return "crypto wallet" }

func (c CryptoWallet) Pay(amount int) (Receipt, error) {
	return pay(c, amount)
}

func pay(method PaymentMethod, amount int) (Receipt, error) {
	if err := validAmount(amount); err != nil {
		return Receipt{}, fmt.Errorf("could not pay by %s: %w", method.Method(), err)
	}

	return Receipt{
		Method:    method.Method(),
		Amount:    amount,
		Reference: uuid.New(),
	}, nil
}
