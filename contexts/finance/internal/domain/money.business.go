package domain

import (
	"errors"
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrUnknownCurrency = errors.New("unknown currency")

// Money formats amounts given in minor units of a currency.
type Money struct {
	unit    currency.Unit
	scale   int
	printer *message.Printer
}

// NewMoney returns the Money for an ISO 4217 code, e.g. "USD".
func NewMoney(code string) (Money, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}

	scale, _ := currency.Standard.Rounding(unit)

	return Money{
		unit:    unit,
		scale:   scale,
		printer: message.NewPrinter(language.English),
	}, nil
}

func (m Money) Currency() string { return m.unit.String() }

// Format returns amount with the currency code in front, e.g. "USD 12.50" for 1250.
func (m Money) Format(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	if m.scale == 0 {
		return m.printer.Sprintf("%s %s%d", m.unit.String(), sign, amount)
	}

	div := 1
	for range m.scale {
		div *= 10
	}

	return m.printer.Sprintf("%s %s%d", m.unit.String(), sign, amount/div) + fmt.Sprintf(".%0*d", m.scale, amount%div)
}
