package init

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-arrower/typedrepo"
	"github.com/go-arrower/typedrepo/app"
	"github.com/go-arrower/typedrepo/cmd"
	"github.com/go-arrower/typedrepo/contexts/finance/internal/application"
	"github.com/go-arrower/typedrepo/contexts/finance/internal/domain"
	"github.com/go-arrower/typedrepo/repository"
	"github.com/go-arrower/typedrepo/secret"
)

const contextName = "finance"

func NewFinanceContext(di *typedrepo.Container) (*FinanceContext, error) {
	if err := di.EnsureAllDependenciesPresent(); err != nil {
		return nil, fmt.Errorf("could not initialise %s context: %w", contextName, err)
	}

	money, err := domain.NewMoney(di.Config.Finance.Currency)
	if err != nil {
		return nil, fmt.Errorf("could not initialise %s context: %w", contextName, err)
	}

	logger := di.Logger.With(slog.String("context", contextName))

	transactions := repository.NewMemoryQuantityRepository[domain.Transaction, domain.TransactionID](repository.WithLogger(logger))

	return &FinanceContext{
		money: money,
		pin:   di.Config.Finance.MobileMoneyPIN,

		recordTransaction: app.NewInstrumentedCommand(logger, di.Validate,
			application.NewRecordTransactionCommandHandler(transactions)),
		processPayment: app.NewInstrumentedRequest(logger, di.Validate,
			application.NewProcessPaymentRequestHandler(transactions)),
		adjustAmount: app.NewInstrumentedCommand(logger, di.Validate,
			application.NewAdjustAmountCommandHandler(transactions)),
		byCategory: app.NewInstrumentedQuery(logger, di.Validate,
			application.NewTransactionsByCategoryQueryHandler(transactions)),
	}, nil
}

type FinanceContext struct {
	money domain.Money
	pin   secret.Secret

	recordTransaction app.Command[application.RecordTransactionCommand]
	processPayment    app.Request[application.ProcessPaymentRequest, application.ProcessPaymentResponse]
	adjustAmount      app.Command[application.AdjustAmountCommand]
	byCategory        app.Query[application.TransactionsByCategoryQuery, application.TransactionsByCategoryResponse]
}

// Run records transactions, pays with every payment method, and withdraws from both kinds of accounts.
// Expected failures are printed and do not stop the run.
func (c *FinanceContext) Run(ctx context.Context, w io.Writer) error {
	p := cmd.NewPrinter(w)
	p.Section("Finance")

	for _, tx := range []domain.Transaction{
		{ID: 1, Date: date(5), Amount: 1250, Category: "groceries"},
		{ID: 2, Date: date(1), Amount: 85000, Category: "rent"},
		{ID: 3, Date: date(12), Amount: 3400, Category: "groceries"},
	} {
		if err := c.recordTransaction.H(ctx, application.RecordTransactionCommand{Transaction: tx}); err != nil {
			return fmt.Errorf("could not seed %s: %w", contextName, err)
		}
	}

	p.OK("recorded 3 transaction(s) in %s", c.money.Currency())

	c.pay(ctx, p, 4, 4999, "utilities", domain.BankTransfer{IBAN: "GH29 0300 1000 0000 1234"})
	c.pay(ctx, p, 5, 1500, "airtime", domain.MobileMoney{Phone: "+233 24 123 4567", PIN: c.pin, Entered: c.pin.Secret()})
	c.pay(ctx, p, 6, 1500, "airtime", domain.MobileMoney{Phone: "+233 24 123 4567", PIN: c.pin, Entered: "wrong pin"})
	c.pay(ctx, p, 7, 0, "investments", domain.CryptoWallet{Address: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"})

	err := c.adjustAmount.H(ctx, application.AdjustAmountCommand{ID: 1, Amount: 1350})
	report(p, err, "amount of transaction 1 is now %s", c.money.Format(1350))

	err = c.adjustAmount.H(ctx, application.AdjustAmountCommand{ID: 99, Amount: 500})
	report(p, err, "amount of transaction 99 is now %s", c.money.Format(500))

	res, err := c.byCategory.H(ctx, application.TransactionsByCategoryQuery{Category: "groceries"})
	if err != nil {
		return fmt.Errorf("could not list transactions: %w", err)
	}

	p.Line("groceries:")

	for _, tx := range res.Transactions {
		p.Line("  [%d] %s %s", tx.ID, tx.Date.Format(time.DateOnly), c.money.Format(tx.Amount))
	}

	p.Line("  total: %s", c.money.Format(res.Total))

	c.withdraw(p, "current account", &domain.Account{Owner: "Ama", Balance: 10000}, 15000)
	c.withdraw(p, "savings account", &domain.SavingsAccount{Account: domain.Account{Owner: "Ama", Balance: 10000}}, 15000)

	return nil
}

func (c *FinanceContext) pay(ctx context.Context, p *cmd.Printer, id domain.TransactionID, amount int, category string, method domain.PaymentMethod) {
	res, err := c.processPayment.H(ctx, application.ProcessPaymentRequest{
		ID:       id,
		Date:     date(20),
		Amount:   amount,
		Category: category,
		Method:   method,
	})
	report(p, err, "paid %s by %s, reference %s", c.money.Format(amount), method.Method(), res.Receipt.Reference)
}

func (c *FinanceContext) withdraw(p *cmd.Printer, name string, account domain.Withdrawer, amount int) {
	err := account.Withdraw(amount)
	report(p, err, "withdrew %s from %s, balance %s", c.money.Format(amount), name, c.money.Format(account.CurrentBalance()))
}

func date(day int) time.Time {
	return time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
}

func report(p *cmd.Printer, err error, format string, args ...any) {
	if err != nil {
		p.Fail(err)
		return
	}

	p.OK(format, args...)
}
