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
	"github.com/go-arrower/typedrepo/contexts/warehouse/internal/application"
	"github.com/go-arrower/typedrepo/contexts/warehouse/internal/domain"
	"github.com/go-arrower/typedrepo/repository"
)

const contextName = "warehouse"

// lowStockThreshold is the number of units below which an item is reported for reordering.
const lowStockThreshold = 5

func NewWarehouseContext(di *typedrepo.Container) (*WarehouseContext, error) {
	if err := di.EnsureAllDependenciesPresent(); err != nil {
		return nil, fmt.Errorf("could not initialise %s context: %w", contextName, err)
	}

	logger := di.Logger.With(slog.String("context", contextName))

	electronics := repository.NewMemoryQuantityRepository[domain.ElectronicItem, domain.ItemID](repository.WithLogger(logger))
	groceries := repository.NewMemoryQuantityRepository[domain.GroceryItem, domain.ItemID](repository.WithLogger(logger))

	return &WarehouseContext{
		electronics: newStock[domain.ElectronicItem](logger, di, electronics),
		groceries:   newStock[domain.GroceryItem](logger, di, groceries),
	}, nil
}

// WarehouseContext keeps electronics and groceries in two separate repositories.
type WarehouseContext struct {
	electronics stock[domain.ElectronicItem]
	groceries   stock[domain.GroceryItem]
}

// stock bundles the use cases of one kind of item.
type stock[E domain.StockItem[E]] struct {
	add            app.Command[application.AddItemCommand[E]]
	increase       app.Request[application.IncreaseStockRequest, application.IncreaseStockResponse]
	updateQuantity app.Command[application.UpdateQuantityCommand]
	remove         app.Command[application.RemoveItemCommand]
	list           app.Query[application.ListItemsQuery, []E]
}

func newStock[E domain.StockItem[E]](
	logger *slog.Logger,
	di *typedrepo.Container,
	repo repository.QuantityRepository[E, domain.ItemID],
) stock[E] {
	return stock[E]{
		add:            app.NewInstrumentedCommand(logger, di.Validate, application.NewAddItemCommandHandler[E](repo)),
		increase:       app.NewInstrumentedRequest(logger, di.Validate, application.NewIncreaseStockRequestHandler[E](repo)),
		updateQuantity: app.NewInstrumentedCommand(logger, di.Validate, application.NewUpdateQuantityCommandHandler[E](repo)),
		remove:         app.NewInstrumentedCommand(logger, di.Validate, application.NewRemoveItemCommandHandler[E](repo)),
		list:           app.NewInstrumentedQuery(logger, di.Validate, application.NewListItemsQueryHandler[E](repo)),
	}
}

func (s stock[E]) seed(ctx context.Context, items ...E) error {
	for _, item := range items {
		if err := s.add.H(ctx, application.AddItemCommand[E]{Item: item}); err != nil {
			return fmt.Errorf("could not seed %s: %w", contextName, err)
		}
	}

	return nil
}

func (s stock[E]) print(ctx context.Context, p *cmd.Printer, title string, query application.ListItemsQuery) error {
	items, err := s.list.H(ctx, query)
	if err != nil {
		return fmt.Errorf("could not list %s: %w", title, err)
	}

	p.Line("%s (%d):", title, len(items))

	for _, item := range items {
		p.Line("  %s", item)
	}

	return nil
}

// Run seeds the warehouse, prints the stock, and walks through the operations that are expected to fail.
// Expected failures are printed and do not stop the run.
func (c *WarehouseContext) Run(ctx context.Context, w io.Writer) error {
	p := cmd.NewPrinter(w)
	p.Section("Warehouse")

	if err := c.electronics.seed(ctx, seedElectronics()...); err != nil {
		return err
	}

	if err := c.groceries.seed(ctx, seedGroceries()...); err != nil {
		return err
	}

	if err := c.printStock(ctx, p); err != nil {
		return err
	}

	res, err := c.electronics.increase.H(ctx, application.IncreaseStockRequest{ID: 1, By: 5})
	report(p, err, "increased stock of electronic item %d to %d", res.ID, res.Quantity)

	err = c.groceries.updateQuantity.H(ctx, application.UpdateQuantityCommand{ID: 2, Quantity: 40})
	report(p, err, "set quantity of grocery item 2 to 40")

	p.Line("adding an electronic item with an existing id:")
	err = c.electronics.add.H(ctx, application.AddItemCommand[domain.ElectronicItem]{
		Item: domain.ElectronicItem{ID: 1, Name: "Tablet", Quantity: 4, Brand: "Lenovo", WarrantyMonths: 12},
	})
	report(p, err, "added Tablet")

	p.Line("removing a grocery item that does not exist:")
	err = c.groceries.remove.H(ctx, application.RemoveItemCommand{ID: 99})
	report(p, err, "removed grocery item 99")

	p.Line("setting a negative quantity:")
	err = c.electronics.updateQuantity.H(ctx, application.UpdateQuantityCommand{ID: 2, Quantity: -3})
	report(p, err, "set quantity of electronic item 2 to -3")

	err = c.electronics.print(ctx, p, fmt.Sprintf("Electronics below %d units", lowStockThreshold), application.ListItemsQuery{LowStockBelow: lowStockThreshold})
	if err != nil {
		return err
	}

	return c.printStock(ctx, p)
}

func (c *WarehouseContext) printStock(ctx context.Context, p *cmd.Printer) error {
	if err := c.electronics.print(ctx, p, "Electronics", application.ListItemsQuery{}); err != nil {
		return err
	}

	return c.groceries.print(ctx, p, "Groceries", application.ListItemsQuery{})
}

func report(p *cmd.Printer, err error, format string, args ...any) {
	if err != nil {
		p.Fail(err)
		return
	}

	p.OK(format, args...)
}

func seedElectronics() []domain.ElectronicItem {
	return []domain.ElectronicItem{
		{ID: 1, Name: "Laptop", Quantity: 10, Brand: "Dell", WarrantyMonths: 24},
		{ID: 2, Name: "Smartphone", Quantity: 3, Brand: "Samsung", WarrantyMonths: 12},
		{ID: 3, Name: "Headphones", Quantity: 25, Brand: "Sony", WarrantyMonths: 6},
	}
}

func seedGroceries() []domain.GroceryItem {
	return []domain.GroceryItem{
		{ID: 1, Name: "Milk", Quantity: 30, ExpiryDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Bread", Quantity: 15, ExpiryDate: time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)},
	}
}
