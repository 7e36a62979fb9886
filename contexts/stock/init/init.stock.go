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
	"github.com/go-arrower/typedrepo/contexts/stock/internal/application"
	"github.com/go-arrower/typedrepo/contexts/stock/internal/domain"
	"github.com/go-arrower/typedrepo/repository"
)

const contextName = "stock"

func NewStockContext(di *typedrepo.Container) (*StockContext, error) {
	if err := di.EnsureAllDependenciesPresent(); err != nil {
		return nil, fmt.Errorf("could not initialise %s context: %w", contextName, err)
	}

	logger := di.Logger.With(slog.String("context", contextName))

	return &StockContext{
		di:     di,
		logger: logger,
		name:   repository.DefaultName[domain.InventoryItem](),
	}, nil
}

// StockContext saves the inventory to the configured store and loads it back.
// Loading happens into a fresh repository, as a restarted program would do.
type StockContext struct {
	di     *typedrepo.Container
	logger *slog.Logger
	name   string
}

type inventory struct {
	add  app.Command[application.AddItemCommand]
	list app.Query[application.ListItemsQuery, application.ListItemsResponse]
	save app.Command[application.SaveInventoryCommand]
	load app.Request[application.LoadInventoryRequest, application.LoadInventoryResponse]
}

func (c *StockContext) newInventory() inventory {
	repo := repository.NewMemoryQuantityRepository[domain.InventoryItem, domain.ItemID](repository.WithLogger(c.logger))

	return inventory{
		add:  app.NewInstrumentedCommand(c.logger, c.di.Validate, application.NewAddItemCommandHandler(repo)),
		list: app.NewInstrumentedQuery(c.logger, c.di.Validate, application.NewListItemsQueryHandler(repo)),
		save: app.NewInstrumentedCommand(c.logger, c.di.Validate, application.NewSaveInventoryCommandHandler(repo, c.di.Store)),
		load: app.NewInstrumentedRequest(c.logger, c.di.Validate, application.NewLoadInventoryRequestHandler(repo, c.di.Store)),
	}
}

func (c *StockContext) Run(ctx context.Context, w io.Writer) error {
	p := cmd.NewPrinter(w)
	p.Section("Stock")

	before := c.newInventory()

	for _, item := range []domain.InventoryItem{
		{ID: 1, Name: "Cement", Quantity: 40, DateAdded: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Nails", Quantity: 500, DateAdded: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Name: "Roofing Sheets", Quantity: 120, DateAdded: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)},
	} {
		if err := before.add.H(ctx, application.AddItemCommand{Item: item}); err != nil {
			return fmt.Errorf("could not seed stock: %w", err)
		}
	}

	if err := printInventory(ctx, p, before); err != nil {
		return err
	}

	if err := before.save.H(ctx, application.SaveInventoryCommand{Name: c.name}); err != nil {
		return fmt.Errorf("could not save stock: %w", err)
	}

	p.OK("saved inventory as %s (%s)", c.name, c.di.Config.StoreFormat)

	after := c.newInventory()

	res, err := after.load.H(ctx, application.LoadInventoryRequest{Name: c.name})
	if err != nil {
		return fmt.Errorf("could not load stock: %w", err)
	}

	p.OK("loaded %d item(s) into a new repository", res.Loaded)

	if err := printInventory(ctx, p, after); err != nil {
		return err
	}

	p.Line("loading the same inventory again:")

	res, err = after.load.H(ctx, application.LoadInventoryRequest{Name: c.name})
	report(p, err, "loaded %d item(s)", res.Loaded)

	return nil
}

func printInventory(ctx context.Context, p *cmd.Printer, inv inventory) error {
	res, err := inv.list.H(ctx, application.ListItemsQuery{})
	if err != nil {
		return fmt.Errorf("could not list stock: %w", err)
	}

	for _, item := range res.Items {
		p.Line("  %s", item)
	}

	p.Line("  total units: %d", res.TotalUnits)

	return nil
}

func report(p *cmd.Printer, err error, format string, args ...any) {
	if err != nil {
		p.Fail(err)
		return
	}

	p.OK(format, args...)
}
