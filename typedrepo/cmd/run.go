package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/go-arrower/typedrepo"
	finance "github.com/go-arrower/typedrepo/contexts/finance/init"
	grading "github.com/go-arrower/typedrepo/contexts/grading/init"
	health "github.com/go-arrower/typedrepo/contexts/health/init"
	stock "github.com/go-arrower/typedrepo/contexts/stock/init"
	warehouse "github.com/go-arrower/typedrepo/contexts/warehouse/init"
)

// demo is implemented by every context.
type demo interface {
	Run(ctx context.Context, w io.Writer) error
}

type newDemoFunc func(di *typedrepo.Container) (demo, error)

func newWarehouse(di *typedrepo.Container) (demo, error) { return warehouse.NewWarehouseContext(di) }
func newHealth(di *typedrepo.Container) (demo, error)    { return health.NewHealthContext(di) }
func newGrading(di *typedrepo.Container) (demo, error)   { return grading.NewGradingContext(di) }
func newStock(di *typedrepo.Container) (demo, error)     { return stock.NewStockContext(di) }
func newFinance(di *typedrepo.Container) (demo, error)   { return finance.NewFinanceContext(di) }

func newWarehouseCmd(vip *typedrepo.Viper) *cobra.Command {
	return newDemoCmd(vip, "warehouse", "Stock electronics and groceries", newWarehouse)
}

func newHealthCmd(vip *typedrepo.Viper) *cobra.Command {
	return newDemoCmd(vip, "health", "Register patients and issue prescriptions", newHealth)
}

func newGradingCmd(vip *typedrepo.Viper) *cobra.Command {
	cmd := newDemoCmd(vip, "grading", "Grade students and write a report", newGrading)

	cmd.Flags().String("input", "", "file of `id, name, score` lines, uses a sample if empty")
	cmd.Flags().String("report", "", "file the report is written to, relative to the data dir")

	bindFlags(vip, cmd, map[string]string{
		"grading.input":  "input",
		"grading.report": "report",
	})

	return cmd
}

func newStockCmd(vip *typedrepo.Viper) *cobra.Command {
	return newDemoCmd(vip, "stock", "Save the inventory to the store and load it again", newStock)
}

func newFinanceCmd(vip *typedrepo.Viper) *cobra.Command {
	return newDemoCmd(vip, "finance", "Record transactions and process payments", newFinance)
}

func newAllCmd(vip *typedrepo.Viper) *cobra.Command {
	return newDemoCmd(vip, "all", "Run all demos", newWarehouse, newHealth, newGrading, newStock, newFinance)
}

func newDemoCmd(vip *typedrepo.Viper, use string, short string, demos ...newDemoFunc) *cobra.Command {
	return &cobra.Command{
		Use:                   use,
		Short:                 short,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
			defer stop()

			conf, err := loadConfig(vip, cmd)
			if err != nil {
				return err
			}

			di, shutdown, err := typedrepo.InitialiseDefaultDependencies(ctx, conf, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("could not start %s: %w", use, err)
			}

			defer func() {
				err = errors.Join(err, shutdown(context.WithoutCancel(ctx)))
			}()

			for _, newDemo := range demos {
				d, err := newDemo(di)
				if err != nil {
					return fmt.Errorf("could not start %s: %w", use, err)
				}

				if err := d.Run(ctx, cmd.OutOrStdout()); err != nil {
					return fmt.Errorf("could not run %s: %w", use, err)
				}
			}

			return nil
		},
	}
}

// loadConfig reads the configuration file given with --config, if any.
// Flags and environment variables overwrite its values.
func loadConfig(vip *typedrepo.Viper, cmd *cobra.Command) (*typedrepo.Config, error) {
	if file, _ := cmd.Flags().GetString("config"); file != "" {
		vip.SetConfigFile(file)

		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	conf := &typedrepo.Config{}
	if err := vip.Unmarshal(conf); err != nil {
		return nil, err //nolint:wrapcheck // Unmarshal says what failed
	}

	return conf, nil
}
