// Package cmd is the command line interface of typedrepo.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-arrower/typedrepo"
	acmd "github.com/go-arrower/typedrepo/cmd"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "typedrepo",
		Short: "Demos of generic, typed repositories",
		Long: `Each demo keeps its items in typed repositories and prints what happens to them:
a warehouse, health records, grading, stock saved to a store, and finance.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
}

// NewTypedrepoCLI initialises the complete typedrepo cli with its commands and returns the root command.
// Each call has its own configuration, so the commands can be executed in parallel tests.
func NewTypedrepoCLI() *cobra.Command {
	vip := typedrepo.DefaultViper()

	rootCmd := newRootCmd()

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "configuration file")
	flags.String("environment", "", "one of: local, test, dev, prod")
	flags.String("data-dir", "", "directory the store keeps its files in")
	flags.String("store-format", "", "one of: json, yaml, sqlite")
	flags.String("log-level", "", "e.g. info, debug, or typedrepo:debug")

	bindFlags(vip, rootCmd, map[string]string{
		"environment":  "environment",
		"data_dir":     "data-dir",
		"store_format": "store-format",
		"log_level":    "log-level",
	})

	rootCmd.AddCommand(acmd.Version("typedrepo"))
	rootCmd.AddCommand(newWarehouseCmd(vip))
	rootCmd.AddCommand(newHealthCmd(vip))
	rootCmd.AddCommand(newGradingCmd(vip))
	rootCmd.AddCommand(newStockCmd(vip))
	rootCmd.AddCommand(newFinanceCmd(vip))
	rootCmd.AddCommand(newAllCmd(vip))

	return rootCmd
}

// bindFlags binds the flags of cmd to the viper keys, so a flag overwrites the config file and the environment.
// Flags that are not set leave the value to viper.
func bindFlags(vip *typedrepo.Viper, cmd *cobra.Command, keysToFlags map[string]string) {
	for key, flag := range keysToFlags {
		f := cmd.PersistentFlags().Lookup(flag)
		if f == nil {
			f = cmd.Flags().Lookup(flag)
		}

		if err := vip.BindPFlag(key, f); err != nil {
			panic(fmt.Sprintf("could not bind flag %s: %v", flag, err))
		}
	}
}

// Execute runs the typedrepo cli.
func Execute() {
	if err := NewTypedrepoCLI().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
