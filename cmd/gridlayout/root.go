package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/datagrid"
)

var (
	// configPath is the --config flag value
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "gridlayout",
	Short: "Inspect datagrid layouts without a window",
	Long: `gridlayout runs the datagrid measurement pass over CSV data and prints the
column widths and row heights the grid would draw, in terminal character cells.
Columns and styling come from a TOML config; without one, every CSV column is
shown as a sortable, resizable text column.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		datagrid.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to a TOML grid config")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log measurement commits and invalidations")
}

// loadConfig returns the --config file, or the default config when the flag
// is empty.
func loadConfig() (datagrid.Config, error) {
	if configPath == "" {
		return datagrid.DefaultConfig(), nil
	}
	return datagrid.LoadConfig(configPath)
}
