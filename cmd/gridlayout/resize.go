package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/datagrid"
)

var (
	resizeFlags  layoutFlags
	resizeColumn string
	resizeWidth  float32
	resizeFormat string
	resizeSave   string
)

var resizeCmd = &cobra.Command{
	Use:   "resize",
	Short: "Resize one column and pin every column to its drawn width",
	Long: `Measures the grid, then resizes --column to --to characters the way dragging
its header edge does: every column is pinned at the width it was drawn with and
stops growing. Prints the pinned widths and their total. With --save, the
config is written back with the pinned columns.`,
	Example: `  gridlayout resize --data cars.csv --column name --to 30
  gridlayout resize --data cars.csv --config grid.toml --column price --to 12 --save grid.toml`,
	RunE: runResize,
}

func init() {
	resizeFlags.register(resizeCmd)
	resizeCmd.Flags().StringVar(&resizeColumn, "column", "", "Key of the column to resize")
	resizeCmd.Flags().Float32Var(&resizeWidth, "to", 0, "New width of the column in characters")
	resizeCmd.Flags().StringVarP(&resizeFormat, "format", "f", string(FormatHuman), "Output format: human or json")
	resizeCmd.Flags().StringVar(&resizeSave, "save", "", "Write the config with the pinned columns to this path")
	_ = resizeCmd.MarkFlagRequired("column")
	_ = resizeCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(resizeCmd)
}

// resizeReport is the result of resize.
type resizeReport struct {
	Column  string           `json:"column"`
	Width   float32          `json:"width"`
	Columns []resizedColumn  `json:"columns"`
	Total   float32          `json:"total"`
	Config  *datagrid.Config `json:"-"`
}

type resizedColumn struct {
	Key   string  `json:"key"`
	Width float32 `json:"width"`
}

// resizeLayout measures req and resizes key to width.
func resizeLayout(req layoutRequest, cfg datagrid.Config, key string, width float32) (*resizeReport, error) {
	if width <= 0 {
		return nil, errors.New("resize: width must be positive")
	}
	res, err := runLayout(req)
	if err != nil {
		return nil, err
	}
	cols, total, err := datagrid.ResizeColumns(req.Columns, key, width, res.Drawn)
	if err != nil {
		return nil, err
	}

	r := &resizeReport{Column: key, Width: width, Total: total, Columns: make([]resizedColumn, len(cols))}
	for i, c := range cols {
		r.Columns[i] = resizedColumn{Key: c.Key, Width: c.Width}
	}
	cfg.Columns = datagrid.ColumnConfigs(cols)
	r.Config = &cfg
	return r, nil
}

func runResize(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(resizeFormat)
	if err != nil {
		return err
	}
	req, cfg, err := resizeFlags.request()
	if err != nil {
		return err
	}
	report, err := resizeLayout(req, cfg, resizeColumn, resizeWidth)
	if err != nil {
		return err
	}

	if resizeSave != "" {
		data, err := report.Config.Marshal()
		if err != nil {
			return err
		}
		if err := os.WriteFile(resizeSave, data, 0o644); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		slog.Info("config saved", "path", resizeSave, "columns", len(report.Columns))
	}

	out := cmd.OutOrStdout()
	if format == FormatJSON {
		return writeJSON(out, report)
	}
	rows := make([][]any, len(report.Columns))
	for i, c := range report.Columns {
		rows[i] = []any{c.Key, formatSize(c.Width)}
	}
	if err := writeTable(out, []any{"Key", "Width"}, rows); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "total: %s\n", formatSize(report.Total))
	return err
}
