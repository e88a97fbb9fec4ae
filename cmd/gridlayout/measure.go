package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	measureFlags  layoutFlags
	measureFormat string
	measureRows   bool
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Measure a grid over CSV data",
	Long: `Runs the grid for two frames, a placeholder frame and the measured one, and
prints each column's measured and drawn width. The header row is measured with
the body, so no column is narrower than its label.`,
	Example: `  gridlayout measure --data cars.csv
  gridlayout measure --data cars.csv --config grid.toml --sort price --dir ASC --format json`,
	RunE: runMeasure,
}

func init() {
	measureFlags.register(measureCmd)
	measureCmd.Flags().StringVarP(&measureFormat, "format", "f", string(FormatHuman), "Output format: human or json")
	measureCmd.Flags().BoolVar(&measureRows, "rows", false, "Also list every row height (human format)")
	rootCmd.AddCommand(measureCmd)
}

// columnReport is one column of a measured layout.
type columnReport struct {
	Key      string  `json:"key"`
	Label    string  `json:"label"`
	Measured float32 `json:"measured"`
	Drawn    float32 `json:"drawn"`
	Pinned   bool    `json:"pinned,omitempty"`
	Fixed    bool    `json:"fixed,omitempty"`
}

// layoutReport is the result of measure.
type layoutReport struct {
	Columns        []columnReport `json:"columns"`
	RowHeights     []float32      `json:"rowHeights"`
	MeasuredWidth  float32        `json:"measuredWidth"`
	MeasuredHeight float32        `json:"measuredHeight"`
	GridWidth      float32        `json:"gridWidth"`
	GridHeight     float32        `json:"gridHeight"`
	Commits        int            `json:"commits"`
	SortBy         string         `json:"sortBy,omitempty"`
	SortDirection  string         `json:"sortDirection,omitempty"`
}

func newLayoutReport(req layoutRequest, res layoutResult) *layoutReport {
	r := &layoutReport{
		Columns:        make([]columnReport, len(req.Columns)),
		RowHeights:     res.Snapshot.Heights,
		MeasuredWidth:  res.Snapshot.Width,
		MeasuredHeight: res.Snapshot.Height,
		GridWidth:      res.Rect.W,
		GridHeight:     res.Rect.H,
		Commits:        res.Commits,
		SortBy:         req.SortBy,
		SortDirection:  string(req.SortDirection),
	}
	if r.RowHeights == nil {
		r.RowHeights = []float32{}
	}
	for i, c := range req.Columns {
		r.Columns[i] = columnReport{
			Key:      c.Key,
			Label:    c.Label,
			Measured: res.Snapshot.ColumnWidth(i),
			Drawn:    res.Drawn[c.Key],
			Pinned:   c.Width > 0,
			Fixed:    c.Fixed,
		}
	}
	return r
}

func runMeasure(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(measureFormat)
	if err != nil {
		return err
	}
	req, _, err := measureFlags.request()
	if err != nil {
		return err
	}
	res, err := runLayout(req)
	if err != nil {
		return err
	}

	report := newLayoutReport(req, res)
	out := cmd.OutOrStdout()
	if format == FormatJSON {
		return writeJSON(out, report)
	}

	rows := make([][]any, len(report.Columns))
	for i, c := range report.Columns {
		rows[i] = []any{c.Key, c.Label, formatSize(c.Measured), formatSize(c.Drawn), flags(c)}
	}
	if err := writeTable(out, []any{"Key", "Label", "Measured", "Drawn", "Flags"}, rows); err != nil {
		return err
	}

	if measureRows {
		rows = make([][]any, len(report.RowHeights))
		for i, h := range report.RowHeights {
			rows[i] = []any{strconv.Itoa(i), formatSize(h)}
		}
		if err := writeTable(out, []any{"Row", "Height"}, rows); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(out, "rows: %d  measured: %sx%s  grid: %sx%s\n",
		len(report.RowHeights),
		formatSize(report.MeasuredWidth), formatSize(report.MeasuredHeight),
		formatSize(report.GridWidth), formatSize(report.GridHeight))
	return err
}

func flags(c columnReport) string {
	switch {
	case c.Fixed && c.Pinned:
		return "fixed,pinned"
	case c.Fixed:
		return "fixed"
	case c.Pinned:
		return "pinned"
	}
	return ""
}
