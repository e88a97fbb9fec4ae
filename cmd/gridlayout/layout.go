package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/datagrid"
)

// layoutFlags are shared by the commands that run a headless grid.
type layoutFlags struct {
	data      string
	width     float32
	maxHeight float32
	sortBy    string
	sortDir   string
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.data, "data", "d", "", "CSV file whose first record names the columns (- for stdin)")
	cmd.Flags().Float32VarP(&f.width, "width", "w", 0, "Grid width in characters (default: config width, else 120)")
	cmd.Flags().Float32Var(&f.maxHeight, "max-height", 0, "Cap the grid height in lines (default: config max_height)")
	cmd.Flags().StringVar(&f.sortBy, "sort", "", "Sort rows by this column key before measuring")
	cmd.Flags().StringVar(&f.sortDir, "dir", "DESC", "Sort direction: ASC or DESC")
	_ = cmd.MarkFlagRequired("data")
}

const defaultWidth = 120

// request loads the config and data and builds a layoutRequest.
func (f *layoutFlags) request() (layoutRequest, datagrid.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return layoutRequest{}, cfg, err
	}
	data, err := loadCSV(f.data)
	if err != nil {
		return layoutRequest{}, cfg, err
	}

	cols, err := cfg.ColumnDefs()
	if err != nil {
		return layoutRequest{}, cfg, err
	}
	if len(cols) == 0 {
		cols = data.columns()
	}

	req := layoutRequest{
		Columns:   cols,
		Data:      data,
		Style:     cfg.Style(datagrid.TextCellStyle()),
		Width:     firstPositive(f.width, cfg.Grid.Width, defaultWidth),
		MaxHeight: firstPositive(f.maxHeight, cfg.Grid.MaxHeight),
	}

	if f.sortBy != "" {
		dir, err := parseSortDirection(f.sortDir)
		if err != nil {
			return layoutRequest{}, cfg, err
		}
		if err := data.sort(f.sortBy, dir); err != nil {
			return layoutRequest{}, cfg, err
		}
		req.SortBy, req.SortDirection = f.sortBy, dir
	}
	return req, cfg, nil
}

func parseSortDirection(s string) (datagrid.SortDirection, error) {
	switch strings.ToUpper(s) {
	case "ASC":
		return datagrid.SortAscending, nil
	case "DESC":
		return datagrid.SortDescending, nil
	default:
		return datagrid.SortNone, fmt.Errorf("invalid sort direction %q (want ASC or DESC)", s)
	}
}

func firstPositive(vals ...float32) float32 {
	for _, v := range vals {
		if v > 0 {
			return v
		}
	}
	return 0
}
