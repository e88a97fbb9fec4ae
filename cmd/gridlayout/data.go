package main

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/go-theft-auto/datagrid"
)

// dataset is a CSV file whose first record names the columns.
type dataset struct {
	header []string
	rows   [][]string
	index  map[string]int
}

// loadCSV reads path, or stdin when path is "-".
func loadCSV(path string) (*dataset, error) {
	if path == "-" {
		return readCSV(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data: %w", err)
	}
	defer f.Close()
	d, err := readCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func readCSV(r io.Reader) (*dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("read csv: missing header record")
	}
	d := &dataset{
		header: records[0],
		rows:   records[1:],
		index:  make(map[string]int, len(records[0])),
	}
	for i, key := range d.header {
		if _, dup := d.index[key]; dup {
			return nil, fmt.Errorf("read csv: duplicate column %q", key)
		}
		d.index[key] = i
	}
	return d, nil
}

// value returns the field of row under key, or "" when the row is short or
// the key is not a CSV column.
func (d *dataset) value(row int, key string) string {
	i, ok := d.index[key]
	if !ok || row < 0 || row >= len(d.rows) || i >= len(d.rows[row]) {
		return ""
	}
	return d.rows[row][i]
}

// columns describes every CSV column as a sortable, resizable text column.
func (d *dataset) columns() []datagrid.Column {
	cols := make([]datagrid.Column, len(d.header))
	for i, key := range d.header {
		cols[i] = datagrid.Column{Key: key, Label: key, Sortable: true, Resizable: true}
	}
	return cols
}

// sort orders rows by key. Fields that both parse as numbers compare
// numerically.
func (d *dataset) sort(key string, dir datagrid.SortDirection) error {
	i, ok := d.index[key]
	if !ok {
		return fmt.Errorf("sort %q: %w", key, datagrid.ErrUnknownColumn)
	}
	field := func(r []string) string {
		if i < len(r) {
			return r[i]
		}
		return ""
	}
	slices.SortStableFunc(d.rows, func(a, b []string) int {
		c := compareFields(field(a), field(b))
		if dir == datagrid.SortDescending {
			return -c
		}
		return c
	})
	return nil
}

func compareFields(a, b string) int {
	x, errA := strconv.ParseFloat(a, 64)
	y, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return cmp.Compare(x, y)
	}
	return cmp.Compare(a, b)
}
