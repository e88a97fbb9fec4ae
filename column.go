package datagrid

import (
	"errors"
	"fmt"
)

// ErrUnknownColumn is returned when a column key is not part of a grid.
var ErrUnknownColumn = errors.New("unknown column")

// Align controls horizontal placement of a cell's content.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// String returns the alignment's config name.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlign converts a config name into an Align. Empty means left.
func ParseAlign(s string) (Align, error) {
	switch s {
	case "", "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("invalid alignment %q", s)
}

// Column describes one grid column. Key must be unique within a grid; it
// joins measured widths to the column across reorders.
type Column struct {
	Key       string
	Label     string
	Align     Align
	Resizable bool
	Fixed     bool // Stays on the left while the body scrolls horizontally
	Sortable  bool

	// FlexGrow is the column's share of extra width. nil means 1.
	FlexGrow *int

	// Width pins the column. 0 uses the measured width.
	Width float32

	// GetLabel, when set, replaces Label.
	GetLabel func() string
}

// Grow returns a pointer to n for Column.FlexGrow.
func Grow(n int) *int {
	return &n
}

func (c Column) label() string {
	if c.GetLabel != nil {
		return c.GetLabel()
	}
	return c.Label
}

// resolvedWidth picks the pinned width, then the measured one, then 0.
func (c Column) resolvedWidth(measured float32) float32 {
	if c.Width > 0 {
		return c.Width
	}
	if measured > 0 {
		return measured
	}
	return 0
}

func (c Column) resolvedFlexGrow() int {
	if c.FlexGrow != nil {
		return max(*c.FlexGrow, 0)
	}
	return 1
}

// ResizeColumns pins every column to its width in widthByKey and column key
// to newWidth. Pinned columns stop growing (FlexGrow 0). It returns the new
// columns and the sum of their widths.
//
// A column missing from widthByKey keeps its current Width.
func ResizeColumns(columns []Column, key string, newWidth float32, widthByKey map[string]float32) ([]Column, float32, error) {
	found := false
	out := make([]Column, len(columns))
	var total float32
	for i, col := range columns {
		w, ok := widthByKey[col.Key]
		if !ok {
			w = col.Width
		}
		if col.Key == key {
			w = newWidth
			found = true
		}
		col.Width = w
		col.FlexGrow = Grow(0)
		out[i] = col
		total += w
	}
	if !found {
		return nil, 0, fmt.Errorf("resize %q: %w", key, ErrUnknownColumn)
	}
	return out, total, nil
}

// columnKeys returns the keys in order.
func columnKeys(columns []Column) []string {
	keys := make([]string, len(columns))
	for i, c := range columns {
		keys[i] = c.Key
	}
	return keys
}

// duplicateKeys returns keys that appear more than once, in first-seen order.
func duplicateKeys(columns []Column) []string {
	seen := make(map[string]int, len(columns))
	var dups []string
	for _, c := range columns {
		seen[c.Key]++
		if seen[c.Key] == 2 {
			dups = append(dups, c.Key)
		}
	}
	return dups
}
