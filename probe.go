package datagrid

import "math"

// Probe reports the natural size of grid cells. Implementations cache
// measurements until told to reset them.
type Probe interface {
	WidthOf(col int) float32
	HeightOf(row int) float32
	ResetAll()
	ResetColumn(col int)
	ResetRow(row int)
}

// Cell is what a CellRenderer draws. While measuring, Rect has a zero
// height, and a zero width unless the column is pinned to a width.
type Cell struct {
	RowIndex    int
	ColumnIndex int
	ColumnKey   string
	Align       Align
	Rect        Rect
}

// CellRenderer draws the content of one body cell.
type CellRenderer func(ctx *Context, cell Cell)

type cellKey struct {
	row int
	col string
}

// CellProbe measures cells by drawing them into a scratch DrawList and
// taking the bounds of what was drawn. Row rowCount is the header row, so a
// column is never narrower than its header.
//
// Sizes are cached per cell. Column widths are cached per column key, so a
// reorder reuses the measured cells.
type CellProbe struct {
	host *Context

	columns  []Column
	rowCount int
	render   CellRenderer

	cells   map[cellKey]Vec2
	widths  map[string]float32
	heights map[int]float32

	measured int // cells drawn, for diagnostics
}

// NewCellProbe creates a probe that measures with host's style and fonts.
func NewCellProbe(host *Context) *CellProbe {
	return &CellProbe{
		host:    host,
		cells:   make(map[cellKey]Vec2),
		widths:  make(map[string]float32),
		heights: make(map[int]float32),
	}
}

// SetSource updates what the probe measures. Cached sizes are kept; the
// caller invalidates them when cell content changes.
func (p *CellProbe) SetSource(columns []Column, rowCount int, render CellRenderer) {
	p.columns = columns
	p.rowCount = max(rowCount, 0)
	p.render = render
}

// WidthOf returns the widest cell of column col, including its header.
// It returns NaN when no cell of the column could be measured.
func (p *CellProbe) WidthOf(col int) float32 {
	if col < 0 || col >= len(p.columns) {
		return float32(math.NaN())
	}
	key := p.columns[col].Key
	if w, ok := p.widths[key]; ok {
		return w
	}

	w := float32(math.NaN())
	for row := 0; row <= p.rowCount; row++ {
		size, ok := p.cellSize(row, col)
		if !ok {
			continue
		}
		if math.IsNaN(float64(w)) || size.X > w {
			w = size.X
		}
	}
	if !math.IsNaN(float64(w)) {
		p.widths[key] = w
	}
	return w
}

// HeightOf returns the tallest cell of body row row.
// It returns NaN when no cell of the row could be measured.
func (p *CellProbe) HeightOf(row int) float32 {
	if row < 0 || row >= p.rowCount {
		return float32(math.NaN())
	}
	if h, ok := p.heights[row]; ok {
		return h
	}

	h := float32(math.NaN())
	for col := range p.columns {
		size, ok := p.cellSize(row, col)
		if !ok {
			continue
		}
		if math.IsNaN(float64(h)) || size.Y > h {
			h = size.Y
		}
	}
	if !math.IsNaN(float64(h)) {
		p.heights[row] = h
	}
	return h
}

// ResetAll drops every cached measurement.
func (p *CellProbe) ResetAll() {
	clear(p.cells)
	clear(p.widths)
	clear(p.heights)
}

// ResetColumn drops the cells of column col. Row heights depend on every
// column, so they are dropped too.
func (p *CellProbe) ResetColumn(col int) {
	if col < 0 || col >= len(p.columns) {
		return
	}
	key := p.columns[col].Key
	for k := range p.cells {
		if k.col == key {
			delete(p.cells, k)
		}
	}
	delete(p.widths, key)
	clear(p.heights)
}

// ResetRow drops the cells of row row. Column widths depend on every row,
// so they are dropped too.
func (p *CellProbe) ResetRow(row int) {
	for k := range p.cells {
		if k.row == row {
			delete(p.cells, k)
		}
	}
	delete(p.heights, row)
	clear(p.widths)
}

// Measured returns how many cells have been drawn for measurement.
func (p *CellProbe) Measured() int {
	return p.measured
}

func (p *CellProbe) cellSize(row, col int) (Vec2, bool) {
	c := p.columns[col]
	k := cellKey{row: row, col: c.Key}
	if size, ok := p.cells[k]; ok {
		return size, true
	}

	var size Vec2
	var ok bool
	if row == p.rowCount {
		size, ok = p.measureHeader(c), true
	} else {
		size, ok = p.measureCell(row, col)
	}
	if ok {
		p.cells[k] = size
	}
	return size, ok
}

func (p *CellProbe) measureHeader(c Column) Vec2 {
	style := p.host.style
	w := style.CellPadding*2 + p.host.MeasureText(c.label()).X
	if c.Sortable {
		w += sortIndicatorReserve(p.host)
	}
	return Vec2{X: w, Y: style.headerHeight()}
}

// measureCell draws one body cell at the origin of a scratch context.
// A cell that draws nothing cannot be measured.
func (p *CellProbe) measureCell(row, col int) (Vec2, bool) {
	if p.render == nil {
		return Vec2{}, false
	}

	m := p.host.newMeasureContext()
	defer releaseMeasureContext(m)

	c := p.columns[col]
	p.render(m, Cell{
		RowIndex:    row,
		ColumnIndex: col,
		ColumnKey:   c.Key,
		Align:       c.Align,
		Rect:        Rect{W: c.Width},
	})
	p.measured++

	bounds, ok := m.DrawList.Bounds()
	if !ok {
		return Vec2{}, false
	}
	style := p.host.style
	return Vec2{
		X: maxf(0, bounds.X+bounds.W) + style.CellPadding,
		Y: maxf(0, bounds.Y+bounds.H) + style.CellPaddingY,
	}, true
}
