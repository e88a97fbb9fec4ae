package datagrid

import (
	"maps"
	"strings"
)

// gridStore holds per-grid state across frames.
var gridStore = NewFrameStore[gridState]()

// ColumnResizeFunc receives the columns pinned to their rendered widths
// after a resize and the sum of those widths.
type ColumnResizeFunc func(columns []Column, totalWidth float32)

// GridProps describes a grid for one frame.
type GridProps struct {
	Columns  []Column
	RowCount int

	// ItemRenderer draws body cells. It is also called outside the frame,
	// with a measuring Context, to size them.
	ItemRenderer CellRenderer

	// MaxHeight caps the grid's height; taller content scrolls under a
	// sticky header. 0 means no cap.
	MaxHeight float32

	// Width fixes the grid's width, clamped to the available width.
	// 0 fills the available width.
	Width float32

	SortBy        string
	SortDirection SortDirection
	OnSortChange  SortChangeFunc

	OnColumnResize ColumnResizeFunc
	OnRowClick     func(row int)

	// MeasurementResetter is offered the probe's resetters before each
	// re-measurement, so cached sizes of changed cells can be dropped.
	MeasurementResetter func(Resetters)

	// ContentVersion signals that cell content changed. Any change starts a
	// re-measurement, as do changes to RowCount and to the column keys.
	ContentVersion uint64
}

// gridKey is what a grid compares between frames to decide whether to
// re-measure.
type gridKey struct {
	rowCount int
	columns  string
	version  uint64
}

func newGridKey(p *GridProps) gridKey {
	return gridKey{
		rowCount: p.RowCount,
		columns:  strings.Join(columnKeys(p.Columns), "\x00"),
		version:  p.ContentVersion,
	}
}

type resizeDrag struct {
	active     bool
	key        string
	startX     float32
	startWidth float32
	width      float32
	edgeX      float32 // screen X of the column's right edge when the drag began
}

type gridState struct {
	id       ID
	probe    *CellProbe
	measurer *Measurer
	key      gridKey
	snapshot Snapshot
	commits  int

	// widthByKey holds the widths the table drew each column at.
	widthByKey map[string]float32

	resize           resizeDrag
	scrollX, scrollY float32

	warned map[string]bool
}

func (st *gridState) init(ctx *Context, id ID) {
	st.id = id
	st.probe = NewCellProbe(ctx)
	st.widthByKey = make(map[string]float32)
	st.warned = make(map[string]bool)
}

func (st *gridState) commit(s Snapshot) {
	st.snapshot = s
	st.commits++
}

func (st *gridState) inputs(p *GridProps) Inputs {
	in := ProbeInputs(st.probe, p.RowCount, len(p.Columns))
	in.MeasurementResetter = p.MeasurementResetter
	return in
}

// warnOnce logs a contract violation the first time it is seen for this grid.
func (st *gridState) warnOnce(key, msg string, args ...any) {
	if st.warned[key] {
		return
	}
	st.warned[key] = true
	gridLogger.Warn(msg, append([]any{"grid", st.id}, args...)...)
}

// validate reports misconfigured columns. The affected interaction becomes
// a no-op; nothing else changes.
func (st *gridState) validate(p *GridProps) {
	for _, key := range duplicateKeys(p.Columns) {
		st.warnOnce("dup:"+key, "duplicate column key", "column", key)
	}
	for _, c := range p.Columns {
		if c.Sortable && p.OnSortChange == nil {
			st.warnOnce("sort:"+c.Key, "sortable column without OnSortChange", "column", c.Key)
		}
		if c.Resizable && p.OnColumnResize == nil {
			st.warnOnce("resize:"+c.Key, "resizable column without OnColumnResize", "column", c.Key)
		}
	}
}

// resizeEnd pins every column to its rendered width, with key at width,
// and hands the result to the caller.
func (st *gridState) resizeEnd(p *GridProps, key string, width float32) {
	if p.OnColumnResize == nil {
		return
	}
	cols, total, err := ResizeColumns(p.Columns, key, width, st.widthByKey)
	if err != nil {
		gridLogger.Warn("column resize ignored", "grid", st.id, "error", err)
		return
	}
	if gridVerbose() {
		gridLogger.Debug("column resized", "grid", st.id, "column", key, "width", width, "total", total)
	}
	p.OnColumnResize(cols, total)
}

// Grid is the result of drawing a grid for one frame. Its snapshot, commit
// count and column widths are those the frame was drawn with; a measurement
// that commits after the frame shows up in the next frame's Grid.
type Grid struct {
	st      *gridState
	rect    Rect
	drawn   Snapshot
	commits int
	widths  map[string]float32
}

// DataGrid draws a grid and returns its frame state.
//
// The first frame a grid appears it is drawn with zero widths and fallback
// row heights, and its cells are measured after the frame has been
// rendered. Later frames re-measure, before drawing, when the row count,
// the column keys or ContentVersion change, or when Grid.Invalidate was
// called.
//
// DataGrid returns nil when ctx is measuring a cell.
func (ctx *Context) DataGrid(id string, props GridProps) *Grid {
	if ctx.measuring {
		return nil
	}

	gid := ctx.GetID(id)
	st, created := gridStore.Get(gid)
	if created {
		st.init(ctx, gid)
	}

	st.validate(&props)
	st.probe.SetSource(props.Columns, props.RowCount, props.ItemRenderer)

	key := newGridKey(&props)
	in := st.inputs(&props)
	switch {
	case st.measurer == nil:
		st.measurer = NewMeasurer(in, st.commit)
		st.measurer.Mount(ctx)
		if gridVerbose() {
			gridLogger.Debug("grid mounted, measurement deferred", "grid", gid,
				"rows", props.RowCount, "cols", len(props.Columns))
		}
	case key != st.key || st.measurer.Pending():
		st.measurer.Update(in)
	}
	st.key = key

	origin := ctx.GetCursorPos()
	width := ctx.AvailableWidth()
	if props.Width > 0 {
		width = minf(props.Width, width)
	}

	t := newTable(ctx, st, &props, origin, width)
	t.draw()
	ctx.AdvanceCursor(Vec2{X: t.rect.W, Y: t.rect.H})

	return &Grid{
		st:      st,
		rect:    t.rect,
		drawn:   st.snapshot.Clone(),
		commits: st.commits,
		widths:  maps.Clone(st.widthByKey),
	}
}

// Snapshot returns the committed layout the grid was drawn with.
func (g *Grid) Snapshot() Snapshot {
	return g.drawn.Clone()
}

// ColumnWidths returns the width each column was drawn at, by key.
func (g *Grid) ColumnWidths() map[string]float32 {
	return maps.Clone(g.widths)
}

// Rect returns the screen rectangle the grid occupied.
func (g *Grid) Rect() Rect {
	return g.rect
}

// Measured reports whether the grid's cells have been measured at least
// once. Unlike Snapshot it is live: it turns true as soon as the frame that
// mounted the grid has ended.
func (g *Grid) Measured() bool {
	return g.st.measurer.Measured()
}

// Commits returns how many layouts the grid had committed when it was drawn,
// the initial placeholder included.
func (g *Grid) Commits() int {
	return g.commits
}

// Invalidate drops cached measurements before the next frame's re-measure.
func (g *Grid) Invalidate(inv Invalidation) {
	g.st.measurer.Invalidate(inv)
}

// ScrollY returns the vertical scroll offset of the body.
func (g *Grid) ScrollY() float32 {
	return g.st.scrollY
}

// ScrollToRow scrolls the body so that row is visible from the next frame.
func (g *Grid) ScrollToRow(row int) {
	headerH := g.st.probe.host.style.headerHeight()
	heights := rowHeights(g.st.snapshot, g.st.key.rowCount, headerH)
	bodyH := g.rect.H - headerH
	c := NewRowClipper(heights, bodyH, g.st.scrollY)
	g.st.scrollY = c.ScrollToRow(row, g.st.scrollY, bodyH)
}
