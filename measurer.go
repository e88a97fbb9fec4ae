package datagrid

import (
	"math"
	"slices"
)

// ProbeFunc reports the natural size of the row or column at index.
// A probe may return NaN while the cell cannot be measured yet.
type ProbeFunc func(index int) float32

// Resetters drop cached measurements from a probe.
type Resetters struct {
	ResetMeasurements         func()
	ResetMeasurementForColumn func(index int)
	ResetMeasurementForRow    func(index int)
}

// Inputs are the values a Measurer reconciles against. The caller owns
// them; the Measurer only reads them during a pass.
type Inputs struct {
	RowCount int
	ColCount int

	// RowHeight and ColumnWidth are nil when that dimension is not measured.
	RowHeight   ProbeFunc
	ColumnWidth ProbeFunc

	// Resetters are handed to MeasurementResetter and used to forward
	// queued Invalidations.
	Resetters Resetters

	// MeasurementResetter, when set, is offered the resetters once per
	// update pass, before any probe runs.
	MeasurementResetter func(Resetters)
}

// ProbeInputs binds a Probe's query and reset functions into Inputs.
func ProbeInputs(p Probe, rowCount, colCount int) Inputs {
	return Inputs{
		RowCount:    rowCount,
		ColCount:    colCount,
		RowHeight:   p.HeightOf,
		ColumnWidth: p.WidthOf,
		Resetters: Resetters{
			ResetMeasurements:         p.ResetAll,
			ResetMeasurementForColumn: p.ResetColumn,
			ResetMeasurementForRow:    p.ResetRow,
		},
	}
}

// Dimension is one measured axis: a size per index and their sum.
type Dimension struct {
	Values []float32
	Total  float32
}

// Snapshot is a committed layout. A Measurer replaces its snapshot as a
// whole and never edits one in place.
type Snapshot struct {
	Widths  []float32
	Width   float32
	Heights []float32
	Height  float32
}

// Equal reports whether two snapshots hold the same values.
// Totals alone are not enough: reordered columns keep the sum.
func (s Snapshot) Equal(o Snapshot) bool {
	return s.Width == o.Width && s.Height == o.Height &&
		slices.Equal(s.Widths, o.Widths) && slices.Equal(s.Heights, o.Heights)
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Widths:  cloneSizes(s.Widths),
		Width:   s.Width,
		Heights: cloneSizes(s.Heights),
		Height:  s.Height,
	}
}

// RowHeight returns the committed height of row i, or 0 if out of range.
func (s Snapshot) RowHeight(i int) float32 {
	if i < 0 || i >= len(s.Heights) {
		return 0
	}
	return s.Heights[i]
}

// ColumnWidth returns the committed width of column i, or 0 if out of range.
func (s Snapshot) ColumnWidth(i int) float32 {
	if i < 0 || i >= len(s.Widths) {
		return 0
	}
	return s.Widths[i]
}

func cloneSizes(v []float32) []float32 {
	out := make([]float32, len(v))
	copy(out, v)
	return out
}

// ComputeRowHeights queries probe for rows [0, rowCount).
// It returns nil when probe is nil, which means rows were not requested.
func ComputeRowHeights(probe ProbeFunc, rowCount int) *Dimension {
	return measureAxis(probe, rowCount)
}

// ComputeColumnWidths queries probe for columns [0, colCount).
// It returns nil when probe is nil, which means columns were not requested.
func ComputeColumnWidths(probe ProbeFunc, colCount int) *Dimension {
	return measureAxis(probe, colCount)
}

func measureAxis(probe ProbeFunc, count int) *Dimension {
	if probe == nil {
		return nil
	}
	count = max(count, 0)
	d := &Dimension{Values: make([]float32, count)}
	for i := range count {
		v := normalizeSize(probe(i))
		d.Values[i] = v
		d.Total += v
	}
	return d
}

// normalizeSize maps unmeasurable results to 0. A cell whose content has not
// rendered yet reports NaN, and that is expected during the first pass.
func normalizeSize(v float32) float32 {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return v
}

// initialSnapshot is the placeholder shown before the first measurement:
// zeros for every requested dimension, nothing for the others.
func initialSnapshot(in Inputs) Snapshot {
	s := Snapshot{Widths: []float32{}, Heights: []float32{}}
	if in.ColumnWidth != nil {
		s.Widths = make([]float32, max(in.ColCount, 0))
	}
	if in.RowHeight != nil {
		s.Heights = make([]float32, max(in.RowCount, 0))
	}
	return s
}

// reconcile folds freshly measured dimensions into current. A nil dimension
// keeps the current values. changed reports whether the result differs from
// current by value.
func reconcile(current Snapshot, rows, cols *Dimension) (next Snapshot, changed bool) {
	next = current
	if rows != nil {
		next.Heights = rows.Values
		next.Height = rows.Total
	}
	if cols != nil {
		next.Widths = cols.Values
		next.Width = cols.Total
	}
	return next, !current.Equal(next)
}

// forward hands queued invalidations to r, in the order they were queued.
func forward(pending []Invalidation, r Resetters) {
	for _, inv := range pending {
		if gridVerbose() {
			gridLogger.Debug("measurer: forwarding invalidation", "kind", inv.Kind, "index", inv.Index)
		}
		inv.apply(r)
	}
}

// firstPass is the deferred mount pass: pending invalidations are
// forwarded, then both dimensions are measured. The resetter is not offered.
func firstPass(in Inputs, pending []Invalidation) Snapshot {
	forward(pending, in.Resetters)

	next := Snapshot{Widths: []float32{}, Heights: []float32{}}
	if rows := ComputeRowHeights(in.RowHeight, in.RowCount); rows != nil {
		next.Heights, next.Height = rows.Values, rows.Total
	}
	if cols := ComputeColumnWidths(in.ColumnWidth, in.ColCount); cols != nil {
		next.Widths, next.Width = cols.Values, cols.Total
	}
	return next
}

// updatePass is one reconciliation step from current. Its only effects go
// through in: pending invalidations are forwarded to the resetters, the
// MeasurementResetter is offered them once, and then the probes are queried.
// changed reports whether next must be committed.
func updatePass(current Snapshot, in Inputs, pending []Invalidation) (next Snapshot, changed bool) {
	forward(pending, in.Resetters)
	if in.MeasurementResetter != nil {
		in.MeasurementResetter(in.Resetters)
	}

	rows := ComputeRowHeights(in.RowHeight, in.RowCount)
	cols := ComputeColumnWidths(in.ColumnWidth, in.ColCount)
	return reconcile(current, rows, cols)
}

// InvalidationKind selects which cached measurements to drop.
type InvalidationKind int

const (
	InvalidateAll InvalidationKind = iota
	InvalidateColumn
	InvalidateRow
)

// String returns the kind's name for logs.
func (k InvalidationKind) String() string {
	switch k {
	case InvalidateAll:
		return "all"
	case InvalidateColumn:
		return "column"
	case InvalidateRow:
		return "row"
	default:
		return "unknown"
	}
}

// Invalidation asks for cached measurements to be dropped before the next
// pass. Index is ignored for InvalidateAll.
type Invalidation struct {
	Kind  InvalidationKind
	Index int
}

// apply forwards the request to r. Missing resetters make it a no-op.
func (inv Invalidation) apply(r Resetters) {
	switch inv.Kind {
	case InvalidateAll:
		if r.ResetMeasurements != nil {
			r.ResetMeasurements()
		}
	case InvalidateColumn:
		if r.ResetMeasurementForColumn != nil {
			r.ResetMeasurementForColumn(inv.Index)
		}
	case InvalidateRow:
		if r.ResetMeasurementForRow != nil {
			r.ResetMeasurementForRow(inv.Index)
		}
	}
}

// Scheduler runs a function after the current frame has been committed.
// *Context implements it.
type Scheduler interface {
	AfterFrame(fn func())
}

// RenderFunc receives every committed snapshot.
type RenderFunc func(Snapshot)

// Measurer turns probe queries into a committed Snapshot.
//
// Probes draw cells to size them, so they must never run while the owner is
// drawing. The first measurement is therefore deferred: Mount shows a
// placeholder and schedules the real pass for after the frame. Later passes
// run from Update, which the owner calls before it starts drawing.
type Measurer struct {
	inputs  Inputs
	current Snapshot
	render  RenderFunc

	pending []Invalidation

	scheduled bool // Mount has queued the first pass
	measured  bool // the first pass has run
	commits   int
}

// NewMeasurer creates a Measurer for in. render may be nil.
func NewMeasurer(in Inputs, render RenderFunc) *Measurer {
	return &Measurer{
		inputs:  in,
		current: initialSnapshot(in),
		render:  render,
	}
}

// Mount renders the placeholder snapshot and schedules the first
// measurement on s. Calling it again has no effect.
func (m *Measurer) Mount(s Scheduler) {
	if m.scheduled {
		return
	}
	m.scheduled = true
	m.emit()
	s.AfterFrame(m.didMount)
}

// didMount is the deferred first pass. It always commits, even when the
// measured values equal the placeholder.
func (m *Measurer) didMount() {
	m.measured = true
	m.current = firstPass(m.inputs, m.takePending())
	if gridVerbose() {
		gridLogger.Debug("measurer: first pass committed",
			"rows", len(m.current.Heights), "cols", len(m.current.Widths),
			"width", m.current.Width, "height", m.current.Height)
	}
	m.emit()
}

// Update runs one reconciliation pass against in: queued invalidations are
// forwarded, the MeasurementResetter is offered the resetters, both
// dimensions are re-queried, and the result is committed only if it differs
// from the current snapshot. It reports whether a commit happened.
//
// Before the first pass has run, Update only records in; the deferred pass
// will measure with it.
func (m *Measurer) Update(in Inputs) bool {
	m.inputs = in
	if !m.measured {
		return false
	}

	next, changed := updatePass(m.current, in, m.takePending())
	if !changed {
		if gridVerbose() {
			gridLogger.Debug("measurer: layout unchanged, skipping commit",
				"rows", in.RowCount, "cols", in.ColCount)
		}
		return false
	}

	m.current = next
	m.emit()
	return true
}

// Invalidate queues a request that the next pass forwards to the probe
// before querying it.
func (m *Measurer) Invalidate(inv Invalidation) {
	m.pending = append(m.pending, inv)
}

// Pending reports whether invalidations are waiting for the next pass.
func (m *Measurer) Pending() bool {
	return len(m.pending) > 0
}

func (m *Measurer) takePending() []Invalidation {
	pending := m.pending
	m.pending = nil
	return pending
}

func (m *Measurer) emit() {
	m.commits++
	if m.render != nil {
		m.render(m.current.Clone())
	}
}

// Snapshot returns a copy of the committed snapshot.
func (m *Measurer) Snapshot() Snapshot {
	return m.current.Clone()
}

// Measured reports whether the deferred first pass has run.
func (m *Measurer) Measured() bool {
	return m.measured
}

// Commits returns how many snapshots have been handed to the render function,
// including the placeholder.
func (m *Measurer) Commits() int {
	return m.commits
}
