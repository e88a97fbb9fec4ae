package datagrid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/datagrid"
)

func newProbeHost() *datagrid.Context {
	ctx := datagrid.NewContext()
	ctx.SetStyle(datagrid.TextCellStyle())
	return ctx
}

// countingRenderer draws data[row][col] and counts calls.
type countingRenderer struct {
	data  [][]string
	calls int
	cells []datagrid.Cell
}

func (r *countingRenderer) render(ctx *datagrid.Context, cell datagrid.Cell) {
	r.calls++
	r.cells = append(r.cells, cell)
	if !ctx.IsMeasuring() {
		panic("probe rendered with a frame context")
	}
	ctx.CellText(cell, r.data[cell.RowIndex][cell.ColumnIndex])
}

func probeColumns() []datagrid.Column {
	return []datagrid.Column{
		{Key: "a", Label: "A"},
		{Key: "b", Label: "Bee", Sortable: true},
	}
}

func TestCellProbe_WidthIncludesHeader(t *testing.T) {
	r := &countingRenderer{data: [][]string{{"xx", "y"}, {"xxxx", "y"}}}
	p := datagrid.NewCellProbe(newProbeHost())
	p.SetSource(probeColumns(), 2, r.render)

	assert.Equal(t, float32(6), p.WidthOf(0), "widest body cell")
	// "Bee" plus padding plus the sort arrow's reserve beats "y".
	assert.Equal(t, float32(7), p.WidthOf(1))
	assert.Equal(t, float32(1), p.HeightOf(0))
	assert.True(t, math.IsNaN(float64(p.HeightOf(2))), "the header row is not a body row")
	assert.True(t, math.IsNaN(float64(p.WidthOf(5))))
}

func TestCellProbe_Caches(t *testing.T) {
	r := &countingRenderer{data: [][]string{{"xx", "y"}, {"xxxx", "y"}}}
	p := datagrid.NewCellProbe(newProbeHost())
	p.SetSource(probeColumns(), 2, r.render)

	p.WidthOf(0)
	require.Equal(t, 2, r.calls)
	p.WidthOf(0)
	assert.Equal(t, 2, r.calls, "width is cached")

	p.HeightOf(0)
	assert.Equal(t, 3, r.calls, "cell (0,a) is reused")
	assert.Equal(t, 3, p.Measured())

	r.data[1][0] = "xxxxxxxx"
	p.ResetRow(1)
	assert.Equal(t, float32(10), p.WidthOf(0))
	assert.Equal(t, 4, r.calls, "only row 1 is redrawn")

	p.ResetColumn(1)
	p.WidthOf(1)
	assert.Equal(t, 6, r.calls)

	p.ResetAll()
	p.HeightOf(1)
	assert.Equal(t, 8, r.calls)
}

func TestCellProbe_CachesByKeyAcrossReorder(t *testing.T) {
	r := &countingRenderer{data: [][]string{{"xx", "y"}}}
	p := datagrid.NewCellProbe(newProbeHost())
	cols := probeColumns()
	p.SetSource(cols, 1, r.render)
	p.WidthOf(0)
	p.WidthOf(1)
	calls := r.calls

	p.SetSource([]datagrid.Column{cols[1], cols[0]}, 1, r.render)
	assert.Equal(t, float32(7), p.WidthOf(0))
	assert.Equal(t, float32(4), p.WidthOf(1))
	assert.Equal(t, calls, r.calls)
}

func TestCellProbe_Unmeasurable(t *testing.T) {
	p := datagrid.NewCellProbe(newProbeHost())
	p.SetSource(probeColumns(), 1, func(*datagrid.Context, datagrid.Cell) {})

	assert.Equal(t, float32(3), p.WidthOf(0), "header only")
	assert.True(t, math.IsNaN(float64(p.HeightOf(0))))

	p.SetSource(probeColumns(), 1, nil)
	p.ResetAll()
	assert.Equal(t, float32(3), p.WidthOf(0))
	assert.True(t, math.IsNaN(float64(p.HeightOf(0))))
}

func TestCellProbe_PinnedWidthAndLabel(t *testing.T) {
	r := &countingRenderer{data: [][]string{{"x"}}}
	p := datagrid.NewCellProbe(newProbeHost())
	p.SetSource([]datagrid.Column{{
		Key:      "a",
		Label:    "ignored",
		Width:    5,
		GetLabel: func() string { return "Dynamic label" },
	}}, 1, r.render)

	assert.Equal(t, float32(15), p.WidthOf(0))
	require.Len(t, r.cells, 1)
	assert.Equal(t, float32(5), r.cells[0].Rect.W)
	assert.Equal(t, "a", r.cells[0].ColumnKey)
}

func TestCellProbe_WrappedTextHeight(t *testing.T) {
	p := datagrid.NewCellProbe(newProbeHost())
	p.SetSource([]datagrid.Column{{Key: "notes", Label: "n"}}, 1, func(ctx *datagrid.Context, cell datagrid.Cell) {
		ctx.CellTextWrapped(cell, "one\ntwo\nthree", datagrid.WrapModeWord)
	})

	assert.Equal(t, float32(3), p.HeightOf(0))
	assert.Equal(t, float32(7), p.WidthOf(0))
}

func TestProbeInputs(t *testing.T) {
	p := datagrid.NewCellProbe(newProbeHost())
	p.SetSource(probeColumns(), 1, (&countingRenderer{data: [][]string{{"xx", "y"}}}).render)

	in := datagrid.ProbeInputs(p, 1, 2)
	assert.Equal(t, 1, in.RowCount)
	assert.Equal(t, 2, in.ColCount)
	assert.Equal(t, float32(4), in.ColumnWidth(0))
	assert.NotNil(t, in.Resetters.ResetMeasurements)
	assert.NotNil(t, in.Resetters.ResetMeasurementForColumn)
	assert.NotNil(t, in.Resetters.ResetMeasurementForRow)
}
