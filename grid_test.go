package datagrid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/datagrid"
)

// gridHarness drives frames of a single grid in character-cell units: one
// character is one unit wide, and header and text rows are one unit tall.
type gridHarness struct {
	t        *testing.T
	ui       *datagrid.UI
	renderer *mockRenderer
	input    *datagrid.InputState
	display  datagrid.Vec2
}

func newGridHarness(t *testing.T) *gridHarness {
	t.Helper()
	input := datagrid.NewInputState()
	input.SetMousePos(-1, -1)
	renderer := &mockRenderer{}
	return &gridHarness{
		t:        t,
		ui:       datagrid.NewUI(renderer, datagrid.WithStyle(datagrid.TextCellStyle())),
		renderer: renderer,
		input:    input,
		display:  datagrid.Vec2{X: 40, Y: 100},
	}
}

// frame draws the grid for one frame and clears the frame's input edges.
func (h *gridHarness) frame(props datagrid.GridProps) *datagrid.Grid {
	h.t.Helper()
	ctx := h.ui.Begin(h.input, h.display, 0.016)
	g := ctx.DataGrid(h.t.Name(), props)
	require.NoError(h.t, h.ui.End())
	h.input.Reset()
	return g
}

func (h *gridHarness) click(x, y float32) {
	h.input.SetMousePos(x, y)
	h.input.SetMouseButton(datagrid.MouseButtonLeft, true)
}

type carRows [][2]string

func (rows carRows) props() datagrid.GridProps {
	return datagrid.GridProps{
		Columns: []datagrid.Column{
			{Key: "name", Label: "name"},
			{Key: "price", Label: "price"},
		},
		RowCount: len(rows),
		ItemRenderer: func(ctx *datagrid.Context, cell datagrid.Cell) {
			ctx.CellText(cell, rows[cell.RowIndex][cell.ColumnIndex])
		},
	}
}

var cars = carRows{
	{"Infernus", "150000"},
	{"Faggio", "4000"},
}

func TestDataGrid_FirstFrameDrawsPlaceholder(t *testing.T) {
	h := newGridHarness(t)
	props := cars.props()

	first := h.frame(props)
	require.NotNil(t, first)
	assert.Equal(t, 1, first.Commits())
	if diff := cmp.Diff(datagrid.Snapshot{Widths: []float32{0, 0}, Heights: []float32{0, 0}}, first.Snapshot()); diff != "" {
		t.Errorf("placeholder mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, first.Measured(), "measured once the frame has ended")

	second := h.frame(props)
	// "Infernus" and "150000" each plus one cell of padding on both sides.
	want := datagrid.Snapshot{Widths: []float32{10, 8}, Width: 18, Heights: []float32{1, 1}, Height: 2}
	if diff := cmp.Diff(want, second.Snapshot()); diff != "" {
		t.Errorf("measured snapshot mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, second.Commits())

	third := h.frame(props)
	assert.Equal(t, 2, third.Commits(), "unchanged props do not commit")

	// A Grid keeps reporting the frame it came from.
	assert.Equal(t, 1, first.Commits())
	assert.Equal(t, []float32{0, 0}, first.Snapshot().Widths)
}

func TestDataGrid_RemeasuresOnlyOnChange(t *testing.T) {
	h := newGridHarness(t)
	rows := carRows{{"Infernus", "1"}}
	props := rows.props()
	offered := 0
	props.MeasurementResetter = func(datagrid.Resetters) { offered++ }

	h.frame(props)
	assert.Equal(t, 0, offered, "not offered on mount")

	h.frame(props)
	h.frame(props)
	assert.Equal(t, 0, offered, "unchanged props do not re-measure")

	props.ContentVersion++
	h.frame(props)
	g := h.frame(props)
	assert.Equal(t, 1, offered, "one pass per change")
	assert.Equal(t, 2, g.Commits(), "same content does not commit")

	g.Invalidate(datagrid.Invalidation{Kind: datagrid.InvalidateRow, Index: 0})
	h.frame(props)
	h.frame(props)
	assert.Equal(t, 2, offered, "a queued invalidation starts one pass")

	rows = append(rows, [2]string{"Faggio", "2"})
	props.RowCount = len(rows)
	props.ItemRenderer = rows.props().ItemRenderer
	g = h.frame(props)
	assert.Equal(t, 3, offered)
	assert.Equal(t, 3, g.Commits())
}

func TestDataGrid_SortIndicatorOnlyOnSortableColumns(t *testing.T) {
	vertices := func(t *testing.T, sortable bool, sortBy string) int {
		h := newGridHarness(t)
		props := cars.props()
		props.Columns[0].Sortable = sortable
		props.SortBy = sortBy
		props.SortDirection = datagrid.SortDescending
		props.OnSortChange = func(string, datagrid.SortDirection) {}
		h.frame(props)
		h.frame(props)
		return h.renderer.vertices
	}

	var plain, plainSorted, sortable, sortableSorted int
	t.Run("plain", func(t *testing.T) { plain = vertices(t, false, "") })
	t.Run("plain sorted", func(t *testing.T) { plainSorted = vertices(t, false, "name") })
	t.Run("sortable", func(t *testing.T) { sortable = vertices(t, true, "") })
	t.Run("sortable sorted", func(t *testing.T) { sortableSorted = vertices(t, true, "name") })

	assert.Equal(t, plain, plainSorted, "no arrow on a column that cannot be sorted")
	assert.Equal(t, sortable+4, sortableSorted, "one arrow glyph")
}

func TestDataGrid_HeaderCountsTowardWidth(t *testing.T) {
	h := newGridHarness(t)
	props := datagrid.GridProps{
		Columns:  []datagrid.Column{{Key: "d", Label: "Description"}},
		RowCount: 1,
		ItemRenderer: func(ctx *datagrid.Context, cell datagrid.Cell) {
			ctx.CellText(cell, "x")
		},
	}
	h.frame(props)
	g := h.frame(props)
	assert.Equal(t, []float32{13}, g.Snapshot().Widths)
}

func TestDataGrid_FlexGrowSharesExtraWidth(t *testing.T) {
	h := newGridHarness(t)
	props := cars.props()
	props.Columns[1].FlexGrow = datagrid.Grow(3)

	h.frame(props)
	g := h.frame(props)

	// 40 - 18 = 22 extra, split 1:3.
	assert.Equal(t, map[string]float32{"name": 15.5, "price": 24.5}, g.ColumnWidths())
	assert.Equal(t, float32(40), g.Rect().W)
}

func TestDataGrid_WidthIsClampedToAvailable(t *testing.T) {
	h := newGridHarness(t)
	props := cars.props()

	props.Width = 30
	assert.Equal(t, float32(30), h.frame(props).Rect().W)

	props.Width = 100
	assert.Equal(t, float32(40), h.frame(props).Rect().W)
}

func TestDataGrid_SortClick(t *testing.T) {
	h := newGridHarness(t)
	props := cars.props()
	for i := range props.Columns {
		props.Columns[i].Sortable = true
	}
	props.SortBy = "price"
	props.SortDirection = datagrid.SortDescending

	var gotKey string
	var gotDir datagrid.SortDirection
	calls := 0
	props.OnSortChange = func(key string, dir datagrid.SortDirection) {
		gotKey, gotDir = key, dir
		calls++
	}

	h.frame(props)
	h.frame(props)

	h.click(25, 0.5)
	h.frame(props)

	assert.Equal(t, 1, calls)
	assert.Equal(t, "price", gotKey)
	assert.Equal(t, datagrid.SortAscending, gotDir)

	h.input.SetMouseButton(datagrid.MouseButtonLeft, false)
	h.frame(props)
	h.click(5, 0.5)
	h.frame(props)

	assert.Equal(t, 2, calls)
	assert.Equal(t, "name", gotKey)
	assert.Equal(t, datagrid.SortDescending, gotDir, "an unsorted column starts descending")
}

func TestDataGrid_ResizeDrag(t *testing.T) {
	h := newGridHarness(t)
	props := cars.props()
	props.Columns[0].Resizable = true

	var resized []datagrid.Column
	var total float32
	props.OnColumnResize = func(cols []datagrid.Column, totalWidth float32) {
		resized, total = cols, totalWidth
	}

	h.frame(props)
	g := h.frame(props)
	require.Equal(t, map[string]float32{"name": 21, "price": 19}, g.ColumnWidths())

	// Grab the last character of the name header, drag 5 right, release.
	h.click(20.5, 0.5)
	h.frame(props)
	h.input.SetMousePos(25.5, 0.5)
	h.frame(props)
	require.Nil(t, resized, "nothing is emitted while dragging")
	h.input.SetMouseButton(datagrid.MouseButtonLeft, false)
	h.frame(props)

	require.Len(t, resized, 2)
	assert.Equal(t, "name", resized[0].Key)
	assert.Equal(t, float32(26), resized[0].Width)
	assert.Equal(t, float32(19), resized[1].Width)
	for _, c := range resized {
		require.NotNil(t, c.FlexGrow)
		assert.Equal(t, 0, *c.FlexGrow)
	}
	assert.Equal(t, float32(45), total)
}

func TestDataGrid_RowClick(t *testing.T) {
	h := newGridHarness(t)
	props := cars.props()
	clicked := -1
	props.OnRowClick = func(row int) { clicked = row }

	h.frame(props)
	h.frame(props)

	h.click(5, 2.5)
	h.frame(props)
	assert.Equal(t, 1, clicked)
}

func TestDataGrid_MaxHeightAndScroll(t *testing.T) {
	h := newGridHarness(t)
	rows := make(carRows, 10)
	for i := range rows {
		rows[i] = [2]string{"car", "1"}
	}
	props := rows.props()
	props.MaxHeight = 4

	h.frame(props)
	g := h.frame(props)
	assert.Equal(t, float32(4), g.Rect().H, "header plus three rows")

	h.input.SetMousePos(5, 2)
	h.input.SetMouseWheel(0, -1)
	g = h.frame(props)
	assert.Equal(t, float32(3), g.ScrollY())

	h.input.SetMouseWheel(0, -10)
	g = h.frame(props)
	assert.Equal(t, float32(7), g.ScrollY(), "clamped to content minus body")

	g.ScrollToRow(0)
	assert.Equal(t, float32(0), g.ScrollY())
}

func TestDataGrid_ContentVersionRemeasures(t *testing.T) {
	h := newGridHarness(t)
	rows := carRows{{"Infernus", "1"}}
	props := rows.props()
	props.MeasurementResetter = func(r datagrid.Resetters) { r.ResetMeasurements() }

	h.frame(props)
	g := h.frame(props)
	require.Equal(t, float32(10), g.Snapshot().ColumnWidth(0))

	rows[0][0] = "Infernus GT"
	props.ContentVersion++
	g = h.frame(props)
	assert.Equal(t, float32(13), g.Snapshot().ColumnWidth(0), "measured before drawing")
	assert.Equal(t, 3, g.Commits())
}

func TestDataGrid_StaleCacheWithoutInvalidation(t *testing.T) {
	h := newGridHarness(t)
	rows := carRows{{"Infernus", "1"}}
	props := rows.props()

	h.frame(props)
	h.frame(props)

	rows[0][0] = "Infernus GT"
	props.ContentVersion++
	g := h.frame(props)
	assert.Equal(t, float32(10), g.Snapshot().ColumnWidth(0), "cached cells are kept until reset")

	g.Invalidate(datagrid.Invalidation{Kind: datagrid.InvalidateRow, Index: 0})
	g = h.frame(props)
	assert.Equal(t, float32(13), g.Snapshot().ColumnWidth(0))
}

func TestDataGrid_RowCountChange(t *testing.T) {
	h := newGridHarness(t)
	rows := carRows{{"a", "1"}}
	props := rows.props()
	h.frame(props)
	h.frame(props)

	rows = append(rows, [2]string{"b", "2"}, [2]string{"c", "3"})
	props = rows.props()
	g := h.frame(props)
	assert.Equal(t, []float32{1, 1, 1}, g.Snapshot().Heights)
}

func TestDataGrid_NilWhileMeasuring(t *testing.T) {
	h := newGridHarness(t)
	var nested []*datagrid.Grid
	props := cars.props()
	render := props.ItemRenderer
	props.ItemRenderer = func(ctx *datagrid.Context, cell datagrid.Cell) {
		if ctx.IsMeasuring() {
			nested = append(nested, ctx.DataGrid("nested", datagrid.GridProps{}))
		}
		render(ctx, cell)
	}

	h.frame(props)
	require.NotEmpty(t, nested)
	for _, g := range nested {
		assert.Nil(t, g)
	}
}
