package datagrid

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopRenderer struct{}

func (nopRenderer) Render(*DrawList) error { return nil }
func (nopRenderer) FontTextureID() uint32  { return 0 }
func (nopRenderer) Resize(int, int)        {}

func widthsOf(l tableLayout) map[string]float32 {
	out := make(map[string]float32)
	for _, c := range append(append([]tableColumn{}, l.fixed...), l.scrollable...) {
		out[c.Key] = c.width
	}
	return out
}

func TestLayoutColumns(t *testing.T) {
	cols := []Column{
		{Key: "a"},
		{Key: "b", FlexGrow: Grow(0)},
		{Key: "c", FlexGrow: Grow(2)},
		{Key: "d", Width: 30, FlexGrow: Grow(0)},
	}
	l := layoutColumns(cols, []float32{10, 20, 10, 99}, 100)

	// 30 extra shared 1:0:2:0.
	assert.Equal(t, map[string]float32{"a": 20, "b": 20, "c": 30, "d": 30}, widthsOf(l))
	assert.Equal(t, float32(100), l.scrollW)
	assert.Empty(t, l.fixed)
}

func TestLayoutColumns_NoExtraWidth(t *testing.T) {
	l := layoutColumns([]Column{{Key: "a"}, {Key: "b"}}, []float32{60, 60}, 100)
	assert.Equal(t, map[string]float32{"a": 60, "b": 60}, widthsOf(l))
	assert.Equal(t, float32(120), l.scrollW)
}

func TestLayoutColumns_FixedRegion(t *testing.T) {
	cols := []Column{{Key: "a"}, {Key: "b", Fixed: true}, {Key: "c"}}
	l := layoutColumns(cols, []float32{10, 20, 30}, 0)

	require.Len(t, l.fixed, 1)
	assert.Equal(t, "b", l.fixed[0].Key)
	assert.Equal(t, 1, l.fixed[0].index)
	assert.Equal(t, float32(20), l.fixedW)

	require.Len(t, l.scrollable, 2)
	assert.Equal(t, float32(0), l.scrollable[0].x)
	assert.Equal(t, float32(10), l.scrollable[1].x)
	assert.Equal(t, float32(40), l.scrollW)
}

func TestLayoutColumns_MissingMeasurements(t *testing.T) {
	l := layoutColumns([]Column{{Key: "a", FlexGrow: Grow(0)}, {Key: "b", FlexGrow: Grow(-3)}}, nil, 50)
	assert.Equal(t, map[string]float32{"a": 0, "b": 0}, widthsOf(l), "negative flexGrow does not grow")
}

func TestRowHeights_Fallback(t *testing.T) {
	s := Snapshot{Heights: []float32{5, 0}}
	assert.Equal(t, []float32{5, 40, 40}, rowHeights(s, 3, 40))
	assert.Empty(t, rowHeights(s, -1, 40))
}

func TestDataGrid_WarnsOncePerGrid(t *testing.T) {
	var buf bytes.Buffer
	saved := gridLogger
	gridLogger = slog.New(slog.NewTextHandler(&buf, nil))
	t.Cleanup(func() { gridLogger = saved })

	ui := NewUI(nopRenderer{}, WithStyle(TextCellStyle()))
	props := GridProps{
		Columns: []Column{
			{Key: "a", Label: "a", Sortable: true, Resizable: true},
			{Key: "a", Label: "again"},
		},
		RowCount: 1,
		ItemRenderer: func(ctx *Context, cell Cell) {
			ctx.CellText(cell, "x")
		},
	}
	for range 3 {
		ctx := ui.Begin(NewInputState(), Vec2{X: 40, Y: 40}, 0)
		ctx.DataGrid(t.Name(), props)
		require.NoError(t, ui.End())
	}

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "sortable column without OnSortChange"))
	assert.Equal(t, 1, strings.Count(out, "resizable column without OnColumnResize"))
	assert.Equal(t, 1, strings.Count(out, "duplicate column key"))
}

func TestSortHeader_NilCallbackWarns(t *testing.T) {
	var buf bytes.Buffer
	saved := gridLogger
	gridLogger = slog.New(slog.NewTextHandler(&buf, nil))
	t.Cleanup(func() { gridLogger = saved })

	next := SortHeader{ColumnKey: "price", Direction: SortDescending}.Activate()
	assert.Equal(t, SortAscending, next)
	assert.Contains(t, buf.String(), "column=price")
}

func TestDataGrid_SortClickWithoutCallbackWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	saved := gridLogger
	gridLogger = slog.New(slog.NewTextHandler(&buf, nil))
	t.Cleanup(func() { gridLogger = saved })

	ui := NewUI(nopRenderer{}, WithStyle(TextCellStyle()))
	props := GridProps{
		Columns:  []Column{{Key: "a", Label: "a", Sortable: true}},
		RowCount: 1,
		ItemRenderer: func(ctx *Context, cell Cell) {
			ctx.CellText(cell, "x")
		},
	}
	input := NewInputState()
	input.SetMousePos(1, 0.5)
	for i := range 6 {
		// Press on frames 2 and 4.
		input.SetMouseButton(MouseButtonLeft, i == 2 || i == 4)
		ctx := ui.Begin(input, Vec2{X: 40, Y: 40}, 0)
		ctx.DataGrid(t.Name(), props)
		require.NoError(t, ui.End())
		input.Reset()
	}

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "level=WARN"), out)
	assert.Contains(t, out, "sortable column without OnSortChange")
}

func TestResizeDragIgnoredWithoutInput(t *testing.T) {
	ctx := NewContext()
	ctx.SetStyle(TextCellStyle())
	ctx.Reset(Vec2{X: 40, Y: 40}, 0)
	ctx.DrawList = AcquireDrawList()
	defer ReleaseDrawList(ctx.DrawList)

	st := &gridState{}
	st.init(ctx, 1)
	st.resize = resizeDrag{active: true, key: "a", startWidth: 10, width: 10}
	called := false
	props := &GridProps{
		Columns:        []Column{{Key: "a"}},
		OnColumnResize: func([]Column, float32) { called = true },
	}

	tb := newTable(ctx, st, props, Vec2{}, 40)
	tb.updateResize()

	assert.False(t, st.resize.active, "a drag without input is dropped")
	assert.False(t, called)
}
