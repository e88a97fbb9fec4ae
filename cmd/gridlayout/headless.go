package main

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/go-theft-auto/datagrid"
)

// runs numbers headless runs so that each one mounts a fresh grid.
var runs atomic.Uint64

// displayHeight is tall enough that no grid is clipped by the display.
const displayHeight = 1 << 20

// nullRenderer accepts frames without drawing them.
type nullRenderer struct{}

func (nullRenderer) Render(dl *datagrid.DrawList) error {
	dl.Finalize()
	return nil
}

func (nullRenderer) FontTextureID() uint32 { return 0 }
func (nullRenderer) Resize(int, int)       {}

// layoutRequest is one headless grid.
type layoutRequest struct {
	Columns       []datagrid.Column
	Data          *dataset
	Style         datagrid.Style
	Width         float32
	MaxHeight     float32
	SortBy        string
	SortDirection datagrid.SortDirection
}

// layoutResult is what the grid drew once its measurement committed.
type layoutResult struct {
	Snapshot datagrid.Snapshot
	Drawn    map[string]float32
	Rect     datagrid.Rect
	Commits  int
}

// measureFrames is the frame count after which a grid has drawn its
// measured layout: a placeholder frame, then the measured one.
const measureFrames = 2

var errNotMeasured = errors.New("grid was not measured")

// runLayout draws the grid for measureFrames frames with no pointer on
// screen and returns the final layout.
func runLayout(req layoutRequest) (layoutResult, error) {
	ui := datagrid.NewUI(nullRenderer{}, datagrid.WithStyle(req.Style))
	display := datagrid.Vec2{X: req.Width, Y: displayHeight}
	input := datagrid.NewInputState()
	input.SetMousePos(-1, -1)

	props := datagrid.GridProps{
		Columns:  req.Columns,
		RowCount: len(req.Data.rows),
		ItemRenderer: func(ctx *datagrid.Context, cell datagrid.Cell) {
			ctx.CellText(cell, req.Data.value(cell.RowIndex, cell.ColumnKey))
		},
		MaxHeight:      req.MaxHeight,
		SortBy:         req.SortBy,
		SortDirection:  req.SortDirection,
		OnSortChange:   func(string, datagrid.SortDirection) {},
		OnColumnResize: func([]datagrid.Column, float32) {},
	}
	id := fmt.Sprintf("gridlayout#%d", runs.Add(1))

	var grid *datagrid.Grid
	for range measureFrames {
		ctx := ui.Begin(input, display, 0)
		grid = ctx.DataGrid(id, props)
		if err := ui.End(); err != nil {
			return layoutResult{}, err
		}
	}
	if grid == nil || !grid.Measured() {
		return layoutResult{}, errNotMeasured
	}
	return layoutResult{
		Snapshot: grid.Snapshot(),
		Drawn:    grid.ColumnWidths(),
		Rect:     grid.Rect(),
		Commits:  grid.Commits(),
	}, nil
}
