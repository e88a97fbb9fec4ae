/*
Package datagrid provides a sortable, resizable data grid for an
immediate-mode UI, with columns and rows sized to their content.

# Overview

The UI is rebuilt every frame between UI.Begin and UI.End. A grid is drawn
with Context.DataGrid; the caller describes the columns and draws each body
cell from an ItemRenderer. The grid keeps its measurements, scroll offsets
and resize drag between frames, keyed by the grid's ID.

# Quick Start

	renderer, _ := opengl.NewRenderer(1280, 720)
	ui := datagrid.NewUI(renderer, datagrid.WithStyle(datagrid.GTAStyle()))

	columns := []datagrid.Column{
	    {Key: "name", Label: "Name", Sortable: true, Resizable: true, Fixed: true},
	    {Key: "price", Label: "Price", Align: datagrid.AlignRight, Sortable: true},
	}

	for !window.ShouldClose() {
	    ctx := ui.Begin(input, datagrid.Vec2{X: 1280, Y: 720}, dt)

	    ctx.DataGrid("cars", datagrid.GridProps{
	        Columns:  columns,
	        RowCount: len(cars),
	        ItemRenderer: func(ctx *datagrid.Context, cell datagrid.Cell) {
	            ctx.CellText(cell, cars[cell.RowIndex].Field(cell.ColumnKey))
	        },
	        SortBy:        sortBy,
	        SortDirection: sortDir,
	        OnSortChange: func(key string, dir datagrid.SortDirection) {
	            sortBy, sortDir = key, dir
	            sortCars(cars, key, dir)
	        },
	        OnColumnResize: func(cols []datagrid.Column, total float32) {
	            columns = cols
	        },
	        MaxHeight: 400,
	    })

	    if err := ui.End(); err != nil {
	        log.Fatal(err)
	    }
	    window.SwapBuffers()
	}

# Measurement

Cells are sized by drawing them into a scratch DrawList and taking the bounds
of what was drawn (see CellProbe). An ItemRenderer therefore runs in two
modes; Context.IsMeasuring tells them apart. The header row is measured as
one extra row, so no column is narrower than its label.

Measuring never happens while the grid is drawing. The first frame a grid
appears it is drawn from a placeholder layout, and the cells are measured in
a task queued with Context.AfterFrame, which UI.End runs after the frame has
been rendered. The next frame draws the measured layout.

After that the Measurer re-measures before drawing whenever the row count,
the column keys or GridProps.ContentVersion change, or after
Grid.Invalidate. A new layout is committed only when it differs by value
from the current one. Before each re-measure GridProps.MeasurementResetter
is offered the probe's resetters, so cached sizes of changed cells can be
dropped:

	MeasurementResetter: func(r datagrid.Resetters) {
	    for _, row := range dirtyRows {
	        r.ResetMeasurementForRow(row)
	    }
	},

The Measurer does not depend on the grid. Any pair of probe functions can be
reconciled with it, given a Scheduler to defer the first pass:

	m := datagrid.NewMeasurer(datagrid.Inputs{
	    RowCount:  5,
	    RowHeight: func(i int) float32 { return float32(10 * i) },
	}, func(s datagrid.Snapshot) { layout = s })
	m.Mount(ctx)

# Sorting and Resizing

The grid never reorders rows. A click on a sortable header calls
OnSortChange with the column key and the next direction: DESC becomes ASC,
anything else becomes DESC. The arrow is drawn on the column matching
SortBy.

Dragging the right edge of a resizable header resizes it. On release every
column is pinned to the width it was drawn at, with FlexGrow 0, and
OnColumnResize receives the new columns and their total width (see
ResizeColumns). The caller stores them and passes them back next frame.

# Logging

Contract violations, such as a sortable column without OnSortChange, are
logged once per grid at Warn level through log/slog. SetVerbose(true)
enables Debug records for commits and invalidations.
*/
package datagrid
