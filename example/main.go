// Example shows a sortable, resizable vehicle grid in a GLFW window.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Click a header to sort, drag a header's right edge to resize, click a row
// to select it. Right-clicking a row appends to its notes, which changes the
// row's height and is re-measured through MeasurementResetter.
package main

import (
	"cmp"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strconv"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datagrid"
	"github.com/go-theft-auto/datagrid/backend/opengl"
)

const (
	windowWidth  = 900
	windowHeight = 600
	windowTitle  = "datagrid example"
)

type vehicle struct {
	Name  string
	Class string
	Speed int
	Price int
	Notes string
}

func (v vehicle) field(key string) string {
	switch key {
	case "name":
		return v.Name
	case "class":
		return v.Class
	case "speed":
		return strconv.Itoa(v.Speed) + " mph"
	case "price":
		return "$" + strconv.Itoa(v.Price)
	case "notes":
		return v.Notes
	}
	return ""
}

var vehicles = []vehicle{
	{"Infernus", "Sports", 148, 150000, "Fastest car in the city"},
	{"Banshee", "Sports", 136, 105000, ""},
	{"Cheetah", "Sports", 142, 120000, "Classic wedge"},
	{"Stinger", "Sports", 128, 95000, ""},
	{"Admiral", "Sedan", 102, 30000, "Reliable"},
	{"Stretch", "Limo", 98, 65000, "Seats eight"},
	{"Rhino", "Military", 58, 500000, "Not street legal\nTurret included"},
	{"PCJ-600", "Bike", 124, 12000, ""},
	{"Faggio", "Scooter", 60, 4000, "Economical"},
	{"Patriot", "SUV", 104, 45000, ""},
	{"Mule", "Van", 78, 26000, "Cargo"},
	{"Taxi", "Sedan", 100, 22000, "Yellow"},
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func sortVehicles(key string, dir datagrid.SortDirection) {
	slices.SortStableFunc(vehicles, func(a, b vehicle) int {
		var c int
		switch key {
		case "speed":
			c = cmp.Compare(a.Speed, b.Speed)
		case "price":
			c = cmp.Compare(a.Price, b.Price)
		default:
			c = cmp.Compare(a.field(key), b.field(key))
		}
		if dir == datagrid.SortDescending {
			return -c
		}
		return c
	})
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("grid renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)
	ui := datagrid.NewUI(renderer, datagrid.WithStyle(datagrid.GTAStyle()))

	columns := []datagrid.Column{
		{Key: "name", Label: "Vehicle", Fixed: true, Sortable: true, Resizable: true},
		{Key: "class", Label: "Class", Sortable: true, Resizable: true},
		{Key: "speed", Label: "Top speed", Align: datagrid.AlignRight, Sortable: true, Resizable: true, FlexGrow: datagrid.Grow(0)},
		{Key: "price", Label: "Price", Align: datagrid.AlignRight, Sortable: true, Resizable: true, FlexGrow: datagrid.Grow(0)},
		{Key: "notes", Label: "Notes", Resizable: true, FlexGrow: datagrid.Grow(2)},
	}

	var (
		sortBy   string
		sortDir  datagrid.SortDirection
		selected = -1
		version  uint64
		dirty    []int
	)

	for !window.ShouldClose() {
		input := inputAdapter.Update()
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		ui.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := datagrid.Vec2{X: float32(w), Y: float32(h)}
		ctx := ui.Begin(input, displaySize, 1.0/60.0)
		ctx.SetCursorPos(20, 20)

		grid := ctx.DataGrid("vehicles", datagrid.GridProps{
			Columns:  columns,
			RowCount: len(vehicles),
			ItemRenderer: func(ctx *datagrid.Context, cell datagrid.Cell) {
				v := vehicles[cell.RowIndex]
				if cell.ColumnKey == "notes" {
					ctx.CellTextWrapped(cell, v.Notes, datagrid.WrapModeWord)
					return
				}
				if cell.RowIndex == selected && !ctx.IsMeasuring() {
					ctx.CellTextColored(cell, v.field(cell.ColumnKey), datagrid.ColorYellow)
					return
				}
				ctx.CellText(cell, v.field(cell.ColumnKey))
			},
			MaxHeight:     float32(h) - 80,
			Width:         float32(w) - 40,
			SortBy:        sortBy,
			SortDirection: sortDir,
			OnSortChange: func(key string, dir datagrid.SortDirection) {
				sortBy, sortDir = key, dir
				sortVehicles(key, dir)
				version++
			},
			OnColumnResize: func(cols []datagrid.Column, total float32) {
				columns = cols
			},
			OnRowClick: func(row int) {
				selected = row
			},
			MeasurementResetter: func(r datagrid.Resetters) {
				if len(dirty) == 0 {
					r.ResetMeasurements()
				}
				for _, row := range dirty {
					r.ResetMeasurementForRow(row)
				}
				dirty = dirty[:0]
			},
			ContentVersion: version,
		})

		if input.MouseClicked(datagrid.MouseButtonRight) && grid != nil {
			r := grid.Rect()
			if r.Contains(input.Mouse()) && selected >= 0 {
				vehicles[selected].Notes += "\nmodified"
				dirty = append(dirty, selected)
				version++
			}
		}

		if err := ui.End(); err != nil {
			return fmt.Errorf("grid render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
