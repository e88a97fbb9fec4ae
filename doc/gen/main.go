// Command gen draws grids with sample data, captures framebuffer pixels,
// and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datagrid"
	"github.com/go-theft-auto/datagrid/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single grid screenshot to capture.
type screenshot struct {
	name   string         // filename without extension
	width  int            // viewport width
	height int            // viewport height
	style  datagrid.Style // UI style
	props  func() datagrid.GridProps
	frames int // frames to render (0 = default 2: placeholder, then measured)
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
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600)
	if err != nil {
		return fmt.Errorf("grid renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Only update the renderer projection; the hidden window stays at
	// 800x600, larger than every screenshot.
	renderer.Resize(s.width, s.height)

	// Fresh UI per screenshot so grids do not share measurements.
	ui := datagrid.NewUI(renderer, datagrid.WithStyle(s.style))

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}

	props := s.props()
	for range frames {
		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := datagrid.Vec2{X: float32(s.width), Y: float32(s.height)}
		input := datagrid.NewInputState()
		input.SetMousePos(-1, -1)
		ctx := ui.Begin(input, displaySize, 1.0/60.0)
		ctx.SetCursorPos(10, 10)
		ctx.DataGrid(s.name, props)
		if err := ui.End(); err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

var sampleRows = [][]string{
	{"Infernus", "Sports", "148", "$150000"},
	{"Banshee", "Sports", "136", "$105000"},
	{"Admiral", "Sedan", "102", "$30000"},
	{"Stretch", "Limo", "98", "$65000"},
	{"Rhino", "Military", "58", "$500000"},
	{"PCJ-600", "Bike", "124", "$12000"},
	{"Faggio", "Scooter", "60", "$4000"},
	{"Patriot", "SUV", "104", "$45000"},
}

func sampleColumns() []datagrid.Column {
	return []datagrid.Column{
		{Key: "name", Label: "Vehicle", Sortable: true, Resizable: true},
		{Key: "class", Label: "Class", Sortable: true, Resizable: true},
		{Key: "speed", Label: "Top speed", Align: datagrid.AlignRight, Sortable: true, Resizable: true},
		{Key: "price", Label: "Price", Align: datagrid.AlignRight, Sortable: true, Resizable: true},
	}
}

func sampleProps(rows [][]string) datagrid.GridProps {
	return datagrid.GridProps{
		Columns:  sampleColumns(),
		RowCount: len(rows),
		ItemRenderer: func(ctx *datagrid.Context, cell datagrid.Cell) {
			ctx.CellText(cell, rows[cell.RowIndex][cell.ColumnIndex])
		},
		OnSortChange:   func(string, datagrid.SortDirection) {},
		OnColumnResize: func([]datagrid.Column, float32) {},
	}
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "grid_default", width: 460, height: 200, style: datagrid.DefaultStyle(),
			props: func() datagrid.GridProps { return sampleProps(sampleRows) },
		},
		{
			name: "grid_placeholder", width: 460, height: 200, style: datagrid.DefaultStyle(), frames: 1,
			props: func() datagrid.GridProps { return sampleProps(sampleRows) },
		},
		{
			name: "grid_gta_sorted", width: 560, height: 260, style: datagrid.GTAStyle(),
			props: func() datagrid.GridProps {
				p := sampleProps(sampleRows)
				p.SortBy = "price"
				p.SortDirection = datagrid.SortDescending
				return p
			},
		},
		{
			name: "grid_pinned", width: 460, height: 200, style: datagrid.GTAStyle(),
			props: func() datagrid.GridProps {
				p := sampleProps(sampleRows)
				cols, _, err := datagrid.ResizeColumns(p.Columns, "name", 160,
					map[string]float32{"class": 90, "speed": 100, "price": 90})
				if err == nil {
					p.Columns = cols
				}
				return p
			},
		},
		{
			name: "grid_scroll", width: 460, height: 160, style: datagrid.DefaultStyle(),
			props: func() datagrid.GridProps {
				p := sampleProps(sampleRows)
				p.Columns[0].Fixed = true
				p.MaxHeight = 120
				p.Width = 300
				return p
			},
		},
	}
}
