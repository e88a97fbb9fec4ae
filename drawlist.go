package datagrid

import (
	"math"
	"sync"

	"github.com/mattn/go-runewidth"
)

// drawListPool reuses DrawList buffers. The grid acquires one per frame and
// one per measured cell, so pooling keeps the measurement pass allocation-free
// once warm.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for a frame.
// Primitives are batched by texture and clip rectangle.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32 // vertex offset of the open command
	idxCmdOffset uint32 // index offset of the open command
}

// Clear resets the DrawList, keeping allocated capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect intersects the current clip rectangle with (x1,y1)-(x2,y2)
// and makes the result current.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	c := dl.currentClip
	dl.currentClip = [4]float32{maxf(x1, c[0]), maxf(y1, c[1]), minf(x2, c[2]), minf(y2, c[3])}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// ClipRect returns the clip rectangle in effect.
func (dl *DrawList) ClipRect() [4]float32 {
	return dl.currentClip
}

// SetTexture sets the texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw closes the open command and starts a new one with the current
// texture and clip rectangle.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

func (dl *DrawList) addQuad(x0, y0, x1, y1, u0, v0, u1, v1 float32, color uint32) {
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x0, y0}, TexCoord: [2]float32{u0, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y0}, TexCoord: [2]float32{u1, v0}, Color: color},
		Vertex{Pos: [2]float32{x1, y1}, TexCoord: [2]float32{u1, v1}, Color: color},
		Vertex{Pos: [2]float32{x0, y1}, TexCoord: [2]float32{u0, v1}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.addQuad(x, y, x+w, y+h, 0, 0, 0, 0, color)
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line between two points as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddText draws text with the built-in 8x8 bitmap font.
// Each rune advances by its terminal cell width (wide runes take two cells),
// which keeps rendering in step with Context.MeasureText.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, fontScale float32, charWidth, charHeight float32) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}

	cw := charWidth * fontScale
	cellH := charHeight * fontScale
	px := x

	for _, r := range text {
		cells := runewidth.RuneWidth(r)
		if cells == 0 {
			continue
		}

		// The atlas is a 16x6 grid of 8x8 glyphs covering ASCII 32-127.
		char := unicodeFallback(r)
		if char < 32 || char > 127 {
			char = '?'
		}
		idx := int(char - 32)
		col := float32(idx % 16)
		row := float32(idx / 16)

		u0 := col * 8 / 128
		v0 := row * 8 / 48
		u1 := (col + 1) * 8 / 128
		v1 := (row + 1) * 8 / 48

		advance := cw * float32(cells)
		dl.addQuad(px, y, px+advance, y+cellH, u0, v0, u1, v1, color)
		px += advance
	}
}

// unicodeFallback maps the symbols the grid draws to glyphs the bitmap font has.
func unicodeFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '►', '▶', '→':
		return '>'
	case '◄', '◀', '←':
		return '<'
	case '…':
		return '.'
	case '—', '–':
		return '-'
	default:
		return r
	}
}

// GlyphQuad is a single glyph's screen and texture rectangle.
type GlyphQuad struct {
	X0, Y0 float32
	X1, Y1 float32
	U0, V0 float32
	U1, V1 float32
}

// AddGlyphQuads draws glyph quads produced by a Font.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color uint32) {
	if color&0xFF000000 == 0 || len(quads) == 0 {
		return
	}
	for _, q := range quads {
		dl.addQuad(q.X0, q.Y0, q.X1, q.Y1, q.U0, q.V0, q.U1, q.V1, color)
	}
}

// Bounds returns the rectangle covering every vertex added so far.
// It ignores clipping. ok is false for an empty list.
// The cell probe uses it to size whatever a cell renderer drew.
func (dl *DrawList) Bounds() (r Rect, ok bool) {
	if len(dl.VtxBuffer) == 0 {
		return Rect{}, false
	}

	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
	for _, v := range dl.VtxBuffer {
		minX = minf(minX, v.Pos[0])
		minY = minf(minY, v.Pos[1])
		maxX = maxf(maxX, v.Pos[0])
		maxY = maxf(maxY, v.Pos[1])
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, true
}

// Finalize closes the open command and drops empty ones.
// Renderers call it before uploading buffers.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
