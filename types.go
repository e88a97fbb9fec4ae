package datagrid

// Vec2 is a point or a size in screen units.
type Vec2 struct {
	X, Y float32
}

// Rect is an axis-aligned box; X, Y is its top-left corner.
type Rect struct {
	X, Y float32
	W, H float32
}

// Contains reports whether p lies in r. The right and bottom edges are
// outside, so adjacent cells never both contain a point.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether r and o share any area.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Vertex is the layout the OpenGL backend uploads: position, texture
// coordinate and a packed color.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32
}

// DrawCmd draws ElemCount indices, starting at IndexOffset, with one texture
// and one clip rectangle (x1, y1, x2, y2). TextureID 0 draws untextured.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32
	TextureID    uint32
	VertexOffset uint32
	IndexOffset  uint32
}

// Packed colors, 0xAABBGGRR.
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorGray        uint32 = 0xFF808080
	ColorYellow      uint32 = 0xFF00FFFF
	ColorTransparent uint32 = 0x00000000
)

// RGBA packs 8-bit channels into a color.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

func clampf(v, lo, hi float32) float32 {
	return maxf(lo, minf(v, hi))
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
