package datagrid

import "sort"

// RowClipper calculates the visible row range for rows of varying height.
// Offsets are prefix sums, so lookups are a binary search.
//
// Usage:
//
//	clipper := NewRowClipper(heights, visibleHeight, scrollY)
//	for i := clipper.StartIdx; i < clipper.EndIdx; i++ {
//	    y := clipper.RowY(i, baseY, scrollY)
//	    // Draw row at y position
//	}
type RowClipper struct {
	StartIdx int // First visible row (inclusive)
	EndIdx   int // Last visible row (exclusive)

	offsets []float32 // offsets[i] is the top of row i; offsets[n] is the content height
}

// NewRowClipper calculates the rows of heights that intersect
// [scrollY, scrollY+visibleHeight).
func NewRowClipper(heights []float32, visibleHeight, scrollY float32) *RowClipper {
	offsets := make([]float32, len(heights)+1)
	for i, h := range heights {
		offsets[i+1] = offsets[i] + maxf(0, h)
	}

	c := &RowClipper{offsets: offsets}
	n := len(heights)
	if n == 0 {
		return c
	}

	top := maxf(0, scrollY)
	bottom := top + maxf(0, visibleHeight)

	// First row whose bottom edge is below the top of the viewport.
	c.StartIdx = sort.Search(n, func(i int) bool { return offsets[i+1] > top })
	// First row whose top edge is at or below the bottom of the viewport.
	c.EndIdx = sort.Search(n, func(i int) bool { return offsets[i] >= bottom })
	if c.EndIdx < c.StartIdx {
		c.EndIdx = c.StartIdx
	}
	return c
}

// ShouldRender returns true if the row at idx is visible.
func (c *RowClipper) ShouldRender(idx int) bool {
	return idx >= c.StartIdx && idx < c.EndIdx
}

// RowY returns the screen Y of row idx given the list's top edge.
func (c *RowClipper) RowY(idx int, baseY, scrollY float32) float32 {
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.offsets) {
		idx = len(c.offsets) - 1
	}
	return baseY + c.offsets[idx] - scrollY
}

// VisibleCount returns the number of rows that should be rendered.
func (c *RowClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}

// ContentHeight returns the sum of all row heights.
func (c *RowClipper) ContentHeight() float32 {
	return c.offsets[len(c.offsets)-1]
}

// MaxScroll returns the maximum valid scroll offset.
func (c *RowClipper) MaxScroll(visibleHeight float32) float32 {
	return maxf(0, c.ContentHeight()-visibleHeight)
}

// RowAt returns the row under content offset y, or -1.
func (c *RowClipper) RowAt(y float32) int {
	n := len(c.offsets) - 1
	if y < 0 || n == 0 || y >= c.offsets[n] {
		return -1
	}
	return sort.Search(n, func(i int) bool { return c.offsets[i+1] > y })
}

// ScrollToRow returns the scroll offset needed to make row idx visible.
// If the row is already visible, returns the current scroll unchanged.
func (c *RowClipper) ScrollToRow(idx int, currentScroll, visibleHeight float32) float32 {
	if idx < 0 || idx >= len(c.offsets)-1 {
		return currentScroll
	}

	rowTop := c.offsets[idx]
	rowBottom := c.offsets[idx+1]

	if rowTop < currentScroll {
		return rowTop
	}
	if rowBottom > currentScroll+visibleHeight {
		return rowBottom - visibleHeight
	}
	return currentScroll
}
