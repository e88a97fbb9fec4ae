package datagrid

// tableColumn is a Column with its laid-out width for this frame.
type tableColumn struct {
	Column
	index int     // position in GridProps.Columns, which is also the snapshot index
	width float32 // after flexGrow distribution
	x     float32 // offset from the left edge of its region (fixed or scrollable)
}

// tableLayout places columns. Fixed columns come first and never scroll.
type tableLayout struct {
	fixed      []tableColumn
	scrollable []tableColumn
	fixedW     float32
	scrollW    float32
}

// layoutColumns resolves each column's width and shares any width left over
// in gridWidth by flexGrow.
func layoutColumns(columns []Column, measured []float32, gridWidth float32) tableLayout {
	cols := make([]tableColumn, len(columns))
	var total float32
	var grow int
	for i, c := range columns {
		var m float32
		if i < len(measured) {
			m = measured[i]
		}
		cols[i] = tableColumn{Column: c, index: i, width: c.resolvedWidth(m)}
		total += cols[i].width
		grow += c.resolvedFlexGrow()
	}

	if extra := gridWidth - total; extra > 0 && grow > 0 {
		for i := range cols {
			if g := cols[i].resolvedFlexGrow(); g > 0 {
				cols[i].width += extra * float32(g) / float32(grow)
			}
		}
	}

	var l tableLayout
	for _, c := range cols {
		if c.Fixed {
			c.x = l.fixedW
			l.fixed = append(l.fixed, c)
			l.fixedW += c.width
		} else {
			c.x = l.scrollW
			l.scrollable = append(l.scrollable, c)
			l.scrollW += c.width
		}
	}
	return l
}

// rowHeights applies the header-height fallback to rows that measured 0.
func rowHeights(s Snapshot, rowCount int, fallback float32) []float32 {
	heights := make([]float32, max(rowCount, 0))
	for i := range heights {
		h := s.RowHeight(i)
		if h <= 0 {
			h = fallback
		}
		heights[i] = h
	}
	return heights
}

// table draws one frame of a grid from its committed layout.
type table struct {
	ctx   *Context
	st    *gridState
	props *GridProps

	rect    Rect // outer box, header included
	headerH float32
	body    Rect

	layout  tableLayout
	clipper *RowClipper
	heights []float32
}

func newTable(ctx *Context, st *gridState, props *GridProps, origin Vec2, width float32) *table {
	style := ctx.style
	headerH := style.headerHeight()
	heights := rowHeights(st.snapshot, props.RowCount, headerH)

	var content float32
	for _, h := range heights {
		content += h
	}
	bodyH := content
	if props.MaxHeight > 0 {
		bodyH = minf(content, maxf(0, props.MaxHeight-headerH))
	}

	t := &table{
		ctx:     ctx,
		st:      st,
		props:   props,
		rect:    Rect{X: origin.X, Y: origin.Y, W: width, H: headerH + bodyH},
		headerH: headerH,
		body:    Rect{X: origin.X, Y: origin.Y + headerH, W: width, H: bodyH},
		layout:  layoutColumns(props.Columns, st.snapshot.Widths, width),
		heights: heights,
	}

	t.handleScroll(content)
	t.clipper = NewRowClipper(heights, bodyH, st.scrollY)
	return t
}

func (t *table) interactive() bool {
	return t.ctx.Input != nil && !t.ctx.measuring
}

func (t *table) hovered(r Rect) bool {
	return t.interactive() && r.Contains(t.ctx.Input.Mouse())
}

// handleScroll applies the wheel and clamps both scroll offsets.
func (t *table) handleScroll(content float32) {
	st := t.st
	maxY := maxf(0, content-t.body.H)
	maxX := maxf(0, t.layout.scrollW-(t.rect.W-t.layout.fixedW))

	if t.hovered(t.rect) {
		in := t.ctx.Input
		step := t.headerH * 3
		wheelX, wheelY := in.MouseWheelX, in.MouseWheelY
		if in.ModShift && wheelX == 0 {
			wheelX, wheelY = wheelY, 0
		}
		st.scrollY -= wheelY * step
		st.scrollX -= wheelX * step
	}
	st.scrollY = clampf(st.scrollY, 0, maxY)
	st.scrollX = clampf(st.scrollX, 0, maxX)
}

// draw renders the header and visible rows and handles their input.
func (t *table) draw() {
	ctx := t.ctx
	style := ctx.style
	dl := ctx.DrawList

	dl.AddRect(t.rect.X, t.rect.Y, t.rect.W, t.rect.H, style.GridBgColor)

	t.drawBody()
	t.drawHeader()
	t.drawScrollbars()
	t.updateResize()

	if style.BorderSize > 0 {
		dl.AddRectOutline(t.rect.X, t.rect.Y, t.rect.W, t.rect.H, style.BorderColor, style.BorderSize)
	}
	if t.hovered(t.rect) || t.st.resize.active {
		ctx.WantCaptureMouse = true
	}
}

// regions yields the scrollable columns, then the fixed ones drawn over
// them, with the screen X of each region's left edge and its clip span.
func (t *table) regions(fn func(cols []tableColumn, left, clipX0, clipX1 float32)) {
	x := t.rect.X
	fixedW := minf(t.layout.fixedW, t.rect.W)
	fn(t.layout.scrollable, x+fixedW-t.st.scrollX, x+fixedW, x+t.rect.W)
	if len(t.layout.fixed) > 0 {
		fn(t.layout.fixed, x, x, x+fixedW)
	}
}

func (t *table) drawHeader() {
	ctx := t.ctx
	style := ctx.style
	dl := ctx.DrawList
	y := t.rect.Y

	dl.AddRect(t.rect.X, y, t.rect.W, t.headerH, style.HeaderBgColor)

	t.regions(func(cols []tableColumn, left, clipX0, clipX1 float32) {
		dl.PushClipRect(clipX0, y, clipX1, y+t.headerH)
		for _, c := range cols {
			cell := Rect{X: left + c.x, Y: y, W: c.width, H: t.headerH}
			t.drawHeaderCell(c, cell, clipX0, clipX1)
		}
		dl.PopClipRect()
	})

	if style.BorderSize > 0 {
		dl.AddLine(t.rect.X, y+t.headerH, t.rect.X+t.rect.W, y+t.headerH, style.BorderColor, style.BorderSize)
	}
}

func (t *table) drawHeaderCell(c tableColumn, cell Rect, clipX0, clipX1 float32) {
	ctx := t.ctx
	style := ctx.style
	dl := ctx.DrawList
	props := t.props

	// The renderer reports its final widths; resize end pins columns to them.
	t.st.widthByKey[c.Key] = c.width

	visible := Rect{X: maxf(cell.X, clipX0), Y: cell.Y, W: minf(cell.X+cell.W, clipX1) - maxf(cell.X, clipX0), H: cell.H}
	handle := Rect{X: cell.X + cell.W - style.ResizeHandleWidth, Y: cell.Y, W: style.ResizeHandleWidth, H: cell.H}
	canResize := c.Resizable && props.OnColumnResize != nil
	overHandle := canResize && visible.W > 0 && t.hovered(handle)
	overHeader := visible.W > 0 && t.hovered(visible) && !overHandle

	bg := style.HeaderBgColor
	if c.Sortable && overHeader && !t.st.resize.active {
		bg = style.HeaderHoveredColor
	}
	dl.AddRect(cell.X, cell.Y, cell.W, cell.H, bg)

	// Only a sortable header shows the indicator; its width is reserved there.
	var dir SortDirection
	if c.Sortable && props.SortBy == c.Key {
		dir = props.SortDirection
	}

	textColor := style.headerTextColor()
	labelW := cell.W - style.CellPadding*2
	if c.Sortable {
		labelW -= sortIndicatorReserve(ctx)
	}
	label := TextWidthEllipsis(ctx, c.label(), labelW)
	textY := cell.Y + (cell.H-ctx.LineHeight())/2
	ctx.AddText(alignX(ctx, c.Align, cell.X+style.CellPadding, labelW, label), textY, label, textColor)

	if arrow := sortIndicator(dir); arrow != "" {
		color := style.SortIndicatorColor
		if color == 0 {
			color = textColor
		}
		ax := cell.X + cell.W - style.CellPadding - ctx.MeasureText(arrow).X
		ctx.AddText(ax, textY, arrow, color)
	}

	if style.BorderSize > 0 {
		dl.AddLine(cell.X+cell.W, cell.Y, cell.X+cell.W, cell.Y+cell.H, style.BorderColor, style.BorderSize)
	}

	if canResize && (overHandle || t.st.resize.key == c.Key) {
		dl.AddRect(handle.X, handle.Y, handle.W, handle.H, style.ResizeHandleColor)
	}

	if !t.interactive() || t.st.resize.active || !t.ctx.Input.MouseClicked(MouseButtonLeft) {
		return
	}
	switch {
	case overHandle:
		t.st.resize = resizeDrag{
			active:     true,
			key:        c.Key,
			startX:     t.ctx.Input.MouseX,
			startWidth: c.width,
			width:      c.width,
			edgeX:      cell.X + cell.W,
		}
	case overHeader && c.Sortable && props.OnSortChange != nil:
		SortHeader{ColumnKey: c.Key, Direction: dir, OnSortChange: props.OnSortChange}.Activate()
	}
}

func (t *table) drawBody() {
	if t.body.H <= 0 {
		return
	}
	ctx := t.ctx
	style := ctx.style
	dl := ctx.DrawList
	props := t.props

	dl.PushClipRect(t.body.X, t.body.Y, t.body.X+t.body.W, t.body.Y+t.body.H)
	defer dl.PopClipRect()

	clickable := props.OnRowClick != nil
	for row := t.clipper.StartIdx; row < t.clipper.EndIdx; row++ {
		y := t.clipper.RowY(row, t.body.Y, t.st.scrollY)
		h := t.heights[row]
		rowRect := Rect{X: t.body.X, Y: y, W: t.body.W, H: h}

		bg := style.GridBgColor
		if row%2 == 1 {
			bg = style.RowBgAltColor
		}
		hovered := clickable && !t.st.resize.active && t.hovered(rowRect) && t.hovered(t.body)
		if hovered {
			bg = style.RowHoveredColor
		}

		t.regions(func(cols []tableColumn, left, clipX0, clipX1 float32) {
			visible := Rect{X: clipX0, Y: y, W: clipX1 - clipX0, H: h}
			dl.PushClipRect(clipX0, y, clipX1, y+h)
			dl.AddRect(visible.X, visible.Y, visible.W, visible.H, bg)
			for _, c := range cols {
				cell := Rect{X: left + c.x, Y: y, W: c.width, H: h}
				if !cell.Intersects(visible) {
					continue
				}
				t.drawCell(row, c, cell)
			}
			dl.PopClipRect()
		})

		if style.BorderSize > 0 && row > 0 {
			dl.AddLine(t.body.X, y, t.body.X+t.body.W, y, style.BorderColor, style.BorderSize)
		}

		if hovered && ctx.Input.MouseClicked(MouseButtonLeft) {
			props.OnRowClick(row)
		}
	}
}

func (t *table) drawCell(row int, c tableColumn, cell Rect) {
	if t.props.ItemRenderer == nil {
		return
	}
	dl := t.ctx.DrawList
	dl.PushClipRect(cell.X, cell.Y, cell.X+cell.W, cell.Y+cell.H)
	t.props.ItemRenderer(t.ctx, Cell{
		RowIndex:    row,
		ColumnIndex: c.index,
		ColumnKey:   c.Key,
		Align:       c.Align,
		Rect:        cell,
	})
	dl.PopClipRect()
}

func (t *table) drawScrollbars() {
	style := t.ctx.style
	dl := t.ctx.DrawList
	size := style.ScrollbarSize
	if size <= 0 {
		return
	}

	if content := t.clipper.ContentHeight(); content > t.body.H && t.body.H > 0 {
		x := t.body.X + t.body.W - size
		dl.AddRect(x, t.body.Y, size, t.body.H, style.ScrollbarBgColor)
		grabH := maxf(size, t.body.H*t.body.H/content)
		grabY := t.body.Y + (t.body.H-grabH)*(t.st.scrollY/(content-t.body.H))
		dl.AddRect(x, grabY, size, grabH, style.ScrollbarGrabColor)
	}

	viewW := t.rect.W - t.layout.fixedW
	if content := t.layout.scrollW; content > viewW && viewW > 0 {
		x := t.rect.X + t.layout.fixedW
		y := t.rect.Y + t.rect.H - size
		dl.AddRect(x, y, viewW, size, style.ScrollbarBgColor)
		grabW := maxf(size, viewW*viewW/content)
		grabX := x + (viewW-grabW)*(t.st.scrollX/(content-viewW))
		dl.AddRect(grabX, y, grabW, size, style.ScrollbarGrabColor)
	}
}

// updateResize follows an active resize drag and ends it on release.
func (t *table) updateResize() {
	r := &t.st.resize
	if !r.active {
		return
	}
	if !t.interactive() {
		*r = resizeDrag{}
		return
	}

	style := t.ctx.style
	in := t.ctx.Input
	r.width = maxf(style.MinColumnWidth, r.startWidth+in.MouseX-r.startX)

	guideX := r.edgeX + r.width - r.startWidth
	if fg := t.ctx.ForegroundDrawList; fg != nil {
		fg.AddLine(guideX, t.rect.Y, guideX, t.rect.Y+t.rect.H, style.ResizeGuideColor, 2)
	}

	if in.MouseReleased(MouseButtonLeft) || !in.MouseDown(MouseButtonLeft) {
		key, width := r.key, r.width
		*r = resizeDrag{}
		t.st.resizeEnd(t.props, key, width)
	}
}

// alignX returns the X at which text of the given alignment starts inside
// [x, x+w].
func alignX(ctx *Context, a Align, x, w float32, text string) float32 {
	switch a {
	case AlignCenter:
		return x + maxf(0, (w-ctx.MeasureText(text).X)/2)
	case AlignRight:
		return x + maxf(0, w-ctx.MeasureText(text).X)
	default:
		return x
	}
}
