package datagrid

// CellText draws text in a cell with the default text color.
//
// While measuring, the full text is drawn so the probe sees its natural
// width. Otherwise it is truncated to the cell and placed by cell.Align.
func (ctx *Context) CellText(cell Cell, text string) {
	ctx.CellTextColored(cell, text, ctx.style.TextColor)
}

// CellTextColored draws text in a cell with the given color.
func (ctx *Context) CellTextColored(cell Cell, text string, color uint32) {
	style := ctx.style
	x := cell.Rect.X + style.CellPadding
	y := cell.Rect.Y + style.CellPaddingY
	if ctx.measuring {
		ctx.AddText(x, y, text, color)
		return
	}

	inner := cell.Rect.W - style.CellPadding*2
	shown := TextWidthEllipsis(ctx, text, inner)
	ctx.AddText(alignX(ctx, cell.Align, x, inner, shown), y, shown, color)
}

// CellTextWrapped draws text wrapped to the cell's width, one line below
// the other. A cell measured without a pinned width only breaks at
// newlines, so wrapping pays off in columns with Column.Width set.
func (ctx *Context) CellTextWrapped(cell Cell, text string, mode TextWrapMode) {
	style := ctx.style
	inner := cell.Rect.W - style.CellPadding*2
	x := cell.Rect.X + style.CellPadding
	y := cell.Rect.Y + style.CellPaddingY

	lines := WrapText(ctx, text, inner, mode)
	lh := ctx.LineHeight()
	for i, line := range lines {
		if !ctx.measuring && inner > 0 {
			line = TextWidthEllipsis(ctx, line, inner)
		}
		ctx.AddText(alignX(ctx, cell.Align, x, inner, line), y+float32(i)*lh, line, style.TextColor)
	}
}
