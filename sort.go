package datagrid

// SortDirection is the direction of the grid's single sort column.
// The empty value means the data is unsorted.
type SortDirection string

const (
	SortNone       SortDirection = ""
	SortAscending  SortDirection = "ASC"
	SortDescending SortDirection = "DESC"
)

// ReverseSortDirection returns the direction a header click moves to:
// DESC becomes ASC and anything else becomes DESC.
func ReverseSortDirection(d SortDirection) SortDirection {
	if d == SortDescending {
		return SortAscending
	}
	return SortDescending
}

// SortChangeFunc receives the clicked column and its next direction.
// The grid does not reorder rows itself.
type SortChangeFunc func(columnKey string, dir SortDirection)

// SortHeader is the click behavior of a sortable column header.
type SortHeader struct {
	ColumnKey    string
	Direction    SortDirection // current direction of this column, "" if unsorted
	OnSortChange SortChangeFunc
}

// Activate emits the column key and its next direction. Without a callback
// it only warns.
func (h SortHeader) Activate() SortDirection {
	next := ReverseSortDirection(h.Direction)
	if h.OnSortChange == nil {
		gridLogger.Warn("sortable column has no sort change callback", "column", h.ColumnKey)
		return next
	}
	if gridVerbose() {
		gridLogger.Debug("sort header activated", "column", h.ColumnKey, "from", string(h.Direction), "to", string(next))
	}
	h.OnSortChange(h.ColumnKey, next)
	return next
}

// sortIndicator returns the arrow for dir, or "" when unsorted.
func sortIndicator(dir SortDirection) string {
	switch dir {
	case SortAscending:
		return "↑"
	case SortDescending:
		return "↓"
	}
	return ""
}

// sortIndicatorReserve is the width reserved after a sortable header's label
// so the arrow never changes the measured column width.
func sortIndicatorReserve(ctx *Context) float32 {
	return ctx.MeasureText("↓").X + ctx.style.CellPadding
}
