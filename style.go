package datagrid

// DefaultHeaderHeight is the header row height, and the height used for body
// rows whose measurement has not committed yet.
const DefaultHeaderHeight float32 = 40

// Style defines the visual appearance of a grid.
type Style struct {
	// Text
	TextColor         uint32
	TextDisabledColor uint32

	// Header row
	HeaderBgColor      uint32
	HeaderTextColor    uint32 // 0 = use TextColor
	HeaderHoveredColor uint32 // Sortable header under the mouse
	SortIndicatorColor uint32 // 0 = use header text color

	// Body
	GridBgColor     uint32
	RowBgAltColor   uint32
	RowHoveredColor uint32
	BorderColor     uint32

	// Column resizing
	ResizeHandleColor uint32
	ResizeGuideColor  uint32

	// Scrollbar
	ScrollbarBgColor   uint32
	ScrollbarGrabColor uint32

	// Font
	FontScale  float32
	CharWidth  float32 // Built-in font cell width, before FontScale
	CharHeight float32 // Built-in font cell height, before FontScale

	// Sizing
	HeaderHeight      float32 // 0 = DefaultHeaderHeight
	CellPadding       float32 // Horizontal padding on each side of a cell
	CellPaddingY      float32 // Vertical padding above and below cell content
	ResizeHandleWidth float32 // Grab area at a resizable header's right edge
	MinColumnWidth    float32 // Lower bound while dragging a resize handle
	ScrollbarSize     float32
	BorderSize        float32
}

// DefaultStyle returns the default dark grid style.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		HeaderBgColor:      RGBA(40, 40, 40, 255),
		HeaderTextColor:    0,
		HeaderHoveredColor: RGBA(60, 60, 60, 255),
		SortIndicatorColor: 0,

		GridBgColor:     RGBA(20, 20, 20, 230),
		RowBgAltColor:   RGBA(35, 35, 35, 255),
		RowHoveredColor: RGBA(50, 70, 90, 255),
		BorderColor:     RGBA(80, 80, 80, 255),

		ResizeHandleColor: RGBA(100, 100, 100, 255),
		ResizeGuideColor:  RGBA(0, 150, 200, 255),

		ScrollbarBgColor:   RGBA(30, 30, 30, 255),
		ScrollbarGrabColor: RGBA(80, 80, 80, 255),

		FontScale:  1.0,
		CharWidth:  8,
		CharHeight: 8,

		HeaderHeight:      DefaultHeaderHeight,
		CellPadding:       6,
		CellPaddingY:      4,
		ResizeHandleWidth: 6,
		MinColumnWidth:    16,
		ScrollbarSize:     10,
		BorderSize:        1,
	}
}

// GTAStyle returns the cyan/yellow theme of the GTA menus.
func GTAStyle() Style {
	s := DefaultStyle()
	s.HeaderBgColor = RGBA(0, 80, 120, 255)
	s.HeaderTextColor = ColorWhite
	s.HeaderHoveredColor = RGBA(0, 110, 160, 255)
	s.SortIndicatorColor = RGBA(255, 200, 0, 255)
	s.GridBgColor = RGBA(0, 0, 0, 220)
	s.RowBgAltColor = RGBA(20, 30, 40, 255)
	s.BorderColor = RGBA(0, 100, 150, 255)
	s.ResizeGuideColor = RGBA(255, 200, 0, 255)
	s.ScrollbarGrabColor = RGBA(0, 100, 150, 255)
	s.FontScale = 1.5
	return s
}

// TextCellStyle returns a style whose units are terminal character cells:
// one column of text is one unit wide and one line is one unit tall.
// Headless tools use it to report layouts in characters.
func TextCellStyle() Style {
	s := DefaultStyle()
	s.CharWidth = 1
	s.CharHeight = 1
	s.HeaderHeight = 1
	s.CellPadding = 1
	s.CellPaddingY = 0
	s.ResizeHandleWidth = 1
	s.MinColumnWidth = 1
	s.ScrollbarSize = 1
	s.BorderSize = 0
	return s
}

func (s Style) headerHeight() float32 {
	if s.HeaderHeight > 0 {
		return s.HeaderHeight
	}
	return DefaultHeaderHeight
}

func (s Style) headerTextColor() uint32 {
	if s.HeaderTextColor != 0 {
		return s.HeaderTextColor
	}
	return s.TextColor
}

// withPalette returns s with every color taken from p.
func (s Style) withPalette(p Style) Style {
	s.TextColor = p.TextColor
	s.TextDisabledColor = p.TextDisabledColor
	s.HeaderBgColor = p.HeaderBgColor
	s.HeaderTextColor = p.HeaderTextColor
	s.HeaderHoveredColor = p.HeaderHoveredColor
	s.SortIndicatorColor = p.SortIndicatorColor
	s.GridBgColor = p.GridBgColor
	s.RowBgAltColor = p.RowBgAltColor
	s.RowHoveredColor = p.RowHoveredColor
	s.BorderColor = p.BorderColor
	s.ResizeHandleColor = p.ResizeHandleColor
	s.ResizeGuideColor = p.ResizeGuideColor
	s.ScrollbarBgColor = p.ScrollbarBgColor
	s.ScrollbarGrabColor = p.ScrollbarGrabColor
	return s
}
