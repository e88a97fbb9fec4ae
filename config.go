package datagrid

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is a grid description loaded from TOML.
type Config struct {
	Grid    GridConfig     `toml:"grid"`
	Theme   ThemeConfig    `toml:"theme"`
	Columns []ColumnConfig `toml:"columns"`
}

// GridConfig holds sizing options. Zero keeps the base style's value.
type GridConfig struct {
	HeaderHeight float32 `toml:"header_height"`
	CellPadding  float32 `toml:"cell_padding"`
	CellPaddingY float32 `toml:"cell_padding_y"`
	FontScale    float32 `toml:"font_scale"`
	MaxHeight    float32 `toml:"max_height"`
	Width        float32 `toml:"width"`
}

// ThemeConfig holds colors as "#RRGGBB" or "#RRGGBBAA". Empty keeps the
// style's color.
type ThemeConfig struct {
	Base          string `toml:"base"` // "default" or "gta"
	Text          string `toml:"text"`
	HeaderBg      string `toml:"header_bg"`
	HeaderText    string `toml:"header_text"`
	SortIndicator string `toml:"sort_indicator"`
	GridBg        string `toml:"grid_bg"`
	RowAlt        string `toml:"row_alt"`
	RowHovered    string `toml:"row_hovered"`
	Border        string `toml:"border"`
	ResizeGuide   string `toml:"resize_guide"`
}

// ColumnConfig is the TOML form of a Column.
type ColumnConfig struct {
	Key       string  `toml:"key"`
	Label     string  `toml:"label"`
	Align     string  `toml:"align,omitempty"`
	Resizable bool    `toml:"resizable,omitempty"`
	Fixed     bool    `toml:"fixed,omitempty"`
	Sortable  bool    `toml:"sortable,omitempty"`
	FlexGrow  *int    `toml:"flex_grow,omitempty"`
	Width     float32 `toml:"width,omitempty"`
}

// DefaultConfig returns a config that leaves the base style unchanged.
func DefaultConfig() Config {
	return Config{Theme: ThemeConfig{Base: "default"}}
}

// LoadConfig reads and parses a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig parses TOML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks column keys, alignments and theme colors.
func (c Config) Validate() error {
	seen := make(map[string]bool, len(c.Columns))
	for i, col := range c.Columns {
		if col.Key == "" {
			return fmt.Errorf("column %d: missing key", i)
		}
		if seen[col.Key] {
			return fmt.Errorf("column %d: duplicate key %q", i, col.Key)
		}
		seen[col.Key] = true
		if _, err := ParseAlign(col.Align); err != nil {
			return fmt.Errorf("column %q: %w", col.Key, err)
		}
		if col.Width < 0 {
			return fmt.Errorf("column %q: negative width", col.Key)
		}
	}
	switch c.Theme.Base {
	case "", "default", "gta":
	default:
		return fmt.Errorf("theme: unknown base %q", c.Theme.Base)
	}
	for name, v := range c.Theme.colors() {
		if _, err := ParseColor(v); v != "" && err != nil {
			return fmt.Errorf("theme.%s: %w", name, err)
		}
	}
	return nil
}

// Marshal encodes the config as TOML.
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

func (t ThemeConfig) colors() map[string]string {
	return map[string]string{
		"text":           t.Text,
		"header_bg":      t.HeaderBg,
		"header_text":    t.HeaderText,
		"sort_indicator": t.SortIndicator,
		"grid_bg":        t.GridBg,
		"row_alt":        t.RowAlt,
		"row_hovered":    t.RowHovered,
		"border":         t.Border,
		"resize_guide":   t.ResizeGuide,
	}
}

// Style applies the config on top of base. The "gta" theme replaces base's
// colors but keeps its sizes.
func (c Config) Style(base Style) Style {
	s := base
	if c.Theme.Base == "gta" {
		s = s.withPalette(GTAStyle())
	}

	if c.Grid.HeaderHeight > 0 {
		s.HeaderHeight = c.Grid.HeaderHeight
	}
	if c.Grid.CellPadding > 0 {
		s.CellPadding = c.Grid.CellPadding
	}
	if c.Grid.CellPaddingY > 0 {
		s.CellPaddingY = c.Grid.CellPaddingY
	}
	if c.Grid.FontScale > 0 {
		s.FontScale = c.Grid.FontScale
	}

	setColor(&s.TextColor, c.Theme.Text)
	setColor(&s.HeaderBgColor, c.Theme.HeaderBg)
	setColor(&s.HeaderTextColor, c.Theme.HeaderText)
	setColor(&s.SortIndicatorColor, c.Theme.SortIndicator)
	setColor(&s.GridBgColor, c.Theme.GridBg)
	setColor(&s.RowBgAltColor, c.Theme.RowAlt)
	setColor(&s.RowHoveredColor, c.Theme.RowHovered)
	setColor(&s.BorderColor, c.Theme.Border)
	setColor(&s.ResizeGuideColor, c.Theme.ResizeGuide)
	return s
}

func setColor(dst *uint32, hex string) {
	if hex == "" {
		return
	}
	if c, err := ParseColor(hex); err == nil {
		*dst = c
	}
}

// ColumnDefs converts the configured columns.
func (c Config) ColumnDefs() ([]Column, error) {
	cols := make([]Column, len(c.Columns))
	for i, cc := range c.Columns {
		align, err := ParseAlign(cc.Align)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", cc.Key, err)
		}
		label := cc.Label
		if label == "" {
			label = cc.Key
		}
		cols[i] = Column{
			Key:       cc.Key,
			Label:     label,
			Align:     align,
			Resizable: cc.Resizable,
			Fixed:     cc.Fixed,
			Sortable:  cc.Sortable,
			FlexGrow:  cc.FlexGrow,
			Width:     cc.Width,
		}
	}
	return cols, nil
}

// ColumnConfigs converts columns back to their TOML form, for saving the
// result of a resize.
func ColumnConfigs(cols []Column) []ColumnConfig {
	out := make([]ColumnConfig, len(cols))
	for i, c := range cols {
		align := ""
		if c.Align != AlignLeft {
			align = c.Align.String()
		}
		out[i] = ColumnConfig{
			Key:       c.Key,
			Label:     c.Label,
			Align:     align,
			Resizable: c.Resizable,
			Fixed:     c.Fixed,
			Sortable:  c.Sortable,
			FlexGrow:  c.FlexGrow,
			Width:     c.Width,
		}
	}
	return out
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA" into a packed color.
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
