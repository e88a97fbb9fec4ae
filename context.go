package datagrid

import (
	"log/slog"
	"os"

	"github.com/mattn/go-runewidth"
)

// gridLogLevel controls the package loggers. The default is Info, which
// keeps Debug records quiet but still shows configuration warnings.
var gridLogLevel = new(slog.LevelVar)

// gridLogger is the logger for grid lifecycle and contract warnings.
var gridLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: gridLogLevel}))

// SetVerbose enables or disables debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		gridLogLevel.Set(slog.LevelDebug)
	} else {
		gridLogLevel.Set(slog.LevelInfo)
	}
}

func gridVerbose() bool {
	return gridLogLevel.Level() <= slog.LevelDebug
}

// Context holds all state for drawing a single frame.
// This is NOT context.Context; it is the immediate-mode drawing context.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // Overlays such as the resize guide

	style Style

	cursor Vec2

	// Input (read-only during frame). nil while measuring.
	Input *InputState

	idCounter uint32

	DisplaySize Vec2

	FrameCount uint64
	DeltaTime  float32

	// Built-in font texture, set by the renderer.
	FontTextureID uint32

	fontProvider FontProvider

	// Reused between AddText calls.
	glyphBuffer []GlyphQuad

	// Per-frame text measurement cache.
	textMeasureCache map[string]Vec2

	// Tasks that must run after the frame has been submitted.
	afterFrame []func()

	// measuring marks a scratch context used by the cell probe. Widgets
	// drawn into it must not react to input or schedule work.
	measuring bool

	// WantCaptureMouse is set when a grid consumed the mouse this frame.
	WantCaptureMouse bool
}

// NewContext creates a new drawing context with default settings.
func NewContext() *Context {
	return &Context{
		style:            DefaultStyle(),
		glyphBuffer:      make([]GlyphQuad, 0, 256),
		textMeasureCache: make(map[string]Vec2, 64),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	NextFrame()

	ctx.FrameCount++
	ctx.cursor = Vec2{}
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.WantCaptureMouse = false

	clear(ctx.textMeasureCache)
}

// IsMeasuring reports whether this context draws into a probe's scratch list
// rather than the visible frame. Cell renderers can use it to skip work that
// does not affect size.
func (ctx *Context) IsMeasuring() bool {
	return ctx.measuring
}

// AfterFrame queues fn to run once the current frame has been rendered.
// Tasks queued while the queue is draining run after the next frame.
func (ctx *Context) AfterFrame(fn func()) {
	if fn == nil {
		return
	}
	ctx.afterFrame = append(ctx.afterFrame, fn)
}

// runAfterFrame drains the tasks queued before it was called.
func (ctx *Context) runAfterFrame() {
	tasks := ctx.afterFrame
	ctx.afterFrame = nil
	for _, fn := range tasks {
		fn()
	}
}

// newMeasureContext returns a scratch context that shares this context's
// style and fonts but draws into its own DrawList. Release it with
// releaseMeasureContext.
func (ctx *Context) newMeasureContext() *Context {
	cache := ctx.textMeasureCache
	if cache == nil {
		cache = make(map[string]Vec2)
	}
	return &Context{
		DrawList:         AcquireDrawList(),
		style:            ctx.style,
		DisplaySize:      ctx.DisplaySize,
		FrameCount:       ctx.FrameCount,
		FontTextureID:    ctx.FontTextureID,
		fontProvider:     ctx.fontProvider,
		textMeasureCache: cache,
		measuring:        true,
	}
}

func releaseMeasureContext(m *Context) {
	ReleaseDrawList(m.DrawList)
	m.DrawList = nil
}

// SetCursorPos sets the position of the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the position of the next widget.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// AdvanceCursor moves the cursor below a widget of the given size.
func (ctx *Context) AdvanceCursor(size Vec2) {
	ctx.cursor.Y += size.Y
}

// AvailableWidth returns the width left between the cursor and the right
// edge of the display.
func (ctx *Context) AvailableWidth() float32 {
	return maxf(0, ctx.DisplaySize.X-ctx.cursor.X)
}

// LineHeight returns the height of a single line of text.
func (ctx *Context) LineHeight() float32 {
	if f := ctx.activeFont(); f != nil {
		return f.LineHeight(ctx.style.FontScale)
	}
	return ctx.style.CharHeight * ctx.style.FontScale
}

// MeasureText returns the size of rendered text.
// The built-in font is monospace; wide runes count as two cells.
func (ctx *Context) MeasureText(text string) Vec2 {
	if ctx.textMeasureCache != nil {
		if cached, ok := ctx.textMeasureCache[text]; ok {
			return cached
		}
	}

	var result Vec2
	if f := ctx.activeFont(); f != nil {
		result = f.MeasureText(text, ctx.style.FontScale)
	} else {
		charW := ctx.style.CharWidth * ctx.style.FontScale
		charH := ctx.style.CharHeight * ctx.style.FontScale
		result = Vec2{X: float32(runewidth.StringWidth(text)) * charW, Y: charH}
	}

	if ctx.textMeasureCache != nil {
		ctx.textMeasureCache[text] = result
	}
	return result
}

func (ctx *Context) activeFont() Font {
	if ctx.fontProvider != nil {
		return ctx.fontProvider.ActiveFont()
	}
	return nil
}

// SetFontProvider sets the font provider. nil selects the built-in font.
func (ctx *Context) SetFontProvider(fp FontProvider) {
	ctx.fontProvider = fp
}

// FontProvider returns the current font provider, or nil if not set.
func (ctx *Context) FontProvider() FontProvider {
	return ctx.fontProvider
}

// AddText draws text into the frame's DrawList.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddTextTo draws text into dl using the active font.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	if f := ctx.activeFont(); f != nil {
		dl.SetTexture(f.TextureID())
		quads := f.GetGlyphQuads(text, x, y, ctx.style.FontScale)
		ctx.glyphBuffer = append(ctx.glyphBuffer[:0], quads...)
		dl.AddGlyphQuads(ctx.glyphBuffer, color)
		dl.SetTexture(0)
		return
	}

	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}
