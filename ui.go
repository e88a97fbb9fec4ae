package datagrid

import "fmt"

// Renderer draws a frame's draw lists.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// UI owns the frame loop for one window.
type UI struct {
	renderer     Renderer
	style        Style
	ctx          *Context
	fontProvider FontProvider
}

// Option configures a UI instance.
type Option func(*UI)

// WithStyle sets the UI style.
func WithStyle(style Style) Option {
	return func(u *UI) { u.style = style }
}

// WithFontProvider sets the font provider passed to every frame's Context.
func WithFontProvider(fp FontProvider) Option {
	return func(u *UI) { u.fontProvider = fp }
}

// NewUI creates a new UI instance.
func NewUI(renderer Renderer, opts ...Option) *UI {
	u := &UI{
		renderer: renderer,
		style:    DefaultStyle(),
		ctx:      NewContext(),
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Begin starts a new frame and returns its drawing context.
func (u *UI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := u.ctx

	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList()

	ctx.Input = input
	ctx.SetStyle(u.style)
	ctx.FontTextureID = u.renderer.FontTextureID()
	ctx.SetFontProvider(u.fontProvider)

	ctx.Reset(displaySize, deltaTime)

	return ctx
}

// End submits the frame to the renderer, then runs the tasks queued with
// Context.AfterFrame. Grids use those tasks to measure cells once the frame
// that showed their placeholder layout has been committed.
func (u *UI) End() error {
	ctx := u.ctx
	if ctx.DrawList == nil {
		return nil
	}

	err := u.renderer.Render(ctx.DrawList)
	if err == nil && ctx.ForegroundDrawList != nil && len(ctx.ForegroundDrawList.CmdBuffer) > 0 {
		err = u.renderer.Render(ctx.ForegroundDrawList)
	}

	ReleaseDrawList(ctx.DrawList)
	ctx.DrawList = nil
	ReleaseDrawList(ctx.ForegroundDrawList)
	ctx.ForegroundDrawList = nil

	if err != nil {
		return fmt.Errorf("render frame %d: %w", ctx.FrameCount, err)
	}

	ctx.runAfterFrame()
	return nil
}

// Context returns the frame context. Only valid between Begin and End.
func (u *UI) Context() *Context {
	return u.ctx
}

// Style returns the current UI style.
func (u *UI) Style() Style {
	return u.style
}

// SetStyle sets the UI style from the next frame on.
func (u *UI) SetStyle(style Style) {
	u.style = style
}

// Resize notifies the renderer of a display size change.
func (u *UI) Resize(width, height int) {
	u.renderer.Resize(width, height)
}
