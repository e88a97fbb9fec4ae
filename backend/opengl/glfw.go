package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/datagrid"
)

// buttons maps GLFW buttons to grid buttons. Others are ignored.
var buttons = map[glfw.MouseButton]datagrid.MouseButton{
	glfw.MouseButtonLeft:   datagrid.MouseButtonLeft,
	glfw.MouseButtonRight:  datagrid.MouseButtonRight,
	glfw.MouseButtonMiddle: datagrid.MouseButtonMiddle,
}

// GLFWInputAdapter feeds a window's pointer events into a
// datagrid.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *datagrid.InputState
}

// NewGLFWInputAdapter installs pointer callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{window: window, input: datagrid.NewInputState()}

	window.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if gb, ok := buttons[b]; ok && action != glfw.Repeat {
			a.input.SetMouseButton(gb, action == glfw.Press)
		}
	})
	window.SetScrollCallback(func(_ *glfw.Window, x, y float64) {
		a.input.SetMouseWheel(float32(x), float32(y))
	})
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		a.input.SetMousePos(float32(x), float32(y))
	})
	return a
}

// Update starts a frame's input: it clears the previous frame's edges and
// samples the cursor and shift key. Call it before glfw.PollEvents so the
// events polled this frame are kept.
func (a *GLFWInputAdapter) Update() *datagrid.InputState {
	a.input.Reset()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press

	return a.input
}
