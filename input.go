package datagrid

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	mouseButtonCount
)

// buttonState is one button's level and this frame's edges.
type buttonState struct {
	down     bool
	pressed  bool
	released bool
}

// InputState is the pointer as a grid sees it during one frame. A backend
// calls Reset, then feeds events, then hands it to UI.Begin.
type InputState struct {
	MouseX, MouseY float32

	// Wheel deltas for this frame. Positive Y scrolls up.
	MouseWheelX, MouseWheelY float32

	// ModShift turns vertical wheel motion into horizontal scrolling.
	ModShift bool

	buttons [mouseButtonCount]buttonState
}

// NewInputState returns an input with no button held.
func NewInputState() *InputState {
	return &InputState{}
}

// Reset drops the edges and wheel motion of the previous frame. Held
// buttons stay held.
func (s *InputState) Reset() {
	for i := range s.buttons {
		s.buttons[i].pressed = false
		s.buttons[i].released = false
	}
	s.MouseWheelX, s.MouseWheelY = 0, 0
}

// SetMousePos moves the pointer.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX, s.MouseY = x, y
}

// SetMouseButton sets b's level. A change of level is recorded as a press or
// release edge for this frame.
func (s *InputState) SetMouseButton(b MouseButton, down bool) {
	st := s.button(b)
	if st == nil {
		return
	}
	switch {
	case down && !st.down:
		st.pressed = true
	case !down && st.down:
		st.released = true
	}
	st.down = down
}

// SetMouseWheel sets this frame's wheel motion.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX, s.MouseWheelY = x, y
}

// Mouse returns the pointer position.
func (s *InputState) Mouse() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}

// MouseDown reports whether b is held.
func (s *InputState) MouseDown(b MouseButton) bool {
	st := s.button(b)
	return st != nil && st.down
}

// MouseClicked reports whether b went down this frame.
func (s *InputState) MouseClicked(b MouseButton) bool {
	st := s.button(b)
	return st != nil && st.pressed
}

// MouseReleased reports whether b went up this frame.
func (s *InputState) MouseReleased(b MouseButton) bool {
	st := s.button(b)
	return st != nil && st.released
}

func (s *InputState) button(b MouseButton) *buttonState {
	if b < 0 || b >= mouseButtonCount {
		return nil
	}
	return &s.buttons[b]
}
