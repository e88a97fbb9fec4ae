package datagrid

import "sync"

// sweeper forgets entries whose owners stopped drawing.
type sweeper interface {
	sweep(frame uint64)
}

// frames is the frame counter shared by every UI, and the stores it sweeps.
var frames struct {
	sync.Mutex
	count  uint64
	stores []sweeper
}

// NextFrame advances the shared frame counter and sweeps every FrameStore.
// Context.Reset calls it once per frame.
func NextFrame() {
	frames.Lock()
	frames.count++
	frame, stores := frames.count, frames.stores
	frames.Unlock()

	for _, s := range stores {
		s.sweep(frame)
	}
}

func frameCount() uint64 {
	frames.Lock()
	defer frames.Unlock()
	return frames.count
}

// FrameStore holds state per ID for as long as the ID is drawn. An entry
// that was not touched during the previous frame is dropped, so a grid that
// leaves the UI loses its measurements and scroll position.
type FrameStore[T any] struct {
	mu      sync.Mutex
	entries map[ID]*frameEntry[T]
}

type frameEntry[T any] struct {
	value T
	seen  uint64
}

// NewFrameStore creates a store swept by NextFrame. Create stores at
// package level; they are never unregistered.
func NewFrameStore[T any]() *FrameStore[T] {
	s := &FrameStore[T]{entries: make(map[ID]*frameEntry[T])}
	frames.Lock()
	frames.stores = append(frames.stores, s)
	frames.Unlock()
	return s
}

// Get returns id's state and marks it drawn this frame. created reports
// that the state is new and still zero.
func (s *FrameStore[T]) Get(id ID) (state *T, created bool) {
	frame := frameCount()

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		e = &frameEntry[T]{}
		s.entries[id] = e
	}
	e.seen = frame
	return &e.value, !ok
}

// Len returns the number of live entries.
func (s *FrameStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *FrameStore[T]) sweep(frame uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.entries {
		if e.seen+1 < frame {
			delete(s.entries, id)
		}
	}
}
