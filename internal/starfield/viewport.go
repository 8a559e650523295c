package starfield

// Signal is an in-process Viewport. Hosts that learn their size from an
// event loop call Set, and listeners run synchronously on that goroutine.
type Signal struct {
	w, h      int
	lastID    int
	listeners []listener
}

type listener struct {
	id int
	fn func()
}

// NewSignal returns a Signal starting at w×h.
func NewSignal(w, h int) *Signal {
	return &Signal{w: w, h: h}
}

// Size returns the current size.
func (s *Signal) Size() (w, h int) { return s.w, s.h }

// OnResize registers fn. The returned func removes it and may be called more
// than once.
func (s *Signal) OnResize(fn func()) (remove func()) {
	s.lastID++
	id := s.lastID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Set updates the size and notifies listeners when it changed. It reports
// whether a notification happened.
func (s *Signal) Set(w, h int) bool {
	if w == s.w && h == s.h {
		return false
	}
	s.w, s.h = w, h
	for _, l := range append([]listener(nil), s.listeners...) {
		l.fn()
	}
	return true
}

// Listeners returns the number of registered listeners.
func (s *Signal) Listeners() int { return len(s.listeners) }
