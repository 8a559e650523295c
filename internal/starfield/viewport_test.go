package starfield

import "testing"

func TestSignal(t *testing.T) {
	s := NewSignal(10, 20)
	calls := 0
	remove := s.OnResize(func() { calls++ })

	if s.Set(10, 20) {
		t.Error("Set reported a change for the same size")
	}
	if !s.Set(30, 40) {
		t.Error("Set did not report a change")
	}
	if w, h := s.Size(); w != 30 || h != 40 {
		t.Errorf("Size = %dx%d", w, h)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	remove()
	remove()
	s.Set(1, 1)
	if calls != 1 {
		t.Error("removed listener was called")
	}
	if s.Listeners() != 0 {
		t.Errorf("Listeners = %d", s.Listeners())
	}
}

func TestSignal_RemoveDuringNotify(t *testing.T) {
	s := NewSignal(0, 0)
	var removeA func()
	a, b := 0, 0
	removeA = s.OnResize(func() { a++; removeA() })
	s.OnResize(func() { b++ })

	s.Set(5, 5)
	s.Set(6, 6)
	if a != 1 || b != 2 {
		t.Errorf("a=%d b=%d, want 1 and 2", a, b)
	}
}
