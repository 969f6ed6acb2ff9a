package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 2, 3, 3), true},
		{"touching edges", NewRect(0, 0, 5, 5), NewRect(5, 0, 5, 5), false},
		{"disjoint horizontal", NewRect(0, 0, 5, 5), NewRect(10, 0, 5, 5), false},
		{"disjoint vertical", NewRect(0, 0, 5, 5), NewRect(0, 10, 5, 5), false},
		{"identical", NewRect(1, 1, 4, 4), NewRect(1, 1, 4, 4), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects() = %v, expected %v", got, tt.want)
			}
			// Intersection is symmetric
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("reverse Intersects() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 2, 4, 4)

	if !r.Contains(2, 2) {
		t.Error("Contains should include the top-left corner")
	}
	if r.Contains(6, 6) {
		t.Error("Contains should exclude the bottom-right edge")
	}
	if r.Contains(1, 3) {
		t.Error("Contains should exclude points left of the rect")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 5, 6)

	if r.Right() != 8 {
		t.Errorf("Right() = %d, expected 8", r.Right())
	}
	if r.Bottom() != 10 {
		t.Errorf("Bottom() = %d, expected 10", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 5 || cy != 7 {
		t.Errorf("Center() = (%d, %d), expected (5, 7)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d, expected 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %d, expected 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42, 0, 10) = %d, expected 10", got)
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.5, 0, 1); got != 0.5 {
		t.Errorf("ClampF(0.5, 0, 1) = %f, expected 0.5", got)
	}
	if got := ClampF(-0.1, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.1, 0, 1) = %f, expected 0", got)
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f, expected 1", got)
	}
}

func TestInputFrameChoice(t *testing.T) {
	f := NewInputFrame()
	if f.Choice() != -1 {
		t.Errorf("empty frame Choice() = %d, expected -1", f.Choice())
	}

	f.Set(ActionChoice3)
	if f.Choice() != 2 {
		t.Errorf("Choice() = %d, expected 2", f.Choice())
	}

	f.Clear()
	if f.Choice() != -1 {
		t.Errorf("cleared frame Choice() = %d, expected -1", f.Choice())
	}
}
