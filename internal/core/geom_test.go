package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        BoxAt(V(10, 10), V(10, 10)),
			b:        BoxAt(V(15, 15), V(10, 10)),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        BoxAt(V(0, 0), V(10, 10)),
			b:        BoxAt(V(20, 0), V(10, 10)),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        BoxAt(V(0, 0), V(10, 10)),
			b:        BoxAt(V(0, 20), V(10, 10)),
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        BoxAt(V(0, 0), V(10, 10)),
			b:        BoxAt(V(10, 0), V(10, 10)),
			expected: false,
		},
		{
			name:     "contained box",
			a:        BoxAt(V(50, 50), V(40, 40)),
			b:        BoxAt(V(52, 48), V(4, 12)),
			expected: true,
		},
		{
			name:     "sub-unit overlap",
			a:        BoxAt(V(0, 0), V(10, 10)),
			b:        BoxAt(V(9.9, 0), V(10, 10)),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// Collision must be symmetric
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := BoxAt(V(400, 520), V(36, 28))

	if b.Left() != 382 || b.Right() != 418 {
		t.Errorf("horizontal edges = (%v, %v), expected (382, 418)", b.Left(), b.Right())
	}
	if b.Top() != 506 || b.Bottom() != 534 {
		t.Errorf("vertical edges = (%v, %v), expected (506, 534)", b.Top(), b.Bottom())
	}
}

func TestVec2(t *testing.T) {
	v := V(1, 2).Add(V(3, -4))
	if v != V(4, -2) {
		t.Errorf("Add() = %v, expected {4 -2}", v)
	}
	if s := V(1.5, -2).Scale(2); s != V(3, -4) {
		t.Errorf("Scale() = %v, expected {3 -4}", s)
	}
}

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"adjacent horizontal", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"adjacent vertical", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"single cell overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	if !r.Contains(10, 10) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(30, 25) {
		t.Error("bottom-right edge is exclusive")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(815.5, 18, 782); got != 782 {
		t.Errorf("ClampF above max = %v, expected 782", got)
	}
	if got := ClampF(-3, 18, 782); got != 18 {
		t.Errorf("ClampF below min = %v, expected 18", got)
	}
}
