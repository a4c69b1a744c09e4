package geom

import "testing"

func TestRect_Overlaps(t *testing.T) {
	pad := R(V(20, 275), V(10, 50))

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"inside", R(V(22, 280), V(2, 2)), true},
		{"overlapping left edge", R(V(15, 290), V(10, 10)), true},
		{"overlapping bottom edge", R(V(20, 320), V(10, 10)), true},
		{"touching left edge", R(V(10, 290), V(10, 10)), false},
		{"touching right edge", R(V(30, 290), V(10, 10)), false},
		{"touching top edge", R(V(20, 265), V(10, 10)), false},
		{"touching bottom edge", R(V(20, 325), V(10, 10)), false},
		{"far away", R(V(400, 300), V(10, 10)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.other.Overlaps(pad); got != tt.expected {
				t.Errorf("Overlaps() = %v, want %v", got, tt.expected)
			}
			if got := pad.Overlaps(tt.other); got != tt.expected {
				t.Errorf("Overlaps() is not symmetric: got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRect_Edges(t *testing.T) {
	r := R(V(20, 275), V(10, 50))

	if r.Right() != 30 {
		t.Errorf("expected Right=30, got %f", r.Right())
	}
	if r.Bottom() != 325 {
		t.Errorf("expected Bottom=325, got %f", r.Bottom())
	}
	if c := r.Center(); c != V(25, 300) {
		t.Errorf("expected Center=(25,300), got %v", c)
	}
}

func TestVec_Add(t *testing.T) {
	got := V(1.5, -2).Add(V(0.5, 7.5))
	if got != V(2, 5.5) {
		t.Errorf("expected (2,5.5), got %v", got)
	}
}
