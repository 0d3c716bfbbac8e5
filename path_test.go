package lsys

import (
	"math"
	"testing"
)

func TestPath_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		path     Path
		min, max Point
	}{
		{"empty", Path{}, Pt(0, 0), Pt(0, 0)},
		{"single", Path{Pt(2, 3)}, Pt(2, 3), Pt(2, 3)},
		{"spread", Path{Pt(0, 0), Pt(-1, 4), Pt(3, -2)}, Pt(-1, -2), Pt(3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := tt.path.Bounds()
			if !min.Approx(tt.min, 1e-12) || !max.Approx(tt.max, 1e-12) {
				t.Errorf("Bounds() = %v, %v, want %v, %v", min, max, tt.min, tt.max)
			}
		})
	}
}

func TestPath_Length(t *testing.T) {
	tests := []struct {
		name   string
		path   Path
		expect float64
	}{
		{"empty", Path{}, 0},
		{"single point", Path{Pt(1, 1)}, 0},
		{"unit segment", Path{Pt(0, 0), Pt(1, 0)}, 1},
		{"L shape", Path{Pt(0, 0), Pt(3, 0), Pt(3, 4)}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.Length(); math.Abs(got-tt.expect) > 1e-12 {
				t.Errorf("Length() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestPath_Transform(t *testing.T) {
	p := Path{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	got := p.Transform(Translate(10, 20))
	want := Path{Pt(10, 20), Pt(11, 20), Pt(11, 21)}
	for i := range want {
		if !got[i].Approx(want[i], 1e-12) {
			t.Errorf("Transform()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	// Original path untouched.
	if !p[0].Approx(Pt(0, 0), 0) {
		t.Error("Transform modified the receiver")
	}
}

func TestPath_IsClosed(t *testing.T) {
	tests := []struct {
		name   string
		path   Path
		expect bool
	}{
		{"empty", Path{}, false},
		{"single point", Path{Pt(0, 0)}, false},
		{"open", Path{Pt(0, 0), Pt(1, 0)}, false},
		{"closed triangle", Path{Pt(0, 0), Pt(1, 0), Pt(0.5, 1), Pt(0, 0)}, true},
		{"closed within eps", Path{Pt(0, 0), Pt(1, 0), Pt(1e-9, -1e-9)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.IsClosed(1e-6); got != tt.expect {
				t.Errorf("IsClosed() = %v, want %v", got, tt.expect)
			}
		})
	}
}
