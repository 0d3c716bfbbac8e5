package lsys

import "math"

// Matrix represents a 2D affine transformation.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in degrees, counter-clockwise).
func Rotate(degrees float64) Matrix {
	rad := degrees * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms a point by the matrix.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// FitRect returns the matrix that maps the box (min, max) into the
// rectangle (0,0)-(w,h), scaling uniformly and centering the slack
// dimension. Degenerate boxes (zero width and height) translate only.
func FitRect(min, max Point, w, h float64) Matrix {
	bw := max.X - min.X
	bh := max.Y - min.Y

	s := 1.0
	if bw > 0 || bh > 0 {
		sx := math.Inf(1)
		sy := math.Inf(1)
		if bw > 0 {
			sx = w / bw
		}
		if bh > 0 {
			sy = h / bh
		}
		s = math.Min(sx, sy)
	}

	// Center the fitted box inside the target rectangle.
	ox := (w - bw*s) / 2
	oy := (h - bh*s) / 2
	return Translate(ox, oy).
		Multiply(Scale(s, s)).
		Multiply(Translate(-min.X, -min.Y))
}
