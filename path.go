package lsys

// Path is an ordered polyline: the first point is the turtle's start
// position, followed by one point per Move instruction. A Path is
// immutable once the interpreter returns it.
type Path []Point

// Bounds returns the axis-aligned bounding box of the path.
// The zero-value box is returned for an empty path.
func (p Path) Bounds() (min, max Point) {
	if len(p) == 0 {
		return Point{}, Point{}
	}
	min, max = p[0], p[0]
	for _, pt := range p[1:] {
		if pt.X < min.X {
			min.X = pt.X
		}
		if pt.Y < min.Y {
			min.Y = pt.Y
		}
		if pt.X > max.X {
			max.X = pt.X
		}
		if pt.Y > max.Y {
			max.Y = pt.Y
		}
	}
	return min, max
}

// Length returns the total arc length of the polyline.
func (p Path) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += p[i].Distance(p[i-1])
	}
	return total
}

// Transform returns a new path with every point transformed by m.
// The receiver is not modified.
func (p Path) Transform(m Matrix) Path {
	out := make(Path, len(p))
	for i, pt := range p {
		out[i] = m.Apply(pt)
	}
	return out
}

// IsClosed reports whether the path's last point returns to its first
// within epsilon. Paths with fewer than two points are not closed.
func (p Path) IsClosed(epsilon float64) bool {
	if len(p) < 2 {
		return false
	}
	return p[len(p)-1].Approx(p[0], epsilon)
}
