package lsys

import (
	"iter"
	"math"
)

// Turtle is the 2D cursor executing an instruction sequence. Heading is
// in degrees, 0 pointing along +X, counter-clockwise positive, kept
// normalized to [0, 360). A Turtle is owned by a single interpretation
// run; the zero value is the canonical start state.
type Turtle struct {
	Position Point
	Heading  float64
}

// Step applies one instruction. It returns the new position and true
// when the instruction was a Move; turns return false and emit nothing.
func (t *Turtle) Step(in Instruction) (Point, bool) {
	switch in.Op {
	case TurnLeft:
		t.Heading = normalizeHeading(t.Heading + in.Value)
	case TurnRight:
		t.Heading = normalizeHeading(t.Heading - in.Value)
	case Move:
		t.Position = t.Position.Add(FromHeading(t.Heading).Mul(in.Value))
		return t.Position, true
	}
	return Point{}, false
}

// Run executes prog from the zero start state and returns the full
// path: the origin followed by one point per Move. The result is
// bit-for-bit reproducible for a fixed program.
func Run(prog []Instruction) Path {
	path := make(Path, 1, countMoves(prog)+1)
	var t Turtle
	for _, in := range prog {
		if p, moved := t.Step(in); moved {
			path = append(path, p)
		}
	}
	return path
}

// Points returns the path of prog as a lazy sequence: the start point,
// then one point per Move. Nothing beyond the turtle state is held in
// memory, so arbitrarily long programs can be consumed point by point.
// The sequence is restartable; each range loop replays from the start
// state.
func Points(prog []Instruction) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		var t Turtle
		if !yield(t.Position) {
			return
		}
		for _, in := range prog {
			if p, moved := t.Step(in); moved {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// normalizeHeading wraps a heading into [0, 360).
func normalizeHeading(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
