package lsys

// Op identifies a turtle instruction.
type Op uint8

const (
	// TurnLeft rotates the turtle counter-clockwise.
	TurnLeft Op = iota
	// TurnRight rotates the turtle clockwise.
	TurnRight
	// Move advances the turtle along its heading, drawing.
	Move
)

// String returns the instruction name.
func (op Op) String() string {
	switch op {
	case TurnLeft:
		return "TurnLeft"
	case TurnRight:
		return "TurnRight"
	case Move:
		return "Move"
	}
	return "Unknown"
}

// Instruction is a single turtle command with its resolved numeric
// parameter: degrees for turns, a length for moves. Parameters are
// fixed at compile time, so interpretation is a pure fold with no
// side-channel state.
type Instruction struct {
	Op    Op
	Value float64
}

// Compile maps an expanded symbol string to an instruction sequence.
//
// The classification is fixed: A, B and F emit Move(step), + emits
// TurnLeft(angle), - emits TurnRight(angle), and every other symbol
// emits nothing (grammar-internal non-terminals have no drawing
// meaning). Grammars that draw with other letters would silently
// produce no movement; the catalog only uses A, B and F, and the
// classification is deliberately not generalized beyond it.
//
// A non-zero startAngle emits a single leading TurnLeft(startAngle),
// a one-time heading offset applied before any movement.
func Compile(symbols string, angle, step, startAngle float64) []Instruction {
	prog := make([]Instruction, 0, len(symbols)+1)
	if startAngle != 0 {
		prog = append(prog, Instruction{Op: TurnLeft, Value: startAngle})
	}
	for _, s := range symbols {
		switch s {
		case 'A', 'B', 'F':
			prog = append(prog, Instruction{Op: Move, Value: step})
		case '+':
			prog = append(prog, Instruction{Op: TurnLeft, Value: angle})
		case '-':
			prog = append(prog, Instruction{Op: TurnRight, Value: angle})
		}
	}
	return prog
}

// countMoves returns the number of Move instructions in prog.
func countMoves(prog []Instruction) int {
	n := 0
	for _, in := range prog {
		if in.Op == Move {
			n++
		}
	}
	return n
}
