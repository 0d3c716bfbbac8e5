package lsys

import (
	"context"
	"strings"
	"testing"
)

func TestCompile_Classification(t *testing.T) {
	tests := []struct {
		name    string
		symbols string
		expect  []Instruction
	}{
		{"forward F", "F", []Instruction{{Move, 2}}},
		{"forward A", "A", []Instruction{{Move, 2}}},
		{"forward B", "B", []Instruction{{Move, 2}}},
		{"left", "+", []Instruction{{TurnLeft, 90}}},
		{"right", "-", []Instruction{{TurnRight, 90}}},
		{"non-terminals silent", "XYLR", nil},
		{"mixed", "FX+Y-F", []Instruction{{Move, 2}, {TurnLeft, 90}, {TurnRight, 90}, {Move, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compile(tt.symbols, 90, 2, 0)
			if len(got) != len(tt.expect) {
				t.Fatalf("Compile(%q) = %v, want %v", tt.symbols, got, tt.expect)
			}
			for i := range got {
				if got[i] != tt.expect[i] {
					t.Errorf("Compile(%q)[%d] = %v, want %v", tt.symbols, i, got[i], tt.expect[i])
				}
			}
		})
	}
}

func TestCompile_StartAngle(t *testing.T) {
	got := Compile("F", 90, 1, 45)
	want := []Instruction{{TurnLeft, 45}, {Move, 1}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Compile with start angle = %v, want %v", got, want)
	}

	// Zero start angle emits no prefix.
	if got := Compile("F", 90, 1, 0); len(got) != 1 {
		t.Errorf("Compile without start angle = %v, want a single Move", got)
	}
}

// Move count must equal the drawing-symbol count of the input, and the
// traced path gains exactly one point per Move.
func TestCompile_InstructionBalance(t *testing.T) {
	symbols := "A-B--B+A++AA+B-XYXY+F"
	draws := strings.Count(symbols, "A") +
		strings.Count(symbols, "B") +
		strings.Count(symbols, "F")

	prog := Compile(symbols, 60, 1, 0)
	if got := countMoves(prog); got != draws {
		t.Errorf("move count = %d, want %d", got, draws)
	}
	if path := Run(prog); len(path) != draws+1 {
		t.Errorf("path has %d points, want %d", len(path), draws+1)
	}
}

// Hilbert level 1 expands to three Fs: three Moves, four path points.
func TestCompile_HilbertLevelOne(t *testing.T) {
	s, err := Expand(context.Background(), "X",
		Rules{'X': "-YF+XFX+FY-", 'Y': "+XF-YFY-FX+"}, 1, 0)
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	prog := Compile(s, 90, 1, 0)
	if got := countMoves(prog); got != 3 {
		t.Errorf("hilbert level 1 compiles to %d moves, want 3", got)
	}
	if path := Run(prog); len(path) != 4 {
		t.Errorf("hilbert level 1 traces %d points, want 4", len(path))
	}
}

func TestOp_String(t *testing.T) {
	tests := []struct {
		op     Op
		expect string
	}{
		{TurnLeft, "TurnLeft"},
		{TurnRight, "TurnRight"},
		{Move, "Move"},
		{Op(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.expect {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.expect)
		}
	}
}
