package lsys

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const levyTOML = `
name  = "levy"
axiom = "F"
angle = 45.0
levels = 4
step = 2.0

[rules]
F = "-F++F-"
`

func TestDecodeGrammar(t *testing.T) {
	p, err := DecodeGrammar(strings.NewReader(levyTOML))
	if err != nil {
		t.Fatalf("DecodeGrammar() error = %v", err)
	}
	if p.Name != "levy" || p.Axiom != "F" || p.Angle != 45 || p.Levels != 4 || p.Step != 2 {
		t.Errorf("decoded preset = %+v", p)
	}
	if got := p.Rules['F']; got != "-F++F-" {
		t.Errorf("rule F = %q, want %q", got, "-F++F-")
	}

	// The decoded preset runs through the normal pipeline. The Levy C
	// curve at level n draws 2^n segments.
	path, err := p.Trace(context.Background())
	if err != nil {
		t.Fatalf("Trace() error = %v", err)
	}
	if len(path) != 17 {
		t.Errorf("level-4 levy path has %d points, want 17", len(path))
	}
}

func TestDecodeGrammar_DefaultStep(t *testing.T) {
	p, err := DecodeGrammar(strings.NewReader("axiom = \"F\"\nangle = 90.0\n"))
	if err != nil {
		t.Fatalf("DecodeGrammar() error = %v", err)
	}
	if p.Step != 1 {
		t.Errorf("default step = %v, want 1", p.Step)
	}
}

func TestDecodeGrammar_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty axiom", "angle = 90.0\n"},
		{"negative levels", "axiom = \"F\"\nlevels = -1\n"},
		{"multi-rune rule key", "axiom = \"F\"\n[rules]\nFF = \"F\"\n"},
		{"empty rule key", "axiom = \"F\"\n[rules]\n\"\" = \"F\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeGrammar(strings.NewReader(tt.doc))
			if !errors.Is(err, ErrInvalidGrammar) {
				t.Errorf("DecodeGrammar() error = %v, want ErrInvalidGrammar", err)
			}
		})
	}
}

func TestDecodeGrammar_Malformed(t *testing.T) {
	_, err := DecodeGrammar(strings.NewReader("axiom = ["))
	if err == nil {
		t.Fatal("DecodeGrammar() accepted malformed TOML")
	}
}
