package lsys

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

// GrammarFile is the on-disk TOML form of a curve definition, for
// grammars not in the built-in catalog:
//
//	name  = "levy"
//	axiom = "F"
//	angle = 45.0
//	levels = 10
//	step = 1.0
//	[rules]
//	F = "-F++F-"
//
// levels, step and start_angle are optional; step defaults to 1.
type GrammarFile struct {
	Name       string            `toml:"name"`
	Axiom      string            `toml:"axiom"`
	Rules      map[string]string `toml:"rules"`
	Angle      float64           `toml:"angle"`
	Levels     int               `toml:"levels"`
	Step       float64           `toml:"step"`
	StartAngle float64           `toml:"start_angle"`
}

// ErrInvalidGrammar is wrapped by DecodeGrammar for structurally
// invalid definitions.
var ErrInvalidGrammar = errors.New("lsys: invalid grammar")

// DecodeGrammar reads a TOML curve definition and returns it as a
// Preset usable exactly like a catalog entry.
func DecodeGrammar(r io.Reader) (Preset, error) {
	var gf GrammarFile
	if err := toml.NewDecoder(r).Decode(&gf); err != nil {
		return Preset{}, fmt.Errorf("lsys: decoding grammar: %w", err)
	}
	return gf.Preset()
}

// Preset validates the file and converts it to a Preset.
func (gf GrammarFile) Preset() (Preset, error) {
	if gf.Axiom == "" {
		return Preset{}, fmt.Errorf("%w: axiom must not be empty", ErrInvalidGrammar)
	}
	if gf.Levels < 0 {
		return Preset{}, fmt.Errorf("%w: levels must not be negative", ErrInvalidGrammar)
	}

	rules := make(Rules, len(gf.Rules))
	for k, v := range gf.Rules {
		r, size := utf8.DecodeRuneInString(k)
		if size == 0 || size != len(k) {
			return Preset{}, fmt.Errorf("%w: rule key %q must be a single symbol", ErrInvalidGrammar, k)
		}
		rules[r] = v
	}

	step := gf.Step
	if step == 0 {
		step = 1
	}
	return Preset{
		Name:       gf.Name,
		Axiom:      gf.Axiom,
		Rules:      rules,
		Angle:      gf.Angle,
		Levels:     gf.Levels,
		Step:       step,
		StartAngle: gf.StartAngle,
	}, nil
}
