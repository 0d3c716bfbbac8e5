package lsys

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// Preset is a read-only catalog entry reproducing a published fractal
// curve: a grammar plus the turn angle, default level count, default
// step length and optional initial heading offset that parameterize
// the Expand, Compile and Run pipeline.
type Preset struct {
	Name       string
	Axiom      string
	Rules      Rules
	Angle      float64
	Levels     int
	Step       float64
	StartAngle float64
}

// ErrUnknownPreset is returned by Trace for a name not in the catalog.
var ErrUnknownPreset = errors.New("lsys: unknown preset")

// catalog holds the built-in curves. Parameters follow the published
// grammars (Paul Bourke's L-system notes and the classic space-filling
// curve literature). The table is never mutated after init, so reads
// need no locking.
var catalog = map[string]Preset{
	"dragon": {
		Name:  "dragon",
		Axiom: "FX",
		Rules: Rules{'X': "X+YF+", 'Y': "-FX-Y"},
		Angle: 90, Levels: 10, Step: 1,
	},
	"terdragon": {
		Name:  "terdragon",
		Axiom: "F",
		Rules: Rules{'F': "F+F-F"},
		Angle: 120, Levels: 8, Step: 1,
	},
	"twindragon": {
		Name:  "twindragon",
		Axiom: "FX+FX+",
		Rules: Rules{'X': "X+YF", 'Y': "FX-Y"},
		Angle: 90, Levels: 12, Step: 1,
	},
	"hilbert": {
		Name:  "hilbert",
		Axiom: "X",
		Rules: Rules{'X': "-YF+XFX+FY-", 'Y': "+XF-YFY-FX+"},
		Angle: 90, Levels: 5, Step: 1,
	},
	"moore": {
		Name:  "moore",
		Axiom: "LFL+F+LFL",
		Rules: Rules{'L': "-RF+LFL+FR-", 'R': "+LF-RFR-FL+"},
		Angle: 90, Levels: 5, Step: 1, StartAngle: 90,
	},
	"peano": {
		Name:  "peano",
		Axiom: "X",
		Rules: Rules{'X': "XFYFX+F+YFXFY-F-XFYFX", 'Y': "YFXFY-F-XFYFX+F+YFXFY"},
		Angle: 90, Levels: 3, Step: 1,
	},
	"gosper": {
		Name:  "gosper",
		Axiom: "A",
		Rules: Rules{'A': "A-B--B+A++AA+B-", 'B': "+A-BB--B-A++A+B"},
		Angle: 60, Levels: 4, Step: 1,
	},
	"quad-gosper": {
		Name:  "quad-gosper",
		Axiom: "-YF",
		Rules: Rules{
			'X': "XFX-YF-YF+FX+FX-YF-YFFX+YF+FXFXYF-FX+YF+FXFX+YF-FXYF-YF-FX+FX+YFYF-",
			'Y': "+FXFX-YF-YF+FX+FXYF+FX-YFYF-FX-YF+FXYFYF-FX-YFFX+FX+YF-YF-FX+FX+YFY",
		},
		Angle: 90, Levels: 2, Step: 1,
	},
	"koch-snowflake": {
		Name:  "koch-snowflake",
		Axiom: "F++F++F",
		Rules: Rules{'F': "F-F++F-F"},
		Angle: 60, Levels: 4, Step: 1,
	},
	"cesaro": {
		Name:  "cesaro",
		Axiom: "F",
		Rules: Rules{'F': "F+F--F+F"},
		Angle: 85, Levels: 5, Step: 1,
	},
	"sierpinski-arrowhead": {
		Name:  "sierpinski-arrowhead",
		Axiom: "A",
		Rules: Rules{'A': "B-A-B", 'B': "A+B+A"},
		Angle: 60, Levels: 6, Step: 1,
	},
	"sierpinski-triangle": {
		Name:  "sierpinski-triangle",
		Axiom: "FXF--FF--FF",
		Rules: Rules{'F': "FF", 'X': "--FXF++FXF++FXF--"},
		Angle: 60, Levels: 5, Step: 1,
	},
	"square-sierpinski": {
		Name:  "square-sierpinski",
		Axiom: "F+XF+F+XF",
		Rules: Rules{'X': "XF-F+F-XF+F+XF-F+F-X"},
		Angle: 90, Levels: 4, Step: 1,
	},
	"bourke-triangle": {
		Name:  "bourke-triangle",
		Axiom: "F+F+F",
		Rules: Rules{'F': "F-F+F"},
		Angle: 120, Levels: 6, Step: 1,
	},
	"pentaplexity": {
		Name:  "pentaplexity",
		Axiom: "F++F++F++F++F",
		Rules: Rules{'F': "F++F++F+++++F-F++F"},
		Angle: 36, Levels: 4, Step: 1,
	},
	"rings": {
		Name:  "rings",
		Axiom: "F+F+F+F",
		Rules: Rules{'F': "FF+F+F+F+F+F-F"},
		Angle: 90, Levels: 3, Step: 1,
	},
	"space-filling-tree": {
		Name:  "space-filling-tree",
		Axiom: "X+X+X+X",
		Rules: Rules{'X': "-YF+XFX+FY-", 'Y': "+XF-YFY-FX+"},
		Angle: 90, Levels: 5, Step: 1,
	},
	"krishna-anklets": {
		Name:  "krishna-anklets",
		Axiom: "-X--X",
		Rules: Rules{'X': "XFX--XFX"},
		Angle: 45, Levels: 5, Step: 1,
	},
}

// Presets returns the catalog entries sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Preset, bool) {
	p, ok := catalog[name]
	return p, ok
}

// Trace expands, compiles and interprets the named preset, applying
// any overrides. It wraps ErrUnknownPreset when name is not in the
// catalog.
func Trace(ctx context.Context, name string, opts ...TraceOption) (Path, error) {
	p, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p.Trace(ctx, opts...)
}

// Trace runs the full pipeline for the preset: Expand with the
// preset's grammar, Compile with its angle and start angle, Run into
// a path. Overrides apply to levels, step and the symbol budget only;
// the grammar and angles are fixed catalog data.
func (p Preset) Trace(ctx context.Context, opts ...TraceOption) (Path, error) {
	o := defaultTraceOptions(p)
	for _, opt := range opts {
		opt(&o)
	}

	expanded, err := Expand(ctx, p.Axiom, p.Rules, o.levels, o.budget)
	if err != nil {
		return nil, fmt.Errorf("lsys: tracing %q: %w", p.Name, err)
	}
	path := Run(Compile(expanded, p.Angle, o.step, p.StartAngle))

	Logger().LogAttrs(ctx, slog.LevelInfo, "preset traced",
		slog.String("preset", p.Name),
		slog.Int("levels", o.levels),
		slog.Int("points", len(path)))
	return path, nil
}
