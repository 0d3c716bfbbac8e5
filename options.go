package lsys

// TraceOption overrides a preset's defaults for one trace.
//
// Example:
//
//	// Default levels and step
//	path, err := lsys.Trace(ctx, "hilbert")
//
//	// A shallower, larger-stepped trace
//	path, err := lsys.Trace(ctx, "hilbert", lsys.WithLevels(3), lsys.WithStep(8))
type TraceOption func(*traceOptions)

// traceOptions holds the per-trace overrides.
type traceOptions struct {
	levels int
	step   float64
	budget int
}

// defaultTraceOptions seeds the options from a preset's defaults.
func defaultTraceOptions(p Preset) traceOptions {
	return traceOptions{
		levels: p.Levels,
		step:   p.Step,
		budget: 0, // DefaultSymbolBudget
	}
}

// WithLevels overrides the preset's default generation count.
// Negative values are clamped to zero.
func WithLevels(levels int) TraceOption {
	return func(o *traceOptions) {
		o.levels = max(levels, 0)
	}
}

// WithStep overrides the preset's default step length.
func WithStep(step float64) TraceOption {
	return func(o *traceOptions) {
		o.step = step
	}
}

// WithSymbolBudget caps the expanded string size for this trace.
// Zero or less restores DefaultSymbolBudget.
func WithSymbolBudget(budget int) TraceOption {
	return func(o *traceOptions) {
		o.budget = budget
	}
}
