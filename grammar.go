package lsys

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"
)

// Rules maps a symbol to its replacement string. A symbol with no entry
// rewrites to itself (the identity rule), which is how terminal symbols
// such as + and - survive every generation.
type Rules map[rune]string

// Grammar is a complete L-system: a starting string, a rule table and
// the number of generations to apply. Expansion is deterministic and
// context-free; a symbol's replacement never depends on its neighbors
// or on the generation number.
type Grammar struct {
	Axiom  string
	Rules  Rules
	Levels int
}

// DefaultSymbolBudget bounds the expanded string when no explicit
// budget is given. Rule tables grow exponentially in the level count,
// so an unbounded expansion is a memory exhaustion waiting to happen.
const DefaultSymbolBudget = 64 << 20

// ErrSymbolBudget is returned when an expansion would exceed its
// symbol budget. The wrapped error names the offending generation and
// its predicted size.
var ErrSymbolBudget = errors.New("lsys: symbol budget exceeded")

// Expand applies levels generations of rules to axiom and returns the
// resulting symbol string. Each generation rewrites every symbol of the
// previous generation's string simultaneously; the output buffer is
// sized exactly before writing, so expansion is linear in the total
// output size.
//
// A budget of zero or less means DefaultSymbolBudget. The size of each
// generation is predicted from symbol frequency counts before it is
// materialized; a generation that would exceed the budget fails with an
// error wrapping ErrSymbolBudget and no partial result.
//
// The context is checked once per generation. Cancellation aborts the
// expansion; it never alters the output of one that completes.
func Expand(ctx context.Context, axiom string, rules Rules, levels int, budget int) (string, error) {
	if budget <= 0 {
		budget = DefaultSymbolBudget
	}

	cur := axiom
	counts := countSymbols(axiom)
	for gen := 1; gen <= levels; gen++ {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("lsys: expansion canceled at generation %d: %w", gen, err)
		}

		nextSyms, nextBytes, nextCounts := project(counts, rules)
		if nextSyms > budget {
			return "", fmt.Errorf("lsys: generation %d needs %d symbols, budget is %d: %w",
				gen, nextSyms, budget, ErrSymbolBudget)
		}

		var b strings.Builder
		b.Grow(nextBytes)
		for _, s := range cur {
			if repl, ok := rules[s]; ok {
				b.WriteString(repl)
			} else {
				b.WriteRune(s)
			}
		}
		cur = b.String()
		counts = nextCounts

		Logger().LogAttrs(ctx, slog.LevelDebug, "generation expanded",
			slog.Int("generation", gen),
			slog.Int("symbols", nextSyms))
	}
	return cur, nil
}

// Expand applies the grammar's full level count with the default
// symbol budget.
func (g Grammar) Expand(ctx context.Context) (string, error) {
	return Expand(ctx, g.Axiom, g.Rules, g.Levels, 0)
}

// countSymbols tallies each distinct symbol of s.
func countSymbols(s string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range s {
		counts[r]++
	}
	return counts
}

// project computes the next generation's symbol count, byte length and
// per-symbol tallies from the current tallies alone. This is what lets
// Expand size its buffer exactly and enforce the budget before
// allocating anything.
func project(counts map[rune]int, rules Rules) (syms, bytes int, next map[rune]int) {
	next = make(map[rune]int, len(counts))
	for s, n := range counts {
		repl, ok := rules[s]
		if !ok {
			next[s] += n
			syms += n
			bytes += n * utf8.RuneLen(s)
			continue
		}
		for _, r := range repl {
			next[r] += n
			syms += n
		}
		bytes += n * len(repl)
	}
	return syms, bytes, next
}
