// Command lsys traces L-system fractal curves to stdout as point lists
// consumable by external plotting or stroking tools.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/lsys"
)

var (
	// verbose enables the library's debug logging.
	verbose bool
	// grammarFile points at a TOML curve definition used instead of a
	// catalog preset.
	grammarFile string
	// levels / step / budget override the preset defaults when set.
	levels int
	step   float64
	budget int

	rootCmd = &cobra.Command{
		Use:   "lsys",
		Short: "Trace L-system fractal curves as 2D point sequences",
		Long: `lsys expands a Lindenmayer-system grammar and walks the result with a
turtle, printing the traced polyline one "x y" pair per line.

Curves come from the built-in catalog (see "lsys list") or from a TOML
grammar file passed with --grammar.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log expansion progress to stderr")
	rootCmd.PersistentFlags().StringVarP(&grammarFile, "grammar", "g", "", "TOML grammar file instead of a catalog preset")
	rootCmd.PersistentFlags().IntVarP(&levels, "levels", "l", -1, "override the preset's generation count")
	rootCmd.PersistentFlags().Float64VarP(&step, "step", "s", 0, "override the preset's step length")
	rootCmd.PersistentFlags().IntVar(&budget, "budget", 0, "symbol budget for the expansion (0 = default)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(traceCmd)

	cobra.OnInitialize(initLogging)
}

func initLogging() {
	if !verbose {
		return
	}
	handler := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           log.DebugLevel,
	})
	lsys.SetLogger(slog.New(handler))
}

// resolvePreset picks the curve to run: the --grammar file when given,
// otherwise the named catalog preset.
func resolvePreset(args []string) (lsys.Preset, error) {
	if grammarFile != "" {
		f, err := os.Open(grammarFile)
		if err != nil {
			return lsys.Preset{}, err
		}
		defer f.Close()
		return lsys.DecodeGrammar(f)
	}
	if len(args) == 0 {
		return lsys.Preset{}, fmt.Errorf("a preset name or --grammar file is required")
	}
	p, ok := lsys.Lookup(args[0])
	if !ok {
		return lsys.Preset{}, fmt.Errorf("%w: %q (try \"lsys list\")", lsys.ErrUnknownPreset, args[0])
	}
	return p, nil
}

// overrides collects the trace options from the global flags.
func overrides() []lsys.TraceOption {
	var opts []lsys.TraceOption
	if levels >= 0 {
		opts = append(opts, lsys.WithLevels(levels))
	}
	if step > 0 {
		opts = append(opts, lsys.WithStep(step))
	}
	if budget > 0 {
		opts = append(opts, lsys.WithSymbolBudget(budget))
	}
	return opts
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
