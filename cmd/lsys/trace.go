package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/lsys"
)

var fitSpec string

var traceCmd = &cobra.Command{
	Use:   "trace [preset]",
	Short: "Trace a curve and print its points, one \"x y\" pair per line",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolvePreset(args)
		if err != nil {
			return err
		}
		path, err := p.Trace(cmd.Context(), overrides()...)
		if err != nil {
			return err
		}
		if fitSpec != "" {
			w, h, err := parseFit(fitSpec)
			if err != nil {
				return err
			}
			min, max := path.Bounds()
			path = path.Transform(lsys.FitRect(min, max, w, h))
		}
		return writePoints(cmd.OutOrStdout(), path)
	},
}

func init() {
	traceCmd.Flags().StringVar(&fitSpec, "fit", "", "scale and center the path into a WxH viewport (e.g. 800x600)")
}

// parseFit parses a "WxH" viewport spec.
func parseFit(spec string) (w, h float64, err error) {
	a, b, ok := strings.Cut(spec, "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --fit %q: want WxH", spec)
	}
	if w, err = strconv.ParseFloat(a, 64); err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("invalid --fit width %q", a)
	}
	if h, err = strconv.ParseFloat(b, 64); err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("invalid --fit height %q", b)
	}
	return w, h, nil
}

// writePoints streams the path as plain "x y" lines.
func writePoints(w io.Writer, path lsys.Path) error {
	bw := bufio.NewWriter(w)
	for _, pt := range path {
		if _, err := fmt.Fprintf(bw, "%g %g\n", pt.X, pt.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}
