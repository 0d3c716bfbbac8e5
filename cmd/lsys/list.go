package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/lsys"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in curve presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tANGLE\tLEVELS\tSTEP\tAXIOM")
		for _, p := range lsys.Presets() {
			fmt.Fprintf(w, "%s\t%g\t%d\t%g\t%s\n", p.Name, p.Angle, p.Levels, p.Step, p.Axiom)
		}
		return w.Flush()
	},
}
