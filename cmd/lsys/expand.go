package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/lsys"
)

var expandCount bool

var expandCmd = &cobra.Command{
	Use:   "expand [preset]",
	Short: "Print the expanded symbol string of a curve",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolvePreset(args)
		if err != nil {
			return err
		}
		n := p.Levels
		if levels >= 0 {
			n = levels
		}
		s, err := lsys.Expand(cmd.Context(), p.Axiom, p.Rules, n, budget)
		if err != nil {
			return err
		}
		if expandCount {
			fmt.Fprintln(cmd.OutOrStdout(), len(s))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), s)
		return nil
	},
}

func init() {
	expandCmd.Flags().BoolVarP(&expandCount, "count", "c", false, "print only the symbol count")
}
