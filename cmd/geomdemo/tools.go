package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/gogpu/geomtool"
	"github.com/gogpu/geomtool/model"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available instruments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tDEFAULT HEIGHT\tGUIDING EDGE")
		for _, k := range geomtool.Kinds() {
			fmt.Fprintf(w, "%s\t%.1f cm\t%s\n", k, model.DefaultHeight(k), edgeName(k))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func edgeName(k geomtool.Kind) string {
	switch k {
	case geomtool.Ruler:
		return "top edge"
	case geomtool.Protractor:
		return "diameter"
	case geomtool.Setsquare:
		return "hypotenuse"
	case geomtool.Compass:
		return "arm"
	}
	return "-"
}
